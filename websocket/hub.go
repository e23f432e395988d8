// file: websocket/hub.go
package websocket

import (
	"encoding/json"
	"sync"

	"club-events/logger"
)

// Hub tracks dashboard connections per event.
type Hub struct {
	mu          sync.Mutex
	connections map[*Connection]bool
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{connections: make(map[*Connection]bool)}
}

// Update is the message sent to dashboards.
type Update struct {
	Action  string `json:"action"`
	EventID int64  `json:"eventId"`
}

// RegistrationsChanged tells every dashboard watching eventID to refresh.
func (h *Hub) RegistrationsChanged(eventID int64) {
	msg, err := json.Marshal(Update{Action: "registrationsChanged", EventID: eventID})
	if err != nil {
		logger.Error.Printf("[RegistrationsChanged] Error marshalling update: %v", err)
		return
	}
	h.broadcastToEvent(eventID, msg)
}

// Count returns how many connections watch eventID.
func (h *Hub) Count(eventID int64) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for c := range h.connections {
		if c.eventID == eventID {
			n++
		}
	}
	return n
}

func (h *Hub) broadcastToEvent(eventID int64, message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.connections {
		if c.eventID != eventID {
			continue
		}
		select {
		case c.send <- message:
		default:
			logger.Warn.Printf("Dropping update for connection %v", c.conn.RemoteAddr())
		}
	}
}

func (h *Hub) register(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c] = true
}

// unregister removes c and closes its send channel, which stops writePump.
func (h *Hub) unregister(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.connections[c]; ok {
		delete(h.connections, c)
		close(c.send)
	}
}
