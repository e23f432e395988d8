// Package controllers file: controllers/page_controller.go
package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"club-events/logger"
	"club-events/services"
	livews "club-events/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/skip2/go-qrcode"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PageController serves the health check, poster QR codes and live dashboard socket.
type PageController struct {
	Events         services.EventServiceInterface
	DB             Pinger
	Hub            *livews.Hub
	ApplicationURL string
}

// NewPageController initializes a new instance of PageController.
func NewPageController(events services.EventServiceInterface, db Pinger, hub *livews.Hub, appURL string) *PageController {
	return &PageController{
		Events:         events,
		DB:             db,
		Hub:            hub,
		ApplicationURL: strings.TrimRight(appURL, "/"),
	}
}

// Health answers OK when the database responds.
func (pc *PageController) Health(c *gin.Context) {
	if err := pc.DB.Ping(c.Request.Context()); err != nil {
		logger.Error.Printf("Health: database unavailable: %v", err)
		c.String(http.StatusServiceUnavailable, "database unavailable")
		return
	}
	c.String(http.StatusOK, "OK")
}

// EventQRCode returns a PNG QR code pointing at an event's registration page.
func (pc *PageController) EventQRCode(c *gin.Context) {
	eventID, err := pathID(c, "event_id")
	if err != nil {
		fail(c, err)
		return
	}
	if _, err := pc.Events.GetEvent(c.Request.Context(), eventID); err != nil {
		fail(c, err)
		return
	}

	url := fmt.Sprintf("%s/register/%d", pc.ApplicationURL, eventID)
	qrBytes, err := services.GenerateQRCode(url, 300, qrcode.Encode)
	if err != nil {
		logger.Error.Printf("EventQRCode: Error generating QR code: %v", err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=\"event-%d.png\"", eventID))
	c.Data(http.StatusOK, "image/png", qrBytes)
}

// DashboardUpdates upgrades to a websocket that announces registration changes.
func (pc *PageController) DashboardUpdates(c *gin.Context) {
	eventID, err := pathID(c, "event_id")
	if err != nil {
		fail(c, err)
		return
	}
	if !websocket.IsWebSocketUpgrade(c.Request) {
		c.String(http.StatusBadRequest, "websocket upgrade required")
		return
	}
	pc.Hub.ServeWs(c.Writer, c.Request, eventID)
}
