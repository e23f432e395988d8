// File: controllers/event_controller.go
package controllers

import (
	"net/http"

	"club-events/logger"
	"club-events/models"
	"club-events/services"

	"github.com/gin-gonic/gin"
)

// ---------------- Event Controller ----------------

// EventController serves the event listings and the admin creation form.
type EventController struct {
	Events services.EventServiceInterface
}

// NewEventController initializes a new instance of EventController.
func NewEventController(events services.EventServiceInterface) *EventController {
	return &EventController{Events: events}
}

// Index renders every event on the home page.
func (ec *EventController) Index(c *gin.Context) {
	events, err := ec.Events.ListEvents(c.Request.Context(), "")
	if err != nil {
		fail(c, err)
		return
	}

	logger.Debug.Printf("Index: rendering %d events", len(events))
	c.HTML(http.StatusOK, "index.html", gin.H{
		"events": events,
		"flash":  popFlash(c),
	})
}

// ListEvents renders the events page, optionally filtered by ?club=.
func (ec *EventController) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()
	club := c.Query("club")

	events, err := ec.Events.ListEvents(ctx, club)
	if err != nil {
		fail(c, err)
		return
	}
	clubs, err := ec.Events.ListClubs(ctx)
	if err != nil {
		fail(c, err)
		return
	}

	logger.Debug.Printf("ListEvents: club=%q matched %d events", club, len(events))
	c.HTML(http.StatusOK, "events.html", gin.H{
		"events":       events,
		"clubs":        clubs,
		"selectedClub": club,
		"flash":        popFlash(c),
	})
}

// ---------------- admin event creation ----------------

// ShowCreateEvent renders the event creation form.
func (ec *EventController) ShowCreateEvent(c *gin.Context) {
	c.HTML(http.StatusOK, "create_event.html", gin.H{})
}

// CreateEvent stores the submitted event and redirects to the event list.
func (ec *EventController) CreateEvent(c *gin.Context) {
	var form EventForm
	if err := bindForm(c, &form); err != nil {
		fail(c, err)
		return
	}

	event := &models.Event{
		Title:       *form.Title,
		Club:        *form.Club,
		Date:        *form.Date,
		Description: *form.Description,
	}
	if err := ec.Events.CreateEvent(c.Request.Context(), event); err != nil {
		fail(c, err)
		return
	}

	setFlash(c, "Event \""+event.Title+"\" created.")
	c.Redirect(http.StatusFound, "/events")
}
