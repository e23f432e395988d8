// File: controllers/registration_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"club-events/logger"
	"club-events/models"
	"club-events/services"

	"github.com/gin-gonic/gin"
)

// RegistrationController handles attendee sign-up and the attendance dashboard.
type RegistrationController struct {
	Events services.EventServiceInterface
}

// NewRegistrationController initializes a new instance of RegistrationController.
func NewRegistrationController(events services.EventServiceInterface) *RegistrationController {
	return &RegistrationController{Events: events}
}

// optionalEvent looks up an event for display. A missing event is not an error.
func (rc *RegistrationController) optionalEvent(c *gin.Context, id int64) (*models.Event, error) {
	event, err := rc.Events.GetEvent(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	return event, err
}

// ShowRegister renders the registration form for an event id.
func (rc *RegistrationController) ShowRegister(c *gin.Context) {
	eventID, err := pathID(c, "event_id")
	if err != nil {
		fail(c, err)
		return
	}
	event, err := rc.optionalEvent(c, eventID)
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "register.html", gin.H{
		"eventID": eventID,
		"event":   event,
	})
}

// Register stores a registration for the event id in the path. The event is
// not required to exist.
func (rc *RegistrationController) Register(c *gin.Context) {
	eventID, err := pathID(c, "event_id")
	if err != nil {
		fail(c, err)
		return
	}
	var form RegistrationForm
	if err := bindForm(c, &form); err != nil {
		fail(c, err)
		return
	}

	reg := &models.Registration{Name: *form.Name, Email: *form.Email, EventID: eventID}
	if err := rc.Events.Register(c.Request.Context(), reg); err != nil {
		fail(c, err)
		return
	}

	setFlash(c, fmt.Sprintf("%s is registered.", reg.Name))
	c.Redirect(http.StatusFound, "/events")
}

// Dashboard lists every registration for an event.
func (rc *RegistrationController) Dashboard(c *gin.Context) {
	eventID, err := pathID(c, "event_id")
	if err != nil {
		fail(c, err)
		return
	}
	event, err := rc.optionalEvent(c, eventID)
	if err != nil {
		fail(c, err)
		return
	}
	regs, err := rc.Events.Registrations(c.Request.Context(), eventID)
	if err != nil {
		fail(c, err)
		return
	}

	attended := 0
	for _, r := range regs {
		if r.Attended {
			attended++
		}
	}

	logger.Debug.Printf("Dashboard: event %d has %d registrations (%d attended)", eventID, len(regs), attended)
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"eventID":       eventID,
		"event":         event,
		"users":         regs,
		"attendedCount": attended,
	})
}

// MarkAttended flags a registration as attended and returns to the dashboard.
func (rc *RegistrationController) MarkAttended(c *gin.Context) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		fail(c, err)
		return
	}
	eventID, err := pathID(c, "event_id")
	if err != nil {
		fail(c, err)
		return
	}

	if err := rc.Events.MarkAttended(c.Request.Context(), userID, eventID); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/dashboard/%d", eventID))
}
