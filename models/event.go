// Package models defines data structures used across the application.
// File: models/event.go
package models

import "github.com/uptrace/bun"

// ------------------------ event model -----------------------

// Event is something a club runs that attendees can register for.
type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID          int64  `bun:"id,pk,autoincrement" json:"id"`
	Title       string `bun:"title" json:"title"`
	Club        string `bun:"club" json:"club"`
	Date        string `bun:"date" json:"date"` // free text, not parsed
	Description string `bun:"description" json:"description"`
}

// ---------------------- registration model ----------------------

// Registration is one attendee's enrollment in an event.
// EventID is not constrained; it may point at an event that does not exist.
type Registration struct {
	bun.BaseModel `bun:"table:registrations"`

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	Name     string `bun:"name" json:"name"`
	Email    string `bun:"email" json:"email"`
	EventID  int64  `bun:"event_id" json:"eventId"`
	Attended bool   `bun:"attended" json:"attended"`
}
