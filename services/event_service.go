// Package services holds the application logic between the HTTP handlers and the store.
// File: services/event_service.go
package services

import (
	"context"
	"fmt"

	"club-events/logger"
	"club-events/models"
)

// Repository is the subset of the store the services need.
type Repository interface {
	CreateEvent(ctx context.Context, e *models.Event) error
	ListEvents(ctx context.Context, club string) ([]models.Event, error)
	ListClubs(ctx context.Context) ([]string, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	CreateRegistration(ctx context.Context, r *models.Registration) error
	ListRegistrations(ctx context.Context, eventID int64) ([]models.Registration, error)
	GetRegistration(ctx context.Context, id int64) (*models.Registration, error)
	MarkAttended(ctx context.Context, id, eventID int64) (bool, error)
}

// Notifier is told when an event's registrations change.
type Notifier interface {
	RegistrationsChanged(eventID int64)
}

// EventServiceInterface is what the controllers depend on.
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, e *models.Event) error
	ListEvents(ctx context.Context, club string) ([]models.Event, error)
	ListClubs(ctx context.Context) ([]string, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	Register(ctx context.Context, r *models.Registration) error
	Registrations(ctx context.Context, eventID int64) ([]models.Registration, error)
	MarkAttended(ctx context.Context, registrationID, eventID int64) error
}

// EventService implements EventServiceInterface on top of a Repository.
type EventService struct {
	repo     Repository
	notifier Notifier
}

// NewEventService wires the service. notifier may be nil.
func NewEventService(repo Repository, notifier Notifier) *EventService {
	return &EventService{repo: repo, notifier: notifier}
}

// CreateEvent stores a new event.
func (s *EventService) CreateEvent(ctx context.Context, e *models.Event) error {
	if err := s.repo.CreateEvent(ctx, e); err != nil {
		return err
	}
	logger.Info.Printf("CreateEvent: created event %d %q for club %q", e.ID, e.Title, e.Club)
	return nil
}

// ListEvents returns every event, or only those of club when it is non-empty.
func (s *EventService) ListEvents(ctx context.Context, club string) ([]models.Event, error) {
	return s.repo.ListEvents(ctx, club)
}

// ListClubs returns the distinct club names.
func (s *EventService) ListClubs(ctx context.Context) ([]string, error) {
	return s.repo.ListClubs(ctx)
}

// GetEvent looks up a single event.
func (s *EventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.repo.GetEvent(ctx, id)
}

// Register enrolls an attendee. The event id is not checked.
func (s *EventService) Register(ctx context.Context, r *models.Registration) error {
	if err := s.repo.CreateRegistration(ctx, r); err != nil {
		return err
	}
	logger.Info.Printf("Register: registration %d for event %d", r.ID, r.EventID)
	s.notify(r.EventID)
	return nil
}

// Registrations lists the registrations for an event.
func (s *EventService) Registrations(ctx context.Context, eventID int64) ([]models.Registration, error) {
	return s.repo.ListRegistrations(ctx, eventID)
}

// MarkAttended flags a registration as attended. It fails with ErrNotFound when
// the registration does not exist and ErrValidation when it belongs to another event.
func (s *EventService) MarkAttended(ctx context.Context, registrationID, eventID int64) error {
	ok, err := s.repo.MarkAttended(ctx, registrationID, eventID)
	if err != nil {
		return err
	}
	if !ok {
		reg, err := s.repo.GetRegistration(ctx, registrationID)
		if err != nil {
			return err
		}
		return fmt.Errorf("registration %d belongs to event %d, not %d: %w",
			registrationID, reg.EventID, eventID, models.ErrValidation)
	}
	logger.Info.Printf("MarkAttended: registration %d attended event %d", registrationID, eventID)
	s.notify(eventID)
	return nil
}

func (s *EventService) notify(eventID int64) {
	if s.notifier != nil {
		s.notifier.RegistrationsChanged(eventID)
	}
}
