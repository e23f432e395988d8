package controllers

import (
	"context"

	"club-events/models"

	"github.com/stretchr/testify/mock"
)

// MockEventService implements services.EventServiceInterface for testing.
type MockEventService struct {
	mock.Mock
}

// CreateEvent records the new event.
func (m *MockEventService) CreateEvent(ctx context.Context, e *models.Event) error {
	args := m.Called(e)
	return args.Error(0)
}

// ListEvents returns the configured events for a club filter.
func (m *MockEventService) ListEvents(ctx context.Context, club string) ([]models.Event, error) {
	args := m.Called(club)
	events, _ := args.Get(0).([]models.Event)
	return events, args.Error(1)
}

// ListClubs returns the configured club names.
func (m *MockEventService) ListClubs(ctx context.Context) ([]string, error) {
	args := m.Called()
	clubs, _ := args.Get(0).([]string)
	return clubs, args.Error(1)
}

// GetEvent returns the configured event.
func (m *MockEventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(id)
	e, _ := args.Get(0).(*models.Event)
	return e, args.Error(1)
}

// Register records a registration.
func (m *MockEventService) Register(ctx context.Context, r *models.Registration) error {
	args := m.Called(r)
	return args.Error(0)
}

// Registrations returns the configured registrations for an event.
func (m *MockEventService) Registrations(ctx context.Context, eventID int64) ([]models.Registration, error) {
	args := m.Called(eventID)
	regs, _ := args.Get(0).([]models.Registration)
	return regs, args.Error(1)
}

// MarkAttended records an attendance mark.
func (m *MockEventService) MarkAttended(ctx context.Context, registrationID, eventID int64) error {
	args := m.Called(registrationID, eventID)
	return args.Error(0)
}

// MockCertificateService implements services.CertificateServiceInterface for testing.
type MockCertificateService struct {
	mock.Mock
}

// Generate returns the configured path.
func (m *MockCertificateService) Generate(ctx context.Context, registrationID int64) (string, error) {
	args := m.Called(registrationID)
	return args.String(0), args.Error(1)
}

// Path returns the configured path.
func (m *MockCertificateService) Path(registrationID int64) string {
	args := m.Called(registrationID)
	return args.String(0)
}

// MockPinger implements Pinger for testing.
type MockPinger struct {
	mock.Mock
}

// Ping returns the configured error.
func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called()
	return args.Error(0)
}
