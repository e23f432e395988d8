// services/mock_repository.go
package services

import (
	"context"

	"club-events/models"

	"github.com/stretchr/testify/mock"
)

// MockRepository implements Repository for tests.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateEvent(ctx context.Context, e *models.Event) error {
	args := m.Called(e)
	return args.Error(0)
}

func (m *MockRepository) ListEvents(ctx context.Context, club string) ([]models.Event, error) {
	args := m.Called(club)
	events, _ := args.Get(0).([]models.Event)
	return events, args.Error(1)
}

func (m *MockRepository) ListClubs(ctx context.Context) ([]string, error) {
	args := m.Called()
	clubs, _ := args.Get(0).([]string)
	return clubs, args.Error(1)
}

func (m *MockRepository) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(id)
	e, _ := args.Get(0).(*models.Event)
	return e, args.Error(1)
}

func (m *MockRepository) CreateRegistration(ctx context.Context, r *models.Registration) error {
	args := m.Called(r)
	return args.Error(0)
}

func (m *MockRepository) ListRegistrations(ctx context.Context, eventID int64) ([]models.Registration, error) {
	args := m.Called(eventID)
	regs, _ := args.Get(0).([]models.Registration)
	return regs, args.Error(1)
}

func (m *MockRepository) GetRegistration(ctx context.Context, id int64) (*models.Registration, error) {
	args := m.Called(id)
	r, _ := args.Get(0).(*models.Registration)
	return r, args.Error(1)
}

func (m *MockRepository) MarkAttended(ctx context.Context, id, eventID int64) (bool, error) {
	args := m.Called(id, eventID)
	return args.Bool(0), args.Error(1)
}
