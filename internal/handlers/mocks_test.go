package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/sahigaadi/internal/catalog"
	"github.com/ukydev/sahigaadi/internal/middleware"
	"github.com/ukydev/sahigaadi/internal/models"
	"github.com/ukydev/sahigaadi/internal/recommend"
)

// MockProfileStore is a mock implementation of session.Store
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) Save(ctx context.Context, sessionID string, profile models.WizardProfile) error {
	args := m.Called(ctx, sessionID, profile)
	return args.Error(0)
}

func (m *MockProfileStore) Load(ctx context.Context, sessionID string) (*models.StoredProfile, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoredProfile), args.Error(1)
}

func (m *MockProfileStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockConsultationCollection is a mock implementation of ConsultationCollection
type MockConsultationCollection struct {
	mock.Mock
}

func (m *MockConsultationCollection) InsertConsultation(ctx context.Context, consultation models.Consultation) error {
	args := m.Called(ctx, consultation)
	return args.Error(0)
}

func (m *MockConsultationCollection) FindConsultations(ctx context.Context, limit int64) ([]models.Consultation, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Consultation), args.Error(1)
}

// MockPublisher is a mock implementation of notify.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishConsultation(ctx context.Context, consultation models.Consultation) error {
	args := m.Called(ctx, consultation)
	return args.Error(0)
}

func testEngine(t *testing.T) *recommend.Engine {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return recommend.NewEngine(c, nil)
}

func validProfile() models.WizardProfile {
	return models.WizardProfile{
		VehicleType:   models.VehicleTypeCar,
		PrimaryUse:    models.UseOfficeDaily,
		Zone:          models.ZoneGomtiNagar,
		DailyDistance: 30,
		Parking:       models.ParkingStreet,
		Drivers:       []models.DriverProfile{models.DriverSelf},
		BudgetType:    models.BudgetPurchase,
		BudgetAmount:  800000,
		Priorities: []models.Priority{
			models.PrioritySafety,
			models.PriorityFuelEconomy,
			models.PriorityComfort,
			models.PriorityBrandReputation,
			models.PriorityResaleValue,
		},
	}
}

func withSession(ctx context.Context, id string) context.Context {
	return middleware.WithSession(ctx, id)
}
