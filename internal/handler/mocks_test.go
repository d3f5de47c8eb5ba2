package handler

import (
	"context"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
	"github.com/Eursukkul/restaurant-reservation/internal/service"
)

// --- Mock ReservationService ---

type mockReservationService struct {
	createFn func(ctx context.Context, in service.CreateReservationInput) (*models.Reservation, error)
	updateFn func(ctx context.Context, id uint, upd service.ReservationUpdate) (*models.Reservation, error)
	deleteFn func(ctx context.Context, id uint) error
	getFn    func(ctx context.Context, id uint) (*models.Reservation, error)
	listFn   func(ctx context.Context, date string) ([]models.Reservation, error)
}

func (m *mockReservationService) CreateReservation(ctx context.Context, in service.CreateReservationInput) (*models.Reservation, error) {
	return m.createFn(ctx, in)
}
func (m *mockReservationService) UpdateReservation(ctx context.Context, id uint, upd service.ReservationUpdate) (*models.Reservation, error) {
	return m.updateFn(ctx, id, upd)
}
func (m *mockReservationService) DeleteReservation(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockReservationService) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	return m.getFn(ctx, id)
}
func (m *mockReservationService) ListReservations(ctx context.Context, date string) ([]models.Reservation, error) {
	return m.listFn(ctx, date)
}

// --- Mock TableService ---

type mockTableService struct {
	listFn      func(ctx context.Context) ([]models.Table, error)
	getFn       func(ctx context.Context, id uint) (*models.Table, error)
	availableFn func(ctx context.Context, q service.AvailabilityQuery) ([]models.Table, error)
}

func (m *mockTableService) ListTables(ctx context.Context) ([]models.Table, error) {
	return m.listFn(ctx)
}
func (m *mockTableService) GetTable(ctx context.Context, id uint) (*models.Table, error) {
	return m.getFn(ctx, id)
}
func (m *mockTableService) FindAvailable(ctx context.Context, q service.AvailabilityQuery) ([]models.Table, error) {
	return m.availableFn(ctx, q)
}

func sampleTable() *models.Table {
	return &models.Table{ID: 5, TableNumber: "5", Capacity: 4, Location: "Window"}
}

func sampleReservation() *models.Reservation {
	return &models.Reservation{
		ID:             1,
		CustomerName:   "Joshua",
		CustomerPhone:  "+1234567891",
		NumberOfGuests: 4,
		Date:           "2025-11-09",
		TimeSlot:       "18:00",
		Duration:       120,
		Status:         models.StatusBooked,
		TableID:        5,
		Table:          sampleTable(),
	}
}
