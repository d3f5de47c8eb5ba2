package repository

import (
	"context"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
	"gorm.io/gorm"
)

// ReservationFilter narrows reservation queries. Zero values match everything.
type ReservationFilter struct {
	Dates    []string
	TableIDs []uint
	// ActiveOnly drops cancelled reservations.
	ActiveOnly bool
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	Update(ctx context.Context, reservation *models.Reservation) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Reservation, error)
	// Find returns matching reservations with their table, ordered by date,
	// time slot and id.
	Find(ctx context.Context, filter ReservationFilter) ([]models.Reservation, error)
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Omit("Table").Create(reservation).Error
}

func (r *reservationRepository) Update(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Omit("Table").Save(reservation).Error
}

func (r *reservationRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).Preload("Table").First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) Find(ctx context.Context, filter ReservationFilter) ([]models.Reservation, error) {
	var reservations []models.Reservation
	q := r.db.WithContext(ctx).Preload("Table")
	if len(filter.Dates) > 0 {
		q = q.Where("date IN ?", filter.Dates)
	}
	if len(filter.TableIDs) > 0 {
		q = q.Where("table_id IN ?", filter.TableIDs)
	}
	if filter.ActiveOnly {
		q = q.Where("status <> ?", models.StatusCancelled)
	}
	if err := q.Order("date ASC, time_slot ASC, id ASC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}
