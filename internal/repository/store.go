package repository

import (
	"context"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned by every store when a record does not exist.
	ErrNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateSlot is returned when a write would put two active
	// reservations on the same table, date and start time.
	ErrDuplicateSlot = gorm.ErrDuplicatedKey
)

// Store groups the repositories and gives transactional access to them.
//
// Inside Transaction, TableRepository.FindByIDForUpdate holds an exclusive
// lock on the table until fn returns; reservation reads issued afterwards see
// every commit made by earlier holders of that lock.
type Store interface {
	Tables() TableRepository
	Reservations() ReservationRepository
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Tables() TableRepository {
	return NewTableRepository(s.db)
}

func (s *gormStore) Reservations() ReservationRepository {
	return NewReservationRepository(s.db)
}

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
