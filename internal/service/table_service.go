package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
	"github.com/Eursukkul/restaurant-reservation/internal/repository"
)

type TableService interface {
	ListTables(ctx context.Context) ([]models.Table, error)
	// GetTable returns the table with all of its reservations.
	GetTable(ctx context.Context, id uint) (*models.Table, error)
	// FindAvailable lists tables that seat the party and are free for the
	// whole requested window, tightest fit first. The answer is advisory:
	// ReservationService re-checks everything when it commits.
	FindAvailable(ctx context.Context, q AvailabilityQuery) ([]models.Table, error)
}

type tableService struct {
	store repository.Store
}

func NewTableService(store repository.Store) TableService {
	return &tableService{store: store}
}

func (s *tableService) ListTables(ctx context.Context) ([]models.Table, error) {
	return s.store.Tables().FindAll(ctx)
}

func (s *tableService) GetTable(ctx context.Context, id uint) (*models.Table, error) {
	table, err := s.store.Tables().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("find table %d: %w", id, err)
	}

	reservations, err := s.store.Reservations().Find(ctx, repository.ReservationFilter{TableIDs: []uint{id}})
	if err != nil {
		return nil, fmt.Errorf("load reservations for table %d: %w", id, err)
	}
	for i := range reservations {
		reservations[i].Table = nil
	}
	table.Reservations = reservations
	return table, nil
}

func (s *tableService) FindAvailable(ctx context.Context, q AvailabilityQuery) ([]models.Table, error) {
	window, err := q.validate()
	if err != nil {
		return nil, err
	}

	candidates, err := s.store.Tables().FindByMinCapacity(ctx, q.Guests)
	if err != nil {
		return nil, fmt.Errorf("find tables for %d guests: %w", q.Guests, err)
	}
	available := make([]models.Table, 0, len(candidates))
	if len(candidates) == 0 {
		return available, nil
	}

	ids := make([]uint, len(candidates))
	for i, t := range candidates {
		ids[i] = t.ID
	}
	dates, err := models.AdjacentDates(q.Date)
	if err != nil {
		return nil, &ValidationError{Problems: []string{err.Error()}}
	}
	booked, err := s.store.Reservations().Find(ctx, repository.ReservationFilter{
		Dates:      dates,
		TableIDs:   ids,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	byTable := make(map[uint][]models.Reservation, len(candidates))
	for _, r := range booked {
		byTable[r.TableID] = append(byTable[r.TableID], r)
	}

	for _, t := range candidates {
		busy, err := overlapsAny(byTable[t.ID], window, 0)
		if err != nil {
			return nil, err
		}
		if !busy {
			available = append(available, t)
		}
	}
	models.SortByFit(available)
	return available, nil
}
