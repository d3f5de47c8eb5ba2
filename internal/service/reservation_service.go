package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
	"github.com/Eursukkul/restaurant-reservation/internal/repository"
)

const (
	RoutingKeyReservationCreated = "reservation.created"
	RoutingKeyReservationUpdated = "reservation.updated"
	RoutingKeyReservationDeleted = "reservation.deleted"
)

// EventPublisher delivers reservation events after a commit.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

type ReservationDeletedEvent struct {
	ID       uint   `json:"id"`
	TableID  uint   `json:"tableId"`
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
}

// ReservationService is the only component allowed to change reservation
// state. Every write runs in a store transaction that holds the locks of the
// tables involved, so capacity and overlap checks and the commit are atomic
// with respect to other writers on those tables.
type ReservationService interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (*models.Reservation, error)
	UpdateReservation(ctx context.Context, id uint, upd ReservationUpdate) (*models.Reservation, error)
	DeleteReservation(ctx context.Context, id uint) error
	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)
	ListReservations(ctx context.Context, date string) ([]models.Reservation, error)
}

type reservationService struct {
	store     repository.Store
	publisher EventPublisher
}

func NewReservationService(store repository.Store, publisher EventPublisher) ReservationService {
	return &reservationService{store: store, publisher: publisher}
}

func (s *reservationService) CreateReservation(ctx context.Context, in CreateReservationInput) (*models.Reservation, error) {
	window, err := in.validate()
	if err != nil {
		return nil, err
	}

	var result *models.Reservation
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		locked, err := lockTables(ctx, tx, in.TableID)
		if err != nil {
			return err
		}
		table := locked[in.TableID]

		if in.NumberOfGuests > table.Capacity {
			return &CapacityError{TableNumber: table.TableNumber, Capacity: table.Capacity, Requested: in.NumberOfGuests}
		}
		if err := checkOverlap(ctx, tx, table.ID, in.Date, window, 0); err != nil {
			return err
		}

		reservation := &models.Reservation{
			CustomerName:    in.CustomerName,
			CustomerPhone:   in.CustomerPhone,
			NumberOfGuests:  in.NumberOfGuests,
			Date:            in.Date,
			TimeSlot:        in.TimeSlot,
			Duration:        in.Duration,
			SpecialRequests: in.SpecialRequests,
			Status:          models.StatusBooked,
			TableID:         table.ID,
		}
		if err := tx.Reservations().Create(ctx, reservation); err != nil {
			if errors.Is(err, repository.ErrDuplicateSlot) {
				return ErrSlotConflict
			}
			return fmt.Errorf("create reservation: %w", err)
		}
		reservation.Table = table
		result = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(RoutingKeyReservationCreated, result)
	return result, nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, id uint, upd ReservationUpdate) (*models.Reservation, error) {
	if err := upd.validate(); err != nil {
		return nil, err
	}

	var (
		result  *models.Reservation
		changed bool
	)
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		current, err := findReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		tableIDs := []uint{current.TableID}
		if upd.TableID.Set {
			tableIDs = append(tableIDs, upd.TableID.Value)
		}
		locked, err := lockTables(ctx, tx, tableIDs...)
		if err != nil {
			return err
		}

		// Re-read under the table lock; the first read only told us which table to lock.
		current, err = findReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		if _, ok := locked[current.TableID]; !ok {
			return ErrConcurrentUpdate
		}

		next := upd.applyTo(*current)
		if err := checkTransition(current, &next); err != nil {
			return err
		}
		if sameReservation(current, &next) {
			result = current
			return nil
		}

		table := locked[next.TableID]
		// Completed still holds its table, so only a cancellation skips the checks.
		if next.Occupies() && slotChanged(current, &next) {
			if next.NumberOfGuests > table.Capacity {
				return &CapacityError{TableNumber: table.TableNumber, Capacity: table.Capacity, Requested: next.NumberOfGuests}
			}
			window, err := next.Window()
			if err != nil {
				return &ValidationError{Problems: []string{err.Error()}}
			}
			if err := checkOverlap(ctx, tx, table.ID, next.Date, window, next.ID); err != nil {
				return err
			}
		}

		if err := tx.Reservations().Update(ctx, &next); err != nil {
			if errors.Is(err, repository.ErrDuplicateSlot) {
				return ErrSlotConflict
			}
			return fmt.Errorf("update reservation %d: %w", id, err)
		}
		next.Table = table
		result = &next
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.publish(RoutingKeyReservationUpdated, result)
	}
	return result, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, id uint) error {
	var deleted *models.Reservation
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		current, err := findReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		if _, err := lockTables(ctx, tx, current.TableID); err != nil {
			return err
		}

		if err := tx.Reservations().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("delete reservation %d: %w", id, err)
		}
		deleted = current
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(RoutingKeyReservationDeleted, ReservationDeletedEvent{
		ID:       deleted.ID,
		TableID:  deleted.TableID,
		Date:     deleted.Date,
		TimeSlot: deleted.TimeSlot,
	})
	return nil
}

func (s *reservationService) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	return findReservation(ctx, s.store, id)
}

func (s *reservationService) ListReservations(ctx context.Context, date string) ([]models.Reservation, error) {
	var filter repository.ReservationFilter
	if date != "" {
		if _, err := models.ParseDate(date); err != nil {
			return nil, &ValidationError{Problems: []string{err.Error()}}
		}
		filter.Dates = []string{date}
	}
	return s.store.Reservations().Find(ctx, filter)
}

func (s *reservationService) publish(routingKey string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(routingKey, payload); err != nil {
		log.Printf("[ReservationService] failed to publish %s: %v", routingKey, err)
	}
}

func findReservation(ctx context.Context, store repository.Store, id uint) (*models.Reservation, error) {
	reservation, err := store.Reservations().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation %d: %w", id, err)
	}
	return reservation, nil
}

// lockTables locks the given tables in ascending id order so that two
// transactions touching the same pair of tables cannot deadlock.
func lockTables(ctx context.Context, tx repository.Store, ids ...uint) (map[uint]*models.Table, error) {
	sorted := append([]uint(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	locked := make(map[uint]*models.Table, len(sorted))
	for _, id := range sorted {
		if _, ok := locked[id]; ok {
			continue
		}
		table, err := tx.Tables().FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrTableNotFound
			}
			return nil, fmt.Errorf("lock table %d: %w", id, err)
		}
		locked[id] = table
	}
	return locked, nil
}

// checkOverlap rejects window if it overlaps any reservation still holding
// the table, ignoring the reservation being rescheduled.
func checkOverlap(ctx context.Context, tx repository.Store, tableID uint, date string, window models.Window, exclude uint) error {
	dates, err := models.AdjacentDates(date)
	if err != nil {
		return &ValidationError{Problems: []string{err.Error()}}
	}
	existing, err := tx.Reservations().Find(ctx, repository.ReservationFilter{
		Dates:      dates,
		TableIDs:   []uint{tableID},
		ActiveOnly: true,
	})
	if err != nil {
		return fmt.Errorf("load reservations for table %d: %w", tableID, err)
	}

	conflict, err := overlapsAny(existing, window, exclude)
	if err != nil {
		return err
	}
	if conflict {
		return ErrSlotConflict
	}
	return nil
}

func overlapsAny(existing []models.Reservation, window models.Window, exclude uint) (bool, error) {
	for i := range existing {
		r := &existing[i]
		if r.ID == exclude || !r.Occupies() {
			continue
		}
		w, err := r.Window()
		if err != nil {
			return false, fmt.Errorf("reservation %d has an invalid window: %w", r.ID, err)
		}
		if w.Overlaps(window) {
			return true, nil
		}
	}
	return false, nil
}

// checkTransition allows Booked to move anywhere and keeps terminal
// reservations terminal. Re-applying a terminal status is a no-op.
func checkTransition(current, next *models.Reservation) error {
	if !current.Status.Terminal() {
		return nil
	}
	if next.Status != current.Status {
		return &TransitionError{From: current.Status, To: next.Status}
	}
	if slotChanged(current, next) {
		return &TransitionError{From: current.Status, To: next.Status}
	}
	return nil
}

func slotChanged(a, b *models.Reservation) bool {
	return a.TableID != b.TableID ||
		a.Date != b.Date ||
		a.TimeSlot != b.TimeSlot ||
		a.Duration != b.Duration ||
		a.NumberOfGuests != b.NumberOfGuests
}

func sameReservation(a, b *models.Reservation) bool {
	return !slotChanged(a, b) &&
		a.CustomerName == b.CustomerName &&
		a.CustomerPhone == b.CustomerPhone &&
		a.Status == b.Status &&
		sameText(a.SpecialRequests, b.SpecialRequests)
}

func sameText(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
