package service

import (
	"context"
	"errors"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
)

// DecisionObserver receives the outcome of every reservation change.
type DecisionObserver interface {
	ObserveDecision(operation, outcome string)
}

const (
	OutcomeAccepted   = "accepted"
	OutcomeInvalid    = "invalid"
	OutcomeNotFound   = "not_found"
	OutcomeCapacity   = "capacity"
	OutcomeConflict   = "conflict"
	OutcomeTransition = "transition"
	OutcomeError      = "error"
)

// Outcome classifies the error returned by a reservation change.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeAccepted
	case errors.Is(err, ErrValidation):
		return OutcomeInvalid
	case errors.Is(err, ErrTableNotFound), errors.Is(err, ErrReservationNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrCapacityExceeded):
		return OutcomeCapacity
	case errors.Is(err, ErrSlotConflict), errors.Is(err, ErrConcurrentUpdate):
		return OutcomeConflict
	case errors.Is(err, ErrInvalidTransition):
		return OutcomeTransition
	default:
		return OutcomeError
	}
}

type instrumentedReservations struct {
	ReservationService
	observer DecisionObserver
}

// WithDecisionObserver reports the outcome of creates, updates and deletes
// to observer. Reads pass straight through.
func WithDecisionObserver(svc ReservationService, observer DecisionObserver) ReservationService {
	if observer == nil {
		return svc
	}
	return &instrumentedReservations{ReservationService: svc, observer: observer}
}

func (s *instrumentedReservations) CreateReservation(ctx context.Context, in CreateReservationInput) (*models.Reservation, error) {
	r, err := s.ReservationService.CreateReservation(ctx, in)
	s.observer.ObserveDecision("create", Outcome(err))
	return r, err
}

func (s *instrumentedReservations) UpdateReservation(ctx context.Context, id uint, upd ReservationUpdate) (*models.Reservation, error) {
	r, err := s.ReservationService.UpdateReservation(ctx, id, upd)
	s.observer.ObserveDecision("update", Outcome(err))
	return r, err
}

func (s *instrumentedReservations) DeleteReservation(ctx context.Context, id uint) error {
	err := s.ReservationService.DeleteReservation(ctx, id)
	s.observer.ObserveDecision("delete", Outcome(err))
	return err
}
