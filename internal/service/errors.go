package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrTableNotFound       = errors.New("table not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrCapacityExceeded    = errors.New("party size exceeds table capacity")
	ErrSlotConflict        = errors.New("this time slot is already booked for this table")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrConcurrentUpdate    = errors.New("reservation was modified concurrently, please retry")
)

// ValidationError lists the missing fields and any malformed values of a request.
type ValidationError struct {
	Missing  []string
	Problems []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(e.Missing, ", "))
	}
	parts = append(parts, e.Problems...)
	if len(parts) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) missing(field string) {
	e.Missing = append(e.Missing, field)
}

func (e *ValidationError) problem(msg string) {
	e.Problems = append(e.Problems, msg)
}

func (e *ValidationError) orNil() error {
	if len(e.Missing) == 0 && len(e.Problems) == 0 {
		return nil
	}
	return e
}

type CapacityError struct {
	TableNumber string
	Capacity    int
	Requested   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Table %s has capacity %d but reservation is for %d guests", e.TableNumber, e.Capacity, e.Requested)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

type TransitionError struct {
	From models.ReservationStatus
	To   models.ReservationStatus
}

func (e *TransitionError) Error() string {
	if e.From == e.To {
		return fmt.Sprintf("a %s reservation can no longer be rescheduled", e.From)
	}
	return fmt.Sprintf("cannot change reservation status from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
