package service

import (
	"errors"
	"testing"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidationError_Message(t *testing.T) {
	v := &ValidationError{}
	assert.NoError(t, v.orNil())

	v.missing("customerName")
	v.missing("tableId")
	v.problem("duration must be between 1 and 1440 minutes")

	err := v.orNil()
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Missing required fields: customerName, tableId; duration must be between 1 and 1440 minutes", err.Error())
}

func TestCapacityError(t *testing.T) {
	var err error = &CapacityError{TableNumber: "3", Capacity: 2, Requested: 3}

	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, "Table 3 has capacity 2 but reservation is for 3 guests", err.Error())

	var ce *CapacityError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, 3, ce.Requested)
}

func TestTransitionError(t *testing.T) {
	err := &TransitionError{From: models.StatusCancelled, To: models.StatusBooked}
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Contains(t, err.Error(), "from Cancelled to Booked")
}
