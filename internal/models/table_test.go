package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func numbers(tables []Table) []string {
	out := make([]string, len(tables))
	for i, t := range tables {
		out[i] = t.TableNumber
	}
	return out
}

func TestSortByNumber_Numeric(t *testing.T) {
	tables := []Table{{TableNumber: "10"}, {TableNumber: "2"}, {TableNumber: "1"}, {TableNumber: "Bar"}}

	SortByNumber(tables)

	assert.Equal(t, []string{"1", "2", "10", "Bar"}, numbers(tables))
}

func TestSortByFit(t *testing.T) {
	tables := []Table{
		{TableNumber: "11", Capacity: 6},
		{TableNumber: "5", Capacity: 4},
		{TableNumber: "1", Capacity: 2},
		{TableNumber: "3", Capacity: 2},
	}

	SortByFit(tables)

	assert.Equal(t, []string{"1", "3", "5", "11"}, numbers(tables))
}

func TestReservationStatus(t *testing.T) {
	assert.True(t, StatusBooked.Valid())
	assert.False(t, ReservationStatus("Pending").Valid())
	assert.False(t, StatusBooked.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusCompleted.Terminal())

	r := Reservation{Status: StatusCompleted}
	assert.True(t, r.Occupies())
	r.Status = StatusCancelled
	assert.False(t, r.Occupies())
}
