package service

import (
	"context"
	"testing"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableNumbers(tables []models.Table) []string {
	out := make([]string, len(tables))
	for i, t := range tables {
		out[i] = t.TableNumber
	}
	return out
}

func TestListTables_OrderedByNumber(t *testing.T) {
	f := newFixture(t,
		models.Table{TableNumber: "10", Capacity: 4},
		models.Table{TableNumber: "2", Capacity: 2},
		models.Table{TableNumber: "1", Capacity: 6},
	)

	tables, err := f.tables.ListTables(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "10"}, tableNumbers(tables))
}

func TestGetTable_WithReservations(t *testing.T) {
	f := newFixture(t, defaultTables()...)
	f.mustBook(t, bookingFor(f.table("5"), 2, "20:00", 120))
	f.mustBook(t, bookingFor(f.table("5"), 2, "12:00", 60))
	f.mustBook(t, bookingFor(f.table("7"), 2, "12:00", 60))

	table, err := f.tables.GetTable(context.Background(), f.table("5").ID)

	require.NoError(t, err)
	require.Len(t, table.Reservations, 2)
	assert.Equal(t, "12:00", table.Reservations[0].TimeSlot)
	assert.Nil(t, table.Reservations[0].Table)
}

func TestGetTable_NotFound(t *testing.T) {
	f := newFixture(t, defaultTables()...)

	_, err := f.tables.GetTable(context.Background(), 404)

	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestFindAvailable_TightestFitFirst(t *testing.T) {
	f := newFixture(t, defaultTables()...)

	tables, err := f.tables.FindAvailable(context.Background(), AvailabilityQuery{
		Date: testDate, TimeSlot: "18:00", Guests: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "5", "7", "11"}, tableNumbers(tables))
}

func TestFindAvailable_ExcludesOverlappingTables(t *testing.T) {
	f := newFixture(t, defaultTables()...)
	f.mustBook(t, bookingFor(f.table("5"), 4, "18:00", 120))
	f.mustBook(t, bookingFor(f.table("7"), 4, "20:00", 120))
	cancelled := f.mustBook(t, bookingFor(f.table("11"), 4, "19:00", 120))
	_, err := f.svc.UpdateReservation(context.Background(), cancelled.ID, ReservationUpdate{Status: Some(models.StatusCancelled)})
	require.NoError(t, err)

	tables, err := f.tables.FindAvailable(context.Background(), AvailabilityQuery{
		Date: testDate, TimeSlot: "19:00", Guests: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"11"}, tableNumbers(tables))

	// Table 7's booking starts exactly when a 19:00 60-minute window ends.
	tables, err = f.tables.FindAvailable(context.Background(), AvailabilityQuery{
		Date: testDate, TimeSlot: "19:00", Duration: 60, Guests: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "11"}, tableNumbers(tables))
}

// Scenario 5.
func TestFindAvailable_NoTableLargeEnough(t *testing.T) {
	f := newFixture(t,
		models.Table{TableNumber: "1", Capacity: 2},
		models.Table{TableNumber: "5", Capacity: 4},
	)

	tables, err := f.tables.FindAvailable(context.Background(), AvailabilityQuery{
		Date: testDate, TimeSlot: "18:00", Guests: 6,
	})

	require.NoError(t, err)
	assert.NotNil(t, tables)
	assert.Empty(t, tables)
}

func TestFindAvailable_InvalidInput(t *testing.T) {
	f := newFixture(t, defaultTables()...)
	ctx := context.Background()

	_, err := f.tables.FindAvailable(ctx, AvailabilityQuery{Date: testDate, TimeSlot: "18:00"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.tables.FindAvailable(ctx, AvailabilityQuery{Date: testDate, TimeSlot: "18:00", Guests: -1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.tables.FindAvailable(ctx, AvailabilityQuery{Date: testDate, TimeSlot: "18:00", Guests: 2, Duration: -30})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.tables.FindAvailable(ctx, AvailabilityQuery{Date: "11/09/2025", TimeSlot: "18:00", Guests: 2})
	assert.ErrorIs(t, err, ErrValidation)
}

// Whatever the resolver lists can be booked when nothing intervenes.
func TestFindAvailable_ConsistentWithBooking(t *testing.T) {
	f := newFixture(t, defaultTables()...)
	ctx := context.Background()
	f.mustBook(t, bookingFor(f.table("5"), 2, "17:30", 90))
	f.mustBook(t, bookingFor(f.table("1"), 2, "19:30", 60))

	for _, slot := range []string{"16:00", "17:00", "18:00", "19:00", "20:00"} {
		available, err := f.tables.FindAvailable(ctx, AvailabilityQuery{Date: testDate, TimeSlot: slot, Duration: 60, Guests: 2})
		require.NoError(t, err)

		for _, table := range available {
			table := table
			r, err := f.svc.CreateReservation(ctx, bookingFor(&table, 2, slot, 60))
			require.NoError(t, err, "table %s at %s", table.TableNumber, slot)
			require.NoError(t, f.svc.DeleteReservation(ctx, r.ID))
		}
	}
}
