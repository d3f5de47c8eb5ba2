package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
	"github.com/Eursukkul/restaurant-reservation/internal/repository"
	"github.com/stretchr/testify/require"
)

const testDate = "2025-11-09"

// --- Recording publisher ---

type recordingPublisher struct {
	mu       sync.Mutex
	keys     []string
	payloads []any
	err      error
}

func (p *recordingPublisher) Publish(routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	p.payloads = append(p.payloads, payload)
	return p.err
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}

// --- Fixtures ---

type fixture struct {
	store     *repository.MemoryStore
	publisher *recordingPublisher
	svc       ReservationService
	tables    TableService
	byNumber  map[string]*models.Table
}

func newFixture(t *testing.T, tables ...models.Table) *fixture {
	t.Helper()
	store := repository.NewMemoryStore()
	f := &fixture{
		store:     store,
		publisher: &recordingPublisher{},
		byNumber:  make(map[string]*models.Table),
	}
	for i := range tables {
		table := tables[i]
		created, err := store.Tables().CreateIfAbsent(context.Background(), &table)
		require.NoError(t, err)
		require.True(t, created)
		f.byNumber[table.TableNumber] = &table
	}
	f.svc = NewReservationService(store, f.publisher)
	f.tables = NewTableService(store)
	return f
}

func (f *fixture) table(number string) *models.Table {
	return f.byNumber[number]
}

func bookingFor(table *models.Table, guests int, slot string, duration int) CreateReservationInput {
	return CreateReservationInput{
		CustomerName:   "Ragnar",
		CustomerPhone:  "+1234567890",
		NumberOfGuests: guests,
		Date:           testDate,
		TimeSlot:       slot,
		Duration:       duration,
		TableID:        table.ID,
	}
}

func (f *fixture) mustBook(t *testing.T, in CreateReservationInput) *models.Reservation {
	t.Helper()
	r, err := f.svc.CreateReservation(context.Background(), in)
	require.NoError(t, err)
	return r
}

// assertNoOverlaps checks the non-overlap invariant across the whole store.
func assertNoOverlaps(t *testing.T, store repository.Store) {
	t.Helper()
	all, err := store.Reservations().Find(context.Background(), repository.ReservationFilter{ActiveOnly: true})
	require.NoError(t, err)
	for i := range all {
		wi, err := all[i].Window()
		require.NoError(t, err)
		for j := i + 1; j < len(all); j++ {
			if all[i].TableID != all[j].TableID {
				continue
			}
			wj, err := all[j].Window()
			require.NoError(t, err)
			if wi.Overlaps(wj) {
				t.Fatalf("reservations %d and %d overlap on table %d", all[i].ID, all[j].ID, all[i].TableID)
			}
		}
	}
}

func strPtr(s string) *string { return &s }

var errBroker = errors.New("broker unavailable")
