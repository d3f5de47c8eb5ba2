package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
)

// MemoryStore keeps tables and reservations in process memory. Transactions
// serialize on per-table locks taken by FindByIDForUpdate and stage their
// reservation writes until commit, so a failed transaction leaves no trace.
type MemoryStore struct {
	mu           sync.RWMutex
	tables       map[uint]models.Table
	reservations map[uint]models.Reservation
	nextTableID  uint
	nextResID    uint

	locksMu sync.Mutex
	locks   map[uint]chan struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables:       make(map[uint]models.Table),
		reservations: make(map[uint]models.Reservation),
		locks:        make(map[uint]chan struct{}),
	}
}

func (s *MemoryStore) Tables() TableRepository {
	return &memoryTables{s: s}
}

func (s *MemoryStore) Reservations() ReservationRepository {
	return &memoryReservations{s: s}
}

func (s *MemoryStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	tx := &memoryTx{s: s, held: make(map[uint]chan struct{})}
	defer tx.release()

	if err := fn(tx); err != nil {
		return err
	}
	return s.apply(tx.ops...)
}

func (s *MemoryStore) tableLock(id uint) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = make(chan struct{}, 1)
		s.locks[id] = l
	}
	return l
}

type reservationOp func(reservations map[uint]models.Reservation) error

// apply runs ops against a copy of the reservation set and swaps it in only
// when every op succeeds.
func (s *MemoryStore) apply(ops ...reservationOp) error {
	if len(ops) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[uint]models.Reservation, len(s.reservations)+1)
	for id, r := range s.reservations {
		next[id] = r
	}
	for _, op := range ops {
		if err := op(next); err != nil {
			return err
		}
	}
	s.reservations = next
	return nil
}

func (s *MemoryStore) withTable(r models.Reservation) models.Reservation {
	if t, ok := s.tables[r.TableID]; ok {
		r.Table = &t
	}
	return r
}

type memoryTx struct {
	s    *MemoryStore
	held map[uint]chan struct{}
	ops  []reservationOp
}

func (tx *memoryTx) Tables() TableRepository {
	return &memoryTables{s: tx.s, tx: tx}
}

func (tx *memoryTx) Reservations() ReservationRepository {
	return &memoryReservations{s: tx.s, tx: tx}
}

func (tx *memoryTx) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return fn(tx)
}

func (tx *memoryTx) lock(ctx context.Context, id uint) error {
	if _, ok := tx.held[id]; ok {
		return nil
	}
	l := tx.s.tableLock(id)
	select {
	case l <- struct{}{}:
		tx.held[id] = l
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (tx *memoryTx) release() {
	for id, l := range tx.held {
		<-l
		delete(tx.held, id)
	}
}

type memoryTables struct {
	s  *MemoryStore
	tx *memoryTx
}

func (r *memoryTables) FindAll(ctx context.Context) ([]models.Table, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tables := make([]models.Table, 0, len(r.s.tables))
	for _, t := range r.s.tables {
		tables = append(tables, t)
	}
	models.SortByNumber(tables)
	return tables, nil
}

func (r *memoryTables) FindByID(ctx context.Context, id uint) (*models.Table, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tables[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (r *memoryTables) FindByIDForUpdate(ctx context.Context, id uint) (*models.Table, error) {
	if r.tx != nil {
		if err := r.tx.lock(ctx, id); err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func (r *memoryTables) FindByMinCapacity(ctx context.Context, guests int) ([]models.Table, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var tables []models.Table
	for _, t := range r.s.tables {
		if t.Capacity >= guests {
			tables = append(tables, t)
		}
	}
	models.SortByFit(tables)
	return tables, nil
}

// CreateIfAbsent writes through immediately, even inside a transaction.
func (r *memoryTables) CreateIfAbsent(ctx context.Context, table *models.Table) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.tables {
		if t.TableNumber == table.TableNumber {
			return false, nil
		}
	}
	r.s.nextTableID++
	now := time.Now()
	table.ID = r.s.nextTableID
	table.CreatedAt = now
	table.UpdatedAt = now

	stored := *table
	stored.Reservations = nil
	r.s.tables[stored.ID] = stored
	return true, nil
}

type memoryReservations struct {
	s  *MemoryStore
	tx *memoryTx
}

func (r *memoryReservations) stage(op reservationOp) error {
	if r.tx == nil {
		return r.s.apply(op)
	}
	r.tx.ops = append(r.tx.ops, op)
	return nil
}

func (r *memoryReservations) Create(ctx context.Context, reservation *models.Reservation) error {
	r.s.mu.Lock()
	r.s.nextResID++
	id := r.s.nextResID
	r.s.mu.Unlock()

	now := time.Now()
	reservation.ID = id
	reservation.CreatedAt = now
	reservation.UpdatedAt = now

	stored := *reservation
	stored.Table = nil
	return r.stage(func(set map[uint]models.Reservation) error {
		if err := checkUniqueSlot(set, stored); err != nil {
			return err
		}
		set[stored.ID] = stored
		return nil
	})
}

func (r *memoryReservations) Update(ctx context.Context, reservation *models.Reservation) error {
	reservation.UpdatedAt = time.Now()

	stored := *reservation
	stored.Table = nil
	return r.stage(func(set map[uint]models.Reservation) error {
		prev, ok := set[stored.ID]
		if !ok {
			return ErrNotFound
		}
		if err := checkUniqueSlot(set, stored); err != nil {
			return err
		}
		stored.CreatedAt = prev.CreatedAt
		set[stored.ID] = stored
		return nil
	})
}

func (r *memoryReservations) Delete(ctx context.Context, id uint) error {
	r.s.mu.RLock()
	_, ok := r.s.reservations[id]
	r.s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	return r.stage(func(set map[uint]models.Reservation) error {
		if _, ok := set[id]; !ok {
			return ErrNotFound
		}
		delete(set, id)
		return nil
	})
}

func (r *memoryReservations) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res, ok := r.s.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	res = r.s.withTable(res)
	return &res, nil
}

func (r *memoryReservations) Find(ctx context.Context, filter ReservationFilter) ([]models.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	dates := make(map[string]bool, len(filter.Dates))
	for _, d := range filter.Dates {
		dates[d] = true
	}
	tableIDs := make(map[uint]bool, len(filter.TableIDs))
	for _, id := range filter.TableIDs {
		tableIDs[id] = true
	}

	reservations := make([]models.Reservation, 0)
	for _, res := range r.s.reservations {
		if len(dates) > 0 && !dates[res.Date] {
			continue
		}
		if len(tableIDs) > 0 && !tableIDs[res.TableID] {
			continue
		}
		if filter.ActiveOnly && !res.Occupies() {
			continue
		}
		reservations = append(reservations, r.s.withTable(res))
	}

	sort.Slice(reservations, func(i, j int) bool {
		a, b := reservations[i], reservations[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.TimeSlot != b.TimeSlot {
			return a.TimeSlot < b.TimeSlot
		}
		return a.ID < b.ID
	})
	return reservations, nil
}

// checkUniqueSlot mirrors the partial unique index on
// (table_id, date, time_slot) for reservations that are not cancelled.
func checkUniqueSlot(set map[uint]models.Reservation, candidate models.Reservation) error {
	if !candidate.Occupies() {
		return nil
	}
	for id, other := range set {
		if id == candidate.ID || !other.Occupies() {
			continue
		}
		if other.TableID == candidate.TableID && other.Date == candidate.Date && other.TimeSlot == candidate.TimeSlot {
			return ErrDuplicateSlot
		}
	}
	return nil
}
