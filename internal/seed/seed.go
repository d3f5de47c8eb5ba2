package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
	"github.com/Eursukkul/restaurant-reservation/internal/repository"
	"github.com/Eursukkul/restaurant-reservation/internal/service"
)

// DefaultTables is the floor plan loaded into an empty database.
func DefaultTables() []models.Table {
	return []models.Table{
		{TableNumber: "1", Capacity: 2, Location: "Window"},
		{TableNumber: "2", Capacity: 2, Location: "Window"},
		{TableNumber: "3", Capacity: 2, Location: "Center"},
		{TableNumber: "4", Capacity: 2, Location: "Center"},

		{TableNumber: "5", Capacity: 4, Location: "Window"},
		{TableNumber: "6", Capacity: 4, Location: "Window"},
		{TableNumber: "7", Capacity: 4, Location: "Center"},
		{TableNumber: "8", Capacity: 4, Location: "Center"},
		{TableNumber: "9", Capacity: 4, Location: "Patio"},
		{TableNumber: "10", Capacity: 4, Location: "Patio"},

		{TableNumber: "11", Capacity: 6, Location: "Center"},
		{TableNumber: "12", Capacity: 6, Location: "Patio"},
	}
}

// SampleReservation is a demo booking. DayOffset is relative to the seed date.
type SampleReservation struct {
	CustomerName    string
	CustomerPhone   string
	NumberOfGuests  int
	DayOffset       int
	TimeSlot        string
	SpecialRequests *string
	TableNumber     string
}

func SampleReservations() []SampleReservation {
	pineapple := "will only eat pizzas with pineapples on them"
	return []SampleReservation{
		{CustomerName: "Ragnar", CustomerPhone: "+1234567890", NumberOfGuests: 2, TimeSlot: "17:00", TableNumber: "1"},
		{CustomerName: "Joshua", CustomerPhone: "+1234567891", NumberOfGuests: 4, TimeSlot: "18:00", TableNumber: "5", SpecialRequests: &pineapple},
		{CustomerName: "Mat", CustomerPhone: "+1234567892", NumberOfGuests: 6, TimeSlot: "19:00", TableNumber: "11"},
		{CustomerName: "Claire", CustomerPhone: "+1234567893", NumberOfGuests: 4, TimeSlot: "19:30", TableNumber: "7"},
		{CustomerName: "Kelechi", CustomerPhone: "+1234567894", NumberOfGuests: 2, DayOffset: 1, TimeSlot: "18:00", TableNumber: "2"},
		{CustomerName: "Yangqing", CustomerPhone: "+1234567895", NumberOfGuests: 4, DayOffset: 1, TimeSlot: "20:00", TableNumber: "8"},
	}
}

type Seeder struct {
	store        repository.Store
	reservations service.ReservationService
}

func NewSeeder(store repository.Store, reservations service.ReservationService) *Seeder {
	return &Seeder{store: store, reservations: reservations}
}

// Tables inserts every default table whose number is not taken yet and
// returns how many were created.
func (s *Seeder) Tables(ctx context.Context) (int, error) {
	created := 0
	for _, table := range DefaultTables() {
		ok, err := s.store.Tables().CreateIfAbsent(ctx, &table)
		if err != nil {
			return created, fmt.Errorf("seed table %s: %w", table.TableNumber, err)
		}
		if ok {
			created++
			log.Printf("[Seed] created table %s (%d seats, %s)", table.TableNumber, table.Capacity, table.Location)
		}
	}
	return created, nil
}

// Reservations books the sample reservations relative to today. Bookings
// that collide with an existing one are skipped, so reruns are harmless.
func (s *Seeder) Reservations(ctx context.Context, today time.Time) (int, error) {
	tables, err := s.store.Tables().FindAll(ctx)
	if err != nil {
		return 0, err
	}
	byNumber := make(map[string]uint, len(tables))
	for _, t := range tables {
		byNumber[t.TableNumber] = t.ID
	}

	created := 0
	for _, sample := range SampleReservations() {
		tableID, ok := byNumber[sample.TableNumber]
		if !ok {
			log.Printf("[Seed] table %s missing, skipping reservation for %s", sample.TableNumber, sample.CustomerName)
			continue
		}

		date := today.AddDate(0, 0, sample.DayOffset).Format(models.DateLayout)
		_, err := s.reservations.CreateReservation(ctx, service.CreateReservationInput{
			CustomerName:    sample.CustomerName,
			CustomerPhone:   sample.CustomerPhone,
			NumberOfGuests:  sample.NumberOfGuests,
			Date:            date,
			TimeSlot:        sample.TimeSlot,
			SpecialRequests: sample.SpecialRequests,
			TableID:         tableID,
		})
		if errors.Is(err, service.ErrSlotConflict) {
			log.Printf("[Seed] %s at %s %s already booked, skipping", sample.CustomerName, date, sample.TimeSlot)
			continue
		}
		if err != nil {
			return created, fmt.Errorf("seed reservation for %s: %w", sample.CustomerName, err)
		}
		created++
		log.Printf("[Seed] created reservation for %s on %s at %s", sample.CustomerName, date, sample.TimeSlot)
	}
	return created, nil
}
