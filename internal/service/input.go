package service

import (
	"strings"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
)

// Optional marks a field of a partial update as supplied or not.
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

type CreateReservationInput struct {
	CustomerName    string
	CustomerPhone   string
	NumberOfGuests  int
	Date            string
	TimeSlot        string
	Duration        int // 0 selects models.DefaultDuration
	SpecialRequests *string
	TableID         uint
}

func (in *CreateReservationInput) validate() (models.Window, error) {
	v := &ValidationError{}
	if strings.TrimSpace(in.CustomerName) == "" {
		v.missing("customerName")
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		v.missing("customerPhone")
	}
	if in.NumberOfGuests == 0 {
		v.missing("numberOfGuests")
	}
	if in.Date == "" {
		v.missing("date")
	}
	if in.TimeSlot == "" {
		v.missing("timeSlot")
	}
	if in.TableID == 0 {
		v.missing("tableId")
	}
	if in.Duration == 0 {
		in.Duration = models.DefaultDuration
	}
	if in.NumberOfGuests < 0 {
		v.problem("numberOfGuests must be a positive integer")
	}
	checkSlot(v, in.Date, in.TimeSlot, in.Duration)
	if err := v.orNil(); err != nil {
		return models.Window{}, err
	}
	return models.NewWindow(in.Date, in.TimeSlot, in.Duration)
}

// ReservationUpdate holds the fields of a partial update. Unset fields keep
// their stored value. SpecialRequests set to nil clears the note.
type ReservationUpdate struct {
	CustomerName    Optional[string]
	CustomerPhone   Optional[string]
	NumberOfGuests  Optional[int]
	Date            Optional[string]
	TimeSlot        Optional[string]
	Duration        Optional[int]
	SpecialRequests Optional[*string]
	TableID         Optional[uint]
	Status          Optional[models.ReservationStatus]
}

func (u *ReservationUpdate) validate() error {
	v := &ValidationError{}
	if u.CustomerName.Set && strings.TrimSpace(u.CustomerName.Value) == "" {
		v.problem("customerName cannot be empty")
	}
	if u.CustomerPhone.Set && strings.TrimSpace(u.CustomerPhone.Value) == "" {
		v.problem("customerPhone cannot be empty")
	}
	if u.NumberOfGuests.Set && u.NumberOfGuests.Value <= 0 {
		v.problem("numberOfGuests must be a positive integer")
	}
	if u.Date.Set {
		if _, err := models.ParseDate(u.Date.Value); err != nil {
			v.problem(err.Error())
		}
	}
	if u.TimeSlot.Set {
		if _, err := models.ParseTimeSlot(u.TimeSlot.Value); err != nil {
			v.problem(err.Error())
		}
	}
	if u.Duration.Set && (u.Duration.Value <= 0 || u.Duration.Value > models.MaxDuration) {
		v.problem(models.ErrInvalidDuration.Error())
	}
	if u.TableID.Set && u.TableID.Value == 0 {
		v.problem("tableId must be a positive integer")
	}
	if u.Status.Set && !u.Status.Value.Valid() {
		v.problem("status must be one of Booked, Cancelled, Completed")
	}
	return v.orNil()
}

func (u *ReservationUpdate) applyTo(r models.Reservation) models.Reservation {
	if u.CustomerName.Set {
		r.CustomerName = u.CustomerName.Value
	}
	if u.CustomerPhone.Set {
		r.CustomerPhone = u.CustomerPhone.Value
	}
	if u.NumberOfGuests.Set {
		r.NumberOfGuests = u.NumberOfGuests.Value
	}
	if u.Date.Set {
		r.Date = u.Date.Value
	}
	if u.TimeSlot.Set {
		r.TimeSlot = u.TimeSlot.Value
	}
	if u.Duration.Set {
		r.Duration = u.Duration.Value
	}
	if u.SpecialRequests.Set {
		r.SpecialRequests = u.SpecialRequests.Value
	}
	if u.TableID.Set {
		r.TableID = u.TableID.Value
	}
	if u.Status.Set {
		r.Status = u.Status.Value
	}
	r.Table = nil
	return r
}

// AvailabilityQuery asks for tables that can seat Guests for the window
// starting at TimeSlot on Date.
type AvailabilityQuery struct {
	Date     string
	TimeSlot string
	Duration int // 0 selects models.DefaultDuration
	Guests   int
}

func (q *AvailabilityQuery) validate() (models.Window, error) {
	v := &ValidationError{}
	if q.Date == "" {
		v.missing("date")
	}
	if q.TimeSlot == "" {
		v.missing("timeSlot")
	}
	if q.Guests == 0 {
		v.missing("guests")
	}
	if q.Guests < 0 {
		v.problem("guests must be a positive integer")
	}
	if q.Duration == 0 {
		q.Duration = models.DefaultDuration
	}
	checkSlot(v, q.Date, q.TimeSlot, q.Duration)
	if err := v.orNil(); err != nil {
		return models.Window{}, err
	}
	return models.NewWindow(q.Date, q.TimeSlot, q.Duration)
}

func checkSlot(v *ValidationError, date, timeSlot string, duration int) {
	if date != "" {
		if _, err := models.ParseDate(date); err != nil {
			v.problem(err.Error())
		}
	}
	if timeSlot != "" {
		if _, err := models.ParseTimeSlot(timeSlot); err != nil {
			v.problem(err.Error())
		}
	}
	if duration <= 0 || duration > models.MaxDuration {
		v.problem(models.ErrInvalidDuration.Error())
	}
}
