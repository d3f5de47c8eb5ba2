package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	TimeSlotLayout = "15:04"

	DefaultDuration = 120
	MaxDuration     = 24 * 60
)

var (
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTimeSlot = errors.New("timeSlot must be formatted as HH:MM")
	ErrInvalidDuration = fmt.Errorf("duration must be between 1 and %d minutes", MaxDuration)
)

// Window is a half-open occupancy interval [Start, End) measured in minutes
// since 1970-01-01, so windows that run past midnight compare correctly with
// bookings on the following date.
type Window struct {
	Start int64
	End   int64
}

func NewWindow(date, timeSlot string, duration int) (Window, error) {
	day, err := ParseDate(date)
	if err != nil {
		return Window{}, err
	}
	minute, err := ParseTimeSlot(timeSlot)
	if err != nil {
		return Window{}, err
	}
	if duration <= 0 || duration > MaxDuration {
		return Window{}, ErrInvalidDuration
	}

	start := day.Unix()/60 + int64(minute)
	return Window{Start: start, End: start + int64(duration)}, nil
}

// Overlaps uses closed-open semantics: windows that merely touch do not overlap.
func (w Window) Overlaps(o Window) bool {
	return w.Start < o.End && o.Start < w.End
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseTimeSlot returns the minute of the day for an HH:MM label.
func ParseTimeSlot(s string) (int, error) {
	t, err := time.Parse(TimeSlotLayout, s)
	if err != nil || t.Format(TimeSlotLayout) != s {
		return 0, ErrInvalidTimeSlot
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AdjacentDates returns the day before, the day itself and the day after.
// Only those dates can hold a window that overlaps one starting on date.
func AdjacentDates(date string) ([]string, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	return []string{
		day.AddDate(0, 0, -1).Format(DateLayout),
		date,
		day.AddDate(0, 0, 1).Format(DateLayout),
	}, nil
}
