package models

import "time"

type ReservationStatus string

const (
	StatusBooked    ReservationStatus = "Booked"
	StatusCancelled ReservationStatus = "Cancelled"
	StatusCompleted ReservationStatus = "Completed"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusBooked, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further status transition is allowed.
func (s ReservationStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

type Reservation struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	CustomerName    string            `gorm:"not null" json:"customerName"`
	CustomerPhone   string            `gorm:"not null" json:"customerPhone"`
	NumberOfGuests  int               `gorm:"not null" json:"numberOfGuests"`
	Date            string            `gorm:"type:varchar(10);not null;index:idx_reservation_table_date,priority:2" json:"date"`
	TimeSlot        string            `gorm:"type:varchar(5);not null" json:"timeSlot"`
	Duration        int               `gorm:"not null;default:120" json:"duration"`
	SpecialRequests *string           `json:"specialRequests"`
	Status          ReservationStatus `gorm:"type:varchar(20);not null;default:'Booked'" json:"status"`
	TableID         uint              `gorm:"not null;index:idx_reservation_table_date,priority:1" json:"tableId"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`

	Table *Table `gorm:"foreignKey:TableID" json:"table,omitempty"`
}

// Window returns the occupancy window of the reservation.
func (r *Reservation) Window() (Window, error) {
	return NewWindow(r.Date, r.TimeSlot, r.Duration)
}

// Occupies reports whether the reservation counts against the table's
// timeline. Cancelled reservations free their slot; completed ones keep it.
func (r *Reservation) Occupies() bool {
	return r.Status != StatusCancelled
}
