package dto

import (
	"bytes"
	"encoding/json"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
)

type CreateReservationRequest struct {
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	NumberOfGuests  int     `json:"numberOfGuests"`
	Date            string  `json:"date"`
	TimeSlot        string  `json:"timeSlot"`
	Duration        *int    `json:"duration"`
	SpecialRequests *string `json:"specialRequests"`
	TableID         uint    `json:"tableId"`
}

// UpdateReservationRequest carries a partial update. Absent keys leave the
// stored value untouched; "specialRequests": null clears the note.
type UpdateReservationRequest struct {
	CustomerName    *string                   `json:"customerName"`
	CustomerPhone   *string                   `json:"customerPhone"`
	NumberOfGuests  *int                      `json:"numberOfGuests"`
	Date            *string                   `json:"date"`
	TimeSlot        *string                   `json:"timeSlot"`
	Duration        *int                      `json:"duration"`
	SpecialRequests NullableString            `json:"specialRequests"`
	TableID         *uint                     `json:"tableId"`
	Status          *models.ReservationStatus `json:"status"`
}

// NullableString tells an absent key apart from an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}
