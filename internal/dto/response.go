package dto

import (
	"time"

	"github.com/Eursukkul/restaurant-reservation/internal/models"
)

type TableResponse struct {
	ID          uint      `json:"id"`
	TableNumber string    `json:"tableNumber"`
	Capacity    int       `json:"capacity"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TableDetailResponse struct {
	TableResponse
	Reservations []ReservationResponse `json:"reservations"`
}

type ReservationResponse struct {
	ID              uint                     `json:"id"`
	CustomerName    string                   `json:"customerName"`
	CustomerPhone   string                   `json:"customerPhone"`
	NumberOfGuests  int                      `json:"numberOfGuests"`
	Date            string                   `json:"date"`
	TimeSlot        string                   `json:"timeSlot"`
	Duration        int                      `json:"duration"`
	SpecialRequests *string                  `json:"specialRequests"`
	Status          models.ReservationStatus `json:"status"`
	TableID         uint                     `json:"tableId"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
	Table           *TableResponse           `json:"table,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func ToTableResponse(t *models.Table) TableResponse {
	return TableResponse{
		ID:          t.ID,
		TableNumber: t.TableNumber,
		Capacity:    t.Capacity,
		Location:    t.Location,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToTableResponses(tables []models.Table) []TableResponse {
	resp := make([]TableResponse, len(tables))
	for i := range tables {
		resp[i] = ToTableResponse(&tables[i])
	}
	return resp
}

func ToTableDetailResponse(t *models.Table) TableDetailResponse {
	return TableDetailResponse{
		TableResponse: ToTableResponse(t),
		Reservations:  ToReservationResponses(t.Reservations),
	}
}

func ToReservationResponse(r *models.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		NumberOfGuests:  r.NumberOfGuests,
		Date:            r.Date,
		TimeSlot:        r.TimeSlot,
		Duration:        r.Duration,
		SpecialRequests: r.SpecialRequests,
		Status:          r.Status,
		TableID:         r.TableID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Table != nil {
		t := ToTableResponse(r.Table)
		resp.Table = &t
	}
	return resp
}

func ToReservationResponses(reservations []models.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, len(reservations))
	for i := range reservations {
		resp[i] = ToReservationResponse(&reservations[i])
	}
	return resp
}
