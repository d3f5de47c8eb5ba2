package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Eursukkul/restaurant-reservation/internal/dto"
	"github.com/Eursukkul/restaurant-reservation/internal/models"
	"github.com/Eursukkul/restaurant-reservation/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailableTables_Handler(t *testing.T) {
	var got service.AvailabilityQuery
	svc := &mockTableService{
		availableFn: func(ctx context.Context, q service.AvailabilityQuery) ([]models.Table, error) {
			got = q
			return []models.Table{*sampleTable()}, nil
		},
	}
	c, rec := newContext(http.MethodGet, "/api/tables/available?date=2025-11-09&timeSlot=18:00&guests=4&duration=90", "")

	require.NoError(t, NewTableHandler(svc).GetAvailableTables(c))

	assert.Equal(t, service.AvailabilityQuery{Date: "2025-11-09", TimeSlot: "18:00", Guests: 4, Duration: 90}, got)
	var resp []dto.TableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 4, resp[0].Capacity)
}

func TestGetAvailableTables_Handler_EmptyIsArray(t *testing.T) {
	svc := &mockTableService{
		availableFn: func(ctx context.Context, q service.AvailabilityQuery) ([]models.Table, error) {
			return []models.Table{}, nil
		},
	}
	c, rec := newContext(http.MethodGet, "/api/tables/available?date=2025-11-09&timeSlot=18:00&guests=6", "")

	require.NoError(t, NewTableHandler(svc).GetAvailableTables(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetAvailableTables_Handler_BadQuery(t *testing.T) {
	h := NewTableHandler(&mockTableService{})

	c, _ := newContext(http.MethodGet, "/api/tables/available?date=2025-11-09&guests=2", "")
	assertHTTPError(t, h.GetAvailableTables(c), http.StatusBadRequest, "Missing required query parameters: date, timeSlot, guests")

	c, _ = newContext(http.MethodGet, "/api/tables/available?date=2025-11-09&timeSlot=18:00&guests=two", "")
	assertHTTPError(t, h.GetAvailableTables(c), http.StatusBadRequest, "guests must be a positive integer")

	c, _ = newContext(http.MethodGet, "/api/tables/available?date=2025-11-09&timeSlot=18:00&guests=2&duration=-5", "")
	assertHTTPError(t, h.GetAvailableTables(c), http.StatusBadRequest, "duration must be a positive number of minutes")
}

func TestGetAvailableTables_Handler_ValidationFromService(t *testing.T) {
	svc := &mockTableService{
		availableFn: func(ctx context.Context, q service.AvailabilityQuery) ([]models.Table, error) {
			return nil, &service.ValidationError{Problems: []string{models.ErrInvalidTimeSlot.Error()}}
		},
	}
	c, _ := newContext(http.MethodGet, "/api/tables/available?date=2025-11-09&timeSlot=6pm&guests=2", "")

	assertHTTPError(t, NewTableHandler(svc).GetAvailableTables(c), http.StatusBadRequest, models.ErrInvalidTimeSlot.Error())
}

func TestGetTable_Handler(t *testing.T) {
	svc := &mockTableService{
		getFn: func(ctx context.Context, id uint) (*models.Table, error) {
			if id != 5 {
				return nil, service.ErrTableNotFound
			}
			table := sampleTable()
			r := sampleReservation()
			r.Table = nil
			table.Reservations = []models.Reservation{*r}
			return table, nil
		},
	}
	h := NewTableHandler(svc)

	c, rec := newContext(http.MethodGet, "/api/tables/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.GetTable(c))

	var resp dto.TableDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "5", resp.TableNumber)
	require.Len(t, resp.Reservations, 1)
	assert.Nil(t, resp.Reservations[0].Table)

	c, _ = newContext(http.MethodGet, "/api/tables/6", "")
	c.SetParamNames("id")
	c.SetParamValues("6")
	assertHTTPError(t, h.GetTable(c), http.StatusNotFound, "Table not found")
}

func TestListTables_Handler(t *testing.T) {
	svc := &mockTableService{
		listFn: func(ctx context.Context) ([]models.Table, error) {
			return []models.Table{{ID: 1, TableNumber: "1", Capacity: 2}, {ID: 2, TableNumber: "2", Capacity: 2}}, nil
		},
	}
	c, rec := newContext(http.MethodGet, "/api/tables", "")

	require.NoError(t, NewTableHandler(svc).ListTables(c))

	var resp []dto.TableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
