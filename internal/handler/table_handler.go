package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Eursukkul/restaurant-reservation/internal/dto"
	"github.com/Eursukkul/restaurant-reservation/internal/service"
	"github.com/labstack/echo/v4"
)

type TableHandler struct {
	svc service.TableService
}

func NewTableHandler(svc service.TableService) *TableHandler {
	return &TableHandler{svc: svc}
}

// RegisterRoutes mounts the table routes. /available is registered ahead of
// /:id so it is never read as a table id.
func (h *TableHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListTables)
	g.GET("/available", h.GetAvailableTables)
	g.GET("/:id", h.GetTable)
}

func (h *TableHandler) ListTables(c echo.Context) error {
	tables, err := h.svc.ListTables(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToTableResponses(tables))
}

func (h *TableHandler) GetAvailableTables(c echo.Context) error {
	date := c.QueryParam("date")
	timeSlot := c.QueryParam("timeSlot")
	guests := c.QueryParam("guests")

	if date == "" || timeSlot == "" || guests == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required query parameters: date, timeSlot, guests")
	}

	q := service.AvailabilityQuery{Date: date, TimeSlot: timeSlot}
	n, err := strconv.Atoi(guests)
	if err != nil || n <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "guests must be a positive integer")
	}
	q.Guests = n

	if d := strings.TrimSpace(c.QueryParam("duration")); d != "" {
		minutes, err := strconv.Atoi(d)
		if err != nil || minutes <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "duration must be a positive number of minutes")
		}
		q.Duration = minutes
	}

	tables, err := h.svc.FindAvailable(c.Request().Context(), q)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToTableResponses(tables))
}

func (h *TableHandler) GetTable(c echo.Context) error {
	id, err := parseID(c, "table")
	if err != nil {
		return err
	}

	table, err := h.svc.GetTable(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToTableDetailResponse(table))
}
