package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Eursukkul/restaurant-reservation/internal/service"
	"github.com/labstack/echo/v4"
)

// toHTTPError maps service errors onto status codes. Unknown errors pass
// through untouched so the error handler can log them and answer 500.
func toHTTPError(err error) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	case errors.Is(err, service.ErrTableNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Table not found")
	case errors.Is(err, service.ErrReservationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Reservation not found")
	case errors.Is(err, service.ErrCapacityExceeded):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSlotConflict):
		return echo.NewHTTPError(http.StatusConflict, "This time slot is already booked for this table")
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrConcurrentUpdate):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}

func parseID(c echo.Context, what string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+what+" id")
	}
	return uint(id), nil
}
