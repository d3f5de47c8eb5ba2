package handler

import (
	"net/http"

	"github.com/Eursukkul/restaurant-reservation/internal/dto"
	"github.com/Eursukkul/restaurant-reservation/internal/models"
	"github.com/Eursukkul/restaurant-reservation/internal/service"
	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListReservations)
	g.POST("", h.CreateReservation)
	g.GET("/:id", h.GetReservation)
	g.PUT("/:id", h.UpdateReservation)
	g.DELETE("/:id", h.DeleteReservation)
}

func (h *ReservationHandler) ListReservations(c echo.Context) error {
	reservations, err := h.svc.ListReservations(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponses(reservations))
}

func (h *ReservationHandler) GetReservation(c echo.Context) error {
	id, err := parseID(c, "reservation")
	if err != nil {
		return err
	}

	reservation, err := h.svc.GetReservation(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req dto.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	in := service.CreateReservationInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		NumberOfGuests:  req.NumberOfGuests,
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		SpecialRequests: req.SpecialRequests,
		TableID:         req.TableID,
	}
	if req.Duration != nil {
		if *req.Duration <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidDuration.Error())
		}
		in.Duration = *req.Duration
	}

	reservation, err := h.svc.CreateReservation(c.Request().Context(), in)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) UpdateReservation(c echo.Context) error {
	id, err := parseID(c, "reservation")
	if err != nil {
		return err
	}

	var req dto.UpdateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	reservation, err := h.svc.UpdateReservation(c.Request().Context(), id, toReservationUpdate(&req))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) DeleteReservation(c echo.Context) error {
	id, err := parseID(c, "reservation")
	if err != nil {
		return err
	}

	if err := h.svc.DeleteReservation(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Reservation deleted successfully"})
}

func toReservationUpdate(req *dto.UpdateReservationRequest) service.ReservationUpdate {
	var upd service.ReservationUpdate
	if req.CustomerName != nil {
		upd.CustomerName = service.Some(*req.CustomerName)
	}
	if req.CustomerPhone != nil {
		upd.CustomerPhone = service.Some(*req.CustomerPhone)
	}
	if req.NumberOfGuests != nil {
		upd.NumberOfGuests = service.Some(*req.NumberOfGuests)
	}
	if req.Date != nil {
		upd.Date = service.Some(*req.Date)
	}
	if req.TimeSlot != nil {
		upd.TimeSlot = service.Some(*req.TimeSlot)
	}
	if req.Duration != nil {
		upd.Duration = service.Some(*req.Duration)
	}
	if req.SpecialRequests.Set {
		upd.SpecialRequests = service.Some(req.SpecialRequests.Value)
	}
	if req.TableID != nil {
		upd.TableID = service.Some(*req.TableID)
	}
	if req.Status != nil {
		upd.Status = service.Some(*req.Status)
	}
	return upd
}
