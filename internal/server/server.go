package server

import (
	"log"
	"net/http"

	"github.com/Eursukkul/restaurant-reservation/internal/dto"
	"github.com/Eursukkul/restaurant-reservation/internal/handler"
	"github.com/Eursukkul/restaurant-reservation/internal/middleware"
	"github.com/Eursukkul/restaurant-reservation/internal/service"
	"github.com/Eursukkul/restaurant-reservation/pkg/metrics"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

type Options struct {
	Tables       service.TableService
	Reservations service.ReservationService
	CORSOrigins  []string
	// Metrics, when set, instruments every request and serves /metrics.
	Metrics *metrics.Metrics
	// AccessLog toggles the per-request log line.
	AccessLog bool
}

// New builds the echo instance with middleware and every /api route.
func New(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler

	e.Use(echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if opts.AccessLog {
		e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
			LogStatus:    true,
			LogURI:       true,
			LogMethod:    true,
			LogRequestID: true,
			LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
				log.Printf("%s %s %d request_id=%s", v.Method, v.URI, v.Status, v.RequestID)
				return nil
			},
		}))
	}
	e.Use(echoMw.Recover())
	if opts.Metrics != nil {
		e.Use(opts.Metrics.Middleware())
		e.GET("/metrics", echo.WrapHandler(opts.Metrics.Handler()))
	}
	if len(opts.CORSOrigins) > 0 {
		e.Use(echoMw.CORSWithConfig(echoMw.CORSConfig{
			AllowOrigins:     opts.CORSOrigins,
			AllowCredentials: true,
		}))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "reservation-service"})
	})

	api := e.Group("/api")
	api.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "All good in here"})
	})
	handler.NewTableHandler(opts.Tables).RegisterRoutes(api.Group("/tables"))
	handler.NewReservationHandler(opts.Reservations).RegisterRoutes(api.Group("/reservations"))

	return e
}
