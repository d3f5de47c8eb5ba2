package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/Eursukkul/restaurant-reservation/internal/dto"
	"github.com/labstack/echo/v4"
)

const (
	MsgRouteNotFound = "This route does not exist"
	MsgInternal      = "Internal server error"
)

// ErrorHandler renders every error as {"message": ...}. Client errors keep
// their message; anything unexpected is logged and answered with a generic 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := MsgInternal

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch {
		case he == echo.ErrNotFound || he == echo.ErrMethodNotAllowed:
			code = http.StatusNotFound
			msg = MsgRouteNotFound
		case code >= http.StatusInternalServerError:
			msg = MsgInternal
		default:
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(code)
			}
		}
	}

	if code >= http.StatusInternalServerError {
		req := c.Request()
		log.Printf("ERROR %s %s: %v", req.Method, req.URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, dto.MessageResponse{Message: msg})
}
