package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Eursukkul/restaurant-reservation/internal/dto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, method string, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/api/anything", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ErrorHandler(err, c)

	if rec.Body.Len() == 0 {
		return rec.Code, ""
	}
	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp.Message
}

func TestErrorHandler_ClientErrorKeepsMessage(t *testing.T) {
	code, msg := handle(t, http.MethodGet, echo.NewHTTPError(http.StatusConflict, "This time slot is already booked for this table"))

	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "This time slot is already booked for this table", msg)
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	code, msg := handle(t, http.MethodGet, echo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, MsgRouteNotFound, msg)

	code, msg = handle(t, http.MethodPatch, echo.ErrMethodNotAllowed)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, MsgRouteNotFound, msg)
}

func TestErrorHandler_HandlerNotFoundKeepsMessage(t *testing.T) {
	code, msg := handle(t, http.MethodGet, echo.NewHTTPError(http.StatusNotFound, "Table not found"))

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Table not found", msg)
}

func TestErrorHandler_InternalErrorIsOpaque(t *testing.T) {
	code, msg := handle(t, http.MethodGet, errors.New("pq: relation \"reservations\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, MsgInternal, msg)
}

func TestErrorHandler_Internal5xxHTTPErrorIsOpaque(t *testing.T) {
	code, msg := handle(t, http.MethodGet, echo.NewHTTPError(http.StatusInternalServerError, "dial tcp 10.0.0.3:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, MsgInternal, msg)
}

func TestErrorHandler_HeadHasNoBody(t *testing.T) {
	code, msg := handle(t, http.MethodHead, echo.NewHTTPError(http.StatusBadRequest, "bad"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Empty(t, msg)
}
