package http

import (
	"errors"
	"net/http"

	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var statusBySentinel = []struct {
	sentinel error
	status   int
}{
	{errs.ErrValueIsRequired, http.StatusBadRequest},
	{errs.ErrValueIsInvalid, http.StatusBadRequest},
	{errs.ErrValueIsOutOfRange, http.StatusBadRequest},
	{errs.ErrStatusIsInvalid, http.StatusBadRequest},
	{errs.ErrRoleIsInvalid, http.StatusBadRequest},
	{errs.ErrPreconditionFailed, http.StatusBadRequest},
	{errs.ErrSignatureIsInvalid, http.StatusBadRequest},
	{errs.ErrObjectNotFound, http.StatusNotFound},
	{errs.ErrConflict, http.StatusConflict},
	{errs.ErrUnauthorized, http.StatusUnauthorized},
	{errs.ErrForbidden, http.StatusForbidden},
	{errs.ErrUpstream, http.StatusBadGateway},
}

// statusOf maps an application error to its HTTP status. Unknown errors
// are 500.
func statusOf(err error) int {
	for _, m := range statusBySentinel {
		if errors.Is(err, m.sentinel) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// HandleError is the echo HTTPErrorHandler. Application errors carry their
// own message; unexpected ones are logged and answered with a generic 500.
func (s *Server) HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var status int
	var message string

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}
	} else {
		status = statusOf(err)
		message = err.Error()
	}

	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, Error{Code: status, Message: message})
	}
	if writeErr != nil {
		s.logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
	}
}
