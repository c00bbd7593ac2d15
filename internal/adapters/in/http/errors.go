package http

import (
	"errors"
	"net/http"

	"orderpanel/internal/core/application/auth"
	"orderpanel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fail maps core errors to status codes. Storage and other unexpected
// failures are logged and reported without detail.
func (s *Server) fail(c echo.Context, err error) error {
	status, message := http.StatusInternalServerError, "Internal server error"

	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "Unauthorized"
	case errs.IsValidation(err):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrInvalidTransition):
		status, message = http.StatusConflict, err.Error()
	default:
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	return c.JSON(status, Error{Code: status, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
