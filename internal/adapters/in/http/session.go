package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type LoginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/v1/login.
func (s *Server) Login(c echo.Context) error {
	var body LoginRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	session, err := s.auth.Login(c.Request().Context(), body.Password)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// Logout handles POST /api/v1/logout.
func (s *Server) Logout(c echo.Context) error {
	if err := s.auth.Logout(c.Request().Context(), sessionToken(c)); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
