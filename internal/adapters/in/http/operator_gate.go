package http

import (
	"strings"

	"orderpanel/internal/core/application/auth"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const capabilityKey = "operator_capability"

// requireOperator exchanges the bearer token for an auth.Capability and
// stores it on the context. Browsers cannot set headers on a websocket
// handshake, so upgrades may pass the token as ?token= instead.
func (s *Server) requireOperator(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		capability, err := s.auth.Authorize(c.Request().Context(), sessionToken(c))
		if err != nil {
			return s.fail(c, err)
		}
		c.Set(capabilityKey, capability)
		return next(c)
	}
}

func sessionToken(c echo.Context) string {
	req := c.Request()
	if header := req.Header.Get(echo.HeaderAuthorization); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if websocket.IsWebSocketUpgrade(req) {
		return c.QueryParam("token")
	}
	return ""
}

// capabilityFrom returns the zero Capability, which every panel call
// rejects, when the gate did not run.
func capabilityFrom(c echo.Context) auth.Capability {
	capability, _ := c.Get(capabilityKey).(auth.Capability)
	return capability
}
