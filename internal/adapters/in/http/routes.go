package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Register mounts every route on e. Requests to documented paths are
// validated against the embedded OpenAPI document before they reach a
// handler.
func (s *Server) Register(e *echo.Echo) error {
	doc, err := LoadSpec()
	if err != nil {
		return err
	}
	validate, err := RequestValidator(doc)
	if err != nil {
		return err
	}
	registerSwagger(doc)

	e.Use(middleware.Recover())
	e.Use(s.requestLogger)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validate)

	api.POST("/orders", s.CreateOrder)
	api.POST("/track", s.TrackOrders)
	api.GET("/catalog", s.ListCatalog)
	api.POST("/login", s.Login)

	gate := s.requireOperator
	api.POST("/logout", s.Logout, gate)
	api.GET("/orders", s.ListOrders, gate)
	api.GET("/orders/live", s.live.Serve, gate)
	api.PUT("/orders/:id/status", s.TransitionOrderStatus, gate)
	api.DELETE("/orders/:id", s.DeleteOrder, gate)
	api.GET("/stats", s.GetStats, gate)
	api.POST("/catalog", s.CreateCatalogItem, gate)
	api.DELETE("/catalog/:id", s.DeleteCatalogItem, gate)

	return nil
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		req := c.Request()
		s.logger.DebugContext(req.Context(), "request",
			"method", req.Method,
			"path", c.Path(),
			"status", c.Response().Status,
		)
		return err
	}
}
