package http

import (
	"net/http"

	"orderpanel/internal/core/application/panel"
	"orderpanel/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type NewCatalogItem struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
}

// ListCatalog handles GET /api/v1/catalog - items grouped by category.
func (s *Server) ListCatalog(c echo.Context) error {
	items, err := s.listCatalogHandler.Handle(c.Request().Context(), queries.NewListCatalogItemsQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, queries.GroupByCategory(items))
}

// CreateCatalogItem handles POST /api/v1/catalog and answers with the full catalog.
func (s *Server) CreateCatalogItem(c echo.Context) error {
	var body NewCatalogItem
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	items, err := s.panel.CreateCatalogItem(c.Request().Context(), capabilityFrom(c), panel.CatalogItemInput{
		Category:    body.Category,
		Name:        body.Name,
		Price:       body.Price,
		Description: body.Description,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, items)
}

// DeleteCatalogItem handles DELETE /api/v1/catalog/{id}.
func (s *Server) DeleteCatalogItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid catalog item id")
	}

	items, err := s.panel.DeleteCatalogItem(c.Request().Context(), capabilityFrom(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
