package http

import (
	"net/http"
	"strconv"

	"orderpanel/internal/core/application/panel"
	"orderpanel/internal/core/application/usecases/commands"
	"orderpanel/internal/core/application/usecases/queries"
	"orderpanel/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// NewOrder is the public intake form.
type NewOrder struct {
	CustomerName  string `json:"customer_name"`
	RobloxUser    string `json:"roblox_user"`
	ProductRef    string `json:"product_ref"`
	ItemName      string `json:"item_name"`
	Price         int64  `json:"price"`
	PaymentMethod string `json:"payment_method"`
	ProofImage    string `json:"proof_image"`
}

type TrackRequest struct {
	RobloxUser string `json:"roblox_user"`
}

type TrackResponse struct {
	TooShort bool                   `json:"too_short"`
	Empty    bool                   `json:"empty"`
	Orders   []queries.TrackedOrder `json:"orders"`
}

// CreateOrder handles POST /api/v1/orders - records a new Pending order.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(commands.CreateOrderInput{
		CustomerName:      body.CustomerName,
		RobloxUser:        body.RobloxUser,
		ProductRef:        body.ProductRef,
		SubmittedItemName: body.ItemName,
		SubmittedPrice:    body.Price,
		PaymentMethod:     body.PaymentMethod,
		ProofImage:        body.ProofImage,
	})
	if err != nil {
		return s.fail(c, err)
	}

	stored, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, orderView(stored))
}

// TrackOrders handles POST /api/v1/track - public lookup by Roblox username.
func (s *Server) TrackOrders(c echo.Context) error {
	var body TrackRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := s.trackOrdersHandler.Handle(c.Request().Context(), queries.NewTrackOrdersQuery(body.RobloxUser))
	if err != nil {
		return s.fail(c, err)
	}

	response := TrackResponse{
		TooShort: result.TooShort,
		Empty:    result.Empty(),
		Orders:   result.Orders,
	}
	if response.Orders == nil {
		response.Orders = []queries.TrackedOrder{}
	}
	return c.JSON(http.StatusOK, response)
}

// ListOrders handles GET /api/v1/orders?search=&status=.
func (s *Server) ListOrders(c echo.Context) error {
	views, err := s.panel.ListOrders(c.Request().Context(), capabilityFrom(c), filterFrom(c))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

// TransitionOrderStatus handles PUT /api/v1/orders/{id}/status?s=<Status>
// and answers with the caller's filtered list.
func (s *Server) TransitionOrderStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	views, err := s.panel.TransitionStatus(c.Request().Context(), capabilityFrom(c), id, c.QueryParam("s"), filterFrom(c))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

// DeleteOrder handles DELETE /api/v1/orders/{id} and answers with the
// caller's filtered list.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	views, err := s.panel.DeleteOrder(c.Request().Context(), capabilityFrom(c), id, filterFrom(c))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(c echo.Context) error {
	stats, err := s.panel.Stats(c.Request().Context(), capabilityFrom(c))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func filterFrom(c echo.Context) panel.Filter {
	return panel.Filter{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	}
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func orderView(o *order.Order) queries.OrderView {
	return queries.OrderView{
		ID:            o.ID(),
		CustomerName:  o.CustomerName(),
		RobloxUser:    o.RobloxUser(),
		Category:      o.Category(),
		ItemName:      o.ItemName(),
		Price:         o.Price().Amount(),
		PaymentMethod: o.PaymentMethod(),
		ProofImage:    o.ProofImage(),
		Status:        o.Status(),
		CreatedAt:     o.CreatedAt(),
		Actions:       o.Status().Successors(),
	}
}
