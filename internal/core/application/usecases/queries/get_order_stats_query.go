package queries

import (
	"errors"

	"orderpanel/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// OrderStats are the operator dashboard counters.
type OrderStats struct {
	// Total counts every order.
	Total int64 `json:"total"`
	// Revenue sums prices of all orders that were not cancelled.
	Revenue int64 `json:"revenue"`
	// Active counts Pending and Processing orders.
	Active int64 `json:"active"`
}
