package queries

import (
	"errors"
	"strings"
	"time"

	"orderpanel/internal/core/domain/model/kernel"
	"orderpanel/internal/core/domain/model/order"
	"orderpanel/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery is the operator's order filter. Both parts are optional and
// combine with AND.
//
// Example:
//
//	q, err := NewListOrdersQuery("budi", "Pending")
//	if err != nil {
//	    return err // unknown status name
//	}
//	views, err := handler.Handle(ctx, q)
type ListOrdersQuery struct {
	search string
	status order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery trims both inputs; an empty value means "no filter".
// A non-empty status must name a known status.
func NewListOrdersQuery(search, status string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}

	if s := strings.TrimSpace(status); s != "" {
		parsed, err := order.ParseStatus(s)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = parsed
	}

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Search returns the substring filter, or "" when absent.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// Status returns the exact status filter, or "" when absent.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// OrderView is one row of the operator's order list.
type OrderView struct {
	ID            int64               `json:"id"`
	CustomerName  string              `json:"customer_name"`
	RobloxUser    string              `json:"roblox_user"`
	Category      kernel.Category     `json:"category"`
	ItemName      string              `json:"item_name"`
	Price         int64               `json:"price"`
	PaymentMethod order.PaymentMethod `json:"payment_method"`
	ProofImage    string              `json:"proof_image,omitempty"`
	Status        order.Status        `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	// Actions lists the statuses the order may move to next.
	Actions []order.Status `json:"actions"`
}
