package queries

import (
	"context"
	"fmt"
	"strings"

	"orderpanel/internal/core/domain/model/kernel"
	"orderpanel/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler is the single read path for the operator's order
// list. Status transitions and deletions return its output so the operator
// always sees the same filtered view.
//
// Matching rules:
//   - search matches, ignoring case, a substring of the customer name, the
//     Roblox handle or the decimal id; LIKE wildcards in it match literally
//   - status matches exactly
//   - rows come back newest first (id DESC)
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the matching orders. No match yields an empty, non-nil slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if query.Search() != "" {
		pattern := containsPattern(query.Search())
		where = append(where, fmt.Sprintf(
			"(LOWER(customer_name) LIKE ? ESCAPE '%[1]s' OR LOWER(roblox_user) LIKE ? ESCAPE '%[1]s' OR %[2]s LIKE ? ESCAPE '%[1]s')",
			likeEscape, idAsText(h.db),
		))
		args = append(args, pattern, pattern, pattern)
	}
	if query.Status() != "" {
		where = append(where, "status = ?")
		args = append(args, query.Status().String())
	}

	sql := `
		SELECT
			id,
			customer_name,
			roblox_user,
			category,
			item_name,
			price,
			payment_method,
			proof_image,
			status,
			created_at
		FROM orders`
	if len(where) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	sql += "\n\t\tORDER BY id DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		var (
			v                               OrderView
			category, paymentMethod, status string
		)
		if err = rows.Scan(
			&v.ID,
			&v.CustomerName,
			&v.RobloxUser,
			&category,
			&v.ItemName,
			&v.Price,
			&paymentMethod,
			&v.ProofImage,
			&status,
			&v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}

		v.Category = kernel.Category(category)
		v.PaymentMethod = order.PaymentMethod(paymentMethod)
		v.Status = order.Status(status)
		v.Actions = v.Status.Successors()
		views = append(views, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return views, nil
}
