package queries

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"orderpanel/internal/core/domain/model/order"
	"orderpanel/internal/pkg/guard"
)

// MinTrackHandleLength is the shortest handle the public lookup accepts.
const MinTrackHandleLength = 3

var ErrTrackOrdersQueryIsNotConstructed = errors.New(
	"TrackOrdersQuery must be created via NewTrackOrdersQuery constructor",
)

// TrackOrdersQuery is a customer's lookup of their own orders by game handle.
type TrackOrdersQuery struct {
	robloxUser string

	guard guard.ConstructorGuard
}

func NewTrackOrdersQuery(robloxUser string) TrackOrdersQuery {
	return TrackOrdersQuery{
		robloxUser: strings.TrimSpace(robloxUser),
		guard:      guard.NewConstructorGuard(),
	}
}

func (q TrackOrdersQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrdersQueryIsNotConstructed)
}

func (q TrackOrdersQuery) RobloxUser() string {
	return q.robloxUser
}

// TooShort reports whether the handle has fewer than MinTrackHandleLength
// characters after trimming.
func (q TrackOrdersQuery) TooShort() bool {
	return utf8.RuneCountInString(q.robloxUser) < MinTrackHandleLength
}

// TrackedOrder is the public projection of an order. It deliberately leaves
// out the customer name, price and payment details.
type TrackedOrder struct {
	ID        int64        `json:"id"`
	ItemName  string       `json:"item_name"`
	CreatedAt time.Time    `json:"created_at"`
	Status    order.Status `json:"status"`
}

// TrackOrdersResult separates the two "nothing to show" outcomes: a handle
// that was too short to search and a search that found nothing.
type TrackOrdersResult struct {
	TooShort bool           `json:"too_short"`
	Orders   []TrackedOrder `json:"orders"`
}

// Empty reports a search that ran and matched no order.
func (r TrackOrdersResult) Empty() bool {
	return !r.TooShort && len(r.Orders) == 0
}
