package kernel

import (
	"math"

	"orderpanel/internal/pkg/errs"
)

// Price is an amount in the smallest currency unit. It is never negative.
type Price struct {
	amount int64
}

// NewPrice validates that amount is not negative.
func NewPrice(amount int64) (Price, error) {
	if amount < 0 {
		return Price{}, errs.NewValueIsOutOfRangeError("price", amount, 0, int64(math.MaxInt64))
	}
	return Price{amount: amount}, nil
}

// MustNewPrice is NewPrice for constants known to be valid; it panics otherwise.
func MustNewPrice(amount int64) Price {
	p, err := NewPrice(amount)
	if err != nil {
		panic(err)
	}
	return p
}

// Amount returns the raw amount.
func (p Price) Amount() int64 {
	return p.amount
}

// IsZero reports whether the price is free.
func (p Price) IsZero() bool {
	return p.amount == 0
}

// Equals compares two prices by amount.
func (p Price) Equals(other Price) bool {
	return p.amount == other.amount
}
