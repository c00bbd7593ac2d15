package kernel

import (
	"fmt"
	"strings"

	"orderpanel/internal/pkg/errs"
)

// Category classifies catalog items and order line items.
type Category string

const (
	CategoryTopUp  Category = "TOPUP"
	CategoryJoki   Category = "JOKI"
	CategoryItem   Category = "ITEM"
	CategoryCustom Category = "CUSTOM"
)

// ParseCategory accepts the canonical upper-case names, ignoring surrounding
// whitespace and letter case.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(raw)))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate reports whether c is one of the four known categories.
func (c Category) Validate() error {
	switch c {
	case CategoryTopUp, CategoryJoki, CategoryItem, CategoryCustom:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a valid category", string(c)))
	}
}

// IsCatalogCategory reports whether c may be used for a catalog item.
// CUSTOM is reserved for free-form requests.
func (c Category) IsCatalogCategory() bool {
	return c == CategoryTopUp || c == CategoryJoki || c == CategoryItem
}

func (c Category) String() string {
	return string(c)
}
