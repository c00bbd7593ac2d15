// Package kernel provides value objects shared by the order and catalog
// aggregates.
//
// The package includes:
//   - Category: the product family an order line or catalog item belongs to
//   - Price: a non-negative amount in the smallest currency unit
//
// Both are immutable and validated on construction, so aggregates holding them
// never carry a negative price or an unknown category.
package kernel
