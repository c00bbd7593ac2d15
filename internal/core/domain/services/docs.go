// Package services provides domain services that span the order and catalog
// aggregates.
//
// The package includes:
//   - ProductRef: the parsed catalog reference a customer submits at intake
//   - LineItemResolver: turns a catalog hit, or the customer's free-form
//     request, into an order.LineItem
package services
