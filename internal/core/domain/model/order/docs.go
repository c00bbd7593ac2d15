// Package order provides the Order aggregate and its lifecycle rules.
//
// The package includes:
//   - Order: the aggregate root holding the customer request and its status
//   - LineItem: the immutable (category, item name, price) triple copied at intake
//   - Status: the state machine Pending -> Processing -> Done, with Cancelled
//     reachable from both non-terminal states
//   - PaymentMethod: the fixed set of accepted payment channels
//   - Event: the created / status-changed / deleted facts relayed after commit
//
// Key business rules:
//   - Orders start in Pending and receive their numeric ID from the store
//   - Done and Cancelled are terminal; nothing moves an order out of them
//   - The line item never changes after creation, so later catalog edits or
//     deletions do not rewrite historical orders
package order
