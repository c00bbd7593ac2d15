// Package queries contains the read side of the order panel.
//
// Query handlers read straight from the SQL store with parameterized raw SQL
// and return flat view structs rather than aggregates. They never open a
// transaction.
//
// Read paths:
//   - ListOrdersQueryHandler: the operator's filtered order list, newest first.
//     Every operator mutation reuses it to produce its refreshed view.
//   - TrackOrdersQueryHandler: the public lookup by game handle
//   - ListCatalogItemsQueryHandler: the catalog, grouped for display
//   - GetOrderStatsQueryHandler: dashboard counters
package queries
