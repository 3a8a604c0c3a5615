// Package services provides domain services that coordinate order lifecycle
// side effects across the document store.
//
// The package includes:
//   - StatusHistoryLedger: appends immutable status history entries to an
//     order's child collection
//   - NotificationDispatcher: creates notification documents for the parties
//     of an order after a lifecycle event
//
// Both services perform single independent writes. They never wrap their work
// in a transaction with the order update that precedes them; a failure here
// leaves earlier writes in place.
package services
