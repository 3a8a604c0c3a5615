// Package order contains the order aggregate and its lifecycle state machine.
//
// An Order is a buyer's purchase record tracked through a status lifecycle.
// Orders are created by the storefront subsystem and reach this service only
// through the document store, so the package exposes RestoreOrder plus the
// document field mapping rather than a creation constructor.
//
// The state machine is deliberately permissive: any valid status is reachable
// from any non-terminal status, and repeated identical transitions are allowed.
// Cancelled is the single terminal state; transitioning out of it is rejected,
// and entering it goes through Cancel so that the cancellation fields
// (cancelReason, cancelledAt) are always written together.
//
// StatusHistoryEntry is the immutable audit record of one transition. Within a
// single lifecycle operation the entry's timestamp equals the updatedAt written
// to the order, which lets the history reconstruct the full transition sequence.
package order
