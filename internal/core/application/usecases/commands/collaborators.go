// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. Each handler runs a fixed chain of independent writes (order
// document, history ledger, notifications) with no surrounding transaction: a
// stage failure stops the chain and leaves earlier writes in place.
package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// Collaborator interfaces consumed by the command handlers. Declared here, on
// the consumer side, so handlers can be tested against mocks.
type (
	// HistoryLedger appends immutable status history entries under an order.
	HistoryLedger interface {
		Append(ctx context.Context, orderID kernel.ID, entry order.StatusHistoryEntry) error
	}

	// Notifier creates notification documents for the parties of an order.
	Notifier interface {
		NotifyStatusUpdate(ctx context.Context, orderID kernel.ID, status order.Status) error
		NotifyCancellation(ctx context.Context, orderID kernel.ID, reason string) error
	}
)
