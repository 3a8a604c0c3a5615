package services

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// StatusHistoryLedger appends status history entries to an order's
// statusHistory child collection. The ledger is append-only: entries are never
// updated or deleted, and ordering is reconstructed from their timestamps at
// read time rather than from insertion order.
type StatusHistoryLedger struct {
	store ports.DocumentStore
}

// NewStatusHistoryLedger creates a StatusHistoryLedger backed by the given
// document store.
func NewStatusHistoryLedger(store ports.DocumentStore) (StatusHistoryLedger, error) {
	if store == nil {
		return StatusHistoryLedger{}, errs.NewValueIsRequiredError("store")
	}
	return StatusHistoryLedger{store: store}, nil
}

// Append writes one history entry under the given order. The write is a
// single independent operation; it does not verify that the parent order
// document still matches the entry's status.
func (l StatusHistoryLedger) Append(ctx context.Context, orderID kernel.ID, entry order.StatusHistoryEntry) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	err := l.store.AppendChild(
		ctx,
		ports.CollectionOrders,
		orderID.String(),
		ports.SubcollectionStatusHistory,
		entry.Document(),
	)
	if err != nil {
		return fmt.Errorf("append status history for order %s: %w", orderID, err)
	}
	return nil
}
