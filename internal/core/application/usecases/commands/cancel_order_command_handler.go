package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CancelOrderCommandHandler executes the cancellation chain: partial update of
// the order document with the cancellation fields, then the history append,
// then notification dispatch to buyer and seller. Like the status update
// chain, the stages are independent sequential writes with no rollback.
type CancelOrderCommandHandler struct {
	store    ports.DocumentStore
	ledger   HistoryLedger
	notifier Notifier

	clock
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
func NewCancelOrderCommandHandler(
	store ports.DocumentStore,
	ledger HistoryLedger,
	notifier Notifier,
	opts ...HandlerOption,
) (CancelOrderCommandHandler, error) {
	if store == nil {
		return CancelOrderCommandHandler{}, errs.NewValueIsRequiredError("store")
	}
	if ledger == nil {
		return CancelOrderCommandHandler{}, errs.NewValueIsRequiredError("ledger")
	}
	if notifier == nil {
		return CancelOrderCommandHandler{}, errs.NewValueIsRequiredError("notifier")
	}

	handler := CancelOrderCommandHandler{
		store:    store,
		ledger:   ledger,
		notifier: notifier,
		clock:    clock{now: time.Now},
	}
	for _, opt := range opts {
		opt(&handler.clock)
	}
	return handler, nil
}

// Handle processes the cancellation command. The order moves to CANCELLED
// with cancelReason, cancelledAt and updatedAt stamped from one instant, the
// history entry records "Order cancelled: " plus the reason, and both parties
// are notified.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	doc, err := h.store.Get(ctx, ports.CollectionOrders, cmd.OrderID().String())
	if err != nil {
		return err
	}

	aggregate, err := order.FromDocument(cmd.OrderID(), doc)
	if err != nil {
		return err
	}

	at := kernel.TimestampFromTime(h.now())
	if err = aggregate.Cancel(cmd.Reason(), at); err != nil {
		return err
	}

	err = h.store.Update(ctx, ports.CollectionOrders, cmd.OrderID().String(), order.CancellationFields(aggregate))
	if err != nil {
		return NewStageError(StageOrderWrite, err)
	}

	notes := fmt.Sprintf("Order cancelled: %s", cmd.Reason())
	entry, err := order.NewStatusHistoryEntry(order.Cancelled, at, notes)
	if err != nil {
		return NewStageError(StageHistoryAppend, err)
	}
	if err = h.ledger.Append(ctx, cmd.OrderID(), entry); err != nil {
		return NewStageError(StageHistoryAppend, err)
	}

	if err = h.notifier.NotifyCancellation(ctx, cmd.OrderID(), cmd.Reason()); err != nil {
		return NewStageError(StageNotification, err)
	}

	return nil
}
