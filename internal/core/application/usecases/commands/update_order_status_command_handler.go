package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler executes the status update chain: partial
// update of the order document, then the history append, then notification
// dispatch. The stages run strictly in that sequence and are not wrapped in a
// transaction; a stage failure returns a StageError and leaves the writes of
// earlier stages in place.
type UpdateOrderStatusCommandHandler struct {
	store    ports.DocumentStore
	ledger   HistoryLedger
	notifier Notifier

	clock
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update
// operations.
func NewUpdateOrderStatusCommandHandler(
	store ports.DocumentStore,
	ledger HistoryLedger,
	notifier Notifier,
	opts ...HandlerOption,
) (UpdateOrderStatusCommandHandler, error) {
	if store == nil {
		return UpdateOrderStatusCommandHandler{}, errs.NewValueIsRequiredError("store")
	}
	if ledger == nil {
		return UpdateOrderStatusCommandHandler{}, errs.NewValueIsRequiredError("ledger")
	}
	if notifier == nil {
		return UpdateOrderStatusCommandHandler{}, errs.NewValueIsRequiredError("notifier")
	}

	handler := UpdateOrderStatusCommandHandler{
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

// Handle processes the status update command. The order is loaded, the
// transition is validated against the domain model, and the chain of writes
// runs. All stages stamp the same wall-clock instant, so a successful call
// leaves order.updatedAt equal to the new history entry's timestamp.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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
	if err = aggregate.ChangeStatus(cmd.Status(), at); err != nil {
		return err
	}

	err = h.store.Update(ctx, ports.CollectionOrders, cmd.OrderID().String(), order.StatusUpdateFields(aggregate))
	if err != nil {
		return NewStageError(StageOrderWrite, err)
	}

	entry, err := order.NewStatusHistoryEntry(cmd.Status(), at, cmd.Notes())
	if err != nil {
		return NewStageError(StageHistoryAppend, err)
	}
	if err = h.ledger.Append(ctx, cmd.OrderID(), entry); err != nil {
		return NewStageError(StageHistoryAppend, err)
	}

	if err = h.notifier.NotifyStatusUpdate(ctx, cmd.OrderID(), cmd.Status()); err != nil {
		return NewStageError(StageNotification, err)
	}

	return nil
}
