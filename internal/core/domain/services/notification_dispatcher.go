package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// NotificationDispatcher creates notification documents for the parties of an
// order after a lifecycle event. It re-reads the order document to resolve
// recipients, so it observes the state the preceding update left behind.
//
// Recipient policy:
//   - the buyer is the primary recipient; a missing buyerId skips dispatch
//     without error, but a failed buyer write is reported to the caller
//   - on cancellation the seller is notified too when resolvable, and a
//     failed seller write is logged and swallowed
type NotificationDispatcher struct {
	store  ports.DocumentStore
	logger *slog.Logger
	now    func() time.Time
}

// DispatcherOption configures a NotificationDispatcher.
type DispatcherOption func(*NotificationDispatcher)

// WithClock overrides the dispatcher's time source. Intended for tests.
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *NotificationDispatcher) {
		d.now = now
	}
}

// NewNotificationDispatcher creates a NotificationDispatcher backed by the
// given document store. A nil logger falls back to slog.Default.
func NewNotificationDispatcher(
	store ports.DocumentStore,
	logger *slog.Logger,
	opts ...DispatcherOption,
) (*NotificationDispatcher, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	if logger == nil {
		logger = slog.Default()
	}

	dispatcher := &NotificationDispatcher{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(dispatcher)
	}
	return dispatcher, nil
}

// NotifyStatusUpdate creates the buyer's notification for a status
// transition. Orders without a buyerId produce no notification and no error.
func (d *NotificationDispatcher) NotifyStatusUpdate(ctx context.Context, orderID kernel.ID, status order.Status) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	doc, err := d.store.Get(ctx, ports.CollectionOrders, orderID.String())
	if err != nil {
		return fmt.Errorf("load order %s for notification: %w", orderID, err)
	}

	buyerRaw := doc.String(order.FieldBuyerID)
	if buyerRaw == "" {
		d.logger.WarnContext(ctx, "order has no buyer, skipping status notification",
			"orderId", orderID.String())
		return nil
	}
	buyerID, err := kernel.NewID(buyerRaw)
	if err != nil {
		return err
	}

	n, err := notification.NewStatusUpdateNotification(
		buyerID, orderID, status, kernel.TimestampFromTime(d.now()),
	)
	if err != nil {
		return err
	}

	if err = d.store.Add(ctx, ports.CollectionNotifications, n.Document()); err != nil {
		return fmt.Errorf("write status notification for order %s: %w", orderID, err)
	}
	return nil
}

// NotifyCancellation creates the cancellation notifications for the buyer and,
// when resolvable, the seller. The seller id is read from the order's sellerId
// field, falling back to the legacy ownerId field. A failed seller write is
// logged and does not fail the dispatch.
func (d *NotificationDispatcher) NotifyCancellation(ctx context.Context, orderID kernel.ID, reason string) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	doc, err := d.store.Get(ctx, ports.CollectionOrders, orderID.String())
	if err != nil {
		return fmt.Errorf("load order %s for notification: %w", orderID, err)
	}

	snapshot := notification.SnapshotFromOrderDocument(doc)
	at := kernel.TimestampFromTime(d.now())

	var buyerID, sellerID kernel.ID
	if raw := doc.String(order.FieldBuyerID); raw != "" {
		if buyerID, err = kernel.NewID(raw); err != nil {
			return err
		}
	}
	if raw := order.ResolveSellerID(doc); raw != "" {
		if sellerID, err = kernel.NewID(raw); err != nil {
			return err
		}
	}

	if buyerID.Validate() == nil {
		buyerNotification, err := notification.NewBuyerCancellationNotification(
			buyerID, orderID, sellerID, snapshot, reason, at,
		)
		if err != nil {
			return err
		}
		if err = d.store.Add(ctx, ports.CollectionNotifications, buyerNotification.Document()); err != nil {
			return fmt.Errorf("write buyer cancellation notification for order %s: %w", orderID, err)
		}
	} else {
		d.logger.WarnContext(ctx, "order has no buyer, skipping buyer cancellation notification",
			"orderId", orderID.String())
	}

	if sellerID.Validate() != nil {
		d.logger.WarnContext(ctx, "order has no resolvable seller, skipping seller cancellation notification",
			"orderId", orderID.String())
		return nil
	}

	sellerNotification, err := notification.NewSellerCancellationNotification(
		sellerID, orderID, buyerID, snapshot, reason, at,
	)
	if err != nil {
		return err
	}
	if err = d.store.Add(ctx, ports.CollectionNotifications, sellerNotification.Document()); err != nil {
		d.logger.ErrorContext(ctx, "failed to write seller cancellation notification",
			"orderId", orderID.String(), "error", err)
	}
	return nil
}
