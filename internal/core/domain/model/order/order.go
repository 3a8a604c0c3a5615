package order

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Order is the aggregate root for a buyer's purchase record.
//
// Invariants maintained by this type:
//   - the identifier is valid and immutable
//   - status is always a member of the closed enumeration
//   - updatedAt is monotonically non-decreasing across mutations
//   - cancelledAt is set if and only if the status is Cancelled, and equals
//     the updatedAt written by the same cancellation
//
// Buyer and seller identifiers may be absent: order documents are written by
// the storefront, which historically stored the seller under a legacy key and
// sometimes omitted it entirely. Lifecycle operations tolerate this; only
// notification dispatch cares, and it degrades to a smaller fan-out.
//
// Example:
//
//	o, err := order.FromDocument(orderID, doc)
//	if err != nil {
//	    return err
//	}
//	if err := o.Cancel("Changed my mind", now); err != nil {
//	    return err
//	}
//	// o.CancelledAt() == o.UpdatedAt() == now
type Order struct {
	id           kernel.ID
	buyerID      kernel.ID // zero when the stored document lacks the field
	sellerID     kernel.ID // zero when the seller identifier cannot be resolved
	items        []LineItem
	totalAmount  float64
	imageURL     string
	status       Status
	cancelReason string
	createdAt    kernel.Timestamp
	updatedAt    kernel.Timestamp
	cancelledAt  kernel.Timestamp
}

// RestoreOrder reconstructs an order aggregate from persisted state.
// This is the only constructor: order creation belongs to the storefront
// subsystem, so every Order handled here already exists in the store.
//
// Validation covers the aggregate invariants; buyer and seller identifiers are
// intentionally allowed to be zero.
func RestoreOrder(
	id kernel.ID,
	buyerID kernel.ID,
	sellerID kernel.ID,
	items []LineItem,
	totalAmount float64,
	imageURL string,
	status Status,
	cancelReason string,
	createdAt kernel.Timestamp,
	updatedAt kernel.Timestamp,
	cancelledAt kernel.Timestamp,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if totalAmount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("%v is negative", totalAmount),
		)
	}
	if (status == Cancelled) != !cancelledAt.IsZero() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"cancelledAt",
			fmt.Errorf("cancelledAt must be set if and only if status is %s", Cancelled),
		)
	}

	return &Order{
		id:           id,
		buyerID:      buyerID,
		sellerID:     sellerID,
		items:        items,
		totalAmount:  totalAmount,
		imageURL:     imageURL,
		status:       status,
		cancelReason: cancelReason,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		cancelledAt:  cancelledAt,
	}, nil
}

// ChangeStatus transitions the order to newStatus and refreshes updatedAt.
//
// Cancellation is rejected here: use Cancel, which writes the cancellation
// fields together with the status. The timestamp must not precede the current
// updatedAt, preserving the monotonicity invariant.
func (o *Order) ChangeStatus(newStatus Status, at kernel.Timestamp) error {
	if newStatus == Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition to %s must go through Cancel", Cancelled),
		)
	}

	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}
	if err := o.validateMutationTime(at); err != nil {
		return err
	}

	o.status = next
	o.updatedAt = at
	return nil
}

// Cancel transitions the order to Cancelled, recording the reason and setting
// cancelledAt and updatedAt to the same instant. The reason may be empty.
// Cancelling an already cancelled order is rejected (Cancelled is terminal).
func (o *Order) Cancel(reason string, at kernel.Timestamp) error {
	next, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}
	if err := o.validateMutationTime(at); err != nil {
		return err
	}

	o.status = next
	o.cancelReason = reason
	o.cancelledAt = at
	o.updatedAt = at
	return nil
}

func (o *Order) validateMutationTime(at kernel.Timestamp) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	if at.Before(o.updatedAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"timestamp",
			fmt.Errorf("%d precedes the order's last update %d", at.Millis(), o.updatedAt.Millis()),
		)
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// BuyerID returns the buyer's identifier. May be the zero ID.
func (o *Order) BuyerID() kernel.ID {
	return o.buyerID
}

// SellerID returns the seller's identifier. May be the zero ID.
func (o *Order) SellerID() kernel.ID {
	return o.sellerID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the monetary total of the order.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// ImageURL returns the order's representative image URL. May be empty.
func (o *Order) ImageURL() string {
	return o.imageURL
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CancelReason returns the cancellation reason. Empty unless cancelled.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() kernel.Timestamp {
	return o.createdAt
}

// UpdatedAt returns the time of the last status mutation.
func (o *Order) UpdatedAt() kernel.Timestamp {
	return o.updatedAt
}

// CancelledAt returns the cancellation time; zero unless cancelled.
func (o *Order) CancelledAt() kernel.Timestamp {
	return o.cancelledAt
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}
