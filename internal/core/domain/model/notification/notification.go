package notification

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// Type classifies the order event a notification describes.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypeOrderUpdate marks a status-update notification to the buyer.
	TypeOrderUpdate

	// TypeOrderCancelled marks a cancellation notification, sent to the buyer
	// and, when resolvable, the seller.
	TypeOrderCancelled
)

func typeCodes() map[Type]string {
	return map[Type]string{
		TypeOrderUpdate:    "order_update",
		TypeOrderCancelled: "order_cancelled",
	}
}

// Code returns the wire representation of the type, e.g. "order_update".
func (t Type) Code() string {
	if code, ok := typeCodes()[t]; ok {
		return code
	}
	return "unknown"
}

// Validate checks that the Type is a member of the closed enumeration.
func (t Type) Validate() error {
	if _, ok := typeCodes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"notification type",
			fmt.Errorf("%d is not a valid notification type", t),
		)
	}
	return nil
}

// Document field names of a notification.
const (
	FieldUserID       = "userId"
	FieldType         = "type"
	FieldTitle        = "title"
	FieldMessage      = "message"
	FieldOrderID      = "orderId"
	FieldTimestamp    = "timestamp"
	FieldRead         = "read"
	FieldItemName     = "name"
	FieldPrice        = "price"
	FieldQuantity     = "quantity"
	FieldQuantityUnit = "quantityUnit"
	FieldImageURL     = "imageUrl"
	FieldCancelReason = "cancelReason"
	FieldSellerID     = "sellerId"
	FieldBuyerID      = "buyerId"
)

// orderRefLength is how many trailing characters of the order id are embedded
// in user-facing notification text.
const orderRefLength = 6

// ItemSnapshot captures the order fields rendered inside a cancellation
// notification. Price carries the order's total amount.
type ItemSnapshot struct {
	Name         string
	Quantity     int
	QuantityUnit string
	Price        float64
	ImageURL     string
}

// SnapshotFromOrderDocument extracts an ItemSnapshot from an order document,
// applying defaults: item name "Order", quantity 1, price 0, empty image URL.
// Only the first line item is snapshotted.
func SnapshotFromOrderDocument(doc kernel.Document) ItemSnapshot {
	snapshot := ItemSnapshot{
		Name:     "Order",
		Quantity: 1,
		Price:    doc.Float(order.FieldTotalAmount),
		ImageURL: doc.String(order.FieldImageURL),
	}

	items := doc.Documents(order.FieldItems)
	if len(items) == 0 {
		return snapshot
	}

	first := items[0]
	if name := first.String(order.ItemFieldName); name != "" {
		snapshot.Name = name
	}
	if quantity := first.Int(order.ItemFieldQuantity); quantity > 0 {
		snapshot.Quantity = quantity
	}
	snapshot.QuantityUnit = first.String(order.ItemFieldQuantityUnit)
	return snapshot
}

// Notification is a persisted message addressed to one user describing an
// order event. Created once, never updated by this service; the read flag
// starts false and is flipped by the notification inbox.
type Notification struct {
	userID       kernel.ID
	kind         Type
	title        string
	message      string
	orderID      kernel.ID
	timestamp    kernel.Timestamp
	read         bool
	cancellation *cancellationDetails
}

type cancellationDetails struct {
	snapshot        ItemSnapshot
	reason          string
	counterpartyKey string
	counterpartyID  kernel.ID
}

// NewStatusUpdateNotification builds the buyer's notification for a status
// transition. The message embeds a short order reference and the status's
// display label.
func NewStatusUpdateNotification(
	buyerID kernel.ID,
	orderID kernel.ID,
	status order.Status,
	at kernel.Timestamp,
) (Notification, error) {
	if err := validateRecipient(buyerID, orderID, at); err != nil {
		return Notification{}, err
	}
	if err := status.Validate(); err != nil {
		return Notification{}, err
	}

	return Notification{
		userID:    buyerID,
		kind:      TypeOrderUpdate,
		title:     "Order Update",
		message:   fmt.Sprintf("Your order #%s is now %s.", orderID.Suffix(orderRefLength), status.DisplayLabel()),
		orderID:   orderID,
		timestamp: at,
	}, nil
}

// NewBuyerCancellationNotification builds the buyer's notification for a
// cancellation, carrying the reason, the item snapshot, and a back-reference
// to the seller. The seller id may be the zero ID when it could not be
// resolved; the back-reference is then omitted from the document.
func NewBuyerCancellationNotification(
	buyerID kernel.ID,
	orderID kernel.ID,
	sellerID kernel.ID,
	snapshot ItemSnapshot,
	reason string,
	at kernel.Timestamp,
) (Notification, error) {
	if err := validateRecipient(buyerID, orderID, at); err != nil {
		return Notification{}, err
	}

	message := fmt.Sprintf("Your order #%s has been cancelled.", orderID.Suffix(orderRefLength))
	if reason != "" {
		message = fmt.Sprintf("Your order #%s has been cancelled: %s", orderID.Suffix(orderRefLength), reason)
	}

	return Notification{
		userID:    buyerID,
		kind:      TypeOrderCancelled,
		title:     "Order Cancelled",
		message:   message,
		orderID:   orderID,
		timestamp: at,
		cancellation: &cancellationDetails{
			snapshot:        snapshot,
			reason:          reason,
			counterpartyKey: FieldSellerID,
			counterpartyID:  sellerID,
		},
	}, nil
}

// NewSellerCancellationNotification builds the seller's notification for a
// buyer-initiated cancellation, mirroring the buyer's with a back-reference to
// the buyer and the distinct "cancelled by buyer" title.
func NewSellerCancellationNotification(
	sellerID kernel.ID,
	orderID kernel.ID,
	buyerID kernel.ID,
	snapshot ItemSnapshot,
	reason string,
	at kernel.Timestamp,
) (Notification, error) {
	if err := validateRecipient(sellerID, orderID, at); err != nil {
		return Notification{}, err
	}

	message := fmt.Sprintf("Order #%s has been cancelled by the buyer.", orderID.Suffix(orderRefLength))
	if reason != "" {
		message = fmt.Sprintf("Order #%s has been cancelled by the buyer: %s", orderID.Suffix(orderRefLength), reason)
	}

	return Notification{
		userID:    sellerID,
		kind:      TypeOrderCancelled,
		title:     "Order Cancelled by Buyer",
		message:   message,
		orderID:   orderID,
		timestamp: at,
		cancellation: &cancellationDetails{
			snapshot:        snapshot,
			reason:          reason,
			counterpartyKey: FieldBuyerID,
			counterpartyID:  buyerID,
		},
	}, nil
}

func validateRecipient(userID, orderID kernel.ID, at kernel.Timestamp) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	return nil
}

// UserID returns the recipient's identifier.
func (n Notification) UserID() kernel.ID {
	return n.userID
}

// Type returns the notification's event type.
func (n Notification) Type() Type {
	return n.kind
}

// Title returns the rendered title.
func (n Notification) Title() string {
	return n.title
}

// Message returns the rendered message body.
func (n Notification) Message() string {
	return n.message
}

// OrderID returns the non-owning back-reference to the order.
func (n Notification) OrderID() kernel.ID {
	return n.orderID
}

// Timestamp returns the notification's creation time.
func (n Notification) Timestamp() kernel.Timestamp {
	return n.timestamp
}

// Document returns the notification's document store representation.
func (n Notification) Document() kernel.Document {
	doc := kernel.Document{
		FieldUserID:    n.userID.String(),
		FieldType:      n.kind.Code(),
		FieldTitle:     n.title,
		FieldMessage:   n.message,
		FieldOrderID:   n.orderID.String(),
		FieldTimestamp: n.timestamp.Millis(),
		FieldRead:      n.read,
	}

	if c := n.cancellation; c != nil {
		doc[FieldItemName] = c.snapshot.Name
		doc[FieldPrice] = c.snapshot.Price
		doc[FieldQuantity] = c.snapshot.Quantity
		doc[FieldQuantityUnit] = c.snapshot.QuantityUnit
		doc[FieldImageURL] = c.snapshot.ImageURL
		doc[FieldCancelReason] = c.reason
		if c.counterpartyID.Validate() == nil {
			doc[c.counterpartyKey] = c.counterpartyID.String()
		}
	}

	return doc
}
