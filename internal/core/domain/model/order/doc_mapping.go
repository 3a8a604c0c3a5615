package order

import "marketplace/internal/core/domain/model/kernel"

// Document field names of an order, as written by the storefront.
const (
	FieldBuyerID       = "buyerId"
	FieldSellerID      = "sellerId"
	FieldLegacyOwnerID = "ownerId" // legacy alternate key for the seller
	FieldItems         = "items"
	FieldTotalAmount   = "totalAmount"
	FieldImageURL      = "imageUrl"
	FieldStatus        = "status"
	FieldCancelReason  = "cancelReason"
	FieldCreatedAt     = "createdAt"
	FieldUpdatedAt     = "updatedAt"
	FieldCancelledAt   = "cancelledAt"
)

// Document field names of a line item.
const (
	ItemFieldName         = "name"
	ItemFieldQuantity     = "quantity"
	ItemFieldQuantityUnit = "quantityUnit"
	ItemFieldUnitPrice    = "unitPrice"
)

// ResolveSellerID extracts the seller identifier from an order document,
// falling back to the legacy ownerId key. Returns "" when neither is present.
func ResolveSellerID(doc kernel.Document) string {
	if sellerID := doc.String(FieldSellerID); sellerID != "" {
		return sellerID
	}
	return doc.String(FieldLegacyOwnerID)
}

// FromDocument reconstructs an order aggregate from its document store
// representation. Mapping is tolerant of the storefront's older document
// shapes: missing party identifiers restore as zero IDs, malformed line items
// are skipped, and a cancelled order without a cancelledAt field inherits its
// updatedAt.
func FromDocument(id kernel.ID, doc kernel.Document) (*Order, error) {
	status, err := StatusFromCode(doc.String(FieldStatus))
	if err != nil {
		return nil, err
	}

	var buyerID kernel.ID
	if raw := doc.String(FieldBuyerID); raw != "" {
		buyerID, _ = kernel.NewID(raw)
	}

	var sellerID kernel.ID
	if raw := ResolveSellerID(doc); raw != "" {
		sellerID, _ = kernel.NewID(raw)
	}

	items := itemsFromDocuments(doc.Documents(FieldItems))

	updatedAt := kernel.TimestampFromMillis(doc.Int64(FieldUpdatedAt))
	var cancelledAt kernel.Timestamp
	if status == Cancelled {
		cancelledAt = kernel.TimestampFromMillis(doc.Int64(FieldCancelledAt))
		if cancelledAt.IsZero() {
			cancelledAt = updatedAt
		}
	}

	return RestoreOrder(
		id,
		buyerID,
		sellerID,
		items,
		doc.Float(FieldTotalAmount),
		doc.String(FieldImageURL),
		status,
		doc.String(FieldCancelReason),
		kernel.TimestampFromMillis(doc.Int64(FieldCreatedAt)),
		updatedAt,
		cancelledAt,
	)
}

func itemsFromDocuments(docs []kernel.Document) []LineItem {
	items := make([]LineItem, 0, len(docs))
	for _, d := range docs {
		quantity := d.Int(ItemFieldQuantity)
		if quantity <= 0 {
			quantity = 1
		}

		item, err := NewLineItem(
			d.String(ItemFieldName),
			quantity,
			d.String(ItemFieldQuantityUnit),
			d.Float(ItemFieldUnitPrice),
		)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}

// StatusUpdateFields returns the partial document written by a status update:
// the new status code and the refreshed updatedAt.
func StatusUpdateFields(o *Order) kernel.Document {
	return kernel.Document{
		FieldStatus:    o.Status().Code(),
		FieldUpdatedAt: o.UpdatedAt().Millis(),
	}
}

// CancellationFields returns the partial document written by a cancellation:
// status, cancelReason, cancelledAt, and updatedAt in one write.
func CancellationFields(o *Order) kernel.Document {
	return kernel.Document{
		FieldStatus:       o.Status().Code(),
		FieldCancelReason: o.CancelReason(),
		FieldCancelledAt:  o.CancelledAt().Millis(),
		FieldUpdatedAt:    o.UpdatedAt().Millis(),
	}
}
