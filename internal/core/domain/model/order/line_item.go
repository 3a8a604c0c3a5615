package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// LineItem is one entry of an order's item list: a named product with a
// quantity and unit price. Items are read-only for this subsystem; they are
// snapshotted into cancellation notifications but never modified.
type LineItem struct {
	name         string
	quantity     int
	quantityUnit string
	unitPrice    float64
}

// NewLineItem creates a validated line item.
// Name is required, quantity must be positive, and unit price non-negative.
func NewLineItem(name string, quantity int, quantityUnit string, unitPrice float64) (LineItem, error) {
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%v is negative", unitPrice),
		)
	}

	return LineItem{
		name:         name,
		quantity:     quantity,
		quantityUnit: quantityUnit,
		unitPrice:    unitPrice,
	}, nil
}

// maxItemQuantity bounds a single line item's quantity. The storefront enforces
// a matching limit at order creation.
const maxItemQuantity = 1_000_000

// Name returns the product name.
func (li LineItem) Name() string {
	return li.name
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// QuantityUnit returns the unit the quantity is measured in (e.g. "kg").
// May be empty.
func (li LineItem) QuantityUnit() string {
	return li.quantityUnit
}

// UnitPrice returns the price per unit.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}
