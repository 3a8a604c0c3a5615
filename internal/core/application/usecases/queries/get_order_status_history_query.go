// Package queries contains read-only operations over the document store.
// Query handlers bypass the domain model and read the stored documents
// directly, reconstructing ordering from the data itself.
package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderStatusHistoryQueryIsNotConstructed = errors.New(
	"GetOrderStatusHistoryQuery must be created via NewGetOrderStatusHistoryQuery constructor",
)

// GetOrderStatusHistoryQuery retrieves the status history of one order,
// ordered by entry timestamp. Entries are returned oldest first; because the
// ledger carries no insertion order, ties and causally inverted entries from
// concurrent updates appear in timestamp order.
type GetOrderStatusHistoryQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusHistoryQuery creates a query for an order's status history.
func NewGetOrderStatusHistoryQuery(orderID kernel.ID) (GetOrderStatusHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusHistoryQuery{}, err
	}

	return GetOrderStatusHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusHistoryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose history is requested.
func (q GetOrderStatusHistoryQuery) OrderID() kernel.ID {
	return q.orderID
}

// GetOrderStatusHistoryQueryResponse represents one status history entry.
type GetOrderStatusHistoryQueryResponse struct {
	Status    string
	Timestamp int64
	Notes     string
}
