package queries

import (
	"context"
	"encoding/json"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusHistoryQueryHandler reads an order's history entries from the
// document store tables. Requires a GORM database connection.
type GetOrderStatusHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusHistoryQueryHandler creates a handler for status history
// queries.
func NewGetOrderStatusHistoryQueryHandler(db *gorm.DB) GetOrderStatusHistoryQueryHandler {
	return GetOrderStatusHistoryQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the order
// does not exist, and an empty slice when it exists but has no history yet.
func (h GetOrderStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusHistoryQuery,
) ([]GetOrderStatusHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM documents
		WHERE collection = ? AND id = ?
	`, ports.CollectionOrders, query.OrderID().String()).Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT data
		FROM document_children
		WHERE collection = ? AND parent_id = ? AND subcollection = ?
		ORDER BY (data->>'timestamp')::bigint
	`, ports.CollectionOrders, query.OrderID().String(), ports.SubcollectionStatusHistory).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetOrderStatusHistoryQueryResponse, 0)
	for rows.Next() {
		var raw []byte
		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}

		var doc kernel.Document
		if err = json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}

		entries = append(entries, GetOrderStatusHistoryQueryResponse{
			Status:    doc.String(order.HistoryFieldStatus),
			Timestamp: doc.Int64(order.HistoryFieldTimestamp),
			Notes:     doc.String(order.HistoryFieldNotes),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
