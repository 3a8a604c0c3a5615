package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// GetStaleOrdersQueryHandler finds non-terminal orders that have not been
// updated since the query's cutoff. Orders in DELIVERED or CANCELLED status
// are excluded: they are done moving and are never stale.
type GetStaleOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleOrdersQueryHandler creates a handler for stale order queries.
func NewGetStaleOrdersQueryHandler(db *gorm.DB) GetStaleOrdersQueryHandler {
	return GetStaleOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted oldest first.
func (h GetStaleOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStaleOrdersQuery,
) ([]GetStaleOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			data->>'status',
			(data->>'updatedAt')::bigint
		FROM documents
		WHERE collection = ?
		  AND data->>'status' NOT IN (?, ?)
		  AND (data->>'updatedAt')::bigint < ?
		ORDER BY (data->>'updatedAt')::bigint
	`, ports.CollectionOrders, order.Delivered.Code(), order.Cancelled.Code(), query.Cutoff().Millis()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetStaleOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetStaleOrdersQueryResponse
		if err = rows.Scan(&resp.ID, &resp.Status, &resp.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
