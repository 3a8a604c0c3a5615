package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetStaleOrdersQueryIsNotConstructed = errors.New(
	"GetStaleOrdersQuery must be created via NewGetStaleOrdersQuery constructor",
)

// GetStaleOrdersQuery retrieves non-terminal orders whose updatedAt is older
// than the cutoff. Used by the watchdog job to surface orders that stopped
// moving through the lifecycle.
type GetStaleOrdersQuery struct {
	cutoff kernel.Timestamp

	guard guard.ConstructorGuard
}

// NewGetStaleOrdersQuery creates a query for orders last updated before the
// cutoff.
func NewGetStaleOrdersQuery(cutoff kernel.Timestamp) (GetStaleOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetStaleOrdersQuery{}, errors.New("cutoff is required")
	}

	return GetStaleOrdersQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleOrdersQueryIsNotConstructed)
}

// Cutoff returns the staleness cutoff.
func (q GetStaleOrdersQuery) Cutoff() kernel.Timestamp {
	return q.cutoff
}

// GetStaleOrdersQueryResponse represents one stale order.
type GetStaleOrdersQueryResponse struct {
	ID        string
	Status    string
	UpdatedAt int64
}
