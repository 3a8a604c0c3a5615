package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// Collection names in the document store.
const (
	// CollectionOrders holds one document per order aggregate.
	CollectionOrders = "orders"

	// SubcollectionStatusHistory is the append-only child collection of an
	// order document holding its status history entries.
	SubcollectionStatusHistory = "statusHistory"

	// CollectionNotifications holds user-facing notification documents.
	CollectionNotifications = "notifications"
)

// DocumentStore defines the persistence contract over schemaless document
// collections. Every write is an independent operation; the store offers no
// multi-document transactions, and callers must not assume any.
type DocumentStore interface {
	// Get retrieves a document by collection and identifier.
	// Returns errs.ObjectNotFoundError when no such document exists.
	Get(ctx context.Context, collection string, id string) (kernel.Document, error)

	// Update applies a partial update to an existing document: fields present
	// in the patch are written, all other fields are left untouched.
	// Returns errs.ObjectNotFoundError when no such document exists.
	Update(ctx context.Context, collection string, id string, fields kernel.Document) error

	// AppendChild adds a document to a child collection of an existing parent
	// document. The child receives a generated identifier; existing children
	// are never modified.
	AppendChild(ctx context.Context, collection string, parentID string, subcollection string, doc kernel.Document) error

	// Add inserts a new document with a generated identifier into a top-level
	// collection.
	Add(ctx context.Context, collection string, doc kernel.Document) error
}
