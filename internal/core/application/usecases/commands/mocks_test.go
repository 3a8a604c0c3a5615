package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDocumentStore struct {
	mock.Mock
}

func (m *mockDocumentStore) Get(ctx context.Context, collection string, id string) (kernel.Document, error) {
	args := m.Called(ctx, collection, id)
	if doc, ok := args.Get(0).(kernel.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocumentStore) Update(ctx context.Context, collection string, id string, fields kernel.Document) error {
	return m.Called(ctx, collection, id, fields).Error(0)
}

func (m *mockDocumentStore) AppendChild(ctx context.Context, collection string, parentID string, subcollection string, doc kernel.Document) error {
	return m.Called(ctx, collection, parentID, subcollection, doc).Error(0)
}

func (m *mockDocumentStore) Add(ctx context.Context, collection string, doc kernel.Document) error {
	return m.Called(ctx, collection, doc).Error(0)
}

type mockHistoryLedger struct {
	mock.Mock
}

func (m *mockHistoryLedger) Append(ctx context.Context, orderID kernel.ID, entry order.StatusHistoryEntry) error {
	return m.Called(ctx, orderID, entry).Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyStatusUpdate(ctx context.Context, orderID kernel.ID, status order.Status) error {
	return m.Called(ctx, orderID, status).Error(0)
}

func (m *mockNotifier) NotifyCancellation(ctx context.Context, orderID kernel.ID, reason string) error {
	return m.Called(ctx, orderID, reason).Error(0)
}

func mustID(t *testing.T, value string) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func fixedClock(millis int64) func() time.Time {
	return func() time.Time {
		return time.UnixMilli(millis)
	}
}

func storedOrderDoc() kernel.Document {
	return kernel.Document{
		"buyerId":     "u1",
		"sellerId":    "u2",
		"totalAmount": 250.0,
		"status":      "PROCESSING",
		"createdAt":   float64(1000),
		"updatedAt":   float64(2000),
		"items": []any{
			map[string]any{"name": "Rice", "quantity": float64(5)},
		},
	}
}
