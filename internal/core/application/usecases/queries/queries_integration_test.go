package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/docstore"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *docstore.GormDocumentStore
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&docstore.DocumentDTO{}, &docstore.ChildDocumentDTO{}))
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE documents, document_children").Error)

	store, err := docstore.NewGormDocumentStore(suite.db)
	suite.Require().NoError(err)
	suite.store = store
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) mustID(value string) kernel.ID {
	suite.T().Helper()
	id, err := kernel.NewID(value)
	suite.Require().NoError(err)
	return id
}

func (suite *QueriesIntegrationTestSuite) seedOrder(id string, status string, updatedAt int64) {
	suite.T().Helper()
	suite.Require().NoError(suite.db.Exec(`
		INSERT INTO documents (collection, id, data)
		VALUES ('orders', ?, jsonb_build_object('status', ?::text, 'updatedAt', ?::bigint))
	`, id, status, updatedAt).Error)
}

func (suite *QueriesIntegrationTestSuite) TestStatusHistoryOrderedByTimestamp() {
	ctx := context.Background()
	suite.seedOrder("abc123", "SHIPPED", 3000)

	// Appended out of timestamp order on purpose.
	entries := []kernel.Document{
		{"status": "SHIPPED", "timestamp": int64(3000), "notes": "Shipped"},
		{"status": "PAYMENT_RECEIVED", "timestamp": int64(1000), "notes": "Payment Received"},
		{"status": "PROCESSING", "timestamp": int64(2000), "notes": "picking items"},
	}
	for _, entry := range entries {
		suite.Require().NoError(suite.store.AppendChild(ctx, "orders", "abc123", "statusHistory", entry))
	}

	query, err := queries.NewGetOrderStatusHistoryQuery(suite.mustID("abc123"))
	suite.Require().NoError(err)
	handler := queries.NewGetOrderStatusHistoryQueryHandler(suite.db)

	history, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(history, 3)
	suite.Equal("PAYMENT_RECEIVED", history[0].Status)
	suite.Equal("PROCESSING", history[1].Status)
	suite.Equal("picking items", history[1].Notes)
	suite.Equal("SHIPPED", history[2].Status)
	suite.Equal(int64(3000), history[2].Timestamp)
}

func (suite *QueriesIntegrationTestSuite) TestStatusHistoryEmptyForOrderWithoutEntries() {
	suite.seedOrder("abc123", "PAYMENT_RECEIVED", 1000)

	query, err := queries.NewGetOrderStatusHistoryQuery(suite.mustID("abc123"))
	suite.Require().NoError(err)
	handler := queries.NewGetOrderStatusHistoryQueryHandler(suite.db)

	history, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(history)
}

func (suite *QueriesIntegrationTestSuite) TestStatusHistoryMissingOrder() {
	query, err := queries.NewGetOrderStatusHistoryQuery(suite.mustID("nope"))
	suite.Require().NoError(err)
	handler := queries.NewGetOrderStatusHistoryQueryHandler(suite.db)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestStaleOrders() {
	suite.seedOrder("old-processing", "PROCESSING", 1000)
	suite.seedOrder("old-delivered", "DELIVERED", 1000)
	suite.seedOrder("old-cancelled", "CANCELLED", 1000)
	suite.seedOrder("fresh", "SHIPPED", 9000)

	query, err := queries.NewGetStaleOrdersQuery(kernel.TimestampFromMillis(5000))
	suite.Require().NoError(err)
	handler := queries.NewGetStaleOrdersQueryHandler(suite.db)

	stale, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(stale, 1)
	suite.Equal("old-processing", stale[0].ID)
	suite.Equal("PROCESSING", stale[0].Status)
	suite.Equal(int64(1000), stale[0].UpdatedAt)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}

func TestNewGetOrderStatusHistoryQuery(t *testing.T) {
	t.Run("invalid order id is rejected", func(t *testing.T) {
		_, err := queries.NewGetOrderStatusHistoryQuery(kernel.ID{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetOrderStatusHistoryQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderStatusHistoryQueryIsNotConstructed)
	})
}

func TestNewGetStaleOrdersQuery(t *testing.T) {
	t.Run("zero cutoff is rejected", func(t *testing.T) {
		_, err := queries.NewGetStaleOrdersQuery(kernel.Timestamp{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetStaleOrdersQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetStaleOrdersQueryIsNotConstructed)
	})
}
