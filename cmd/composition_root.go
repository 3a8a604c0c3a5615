package cmd

import (
	"log/slog"

	"marketplace/internal/adapters/out/postgres/docstore"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	store      ports.DocumentStore
	ledger     services.StatusHistoryLedger
	dispatcher *services.NotificationDispatcher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	store, err := docstore.NewGormDocumentStore(gormDB)
	if err != nil {
		return CompositionRoot{}, err
	}

	ledger, err := services.NewStatusHistoryLedger(store)
	if err != nil {
		return CompositionRoot{}, err
	}

	dispatcher, err := services.NewNotificationDispatcher(store, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		store:      store,
		ledger:     ledger,
		dispatcher: dispatcher,
	}, nil
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() (commands.UpdateOrderStatusCommandHandler, error) {
	return commands.NewUpdateOrderStatusCommandHandler(c.store, c.ledger, c.dispatcher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() (commands.CancelOrderCommandHandler, error) {
	return commands.NewCancelOrderCommandHandler(c.store, c.ledger, c.dispatcher)
}

func (c *CompositionRoot) CreateGetOrderStatusHistoryQueryHandler() queries.GetOrderStatusHistoryQueryHandler {
	return queries.NewGetOrderStatusHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleOrdersQueryHandler() queries.GetStaleOrdersQueryHandler {
	return queries.NewGetStaleOrdersQueryHandler(c.gormDB)
}
