// Package persistence selects the storage backend for orders and number transfers.
package persistence

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Module provides the session repository and the order, porting and transaction repositories.
var Module = fx.Options(
	fx.Provide(
		memory.NewSessionRepository,
		NewRepositories,
	),
)

// Params defines the dependencies of NewRepositories.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of durable repositories handed to the use cases.
type Repositories struct {
	fx.Out

	Orders    repository.OrderRepository
	Portings  repository.PortingRepository
	TxManager repository.TransactionManager
}

// NewRepositories uses PostgreSQL when it is configured and an in-process store otherwise.
func NewRepositories(params Params) (Repositories, error) {
	if params.Config.Postgres == nil {
		params.Logger.Info("PostgreSQL not configured, keeping orders in memory")
		st := memory.NewStore()

		return Repositories{
			Orders:    memory.NewOrderRepository(st),
			Portings:  memory.NewPortingRepository(st),
			TxManager: memory.NewTransactionManager(st),
		}, nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return Repositories{}, err
	}

	return Repositories{
		Orders:    postgres.NewOrderRepository(db),
		Portings:  postgres.NewPortingRepository(db),
		TxManager: postgres.NewTransactionManager(db),
	}, nil
}
