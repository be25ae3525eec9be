// Package persistence selects the store backend named in config.
package persistence

import (
	"log/slog"

	"hosting/config"
	"hosting/internal/domain/repository"
	"hosting/internal/errors"
	"hosting/internal/infra/persistence/memory"
	"hosting/internal/infra/persistence/mongo"
	"hosting/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories exposes the repositories of the selected backend to Fx.
type Repositories struct {
	fx.Out

	Accounts repository.AccountRepository
	Products repository.ProductRepository
}

// NewRepositories opens the configured store and builds its repositories.
func NewRepositories(params Params) (Repositories, error) {
	driver := params.Config.Store.Driver
	logger := params.Logger.With(slog.String("store", driver))

	switch driver {
	case config.StoreDriverMongo:
		db, err := mongo.New(mongo.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Accounts: mongo.NewAccountRepository(db),
			Products: mongo.NewProductRepository(db),
		}, nil

	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Accounts: postgres.NewAccountRepository(db),
			Products: postgres.NewProductRepository(db),
		}, nil

	case config.StoreDriverMemory:
		logger.Warn("Using in-memory store, data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			Accounts: memory.NewAccountRepository(store),
			Products: memory.NewProductRepository(store),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported store driver: %q", driver)
	}
}
