package store

import (
	"context"
	"fmt"

	"github.com/bachelormess/mess-manager/internal/config"
	"github.com/bachelormess/mess-manager/internal/logger"
)

// Storages groups all server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository      UserRepository
	MealRepository      MealRepository
	BazarRepository     BazarRepository
	DashboardRepository DashboardRepository
}

// NewStorages initialises the server storage layer: it opens the PostgreSQL
// connection from cfg, applies pending goose migrations, and wires every
// repository to the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		MealRepository:      NewMealRepository(db, logger),
		BazarRepository:     NewBazarRepository(db, logger),
		DashboardRepository: NewDashboardRepository(db, logger),
	}, nil
}
