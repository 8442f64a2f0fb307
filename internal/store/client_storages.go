package store

import (
	"context"
	"fmt"

	"github.com/bachelormess/mess-manager/internal/config"
	"github.com/bachelormess/mess-manager/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the client service layer.
type ClientStorages struct {
	// SessionRepository holds the single durable session record.
	SessionRepository LocalSessionRepository

	// OfflineQueueRepository holds form submissions awaiting resubmission.
	OfflineQueueRepository OfflineQueueRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Creates the local schema if absent.
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// the schema bootstrap fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), createClientSchema); err != nil {
		return nil, fmt.Errorf("client schema bootstrap failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository:      NewLocalSessionRepository(db, logger),
		OfflineQueueRepository: NewOfflineQueueRepository(db, logger),
	}, nil
}
