package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/models"
)

// ErrLocalSessionNotFound is returned by LoadSession when no session record
// is persisted. This is the normal anonymous state, not a failure.
var ErrLocalSessionNotFound = errors.New("local session not found")

// localSessionRepository is the SQLite-backed implementation of
// [LocalSessionRepository]. The identity half of the record is stored as a
// JSON blob so schema changes on the server side do not require local
// migrations.
type localSessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLocalSessionRepository constructs a [LocalSessionRepository] backed by
// the client's local database connection.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	logger.Debug().Msg("creating local session repository")
	return &localSessionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSession implements [LocalSessionRepository]. The single-row table is
// upserted so the stored record is always overwritten wholesale.
func (r *localSessionRepository) SaveSession(ctx context.Context, record models.SessionRecord) error {
	identity, err := json.Marshal(record.Identity)
	if err != nil {
		return fmt.Errorf("encode session identity: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, saveSession, record.Token, string(identity), record.SavedAt); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// LoadSession implements [LocalSessionRepository]. A missing row maps to
// [ErrLocalSessionNotFound]; a row whose identity blob cannot be decoded is
// reported as an error so the caller can fall back to the anonymous state.
func (r *localSessionRepository) LoadSession(ctx context.Context) (models.SessionRecord, error) {
	var record models.SessionRecord
	var identity string

	row := r.db.QueryRowContext(ctx, loadSession)
	if err := row.Scan(&record.Token, &identity, &record.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SessionRecord{}, ErrLocalSessionNotFound
		}
		r.logger.Err(err).Str("func", "*localSessionRepository.LoadSession").Msg("error: scanning error")
		return models.SessionRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal([]byte(identity), &record.Identity); err != nil {
		return models.SessionRecord{}, fmt.Errorf("decode session identity: %w", err)
	}

	return record, nil
}

// ClearSession implements [LocalSessionRepository]. Deleting an absent
// record is a no-op.
func (r *localSessionRepository) ClearSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearSession); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.ClearSession").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
