package store

import (
	"context"
	"fmt"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/models"
)

// offlineQueueRepository is the SQLite-backed implementation of
// [OfflineQueueRepository].
type offlineQueueRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOfflineQueueRepository constructs an [OfflineQueueRepository] backed by
// the client's local database connection.
func NewOfflineQueueRepository(db *DB, logger *logger.Logger) OfflineQueueRepository {
	logger.Debug().Msg("creating offline queue repository")
	return &offlineQueueRepository{
		db:     db,
		logger: logger,
	}
}

// Enqueue implements [OfflineQueueRepository].
func (r *offlineQueueRepository) Enqueue(ctx context.Context, kind models.SubmissionKind, payload []byte) error {
	if _, err := r.db.ExecContext(ctx, enqueueSubmission, string(kind), payload); err != nil {
		r.logger.Err(err).Str("func", "*offlineQueueRepository.Enqueue").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Pending implements [OfflineQueueRepository]. Submissions come back in
// insertion order so the flush job replays them chronologically.
func (r *offlineQueueRepository) Pending(ctx context.Context) ([]models.PendingSubmission, error) {
	rows, err := r.db.QueryContext(ctx, pendingSubmissions)
	if err != nil {
		r.logger.Err(err).Str("func", "*offlineQueueRepository.Pending").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var pending []models.PendingSubmission
	for rows.Next() {
		var p models.PendingSubmission
		if err := rows.Scan(&p.ID, &p.Kind, &p.Payload, &p.Attempts, &p.CreatedAt); err != nil {
			r.logger.Err(err).Str("func", "*offlineQueueRepository.Pending").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		pending = append(pending, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return pending, nil
}

// MarkAttempt implements [OfflineQueueRepository].
func (r *offlineQueueRepository) MarkAttempt(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, markSubmissionAttempt, id); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Remove implements [OfflineQueueRepository].
func (r *offlineQueueRepository) Remove(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, removeSubmission, id); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
