package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/models"
)

// bazarRepository is the PostgreSQL-backed implementation of
// [BazarRepository].
type bazarRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBazarRepository constructs a [BazarRepository] backed by the provided
// database connection and logger.
func NewBazarRepository(db *DB, logger *logger.Logger) BazarRepository {
	logger.Debug().Msg("creating bazar repository")
	return &bazarRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEntry persists a new purchase entry and returns it with
// server-assigned timestamps.
func (r *bazarRepository) CreateEntry(ctx context.Context, entry models.BazarEntry) (models.BazarEntry, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBazarEntry,
		entry.ID, entry.UserID, entry.Date, entry.Items, entry.Amount, entry.Status)

	var created models.BazarEntry
	if err := row.Scan(&created.ID, &created.UserID, &created.Date, &created.Items,
		&created.Amount, &created.Status, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*bazarRepository.CreateEntry").Msg("error: scanning error")
		return models.BazarEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListEntries returns the entries matching filter, newest date first.
func (r *bazarRepository) ListEntries(ctx context.Context, filter BazarFilter) ([]models.BazarEntry, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "user_id", "entry_date", "items", "amount", "status", "created_at", "updated_at").
		From(models.BazarEntry{}.TableName()).
		OrderBy("entry_date DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.UserID != "" {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Msg("error building bazar list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bazarRepository.ListEntries").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.BazarEntry
	for rows.Next() {
		var e models.BazarEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Items, &e.Amount,
			&e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*bazarRepository.ListEntries").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// UpdateStatus moves an entry to a new moderation state. Unknown entry IDs
// are mapped to [ErrBazarEntryNotFound].
func (r *bazarRepository) UpdateStatus(ctx context.Context, entryID string, status models.ApprovalStatus) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateBazarStatus, status, entryID)
	if err != nil {
		log.Err(err).Str("func", "*bazarRepository.UpdateStatus").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBazarEntryNotFound
	}

	return nil
}
