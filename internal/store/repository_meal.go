package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/models"
	"github.com/jackc/pgerrcode"
)

// mealRepository is the PostgreSQL-backed implementation of [MealRepository].
type mealRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMealRepository constructs a [MealRepository] backed by the provided
// database connection and logger.
func NewMealRepository(db *DB, logger *logger.Logger) MealRepository {
	logger.Debug().Msg("creating meal repository")
	return &mealRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMeal persists a new daily meal record. The (user_id, meal_date)
// uniqueness constraint is authoritative; its violation is mapped to
// [ErrMealAlreadySubmitted].
func (r *mealRepository) CreateMeal(ctx context.Context, meal models.Meal) (models.Meal, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMeal,
		meal.ID, meal.UserID, meal.Date, meal.Breakfast, meal.Lunch, meal.Dinner, meal.Status)

	var created models.Meal
	if err := row.Scan(&created.ID, &created.UserID, &created.Date,
		&created.Breakfast, &created.Lunch, &created.Dinner, &created.Status,
		&created.CreatedAt, &created.UpdatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("user_id", meal.UserID).Time("date", meal.Date).Msg("duplicate meal record")
			return models.Meal{}, ErrMealAlreadySubmitted
		default:
			log.Err(err).Str("func", "*mealRepository.CreateMeal").Msg("error: scanning error")
			return models.Meal{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// ListMeals returns the records matching filter, newest date first. The
// query is built dynamically with squirrel so that the caller can combine
// owner and status constraints freely.
func (r *mealRepository) ListMeals(ctx context.Context, filter MealFilter) ([]models.Meal, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "user_id", "meal_date", "breakfast", "lunch", "dinner", "status", "created_at", "updated_at").
		From(models.Meal{}.TableName()).
		OrderBy("meal_date DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.UserID != "" {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Msg("error building meal list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*mealRepository.ListMeals").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var meals []models.Meal
	for rows.Next() {
		var m models.Meal
		if err := rows.Scan(&m.ID, &m.UserID, &m.Date, &m.Breakfast, &m.Lunch, &m.Dinner,
			&m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*mealRepository.ListMeals").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return meals, nil
}

// UpdateStatus moves a record to a new moderation state. Unknown record IDs
// are mapped to [ErrMealNotFound].
func (r *mealRepository) UpdateStatus(ctx context.Context, mealID string, status models.ApprovalStatus) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateMealStatus, status, mealID)
	if err != nil {
		log.Err(err).Str("func", "*mealRepository.UpdateStatus").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMealNotFound
	}

	return nil
}
