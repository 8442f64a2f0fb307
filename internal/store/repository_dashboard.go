package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/models"
)

// dashboardRepository runs the aggregate queries behind the dashboard:
// meal counts and bazar amount sums grouped by moderation status, plus the
// per-member breakdown for admins. All queries are built with squirrel so
// the optional per-member scope composes cleanly.
type dashboardRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDashboardRepository constructs a [DashboardRepository] backed by the
// provided database connection and logger.
func NewDashboardRepository(db *DB, logger *logger.Logger) DashboardRepository {
	logger.Debug().Msg("creating dashboard repository")
	return &dashboardRepository{
		db:     db,
		logger: logger,
	}
}

// Stats aggregates meal counts and bazar sums, scoped to one member when
// userID is non-empty and to the whole mess otherwise. The meal rate is
// derived in Go from the two sums rather than in SQL.
func (r *dashboardRepository) Stats(ctx context.Context, userID string) (models.DashboardStats, error) {
	var stats models.DashboardStats

	if err := r.mealStats(ctx, userID, &stats); err != nil {
		return models.DashboardStats{}, err
	}
	if err := r.bazarStats(ctx, userID, &stats); err != nil {
		return models.DashboardStats{}, err
	}

	if stats.TotalMeals > 0 {
		stats.MealRate = stats.ApprovedBazarAmount / stats.TotalMeals
	}

	return stats, nil
}

func (r *dashboardRepository) mealStats(ctx context.Context, userID string, stats *models.DashboardStats) error {
	log := logger.FromContext(ctx)

	builder := sq.Select(
		`coalesce(sum(CASE WHEN status = 'approved' THEN
			(breakfast::int + lunch::int + dinner::int) ELSE 0 END), 0) AS total_meals`,
		`count(*) FILTER (WHERE status = 'pending') AS pending_records`,
		`count(*) FILTER (WHERE status = 'rejected') AS rejected_records`,
	).From(models.Meal{}.TableName()).PlaceholderFormat(sq.Dollar)

	if userID != "" {
		builder = builder.Where(sq.Eq{"user_id": userID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&stats.TotalMeals, &stats.PendingMealRecords, &stats.RejectedMealRecords); err != nil {
		log.Err(err).Str("func", "*dashboardRepository.mealStats").Msg("error: scanning error")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return nil
}

func (r *dashboardRepository) bazarStats(ctx context.Context, userID string, stats *models.DashboardStats) error {
	log := logger.FromContext(ctx)

	builder := sq.Select(
		`coalesce(sum(amount) FILTER (WHERE status = 'approved'), 0) AS approved_amount`,
		`coalesce(sum(amount) FILTER (WHERE status = 'pending'), 0) AS pending_amount`,
	).From(models.BazarEntry{}.TableName()).PlaceholderFormat(sq.Dollar)

	if userID != "" {
		builder = builder.Where(sq.Eq{"user_id": userID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&stats.ApprovedBazarAmount, &stats.PendingBazarAmount); err != nil {
		log.Err(err).Str("func", "*dashboardRepository.bazarStats").Msg("error: scanning error")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return nil
}

// MemberBreakdown returns every member's approved meal count and approved
// bazar amount, ordered by name.
func (r *dashboardRepository) MemberBreakdown(ctx context.Context) ([]models.MemberBreakdown, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(
		"u.id",
		"u.name",
		`coalesce((SELECT sum(m.breakfast::int + m.lunch::int + m.dinner::int)
			FROM meals m WHERE m.user_id = u.id AND m.status = 'approved'), 0) AS meals`,
		`coalesce((SELECT sum(b.amount)
			FROM bazar_entries b WHERE b.user_id = u.id AND b.status = 'approved'), 0) AS bazar_amount`,
	).From(models.User{}.TableName() + " u").
		OrderBy("u.name").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*dashboardRepository.MemberBreakdown").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var members []models.MemberBreakdown
	for rows.Next() {
		var m models.MemberBreakdown
		if err := rows.Scan(&m.UserID, &m.Name, &m.Meals, &m.BazarAmount); err != nil {
			log.Err(err).Str("func", "*dashboardRepository.MemberBreakdown").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return members, nil
}
