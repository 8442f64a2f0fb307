package service

import (
	"context"
	"fmt"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/internal/utils"
	"github.com/bachelormess/mess-manager/models"
)

// mealService is the concrete implementation of MealService.
type mealService struct {
	mealRepository store.MealRepository
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

func NewMealService(mealRepository store.MealRepository, logger *logger.Logger) MealService {
	return &mealService{
		mealRepository: mealRepository,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Submit records a member's meals for one calendar day. New records always
// enter the pending state; approval is a separate admin action.
//
// Returns the persisted record or:
//   - ErrInvalidDataProvided if the date is missing or malformed, or no
//     meal is marked at all.
//   - store.ErrMealAlreadySubmitted (wrapped) if the member already has a
//     record for that day.
func (s *mealService) Submit(ctx context.Context, userID string, req models.MealRequest) (models.Meal, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Error().Msg("meal submission without user ID")
		return models.Meal{}, ErrInvalidDataProvided
	}

	date, err := models.RequestDate(req.Date)
	if err != nil {
		log.Error().Str("date", req.Date).Msg("malformed meal date")
		return models.Meal{}, ErrInvalidDataProvided
	}

	meal := models.Meal{
		ID:        s.ids.Generate(),
		UserID:    userID,
		Date:      date,
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		Dinner:    req.Dinner,
		Status:    models.StatusPending,
	}
	if meal.Count() == 0 {
		log.Error().Str("user_id", userID).Str("date", req.Date).Msg("meal submission with no meals marked")
		return models.Meal{}, ErrInvalidDataProvided
	}

	created, err := s.mealRepository.CreateMeal(ctx, meal)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("date", req.Date).Msg("meal creation ended with error")
		return models.Meal{}, fmt.Errorf("meal creation ended with error: %w", err)
	}

	return created, nil
}

// List returns meal records matching the filter, newest first.
func (s *mealService) List(ctx context.Context, filter store.MealFilter) ([]models.Meal, error) {
	meals, err := s.mealRepository.ListMeals(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("meal listing ended with error")
		return nil, fmt.Errorf("meal listing ended with error: %w", err)
	}

	return meals, nil
}

// SetStatus moves a record to a new moderation state.
//
// Returns ErrInvalidDataProvided for an unknown status, or
// store.ErrMealNotFound (wrapped) when no record matches.
func (s *mealService) SetStatus(ctx context.Context, mealID string, status models.ApprovalStatus) error {
	log := logger.FromContext(ctx)

	if mealID == "" || !status.Valid() {
		log.Error().Str("meal_id", mealID).Str("status", string(status)).Msg("invalid meal status update")
		return ErrInvalidDataProvided
	}

	if err := s.mealRepository.UpdateStatus(ctx, mealID, status); err != nil {
		log.Err(err).Str("meal_id", mealID).Msg("meal status update ended with error")
		return fmt.Errorf("meal status update ended with error: %w", err)
	}

	return nil
}
