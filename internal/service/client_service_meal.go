package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bachelormess/mess-manager/internal/adapter"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/models"
)

type clientMealService struct {
	adapter adapter.ServerAdapter
	queue   store.OfflineQueueRepository
	logger  *logger.Logger
}

// NewClientMealService returns a [ClientMealService] that falls back to the
// offline queue when the server cannot be reached.
func NewClientMealService(serverAdapter adapter.ServerAdapter, queue store.OfflineQueueRepository, logger *logger.Logger) ClientMealService {
	return &clientMealService{
		adapter: serverAdapter,
		queue:   queue,
		logger:  logger,
	}
}

// Submit implements [ClientMealService]. Only transport failures queue the
// request; a rejection the server actually produced (validation, duplicate
// day) is surfaced to the caller unchanged.
func (s *clientMealService) Submit(ctx context.Context, req models.MealRequest) (models.Meal, error) {
	meal, err := s.adapter.SubmitMeal(ctx, req)
	if err == nil {
		return meal, nil
	}

	if errors.Is(err, adapter.ErrServerUnavailable) {
		if queueErr := enqueueSubmission(ctx, s.queue, models.SubmissionMeal, req); queueErr != nil {
			s.logger.Err(queueErr).Msg("meal submission lost: server unreachable and queueing failed")
			return models.Meal{}, err
		}
		s.logger.Info().Str("date", req.Date).Msg("meal submission queued for later")
		return models.Meal{}, ErrSubmissionQueued
	}

	if errors.Is(err, adapter.ErrConflict) {
		return models.Meal{}, store.ErrMealAlreadySubmitted
	}

	return models.Meal{}, mapAdapterError(err)
}

// List implements [ClientMealService].
func (s *clientMealService) List(ctx context.Context, query adapter.ListQuery) ([]models.Meal, error) {
	meals, err := s.adapter.ListMeals(ctx, query)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return meals, nil
}

// SetStatus implements [ClientMealService].
func (s *clientMealService) SetStatus(ctx context.Context, mealID string, status models.ApprovalStatus) error {
	if err := s.adapter.SetMealStatus(ctx, mealID, status); err != nil {
		return mapNotFound(err, store.ErrMealNotFound)
	}
	return nil
}

// enqueueSubmission serializes a request body and parks it in the offline
// queue for the flush job to resubmit.
func enqueueSubmission(ctx context.Context, queue store.OfflineQueueRepository, kind models.SubmissionKind, req any) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode %s submission: %w", kind, err)
	}
	return queue.Enqueue(ctx, kind, payload)
}
