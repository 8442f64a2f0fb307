package service

import (
	"context"
	"errors"

	"github.com/bachelormess/mess-manager/internal/adapter"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/models"
)

type clientBazarService struct {
	adapter adapter.ServerAdapter
	queue   store.OfflineQueueRepository
	logger  *logger.Logger
}

// NewClientBazarService returns a [ClientBazarService] with the same offline
// fallback as the meal service.
func NewClientBazarService(serverAdapter adapter.ServerAdapter, queue store.OfflineQueueRepository, logger *logger.Logger) ClientBazarService {
	return &clientBazarService{
		adapter: serverAdapter,
		queue:   queue,
		logger:  logger,
	}
}

// Submit implements [ClientBazarService].
func (s *clientBazarService) Submit(ctx context.Context, req models.BazarRequest) (models.BazarEntry, error) {
	entry, err := s.adapter.SubmitBazar(ctx, req)
	if err == nil {
		return entry, nil
	}

	if errors.Is(err, adapter.ErrServerUnavailable) {
		if queueErr := enqueueSubmission(ctx, s.queue, models.SubmissionBazar, req); queueErr != nil {
			s.logger.Err(queueErr).Msg("bazar submission lost: server unreachable and queueing failed")
			return models.BazarEntry{}, err
		}
		s.logger.Info().Str("date", req.Date).Msg("bazar submission queued for later")
		return models.BazarEntry{}, ErrSubmissionQueued
	}

	return models.BazarEntry{}, mapAdapterError(err)
}

// List implements [ClientBazarService].
func (s *clientBazarService) List(ctx context.Context, query adapter.ListQuery) ([]models.BazarEntry, error) {
	entries, err := s.adapter.ListBazar(ctx, query)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return entries, nil
}

// SetStatus implements [ClientBazarService].
func (s *clientBazarService) SetStatus(ctx context.Context, entryID string, status models.ApprovalStatus) error {
	if err := s.adapter.SetBazarStatus(ctx, entryID, status); err != nil {
		return mapNotFound(err, store.ErrBazarEntryNotFound)
	}
	return nil
}
