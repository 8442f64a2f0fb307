package service

import (
	"context"
	"fmt"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/internal/utils"
	"github.com/bachelormess/mess-manager/models"
)

// bazarService is the concrete implementation of BazarService.
type bazarService struct {
	bazarRepository store.BazarRepository
	ids             *utils.UUIDGenerator

	logger *logger.Logger
}

func NewBazarService(bazarRepository store.BazarRepository, logger *logger.Logger) BazarService {
	return &bazarService{
		bazarRepository: bazarRepository,
		ids:             utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// Submit records a shared-grocery purchase. New entries always enter the
// pending state.
//
// Returns ErrInvalidDataProvided when the date is malformed, the item
// description is empty, or the amount is not positive.
func (s *bazarService) Submit(ctx context.Context, userID string, req models.BazarRequest) (models.BazarEntry, error) {
	log := logger.FromContext(ctx)

	if userID == "" || req.Items == "" || req.Amount <= 0 {
		log.Error().Str("user_id", userID).Msg("invalid bazar entry data provided")
		return models.BazarEntry{}, ErrInvalidDataProvided
	}

	date, err := models.RequestDate(req.Date)
	if err != nil {
		log.Error().Str("date", req.Date).Msg("malformed bazar date")
		return models.BazarEntry{}, ErrInvalidDataProvided
	}

	entry := models.BazarEntry{
		ID:     s.ids.Generate(),
		UserID: userID,
		Date:   date,
		Items:  req.Items,
		Amount: req.Amount,
		Status: models.StatusPending,
	}

	created, err := s.bazarRepository.CreateEntry(ctx, entry)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("bazar entry creation ended with error")
		return models.BazarEntry{}, fmt.Errorf("bazar entry creation ended with error: %w", err)
	}

	return created, nil
}

// List returns bazar entries matching the filter, newest first.
func (s *bazarService) List(ctx context.Context, filter store.BazarFilter) ([]models.BazarEntry, error) {
	entries, err := s.bazarRepository.ListEntries(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("bazar listing ended with error")
		return nil, fmt.Errorf("bazar listing ended with error: %w", err)
	}

	return entries, nil
}

// SetStatus moves an entry to a new moderation state.
func (s *bazarService) SetStatus(ctx context.Context, entryID string, status models.ApprovalStatus) error {
	log := logger.FromContext(ctx)

	if entryID == "" || !status.Valid() {
		log.Error().Str("entry_id", entryID).Str("status", string(status)).Msg("invalid bazar status update")
		return ErrInvalidDataProvided
	}

	if err := s.bazarRepository.UpdateStatus(ctx, entryID, status); err != nil {
		log.Err(err).Str("entry_id", entryID).Msg("bazar status update ended with error")
		return fmt.Errorf("bazar status update ended with error: %w", err)
	}

	return nil
}
