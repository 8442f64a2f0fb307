package service

import (
	"context"
	"fmt"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/models"
)

// dashboardService is the concrete implementation of DashboardService.
type dashboardService struct {
	dashboardRepository store.DashboardRepository

	logger *logger.Logger
}

func NewDashboardService(dashboardRepository store.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		dashboardRepository: dashboardRepository,
		logger:              logger,
	}
}

// MemberStats returns aggregate figures scoped to a single member's own
// records. The per-member breakdown is never included here.
func (s *dashboardService) MemberStats(ctx context.Context, userID string) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		log.Error().Msg("member stats requested without user ID")
		return models.DashboardStats{}, ErrInvalidDataProvided
	}

	stats, err := s.dashboardRepository.Stats(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("member stats aggregation ended with error")
		return models.DashboardStats{}, fmt.Errorf("member stats aggregation ended with error: %w", err)
	}

	return stats, nil
}

// MessStats returns mess-wide figures with the per-member breakdown
// attached. Authorization is the transport layer's concern; this method
// computes for whoever asks.
func (s *dashboardService) MessStats(ctx context.Context) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	stats, err := s.dashboardRepository.Stats(ctx, "")
	if err != nil {
		log.Err(err).Msg("mess stats aggregation ended with error")
		return models.DashboardStats{}, fmt.Errorf("mess stats aggregation ended with error: %w", err)
	}

	members, err := s.dashboardRepository.MemberBreakdown(ctx)
	if err != nil {
		log.Err(err).Msg("member breakdown aggregation ended with error")
		return models.DashboardStats{}, fmt.Errorf("member breakdown aggregation ended with error: %w", err)
	}
	stats.Members = members

	return stats, nil
}
