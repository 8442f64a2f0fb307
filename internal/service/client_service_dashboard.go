package service

import (
	"context"

	"github.com/bachelormess/mess-manager/internal/adapter"
	"github.com/bachelormess/mess-manager/models"
)

type clientDashboardService struct {
	adapter adapter.ServerAdapter
}

// NewClientDashboardService returns a [ClientDashboardService].
func NewClientDashboardService(serverAdapter adapter.ServerAdapter) ClientDashboardService {
	return &clientDashboardService{adapter: serverAdapter}
}

// Stats implements [ClientDashboardService]. The server scopes the figures
// to the session's role, so there is nothing to decide here.
func (s *clientDashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	stats, err := s.adapter.Dashboard(ctx)
	if err != nil {
		return models.DashboardStats{}, mapAdapterError(err)
	}
	return stats, nil
}
