package service

import (
	"github.com/bachelormess/mess-manager/internal/config"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/store"
)

// Services groups all server-side services into a single value passed to the
// transport layer.
type Services struct {
	AuthService      AuthService
	MealService      MealService
	BazarService     BazarService
	DashboardService DashboardService
	UserAdminService UserAdminService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.Auth, logger),
		MealService:      NewMealService(storages.MealRepository, logger),
		BazarService:     NewBazarService(storages.BazarRepository, logger),
		DashboardService: NewDashboardService(storages.DashboardRepository, logger),
		UserAdminService: NewUserAdminService(storages.UserRepository, logger),
	}
}
