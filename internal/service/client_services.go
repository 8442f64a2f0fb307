package service

import (
	"github.com/bachelormess/mess-manager/internal/adapter"
	"github.com/bachelormess/mess-manager/internal/config"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/session"
	"github.com/bachelormess/mess-manager/internal/store"
)

// ClientServices bundles everything the screens talk to.
type ClientServices struct {
	Session          *session.Store
	AuthService      ClientAuthService
	MealService      ClientMealService
	BazarService     ClientBazarService
	DashboardService ClientDashboardService
	UserAdminService ClientUserAdminService
	FlushJob         OfflineFlushJob
}

// NewClientServices wires the client service layer: the session store on top
// of the local storage, the per-concern services on top of the server
// adapter, and the offline flush job on top of both.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	sessionStore := session.NewStore(localStore.SessionRepository, serverAdapter, logger)

	return &ClientServices{
		Session:          sessionStore,
		AuthService:      NewClientAuthService(sessionStore, serverAdapter, logger),
		MealService:      NewClientMealService(serverAdapter, localStore.OfflineQueueRepository, logger),
		BazarService:     NewClientBazarService(serverAdapter, localStore.OfflineQueueRepository, logger),
		DashboardService: NewClientDashboardService(serverAdapter),
		UserAdminService: NewClientUserAdminService(serverAdapter),
		FlushJob:         NewOfflineFlushJob(localStore.OfflineQueueRepository, serverAdapter, sessionStore, cfg.Workers.FlushInterval, logger),
	}
}
