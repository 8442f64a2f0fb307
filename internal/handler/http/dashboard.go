package http

import (
	"net/http"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/utils"
	"github.com/bachelormess/mess-manager/models"
)

// dashboard serves the aggregate figures. Members receive totals over
// their own records only; callers satisfying the admin role receive the
// mess-wide figures with the per-member breakdown.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	role, ok := utils.GetRoleFromContext(ctx)
	if !ok {
		log.Error().Msg("no role in request context")
		writeMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var stats models.DashboardStats
	var err error
	if role.Satisfies(models.RoleAdmin) {
		stats, err = h.services.DashboardService.MessStats(ctx)
	} else {
		stats, err = h.services.DashboardService.MemberStats(ctx, userID)
	}
	if err != nil {
		log.Err(err).Msg("dashboard aggregation failed")
		writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
