package http

import (
	"net/http"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/utils"
	"github.com/bachelormess/mess-manager/models"
)

// requireRole returns an HTTP middleware that gates a route group behind
// the given role. It must be mounted after [Handler.auth], which places
// the caller's role in the request context.
//
// A caller passes when its role satisfies the required one per
// [models.Role.Satisfies]; a super admin therefore passes every
// admin-gated route. Everyone else receives HTTP 403 Forbidden. A request
// that reaches the gate without a role in its context indicates a wiring
// mistake and is rejected with 403 as well.
func (h *Handler) requireRole(required models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			role, err := utils.GetRoleFromContext(r.Context())
			if err != nil {
				log.Err(err).Msg("role gate reached without an authenticated role")
				writeMessage(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			if !role.Satisfies(required) {
				log.Error().
					Str("role", string(role)).
					Str("required", string(required)).
					Msg("insufficient role for route")
				writeMessage(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
