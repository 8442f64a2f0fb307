package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/service"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/internal/utils"
	"github.com/bachelormess/mess-manager/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserAdminService.List(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// setUserRole assigns a role to an account. The route group already
// requires admin; the service layer additionally demands a super_admin
// actor when the requested role is super_admin.
func (h *Handler) setUserRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	targetID := chi.URLParam(r, "userID")

	actorRole, err := utils.GetRoleFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no role in request context")
		writeMessage(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	var req models.RoleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("role payload rejected")
		writeMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.UserAdminService.SetRole(ctx, actorRole, targetID, req.Role); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeMessage(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, service.ErrRoleNotPermitted):
			log.Err(err).Str("target_id", targetID).Msg("role assignment refused")
			writeMessage(w, service.ErrRoleNotPermitted.Error(), http.StatusForbidden)
		case errors.Is(err, store.ErrNoUserWasFound):
			writeMessage(w, "user not found", http.StatusNotFound)
		default:
			log.Err(err).Msg("unexpected error occurred during role update")
			writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	writeMessage(w, "role updated", http.StatusOK)
}

func (h *Handler) setUserStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	targetID := chi.URLParam(r, "userID")

	var req models.UserStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("user status payload rejected")
		writeMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.UserAdminService.SetStatus(ctx, targetID, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeMessage(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, store.ErrNoUserWasFound):
			writeMessage(w, "user not found", http.StatusNotFound)
		default:
			log.Err(err).Msg("unexpected error occurred during user status update")
			writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	writeMessage(w, "status updated", http.StatusOK)
}
