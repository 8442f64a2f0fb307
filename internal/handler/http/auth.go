package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/service"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/internal/utils"
	"github.com/bachelormess/mess-manager/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("registration payload rejected")
		writeMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeMessage(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, store.ErrEmailAlreadyRegistered):
			log.Err(err).Msg("email already registered")
			writeMessage(w, "email already registered", http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during registration")
			writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("login payload rejected")
		writeMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeMessage(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidCredentials):
			// one body for unknown email and wrong password
			log.Err(err).Msg("login rejected")
			writeMessage(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
		case errors.Is(err, service.ErrAccountDisabled):
			log.Err(err).Msg("login rejected: account disabled")
			writeMessage(w, service.ErrAccountDisabled.Error(), http.StatusForbidden)
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Str("user_id", resp.User.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, resp, http.StatusOK)
}

// logout acknowledges the client's intent to end the session. Tokens are
// stateless, so nothing is revoked server-side; the client discards its
// copy. The request is logged for the audit trail.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if ok {
		log.Info().Str("user_id", userID).Msg("user logged out")
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "logged out", Success: true}, http.StatusOK)
}

// me returns the identity summary of the authenticated caller. The client
// uses it during bootstrap to confirm a stored token is still accepted.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.Identity(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// token outlived the account
			log.Err(err).Str("user_id", userID).Msg("token refers to a missing account")
			writeMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		log.Err(err).Msg("identity lookup failed")
		writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
