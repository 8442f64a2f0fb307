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

func (h *Handler) submitBazar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.BazarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("bazar payload rejected")
		writeMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.services.BazarService.Submit(ctx, userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeMessage(w, "invalid data provided", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during bazar submission")
		writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) listBazar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := scopedFilter(ctx, r)
	if err != nil {
		log.Err(err).Msg("bad bazar list filter")
		writeMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.services.BazarService.List(ctx, store.BazarFilter(filter))
	if err != nil {
		log.Err(err).Msg("bazar listing failed")
		writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.BazarEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) setBazarStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	entryID := chi.URLParam(r, "entryID")

	var req models.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("bazar status payload rejected")
		writeMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.BazarService.SetStatus(ctx, entryID, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeMessage(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, store.ErrBazarEntryNotFound):
			writeMessage(w, "bazar entry not found", http.StatusNotFound)
		default:
			log.Err(err).Msg("unexpected error occurred during bazar status update")
			writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	writeMessage(w, "status updated", http.StatusOK)
}
