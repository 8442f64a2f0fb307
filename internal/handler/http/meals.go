package http

import (
	"context"
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

func (h *Handler) submitMeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.MealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("meal payload rejected")
		writeMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	meal, err := h.services.MealService.Submit(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeMessage(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, store.ErrMealAlreadySubmitted):
			log.Err(err).Str("date", req.Date).Msg("meal already submitted for that day")
			writeMessage(w, "meals already recorded for that day", http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during meal submission")
			writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, meal, http.StatusCreated)
}

func (h *Handler) listMeals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := scopedFilter(ctx, r)
	if err != nil {
		log.Err(err).Msg("bad meal list filter")
		writeMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	meals, err := h.services.MealService.List(ctx, store.MealFilter(filter))
	if err != nil {
		log.Err(err).Msg("meal listing failed")
		writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if meals == nil {
		meals = []models.Meal{}
	}

	utils.WriteJSON(w, meals, http.StatusOK)
}

func (h *Handler) setMealStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	mealID := chi.URLParam(r, "mealID")

	var req models.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("meal status payload rejected")
		writeMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.MealService.SetStatus(ctx, mealID, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeMessage(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, store.ErrMealNotFound):
			writeMessage(w, "meal record not found", http.StatusNotFound)
		default:
			log.Err(err).Msg("unexpected error occurred during meal status update")
			writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	writeMessage(w, "status updated", http.StatusOK)
}

// listFilter is the common shape of the meal and bazar list filters.
type listFilter struct {
	UserID string
	Status models.ApprovalStatus
}

// scopedFilter builds a list filter from the query string, enforcing the
// caller's visibility: non-admin callers are always scoped to their own
// records regardless of the user_id parameter, while admins may scope to
// any member or, by leaving user_id empty, to the whole mess.
func scopedFilter(ctx context.Context, r *http.Request) (listFilter, error) {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return listFilter{}, err
	}
	role, err := utils.GetRoleFromContext(ctx)
	if err != nil {
		return listFilter{}, err
	}

	filter := listFilter{UserID: userID}
	if role.Satisfies(models.RoleAdmin) {
		filter.UserID = r.URL.Query().Get("user_id")
	}

	if rawStatus := r.URL.Query().Get("status"); rawStatus != "" {
		status := models.ApprovalStatus(rawStatus)
		if !status.Valid() {
			return listFilter{}, errors.New("unknown status value")
		}
		filter.Status = status
	}

	return filter, nil
}
