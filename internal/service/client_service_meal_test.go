package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bachelormess/mess-manager/internal/adapter"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/mock"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/models"
)

func newTestClientMeal(ctrl *gomock.Controller) (*clientMealService, *mock.MockServerAdapter, *mock.MockOfflineQueueRepository) {
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockQueue := mock.NewMockOfflineQueueRepository(ctrl)

	svc := NewClientMealService(mockAdapter, mockQueue, logger.Nop()).(*clientMealService)
	return svc, mockAdapter, mockQueue
}

// ── Submit ──────────────────────────────────────────────────────────────────

func TestClientMealService_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientMeal(ctrl)
	ctx := context.Background()

	req := models.MealRequest{Date: "2026-08-15", Lunch: true, Dinner: true}
	mockAdapter.EXPECT().SubmitMeal(ctx, req).Return(models.Meal{ID: "meal-1", Status: models.StatusPending}, nil)

	meal, err := svc.Submit(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "meal-1", meal.ID)
}

func TestClientMealService_Submit_ServerUnreachable_Queues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockQueue := newTestClientMeal(ctrl)
	ctx := context.Background()

	req := models.MealRequest{Date: "2026-08-15", Breakfast: true}

	gomock.InOrder(
		mockAdapter.EXPECT().SubmitMeal(ctx, req).Return(models.Meal{}, adapter.ErrServerUnavailable),
		mockQueue.EXPECT().Enqueue(ctx, models.SubmissionMeal, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ models.SubmissionKind, payload []byte) error {
				var queued models.MealRequest
				require.NoError(t, json.Unmarshal(payload, &queued))
				assert.Equal(t, req, queued)
				return nil
			},
		),
	)

	_, err := svc.Submit(ctx, req)

	require.ErrorIs(t, err, ErrSubmissionQueued)
}

func TestClientMealService_Submit_ServerRejection_NotQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientMeal(ctrl)
	ctx := context.Background()

	// a duplicate-day rejection reached the server; queueing it would only
	// replay the same rejection
	mockAdapter.EXPECT().SubmitMeal(ctx, gomock.Any()).Return(models.Meal{}, adapter.ErrConflict)

	_, err := svc.Submit(ctx, models.MealRequest{Date: "2026-08-15", Lunch: true})

	require.ErrorIs(t, err, store.ErrMealAlreadySubmitted)
}

func TestClientMealService_Submit_QueueFailureSurfacesTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockQueue := newTestClientMeal(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SubmitMeal(ctx, gomock.Any()).Return(models.Meal{}, adapter.ErrServerUnavailable)
	mockQueue.EXPECT().Enqueue(ctx, models.SubmissionMeal, gomock.Any()).Return(errStorage)

	_, err := svc.Submit(ctx, models.MealRequest{Date: "2026-08-15", Lunch: true})

	require.ErrorIs(t, err, adapter.ErrServerUnavailable)
	assert.NotErrorIs(t, err, ErrSubmissionQueued)
}

// ── List / SetStatus ────────────────────────────────────────────────────────

func TestClientMealService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientMeal(ctrl)
	ctx := context.Background()

	query := adapter.ListQuery{Status: models.StatusPending}
	mockAdapter.EXPECT().ListMeals(ctx, query).Return([]models.Meal{{ID: "meal-1"}}, nil)

	meals, err := svc.List(ctx, query)

	require.NoError(t, err)
	require.Len(t, meals, 1)
}

func TestClientMealService_SetStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientMeal(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SetMealStatus(ctx, "missing", models.StatusApproved).Return(adapter.ErrNotFound)

	err := svc.SetStatus(ctx, "missing", models.StatusApproved)

	require.ErrorIs(t, err, store.ErrMealNotFound)
}

func TestClientMealService_SetStatus_SessionExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientMeal(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SetMealStatus(ctx, "meal-1", models.StatusApproved).Return(adapter.ErrUnauthorized)

	err := svc.SetStatus(ctx, "meal-1", models.StatusApproved)

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
