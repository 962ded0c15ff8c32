package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/vitalog/backend/internal/api"
	"github.com/pageza/vitalog/backend/internal/mocks"
	"github.com/pageza/vitalog/backend/internal/plans"
	"github.com/pageza/vitalog/backend/internal/recommendation"
)

func setupRecommendationHandler(userID uuid.UUID) (*mocks.MockRecommendationService, http.Handler) {
	recs := new(mocks.MockRecommendationService)
	router, group := newTestRouter(userID)
	api.NewRecommendationHandler(recs).RegisterRoutes(group)
	return recs, router
}

func TestGetRecommendations(t *testing.T) {
	userID := uuid.New()
	recs, router := setupRecommendationHandler(userID)
	recs.On("GetAdvice", mock.Anything, userID).Return([]recommendation.Recommendation{
		{Category: recommendation.CategoryTracking, Text: "Tracking", IsHeader: true},
		{Category: recommendation.CategoryTracking, Text: "Log your activities daily"},
	}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/recommendations", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["recommendations"].([]interface{})
	assert.Len(t, items, 2)
	assert.Equal(t, true, items[0].(map[string]interface{})["is_header"])
	assert.Equal(t, "Log your activities daily", items[1].(map[string]interface{})["text"])
}

func TestGetRecommendations_ProfileIncomplete(t *testing.T) {
	userID := uuid.New()
	recs, router := setupRecommendationHandler(userID)
	recs.On("GetAdvice", mock.Anything, userID).
		Return(nil, fmt.Errorf("no profile for user: %w", recommendation.ErrProfileIncomplete))

	w := doRequest(router, http.MethodGet, "/api/v1/recommendations", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, "profile_incomplete", body["error"])
	assert.Equal(t, recommendation.ProfileIncompleteMessage, body["message"])
}

func TestGetSuggestedPlans(t *testing.T) {
	userID := uuid.New()
	recs, router := setupRecommendationHandler(userID)
	suggestion := plans.Suggest(recommendation.GoalMuscleGain)
	recs.On("GetSuggestedPlans", mock.Anything, userID).Return(&suggestion, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/plans/suggested", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, recommendation.GoalMuscleGain, body["goal"])
	assert.Equal(t, suggestion.Meal.Key, body["meal_plan"].(map[string]interface{})["key"])
	assert.Equal(t, suggestion.Program.Goal, body["program"].(map[string]interface{})["goal"])
}
