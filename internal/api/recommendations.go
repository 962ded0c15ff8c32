package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/vitalog/backend/internal/service"
)

// RecommendationHandler serves profile-based advice
type RecommendationHandler struct {
	recommendationService service.IRecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler
func NewRecommendationHandler(recommendationService service.IRecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
	}
}

// RegisterRoutes registers the recommendation routes
func (h *RecommendationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recommendations", h.GetRecommendations)
	router.GET("/plans/suggested", h.GetSuggestedPlans)
}

// GetRecommendations returns the advice list for the user's profile
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	advice, err := h.recommendationService.GetAdvice(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "profile", "generate recommendations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": advice})
}

// GetSuggestedPlans returns the meal plan and program for the user's goal
func (h *RecommendationHandler) GetSuggestedPlans(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	suggestion, err := h.recommendationService.GetSuggestedPlans(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "profile", "suggest plans")
		return
	}

	c.JSON(http.StatusOK, suggestion)
}
