package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/vitalog/backend/internal/models"
	"github.com/pageza/vitalog/backend/internal/recommendation"
	"github.com/pageza/vitalog/backend/internal/service"
)

// ProfileResponse is returned after a profile save
type ProfileResponse struct {
	Profile  *models.UserProfile            `json:"profile"`
	Analysis recommendation.ProfileAnalysis `json:"analysis"`
}

// ProfileHandler handles profile requests
type ProfileHandler struct {
	profileService service.IProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService service.IProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// RegisterRoutes registers the profile routes
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.GET("/history", h.GetProfileHistory)
	}
}

// GetProfile returns the current user's profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "profile", "get profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile merges the request body into the profile. Only the keys
// sent are changed.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var patch service.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.profileService.UpsertProfile(c.Request.Context(), userID, patch)
	if err != nil {
		respondError(c, err, "profile", "update profile")
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		Profile:  profile,
		Analysis: recommendation.GenerateProfileAnalysis(profile),
	})
}

// GetProfileHistory returns the profile change log, newest first
func (h *ProfileHandler) GetProfileHistory(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	history, err := h.profileService.GetProfileHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "profile history", "get profile history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
