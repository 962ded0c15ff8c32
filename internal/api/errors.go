package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/vitalog/backend/internal/middleware"
	"github.com/pageza/vitalog/backend/internal/plans"
	"github.com/pageza/vitalog/backend/internal/recommendation"
	"github.com/pageza/vitalog/backend/internal/service"
)

// currentUser reads the authenticated user, answering 401 when absent
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	return userID, true
}

// respondError maps service errors onto HTTP statuses. what names the
// resource for 404s and action the operation for 500s.
func respondError(c *gin.Context, err error, what, action string) {
	switch {
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
	case errors.Is(err, recommendation.ErrProfileIncomplete):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "profile_incomplete",
			"message": recommendation.ProfileIncompleteMessage,
		})
	case errors.Is(err, service.ErrInvalidProfile), errors.Is(err, service.ErrInvalidLog):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, plans.ErrUnknownPlan):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrExportUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		log.Printf("[API] Failed to %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + action})
	}
}
