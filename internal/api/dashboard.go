package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/vitalog/backend/internal/service"
)

// DashboardHandler handles dashboard-related requests
type DashboardHandler struct {
	dashboardService service.IDashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService service.IDashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.GetDashboard)
}

// GetDashboard returns today's summary, the recent days and the progress report.
// An IANA zone in ?tz= or X-Timezone decides which date is today.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	loc, err := requestLocation(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time zone"})
		return
	}

	d, err := h.dashboardService.GetDashboard(c.Request.Context(), userID, loc)
	if err != nil {
		respondError(c, err, "dashboard", "build dashboard")
		return
	}

	c.JSON(http.StatusOK, d)
}

// requestLocation returns the caller's zone, or nil when none was sent.
func requestLocation(c *gin.Context) (*time.Location, error) {
	name := c.Query("tz")
	if name == "" {
		name = c.GetHeader("X-Timezone")
	}
	if name == "" {
		return nil, nil
	}
	return time.LoadLocation(name)
}
