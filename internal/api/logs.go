package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/vitalog/backend/internal/dashboard"
	"github.com/pageza/vitalog/backend/internal/service"
)

const maxRecentLogs = 90

// DailyLogHandler handles daily log requests
type DailyLogHandler struct {
	logService       service.IDailyLogService
	dashboardService service.IDashboardService
	exportService    service.IExportService
	exportLimiter    gin.HandlerFunc
}

// NewDailyLogHandler creates a new DailyLogHandler. exportLimiter may be nil.
func NewDailyLogHandler(
	logService service.IDailyLogService,
	dashboardService service.IDashboardService,
	exportService service.IExportService,
	exportLimiter gin.HandlerFunc,
) *DailyLogHandler {
	return &DailyLogHandler{
		logService:       logService,
		dashboardService: dashboardService,
		exportService:    exportService,
		exportLimiter:    exportLimiter,
	}
}

// RegisterRoutes registers the daily log routes
func (h *DailyLogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/logs")
	{
		logs.GET("", h.ListLogs)
		logs.GET("/:date", h.GetLog)
		logs.PUT("/:date", h.UpdateLog)
		logs.GET("/:date/summary", h.GetSummary)

		export := []gin.HandlerFunc{h.ExportLog}
		if h.exportLimiter != nil {
			export = append([]gin.HandlerFunc{h.exportLimiter}, export...)
		}
		logs.POST("/:date/export", export...)
	}
}

// ListLogs returns logs between ?from= and ?to=, or the most recent
// ?limit= logs (default 10) when no range is given.
func (h *DailyLogHandler) ListLogs(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	from, to := c.Query("from"), c.Query("to")
	if from != "" || to != "" {
		if from == "" || to == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be given together"})
			return
		}
		logs, err := h.logService.ListRange(c.Request.Context(), userID, from, to)
		if err != nil {
			respondError(c, err, "logs", "list logs")
			return
		}
		c.JSON(http.StatusOK, gin.H{"logs": logs})
		return
	}

	limit := dashboard.DefaultWindow
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxRecentLogs {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and " + strconv.Itoa(maxRecentLogs)})
			return
		}
		limit = n
	}

	logs, err := h.logService.ListRecent(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err, "logs", "list logs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// GetLog returns the log for one date
func (h *DailyLogHandler) GetLog(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	entry, err := h.logService.GetLog(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		respondError(c, err, "daily log", "get daily log")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpdateLog merges the request body into the day's log, creating it if needed
func (h *DailyLogHandler) UpdateLog(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var patch service.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.logService.UpsertLog(c.Request.Context(), userID, c.Param("date"), patch)
	if err != nil {
		respondError(c, err, "daily log", "update daily log")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetSummary returns the rollup, workout totals and sleep tips for a day
func (h *DailyLogHandler) GetSummary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	report, err := h.dashboardService.GetDaySummary(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		respondError(c, err, "daily log", "summarize daily log")
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportLog uploads the day's log and returns a download link
func (h *DailyLogHandler) ExportLog(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	result, err := h.exportService.ExportLog(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		respondError(c, err, "daily log", "export daily log")
		return
	}
	c.JSON(http.StatusOK, result)
}
