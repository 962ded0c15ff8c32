package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/vitalog/backend/internal/dashboard"
	"github.com/pageza/vitalog/backend/internal/models"
	"github.com/pageza/vitalog/backend/internal/plans"
	"github.com/pageza/vitalog/backend/internal/recommendation"
	"github.com/pageza/vitalog/backend/internal/types"
)

// Patch is a partial JSON document; only the keys present are applied.
type Patch map[string]json.RawMessage

// IAuthService defines the interface for token operations
type IAuthService interface {
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(userID uuid.UUID, username string, ttl time.Duration) (string, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, patch Patch) (*models.UserProfile, error)
	GetProfileHistory(ctx context.Context, userID uuid.UUID) ([]models.ProfileHistory, error)
}

// IDailyLogService defines the interface for daily log operations
type IDailyLogService interface {
	GetLog(ctx context.Context, userID uuid.UUID, date string) (*models.DailyLog, error)
	UpsertLog(ctx context.Context, userID uuid.UUID, date string, patch Patch) (*models.DailyLog, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.DailyLog, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]models.DailyLog, error)
}

// IDashboardService defines the interface for dashboard operations
type IDashboardService interface {
	GetDashboard(ctx context.Context, userID uuid.UUID, loc *time.Location) (*dashboard.Dashboard, error)
	GetDaySummary(ctx context.Context, userID uuid.UUID, date string) (*DayReport, error)
}

// IRecommendationService defines the interface for advice operations
type IRecommendationService interface {
	GetAdvice(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error)
	GetSuggestedPlans(ctx context.Context, userID uuid.UUID) (*plans.Suggestion, error)
}

// IExportService defines the interface for log exports
type IExportService interface {
	ExportLog(ctx context.Context, userID uuid.UUID, date string) (*ExportResult, error)
}

// DashboardCache stores rendered dashboards per user.
type DashboardCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*CachedDashboard, error)
	Set(ctx context.Context, userID uuid.UUID, entry *CachedDashboard) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// ObjectStore is the blob storage used for exports.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}
