package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/vitalog/backend/internal/dashboard"
	"github.com/pageza/vitalog/backend/internal/models"
	"github.com/pageza/vitalog/backend/internal/recommendation"
)

// CachedDashboard is a rendered dashboard and the day it was rendered for.
type CachedDashboard struct {
	Date      string              `json:"date"`
	Dashboard dashboard.Dashboard `json:"dashboard"`
}

// DayReport is everything shown for a single logged day.
type DayReport struct {
	Summary     dashboard.DaySummary     `json:"summary"`
	Workout     dashboard.WorkoutSummary `json:"workout"`
	SleepTips   []string                 `json:"sleep_tips"`
	AverageMood *float64                 `json:"average_mood,omitempty"`
	MoodLabel   string                   `json:"mood_label,omitempty"`
}

// DashboardService builds dashboards from stored logs
type DashboardService struct {
	logs  IDailyLogService
	cache DashboardCache
	now   func() time.Time
}

// Ensure DashboardService implements IDashboardService
var _ IDashboardService = (*DashboardService)(nil)

// NewDashboardService creates a new DashboardService. cache may be nil.
func NewDashboardService(logs IDailyLogService, cache DashboardCache) *DashboardService {
	return &DashboardService{
		logs:  logs,
		cache: cache,
		now:   time.Now,
	}
}

// GetDashboard returns the dashboard over the last DefaultWindow logged
// days. Today is the current date in loc, or in the server's zone when loc
// is nil. Cache failures are logged and the dashboard is rebuilt.
func (s *DashboardService) GetDashboard(ctx context.Context, userID uuid.UUID, loc *time.Location) (*dashboard.Dashboard, error) {
	if loc == nil {
		loc = time.Local
	}
	today := s.now().In(loc).Format(models.DateLayout)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			log.Printf("[DashboardService] Cache read failed for user %s: %v", userID, err)
		} else if cached != nil && cached.Date == today {
			return &cached.Dashboard, nil
		}
	}

	logs, err := s.logs.ListRecent(ctx, userID, dashboard.DefaultWindow)
	if err != nil {
		return nil, err
	}
	d := dashboard.Build(logs, today, dashboard.DefaultWindow)

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, &CachedDashboard{Date: today, Dashboard: d}); err != nil {
			log.Printf("[DashboardService] Cache write failed for user %s: %v", userID, err)
		}
	}
	return &d, nil
}

// GetDaySummary summarizes a single logged day
func (s *DashboardService) GetDaySummary(ctx context.Context, userID uuid.UUID, date string) (*DayReport, error) {
	entry, err := s.logs.GetLog(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	weight := entry.Weight.Float()
	if weight <= 0 {
		weight = dashboard.DefaultBodyWeightKg
	}
	report := &DayReport{
		Summary:   dashboard.SummarizeDay(*entry),
		Workout:   dashboard.SummarizeWorkouts(entry.Workouts, weight),
		SleepTips: recommendation.SleepTips(entry.Sleep),
	}
	if avg, ok := dashboard.AverageMood(entry.Mood); ok {
		report.AverageMood = &avg
		report.MoodLabel = dashboard.MoodLabel(int(avg + 0.5))
	}
	return report, nil
}

// IsNotFound reports whether err means the requested record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
