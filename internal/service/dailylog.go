package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/vitalog/backend/internal/models"
)

// ErrInvalidLog is returned when a daily log update is rejected.
var ErrInvalidLog = errors.New("invalid daily log")

var protectedLogFields = []string{"id", "user_id", "date", "created_at", "updated_at"}

// DailyLogService handles daily log operations
type DailyLogService struct {
	db    *gorm.DB
	cache DashboardCache
}

// Ensure DailyLogService implements IDailyLogService
var _ IDailyLogService = (*DailyLogService)(nil)

// NewDailyLogService creates a new DailyLogService. cache may be nil.
func NewDailyLogService(db *gorm.DB, cache DashboardCache) *DailyLogService {
	return &DailyLogService{
		db:    db,
		cache: cache,
	}
}

// GetLog retrieves the log for one date
func (s *DailyLogService) GetLog(ctx context.Context, userID uuid.UUID, date string) (*models.DailyLog, error) {
	if err := models.ValidateDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLog, err)
	}
	var entry models.DailyLog
	if err := s.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpsertLog merges patch into the day's log, creating it when missing.
// Meal totals are recomputed from their items before saving.
func (s *DailyLogService) UpsertLog(ctx context.Context, userID uuid.UUID, date string, patch Patch) (*models.DailyLog, error) {
	if err := models.ValidateDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLog, err)
	}

	var result *models.DailyLog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := lockDailyLog(tx, userID, date)
		if err != nil {
			return err
		}

		next, _, err := applyPatch(current, patch, protectedLogFields...)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidLog, err)
		}
		next.ID = current.ID
		next.UserID = userID
		next.Date = date
		next.CreatedAt = current.CreatedAt
		next.RecalculateMeals()

		if err := ValidateLog(next); err != nil {
			return err
		}

		if err := tx.Save(next).Error; err != nil {
			return fmt.Errorf("failed to save daily log: %w", err)
		}
		result = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			log.Printf("[DailyLogService] Failed to invalidate dashboard cache for user %s: %v", userID, err)
		}
	}
	return result, nil
}

// lockDailyLog makes sure the day's row exists and loads it locked for the
// rest of tx. Concurrent upserts of the same day queue on the row lock, and
// a losing first insert is a no-op instead of a unique violation. A rejected
// update rolls the empty row back with the transaction.
func lockDailyLog(tx *gorm.DB, userID uuid.UUID, date string) (*models.DailyLog, error) {
	empty := &models.DailyLog{UserID: userID, Date: date}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(empty).Error; err != nil {
		return nil, fmt.Errorf("failed to create daily log: %w", err)
	}

	current := &models.DailyLog{}
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND date = ?", userID, date).
		First(current).Error; err != nil {
		return nil, fmt.Errorf("failed to load daily log: %w", err)
	}
	return current, nil
}

// ListRecent returns up to limit most recent logs in ascending date order
func (s *DailyLogService) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.DailyLog, error) {
	logs := []models.DailyLog{}
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	return logs, nil
}

// ListRange returns the logs between from and to inclusive, oldest first
func (s *DailyLogService) ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]models.DailyLog, error) {
	if err := models.ValidateDate(from); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLog, err)
	}
	if err := models.ValidateDate(to); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLog, err)
	}
	if from > to {
		return nil, fmt.Errorf("%w: from %s is after to %s", ErrInvalidLog, from, to)
	}

	logs := []models.DailyLog{}
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}
	return logs, nil
}

// ValidateLog rejects values outside their recorded ranges.
func ValidateLog(l *models.DailyLog) error {
	if l.WaterIntake.Float() < 0 {
		return fmt.Errorf("%w: water intake cannot be negative", ErrInvalidLog)
	}
	if l.Mood != nil {
		for _, v := range l.Mood.Values() {
			if v < 0 || v > 5 {
				return fmt.Errorf("%w: mood ratings must be between 1 and 5", ErrInvalidLog)
			}
		}
	}
	if l.Sleep != nil && l.Sleep.Quality.Valid {
		if q := l.Sleep.Quality.Float(); q < 1 || q > 5 {
			return fmt.Errorf("%w: sleep quality must be between 1 and 5", ErrInvalidLog)
		}
	}
	for _, w := range l.Workouts {
		for _, ex := range w.Exercises {
			if e := ex.Effort; e.Valid && (e.Float() < 1 || e.Float() > 10) {
				return fmt.Errorf("%w: effort for %s must be between 1 and 10", ErrInvalidLog, ex.Name)
			}
		}
	}
	return nil
}
