package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/vitalog/backend/internal/models"
)

// ErrInvalidProfile is returned when a profile fails save-time validation.
var ErrInvalidProfile = errors.New("invalid profile")

var protectedProfileFields = []string{"id", "user_id", "created_at", "updated_at"}

// ProfileService handles user profile operations
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// GetProfile retrieves a user's profile. A missing profile is reported as
// gorm.ErrRecordNotFound.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile merges patch into the stored profile, creating it on first
// save. Only the keys present in patch change. Every changed field is
// recorded in the profile history.
func (s *ProfileService) UpsertProfile(ctx context.Context, userID uuid.UUID, patch Patch) (*models.UserProfile, error) {
	var result *models.UserProfile

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := lockProfile(tx, userID)
		if err != nil {
			return err
		}

		next, changes, err := applyPatch(current, patch, protectedProfileFields...)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
		}
		next.ID = current.ID
		next.UserID = userID
		next.CreatedAt = current.CreatedAt

		if err := ValidateProfile(next); err != nil {
			return err
		}

		if err := tx.Save(next).Error; err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		now := time.Now()
		for _, change := range changes {
			entry := &models.ProfileHistory{
				UserID:    userID,
				Field:     change.Field,
				OldValue:  change.OldValue,
				NewValue:  change.NewValue,
				ChangedAt: now,
				ChangedBy: userID.String(),
			}
			if err := tx.Create(entry).Error; err != nil {
				return fmt.Errorf("failed to record profile change: %w", err)
			}
		}

		result = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[ProfileService] Saved profile for user %s", userID)
	return result, nil
}

// lockProfile creates the profile row if needed and loads it with a row
// lock held until tx ends, so concurrent saves merge one after another.
func lockProfile(tx *gorm.DB, userID uuid.UUID) (*models.UserProfile, error) {
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&models.UserProfile{UserID: userID}).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	current := &models.UserProfile{}
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(current).Error; err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return current, nil
}

// GetProfileHistory retrieves the change history for a user's profile
func (s *ProfileService) GetProfileHistory(ctx context.Context, userID uuid.UUID) ([]models.ProfileHistory, error) {
	history := []models.ProfileHistory{}
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("changed_at DESC").
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

// ValidateProfile enforces the fields required on every save.
func ValidateProfile(p *models.UserProfile) error {
	switch {
	case !p.Age.Valid:
		return fmt.Errorf("%w: age is required", ErrInvalidProfile)
	case p.Age.Float() < 13 || p.Age.Float() > 120:
		return fmt.Errorf("%w: age must be between 13 and 120", ErrInvalidProfile)
	case p.Gender == "":
		return fmt.Errorf("%w: gender is required", ErrInvalidProfile)
	case !p.Height.Valid || p.Height.Float() <= 0:
		return fmt.Errorf("%w: height is required", ErrInvalidProfile)
	case !p.Weight.Valid:
		return fmt.Errorf("%w: weight is required", ErrInvalidProfile)
	case p.Weight.Float() < 20 || p.Weight.Float() > 500:
		return fmt.Errorf("%w: weight must be between 20 and 500", ErrInvalidProfile)
	}
	return nil
}
