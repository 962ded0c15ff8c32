package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/vitalog/backend/internal/models"
	"github.com/pageza/vitalog/backend/internal/plans"
	"github.com/pageza/vitalog/backend/internal/recommendation"
)

// RecommendationService runs the advice engine against stored profiles
type RecommendationService struct {
	profiles IProfileService
}

// Ensure RecommendationService implements IRecommendationService
var _ IRecommendationService = (*RecommendationService)(nil)

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(profiles IProfileService) *RecommendationService {
	return &RecommendationService{
		profiles: profiles,
	}
}

// GetAdvice returns the advice list, or recommendation.ErrProfileIncomplete
// when the user has not saved a profile yet
func (s *RecommendationService) GetAdvice(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return recommendation.GenerateAdvice(profile), nil
}

// GetSuggestedPlans picks plans for the user's primary goal
func (s *RecommendationService) GetSuggestedPlans(ctx context.Context, userID uuid.UUID) (*plans.Suggestion, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	suggestion := plans.Suggest(profile.PrimaryGoal)
	return &suggestion, nil
}

func (s *RecommendationService) profile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		if IsNotFound(err) {
			return nil, recommendation.ErrProfileIncomplete
		}
		return nil, err
	}
	return profile, nil
}
