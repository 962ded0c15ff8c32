package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/vitalog/backend/internal/models"
	"github.com/pageza/vitalog/backend/internal/plans"
	"github.com/pageza/vitalog/backend/internal/recommendation"
	"github.com/pageza/vitalog/backend/internal/service"
)

// MockProfileService is a mock implementation of the ProfileService interface
type MockProfileService struct {
	mock.Mock
}

var _ service.IProfileService = (*MockProfileService)(nil)

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileService) UpsertProfile(ctx context.Context, userID uuid.UUID, patch service.Patch) (*models.UserProfile, error) {
	args := m.Called(ctx, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileService) GetProfileHistory(ctx context.Context, userID uuid.UUID) ([]models.ProfileHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProfileHistory), args.Error(1)
}

// MockRecommendationService is a mock implementation of the RecommendationService interface
type MockRecommendationService struct {
	mock.Mock
}

var _ service.IRecommendationService = (*MockRecommendationService)(nil)

func (m *MockRecommendationService) GetAdvice(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recommendation.Recommendation), args.Error(1)
}

func (m *MockRecommendationService) GetSuggestedPlans(ctx context.Context, userID uuid.UUID) (*plans.Suggestion, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plans.Suggestion), args.Error(1)
}
