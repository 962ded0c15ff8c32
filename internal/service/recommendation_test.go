package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/vitalog/backend/internal/mocks"
	"github.com/pageza/vitalog/backend/internal/models"
	"github.com/pageza/vitalog/backend/internal/plans"
	"github.com/pageza/vitalog/backend/internal/recommendation"
	"github.com/pageza/vitalog/backend/internal/service"
)

func TestGetAdvice(t *testing.T) {
	profiles := new(mocks.MockProfileService)
	svc := service.NewRecommendationService(profiles)
	ctx := context.Background()
	userID := uuid.New()

	profile := &models.UserProfile{
		UserID:            userID,
		PrimaryGoal:       "Weight Loss",
		Weight:            models.NewNumber(80),
		TargetWeight:      models.NewNumber(74),
		TrackingFrequency: "Daily",
	}
	profiles.On("GetProfile", ctx, userID).Return(profile, nil).Once()

	advice, err := svc.GetAdvice(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, recommendation.GenerateAdvice(profile), advice)
	assert.Contains(t, recommendation.Texts(advice), "Log your activities daily")
	profiles.AssertExpectations(t)
}

func TestGetAdviceWithoutProfile(t *testing.T) {
	profiles := new(mocks.MockProfileService)
	svc := service.NewRecommendationService(profiles)
	ctx := context.Background()
	userID := uuid.New()

	profiles.On("GetProfile", ctx, userID).Return(nil, errNotFound()).Once()

	advice, err := svc.GetAdvice(ctx, userID)
	assert.ErrorIs(t, err, recommendation.ErrProfileIncomplete)
	assert.Nil(t, advice)
}

func TestGetAdvicePropagatesStorageErrors(t *testing.T) {
	profiles := new(mocks.MockProfileService)
	svc := service.NewRecommendationService(profiles)
	ctx := context.Background()
	userID := uuid.New()

	storageErr := errors.New("db down")
	profiles.On("GetProfile", ctx, userID).Return(nil, storageErr).Once()

	_, err := svc.GetAdvice(ctx, userID)
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, recommendation.ErrProfileIncomplete)
}

func TestGetSuggestedPlans(t *testing.T) {
	profiles := new(mocks.MockProfileService)
	svc := service.NewRecommendationService(profiles)
	ctx := context.Background()
	userID := uuid.New()

	profiles.On("GetProfile", ctx, userID).Return(&models.UserProfile{PrimaryGoal: "Muscle Gain"}, nil).Once()

	suggestion, err := svc.GetSuggestedPlans(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, plans.Suggest("Muscle Gain"), *suggestion)
	assert.Equal(t, plans.ProgramWeightGain, suggestion.Program.Goal)
}
