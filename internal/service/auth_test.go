package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/vitalog/backend/internal/service"
	"github.com/pageza/vitalog/backend/internal/types"
)

func TestValidateTokenValid(t *testing.T) {
	svc := service.NewAuthService("test-secret", "vitalog")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "tester", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "tester", claims.Username)
	assert.Equal(t, "vitalog", claims.Issuer)
}

func TestValidateTokenInvalid(t *testing.T) {
	svc := service.NewAuthService("test-secret", "vitalog")

	claims, err := svc.ValidateToken("invalid.token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := service.NewAuthService("other-secret", "vitalog").GenerateToken(uuid.New(), "tester", time.Hour)
	require.NoError(t, err)

	_, err = service.NewAuthService("test-secret", "vitalog").ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := service.NewAuthService("test-secret", "vitalog")
	token, err := svc.GenerateToken(uuid.New(), "tester", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestValidateTokenWithoutUserID(t *testing.T) {
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.NewAuthService("test-secret", "vitalog").ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
