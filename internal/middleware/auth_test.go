package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/vitalog/backend/internal/mocks"
	"github.com/pageza/vitalog/backend/internal/service"
	"github.com/pageza/vitalog/backend/internal/types"
)

func newAuthRouter(v TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware(v))
	router.GET("/me", func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id, "username": c.GetString("username")})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	authService := new(mocks.MockAuthService)
	authService.On("ValidateToken", "good").Return(&types.TokenClaims{UserID: userID, Username: "sam"}, nil)
	authService.On("ValidateToken", "stale").Return(nil, service.ErrTokenExpired)
	authService.On("ValidateToken", "forged").Return(nil, service.ErrInvalidToken)
	router := newAuthRouter(authService)

	tests := []struct {
		name   string
		header string
		status int
		err    string
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized, err: "missing authorization header"},
		{name: "wrong scheme", header: "Basic good", status: http.StatusUnauthorized, err: "invalid authorization header format"},
		{name: "extra parts", header: "Bearer good token", status: http.StatusUnauthorized, err: "invalid authorization header format"},
		{name: "expired token", header: "Bearer stale", status: http.StatusUnauthorized, err: "token has expired"},
		{name: "invalid token", header: "Bearer forged", status: http.StatusUnauthorized, err: "invalid token"},
		{name: "valid", header: "Bearer good", status: http.StatusOK},
		{name: "lower case scheme", header: "bearer good", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"user_id":"`+userID.String()+`","username":"sam"}`, w.Body.String())
			} else {
				assert.JSONEq(t, `{"error":"`+tt.err+`"}`, w.Body.String())
			}
		})
	}

	authService.AssertNumberOfCalls(t, "ValidateToken", 4)
}

func TestAuthMiddlewareSkipsValidationWithoutToken(t *testing.T) {
	authService := new(mocks.MockAuthService)
	router := newAuthRouter(authService)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	authService.AssertNotCalled(t, "ValidateToken", mock.Anything)
}

func TestUserIDWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := UserID(c)
	assert.False(t, ok)

	c.Set("user_id", "not-a-uuid")
	_, ok = UserID(c)
	assert.False(t, ok)
}
