package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pageza/vitalog/backend/config"
	"github.com/pageza/vitalog/backend/internal/api"
	"github.com/pageza/vitalog/backend/internal/middleware"
	"github.com/pageza/vitalog/backend/internal/models"
	"github.com/pageza/vitalog/backend/internal/router"
	"github.com/pageza/vitalog/backend/internal/service"
	"github.com/pageza/vitalog/backend/internal/testhelpers"
)

const (
	minioUser     = "vitalog"
	minioPassword = "vitalog-secret"
	exportBucket  = "vitalog-exports"
)

// setupMinIO starts an S3-compatible store and returns its endpoint
func setupMinIO(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:RELEASE.2024-01-16T16-07-38Z",
			ExposedPorts: []string{"9000/tcp"},
			Cmd:          []string{"server", "/data"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     minioUser,
				"MINIO_ROOT_PASSWORD": minioPassword,
			},
			WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start minio container: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		container.Terminate(ctx)
	})

	endpoint, err := container.PortEndpoint(ctx, "9000/tcp", "http")
	if err != nil {
		t.Fatalf("failed to get minio endpoint: %v", err)
	}
	return endpoint
}

type app struct {
	router *gin.Engine
	redis  *redis.Client
	userID uuid.UUID
	token  string
}

func setupApp(t *testing.T) app {
	gin.SetMode(gin.TestMode)

	db, cfg := testhelpers.SetupTestDatabase(t)
	redisClient := testhelpers.SetupTestRedis(t)
	endpoint := setupMinIO(t)

	t.Setenv("AWS_ACCESS_KEY_ID", minioUser)
	t.Setenv("AWS_SECRET_ACCESS_KEY", minioPassword)
	cfg.S3Bucket = exportBucket
	cfg.S3Region = "us-east-1"
	cfg.S3Endpoint = endpoint

	ctx := context.Background()
	store, err := config.NewS3Config(ctx, cfg)
	require.NoError(t, err)
	_, err = store.Client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(exportBucket)})
	require.NoError(t, err)

	cache := service.NewRedisDashboardCache(redisClient)
	auth := service.NewAuthService("integration-secret", "vitalog")
	profiles := service.NewProfileService(db)
	logs := service.NewDailyLogService(db, cache)

	r := router.SetupRouter(cfg, api.Dependencies{
		DB:                    db,
		Redis:                 redisClient,
		AuthService:           auth,
		ProfileService:        profiles,
		DailyLogService:       logs,
		DashboardService:      service.NewDashboardService(logs, cache),
		RecommendationService: service.NewRecommendationService(profiles),
		ExportService:         service.NewExportService(logs, store),
		ExportLimiter:         middleware.NewExportRateLimiter(redisClient),
	})

	userID := uuid.New()
	token, err := auth.GenerateToken(userID, "integration", time.Hour)
	require.NoError(t, err)

	return app{router: r, redis: redisClient, userID: userID, token: token}
}

func (a app) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.token)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestHealthWithBackingServices(t *testing.T) {
	a := setupApp(t)

	w := a.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"redis":"ok"`)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)
}

func TestDailyTrackingFlow(t *testing.T) {
	a := setupApp(t)
	ctx := context.Background()
	today := time.Now().Format(models.DateLayout)
	cacheKey := fmt.Sprintf("dashboard:%s", a.userID)

	w := a.do(t, http.MethodPut, "/api/v1/profile", map[string]interface{}{
		"age":            41,
		"gender":         "female",
		"height":         165,
		"weight":         80,
		"activity_level": "Sedentary",
		"primary_goal":   "Weight Loss",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(t, http.MethodGet, "/api/v1/profile/history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = a.do(t, http.MethodPut, "/api/v1/logs/"+today, map[string]interface{}{
		"water_intake": 1800,
		"weight":       79.5,
		"sleep":        map[string]interface{}{"sleep_start": "23:00", "sleep_end": "07:00", "quality": 4},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// First read renders and caches the dashboard
	w = a.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	exists, err := a.redis.Exists(ctx, cacheKey).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)

	// Writing a log drops the cached dashboard
	w = a.do(t, http.MethodPut, "/api/v1/logs/"+today, map[string]interface{}{"water_intake": 2000})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	exists, err = a.redis.Exists(ctx, cacheKey).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), exists)

	w = a.do(t, http.MethodGet, "/api/v1/recommendations", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(t, http.MethodPost, "/api/v1/logs/"+today+"/export", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var export service.ExportResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &export))
	assert.Equal(t, service.ExportKey(a.userID, today), export.Key)
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))

	resp, err := http.Get(export.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var doc struct {
		Date string          `json:"date"`
		Log  models.DailyLog `json:"log"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, today, doc.Date)
	assert.Equal(t, 2000.0, doc.Log.WaterIntake.Float())

	w = a.do(t, http.MethodGet, "/api/v1/rate-limits/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"remaining":4`)
}
