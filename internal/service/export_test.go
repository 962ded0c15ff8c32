package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/vitalog/backend/internal/mocks"
	"github.com/pageza/vitalog/backend/internal/models"
	"github.com/pageza/vitalog/backend/internal/service"
)

func TestExportLog(t *testing.T) {
	logs := new(mocks.MockDailyLogService)
	store := new(mocks.MockObjectStore)
	svc := service.NewExportService(logs, store)
	ctx := context.Background()
	userID := uuid.New()
	key := "exports/" + userID.String() + "/2024-03-02.json"

	entry := &models.DailyLog{UserID: userID, Date: "2024-03-02", WaterIntake: models.NewNumber(750)}
	logs.On("GetLog", ctx, userID, "2024-03-02").Return(entry, nil).Once()

	var uploaded []byte
	store.On("Upload", ctx, key, mock.Anything, "application/json").
		Run(func(args mock.Arguments) { uploaded = args.Get(2).([]byte) }).
		Return(nil).Once()
	store.On("GeneratePresignedURL", ctx, key, service.ExportURLTTL).
		Return("https://bucket.example/"+key+"?sig=1", nil).Once()

	before := time.Now()
	result, err := svc.ExportLog(ctx, userID, "2024-03-02")
	require.NoError(t, err)
	assert.Equal(t, key, result.Key)
	assert.Equal(t, service.ExportKey(userID, "2024-03-02"), result.Key)
	assert.Contains(t, result.URL, "sig=1")
	assert.True(t, result.ExpiresAt.After(before.Add(service.ExportURLTTL-time.Second)))

	var doc struct {
		UserID  string          `json:"user_id"`
		Date    string          `json:"date"`
		Log     json.RawMessage `json:"log"`
		Summary struct {
			WaterIntake float64 `json:"water_intake"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(uploaded, &doc))
	assert.Equal(t, userID.String(), doc.UserID)
	assert.Equal(t, "2024-03-02", doc.Date)
	assert.NotEmpty(t, doc.Log)
	assert.Equal(t, 750.0, doc.Summary.WaterIntake)

	logs.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestExportLogNotFound(t *testing.T) {
	logs := new(mocks.MockDailyLogService)
	store := new(mocks.MockObjectStore)
	svc := service.NewExportService(logs, store)
	ctx := context.Background()
	userID := uuid.New()

	logs.On("GetLog", ctx, userID, "2024-03-02").Return(nil, errNotFound()).Once()

	_, err := svc.ExportLog(ctx, userID, "2024-03-02")
	assert.True(t, service.IsNotFound(err))
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExportLogUploadFailure(t *testing.T) {
	logs := new(mocks.MockDailyLogService)
	store := new(mocks.MockObjectStore)
	svc := service.NewExportService(logs, store)
	ctx := context.Background()
	userID := uuid.New()

	logs.On("GetLog", ctx, userID, "2024-03-02").Return(&models.DailyLog{Date: "2024-03-02"}, nil).Once()
	uploadErr := errors.New("access denied")
	store.On("Upload", ctx, mock.Anything, mock.Anything, mock.Anything).Return(uploadErr).Once()

	_, err := svc.ExportLog(ctx, userID, "2024-03-02")
	assert.ErrorIs(t, err, uploadErr)
	store.AssertNotCalled(t, "GeneratePresignedURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestExportLogWithoutStore(t *testing.T) {
	svc := service.NewExportService(new(mocks.MockDailyLogService), nil)

	_, err := svc.ExportLog(context.Background(), uuid.New(), "2024-03-02")
	assert.ErrorIs(t, err, service.ErrExportUnavailable)
}
