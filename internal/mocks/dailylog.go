package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/vitalog/backend/internal/dashboard"
	"github.com/pageza/vitalog/backend/internal/models"
	"github.com/pageza/vitalog/backend/internal/service"
)

// MockDailyLogService is a mock implementation of the DailyLogService interface
type MockDailyLogService struct {
	mock.Mock
}

var _ service.IDailyLogService = (*MockDailyLogService)(nil)

func (m *MockDailyLogService) GetLog(ctx context.Context, userID uuid.UUID, date string) (*models.DailyLog, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyLog), args.Error(1)
}

func (m *MockDailyLogService) UpsertLog(ctx context.Context, userID uuid.UUID, date string, patch service.Patch) (*models.DailyLog, error) {
	args := m.Called(ctx, userID, date, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyLog), args.Error(1)
}

func (m *MockDailyLogService) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.DailyLog, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyLog), args.Error(1)
}

func (m *MockDailyLogService) ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]models.DailyLog, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyLog), args.Error(1)
}

// MockDashboardService is a mock implementation of the DashboardService interface
type MockDashboardService struct {
	mock.Mock
}

var _ service.IDashboardService = (*MockDashboardService)(nil)

func (m *MockDashboardService) GetDashboard(ctx context.Context, userID uuid.UUID, loc *time.Location) (*dashboard.Dashboard, error) {
	args := m.Called(ctx, userID, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Dashboard), args.Error(1)
}

func (m *MockDashboardService) GetDaySummary(ctx context.Context, userID uuid.UUID, date string) (*service.DayReport, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DayReport), args.Error(1)
}

// MockExportService is a mock implementation of the ExportService interface
type MockExportService struct {
	mock.Mock
}

var _ service.IExportService = (*MockExportService)(nil)

func (m *MockExportService) ExportLog(ctx context.Context, userID uuid.UUID, date string) (*service.ExportResult, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}
