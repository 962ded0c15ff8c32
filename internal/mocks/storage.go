package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/vitalog/backend/internal/service"
)

// MockDashboardCache is a mock implementation of the DashboardCache interface
type MockDashboardCache struct {
	mock.Mock
}

var _ service.DashboardCache = (*MockDashboardCache)(nil)

func (m *MockDashboardCache) Get(ctx context.Context, userID uuid.UUID) (*service.CachedDashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CachedDashboard), args.Error(1)
}

func (m *MockDashboardCache) Set(ctx context.Context, userID uuid.UUID, entry *service.CachedDashboard) error {
	args := m.Called(ctx, userID, entry)
	return args.Error(0)
}

func (m *MockDashboardCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockObjectStore is a mock implementation of the ObjectStore interface
type MockObjectStore struct {
	mock.Mock
}

var _ service.ObjectStore = (*MockObjectStore)(nil)

func (m *MockObjectStore) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	args := m.Called(ctx, key, body, contentType)
	return args.Error(0)
}

func (m *MockObjectStore) GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiration)
	return args.String(0), args.Error(1)
}
