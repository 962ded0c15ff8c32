package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/vitalog/backend/internal/dashboard"
	"github.com/pageza/vitalog/backend/internal/models"
)

// ExportURLTTL is how long an export download link stays valid.
const ExportURLTTL = 15 * time.Minute

// ErrExportUnavailable is returned when no object store is configured.
var ErrExportUnavailable = errors.New("export storage not configured")

// ExportResult points at an uploaded export
type ExportResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type exportDocument struct {
	UserID     uuid.UUID            `json:"user_id"`
	Date       string               `json:"date"`
	ExportedAt time.Time            `json:"exported_at"`
	Log        *models.DailyLog     `json:"log"`
	Summary    dashboard.DaySummary `json:"summary"`
}

// ExportService writes daily logs to object storage
type ExportService struct {
	logs   IDailyLogService
	store  ObjectStore
	urlTTL time.Duration
	now    func() time.Time
}

// Ensure ExportService implements IExportService
var _ IExportService = (*ExportService)(nil)

// NewExportService creates a new ExportService. store may be nil, in which
// case every export fails with ErrExportUnavailable.
func NewExportService(logs IDailyLogService, store ObjectStore) *ExportService {
	return &ExportService{
		logs:   logs,
		store:  store,
		urlTTL: ExportURLTTL,
		now:    time.Now,
	}
}

// ExportKey is the object key a day's export is stored under.
func ExportKey(userID uuid.UUID, date string) string {
	return fmt.Sprintf("exports/%s/%s.json", userID, date)
}

// ExportLog uploads the day's log with its summary and returns a
// presigned download link.
func (s *ExportService) ExportLog(ctx context.Context, userID uuid.UUID, date string) (*ExportResult, error) {
	if s.store == nil {
		return nil, ErrExportUnavailable
	}

	entry, err := s.logs.GetLog(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	body, err := json.Marshal(exportDocument{
		UserID:     userID,
		Date:       date,
		ExportedAt: now,
		Log:        entry,
		Summary:    dashboard.SummarizeDay(*entry),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}

	key := ExportKey(userID, date)
	if err := s.store.Upload(ctx, key, body, "application/json"); err != nil {
		return nil, fmt.Errorf("failed to upload export: %w", err)
	}

	url, err := s.store.GeneratePresignedURL(ctx, key, s.urlTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign export: %w", err)
	}

	log.Printf("[ExportService] Exported %s for user %s", date, userID)
	return &ExportResult{
		Key:       key,
		URL:       url,
		ExpiresAt: now.Add(s.urlTTL),
	}, nil
}
