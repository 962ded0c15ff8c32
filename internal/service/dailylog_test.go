package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/vitalog/backend/internal/mocks"
	"github.com/pageza/vitalog/backend/internal/models"
	"github.com/pageza/vitalog/backend/internal/service"
	"github.com/pageza/vitalog/backend/internal/testhelpers"
)

const breakfastLog = `{
	"meals": {
		"breakfast": {
			"items": [
				{"name": "Oats", "portion": {"amount": 80, "unit": "g"}, "calories": 300, "protein": 10, "carbs": 50, "fat": 5},
				{"name": "Milk", "calories": "100", "protein": 8, "carbs": 12, "fat": 4}
			],
			"calories": 9999
		}
	},
	"water_intake": 500
}`

func TestUpsertLogRecalculatesMeals(t *testing.T) {
	svc := service.NewDailyLogService(testhelpers.SetupSQLiteDB(t), nil)
	ctx := context.Background()
	userID := uuid.New()

	entry, err := svc.UpsertLog(ctx, userID, "2024-03-01", patch(t, breakfastLog))
	require.NoError(t, err)

	breakfast := entry.Meals[models.SlotBreakfast]
	assert.Equal(t, 400.0, breakfast.Calories.Float())
	assert.Equal(t, 18.0, breakfast.Protein.Float())
	assert.Equal(t, 62.0, breakfast.Carbs.Float())
	assert.Equal(t, 9.0, breakfast.Fat.Float())

	loaded, err := svc.GetLog(ctx, userID, "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, entry.ID, loaded.ID)
	assert.Equal(t, 400.0, loaded.Meals[models.SlotBreakfast].Calories.Float())
	assert.Equal(t, 500.0, loaded.WaterIntake.Float())
	assert.Equal(t, "Oats", loaded.Meals[models.SlotBreakfast].Items[0].Name)
}

func TestUpsertLogMergesTopLevelFields(t *testing.T) {
	svc := service.NewDailyLogService(testhelpers.SetupSQLiteDB(t), nil)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.UpsertLog(ctx, userID, "2024-03-01", patch(t, breakfastLog))
	require.NoError(t, err)

	entry, err := svc.UpsertLog(ctx, userID, "2024-03-01", patch(t, `{
		"sleep": {"sleep_start": "23:00", "sleep_end": "06:30", "quality": 4},
		"mood": {"morning": 4, "afternoon": 3, "evening": 5}
	}`))
	require.NoError(t, err)
	assert.Equal(t, 400.0, entry.Meals[models.SlotBreakfast].Calories.Float())
	assert.Equal(t, 500.0, entry.WaterIntake.Float())
	require.NotNil(t, entry.Sleep)
	assert.Equal(t, "23:00", entry.Sleep.SleepStart)
	require.NotNil(t, entry.Mood)
	assert.Equal(t, models.Rating(5), entry.Mood.Evening)

	// Replacing meals replaces the whole map.
	entry, err = svc.UpsertLog(ctx, userID, "2024-03-01", patch(t, `{"meals": {"dinner": {"calories": 700}}}`))
	require.NoError(t, err)
	assert.NotContains(t, entry.Meals, models.SlotBreakfast)
	assert.Equal(t, 700.0, entry.Meals[models.SlotDinner].Calories.Float())
}

func TestUpsertLogIgnoresPatchedDate(t *testing.T) {
	svc := service.NewDailyLogService(testhelpers.SetupSQLiteDB(t), nil)
	ctx := context.Background()
	userID := uuid.New()

	entry, err := svc.UpsertLog(ctx, userID, "2024-03-01", patch(t, `{"date": "1999-01-01", "water_intake": 250}`))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", entry.Date)
}

func TestUpsertLogValidation(t *testing.T) {
	tests := []struct {
		name string
		date string
		doc  string
	}{
		{name: "bad date", date: "03/01/2024", doc: `{}`},
		{name: "negative water", date: "2024-03-01", doc: `{"water_intake": -5}`},
		{name: "mood out of range", date: "2024-03-01", doc: `{"mood": {"morning": 9}}`},
		{name: "sleep quality out of range", date: "2024-03-01", doc: `{"sleep": {"quality": 7}}`},
		{name: "effort out of range", date: "2024-03-01", doc: `{"workouts": [{"exercises": [{"name": "Run", "effort": 11}]}]}`},
		{name: "malformed workouts", date: "2024-03-01", doc: `{"workouts": {"name": "Run"}}`},
	}

	svc := service.NewDailyLogService(testhelpers.SetupSQLiteDB(t), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpsertLog(context.Background(), uuid.New(), tt.date, patch(t, tt.doc))
			assert.ErrorIs(t, err, service.ErrInvalidLog)
		})
	}
}

func TestUpsertLogRejectedFirstWriteLeavesNoLog(t *testing.T) {
	svc := service.NewDailyLogService(testhelpers.SetupSQLiteDB(t), nil)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.UpsertLog(ctx, userID, "2024-03-01", patch(t, `{"water_intake": -1}`))
	require.ErrorIs(t, err, service.ErrInvalidLog)

	_, err = svc.GetLog(ctx, userID, "2024-03-01")
	assert.True(t, service.IsNotFound(err))
}

func TestUpsertLogStoresSupplements(t *testing.T) {
	svc := service.NewDailyLogService(testhelpers.SetupSQLiteDB(t), nil)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.UpsertLog(ctx, userID, "2024-03-01", patch(t, `{
		"water_intake": 500,
		"supplements": [
			{"name": "Vitamin D", "dosage": "1000 IU", "time": "08:00", "taken": true},
			{"name": "Omega 3", "dosage": "1 g", "time": "20:00"}
		]
	}`))
	require.NoError(t, err)

	// Later edits that do not mention supplements keep them.
	_, err = svc.UpsertLog(ctx, userID, "2024-03-01", patch(t, `{"weight": 72}`))
	require.NoError(t, err)

	loaded, err := svc.GetLog(ctx, userID, "2024-03-01")
	require.NoError(t, err)
	require.Len(t, loaded.Supplements, 2)
	assert.Equal(t, models.SupplementEntry{Name: "Vitamin D", Dosage: "1000 IU", Time: "08:00", Taken: true}, loaded.Supplements[0])
	assert.Equal(t, "Omega 3", loaded.Supplements[1].Name)
	assert.False(t, loaded.Supplements[1].Taken)
	assert.Equal(t, 500.0, loaded.WaterIntake.Float())
}

func TestUpsertLogCoercesMalformedMood(t *testing.T) {
	svc := service.NewDailyLogService(testhelpers.SetupSQLiteDB(t), nil)
	ctx := context.Background()
	userID := uuid.New()

	entry, err := svc.UpsertLog(ctx, userID, "2024-03-01", patch(t, `{
		"water_intake": "abc",
		"mood": {"morning": "4", "afternoon": "great", "evening": 5},
		"mood_distribution": [0, "1", "x", 2, 0]
	}`))
	require.NoError(t, err)
	assert.False(t, entry.WaterIntake.Valid)
	assert.Equal(t, []int{4, 0, 5}, entry.Mood.Values())

	loaded, err := svc.GetLog(ctx, userID, "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 5}, loaded.Mood.Values())
	assert.Equal(t, models.Ratings{0, 1, 0, 2, 0}, loaded.MoodDistribution)
}

func TestUpsertLogConcurrentPatches(t *testing.T) {
	assertConcurrentLogPatches(t, testhelpers.SetupSQLiteDB(t))
}

func TestUpsertLogConcurrentPatchesPostgres(t *testing.T) {
	db, _ := testhelpers.SetupTestDatabase(t)
	assertConcurrentLogPatches(t, db)
}

// assertConcurrentLogPatches sends one patch per field for a day that does
// not exist yet, all at once, and expects every field to survive.
func assertConcurrentLogPatches(t *testing.T, db *gorm.DB) {
	t.Helper()
	svc := service.NewDailyLogService(db, nil)
	ctx := context.Background()
	userID := uuid.New()

	docs := []string{
		`{"water_intake": 1750}`,
		`{"weight": 81.5}`,
		`{"sleep": {"sleep_start": "23:00", "sleep_end": "07:00", "quality": 4}}`,
		`{"mood": {"morning": 3, "evening": 4}}`,
		`{"supplements": [{"name": "Zinc", "dosage": "15 mg", "taken": true}]}`,
		`{"meals": {"lunch": {"calories": 650}}}`,
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(docs))
	for _, doc := range docs {
		p := patch(t, doc)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.UpsertLog(ctx, userID, "2024-03-01", p)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	loaded, err := svc.GetLog(ctx, userID, "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 1750.0, loaded.WaterIntake.Float())
	assert.Equal(t, 81.5, loaded.Weight.Float())
	require.NotNil(t, loaded.Sleep)
	assert.Equal(t, "07:00", loaded.Sleep.SleepEnd)
	require.NotNil(t, loaded.Mood)
	assert.Equal(t, []int{3, 0, 4}, loaded.Mood.Values())
	assert.Len(t, loaded.Supplements, 1)
	assert.Equal(t, 650.0, loaded.Meals[models.SlotLunch].Calories.Float())

	logs, err := svc.ListRecent(ctx, userID, 10)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestUpsertLogInvalidatesDashboardCache(t *testing.T) {
	cache := new(mocks.MockDashboardCache)
	svc := service.NewDailyLogService(testhelpers.SetupSQLiteDB(t), cache)
	userID := uuid.New()

	cache.On("Invalidate", mock.Anything, userID).Return(errors.New("redis down")).Once()

	// A failed invalidation does not fail the write.
	_, err := svc.UpsertLog(context.Background(), userID, "2024-03-01", patch(t, `{"water_intake": 250}`))
	require.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestListRecentAndRange(t *testing.T) {
	svc := service.NewDailyLogService(testhelpers.SetupSQLiteDB(t), nil)
	ctx := context.Background()
	userID := uuid.New()

	for _, date := range []string{"2024-03-03", "2024-03-01", "2024-03-05", "2024-03-02", "2024-03-04"} {
		_, err := svc.UpsertLog(ctx, userID, date, patch(t, `{"water_intake": 100}`))
		require.NoError(t, err)
	}
	_, err := svc.UpsertLog(ctx, uuid.New(), "2024-03-06", patch(t, `{}`))
	require.NoError(t, err)

	recent, err := svc.ListRecent(ctx, userID, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-03", "2024-03-04", "2024-03-05"}, dates(recent))

	ranged, err := svc.ListRange(ctx, userID, "2024-03-02", "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-02", "2024-03-03", "2024-03-04"}, dates(ranged))

	_, err = svc.ListRange(ctx, userID, "2024-03-04", "2024-03-02")
	assert.ErrorIs(t, err, service.ErrInvalidLog)

	empty, err := svc.ListRecent(ctx, uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetLogNotFound(t *testing.T) {
	svc := service.NewDailyLogService(testhelpers.SetupSQLiteDB(t), nil)

	_, err := svc.GetLog(context.Background(), uuid.New(), "2024-03-01")
	assert.True(t, service.IsNotFound(err))

	_, err = svc.GetLog(context.Background(), uuid.New(), "yesterday")
	assert.ErrorIs(t, err, service.ErrInvalidLog)
}

func dates(logs []models.DailyLog) []string {
	out := make([]string, len(logs))
	for i, l := range logs {
		out[i] = l.Date
	}
	return out
}
