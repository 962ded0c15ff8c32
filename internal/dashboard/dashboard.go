package dashboard

import (
	"github.com/pageza/vitalog/backend/internal/models"
)

const (
	// DefaultWindow is the number of days shown on the dashboard.
	DefaultWindow = 10

	// HydrationTargetML is the water intake below which the dashboard
	// shows a reminder.
	HydrationTargetML = 1000.0
	HydrationReminder = "Don't forget to drink more water today!"
)

// Dashboard is everything the dashboard page renders.
type Dashboard struct {
	Today         *DaySummary     `json:"today"`
	TodayWorkout  *WorkoutSummary `json:"today_workout,omitempty"`
	AverageMood   *float64        `json:"average_mood,omitempty"`
	Days          []DaySummary    `json:"days"`
	Progress      ProgressReport  `json:"progress"`
	CurrentWeight *float64        `json:"current_weight,omitempty"`
	Reminders     []string        `json:"reminders"`
}

// Build assembles the dashboard from logs in ascending date order. The
// entry for date is "today"; without one the latest entry is shown and the
// hydration reminder is raised since nothing was logged for the day yet.
func Build(logs []models.DailyLog, date string, window int) Dashboard {
	if window <= 0 {
		window = DefaultWindow
	}

	d := Dashboard{
		Days:      SummarizeRange(logs, window),
		Reminders: []string{},
	}
	d.Progress = CompareRange(d.Days)

	for i := len(logs) - 1; i >= 0; i-- {
		if logs[i].Weight.Float() > 0 {
			w := logs[i].Weight.Float()
			d.CurrentWeight = &w
			break
		}
	}

	todayLog, found := pickToday(logs, date)
	if todayLog != nil {
		summary := SummarizeDay(*todayLog)
		d.Today = &summary

		weight := DefaultBodyWeightKg
		if d.CurrentWeight != nil {
			weight = *d.CurrentWeight
		}
		workout := SummarizeWorkouts(todayLog.Workouts, weight)
		d.TodayWorkout = &workout

		if avg, ok := AverageMood(todayLog.Mood); ok {
			d.AverageMood = &avg
		}
	}

	if !found || d.Today.WaterIntake < HydrationTargetML {
		d.Reminders = append(d.Reminders, HydrationReminder)
	}
	return d
}

func pickToday(logs []models.DailyLog, date string) (*models.DailyLog, bool) {
	for i := len(logs) - 1; i >= 0; i-- {
		if logs[i].Date == date {
			return &logs[i], true
		}
	}
	if len(logs) == 0 {
		return nil, false
	}
	return &logs[len(logs)-1], false
}
