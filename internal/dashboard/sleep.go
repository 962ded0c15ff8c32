package dashboard

import (
	"fmt"
	"math"
	"time"

	"github.com/pageza/vitalog/backend/internal/models"
)

// SleepDuration is the time slept between two "HH:MM" clock times. An end
// before the start is taken to cross midnight.
func SleepDuration(start, end string) (time.Duration, bool) {
	return models.ClockDiff(start, end)
}

// FormatDuration renders d as "6h 45m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d.Round(time.Minute) / time.Minute)
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}

// FormatMinutes renders a workout length as "1h 5m" or "45 mins".
func FormatMinutes(minutes float64) string {
	total := int(math.Round(math.Max(0, minutes)))
	if h := total / 60; h > 0 {
		return fmt.Sprintf("%dh %dm", h, total%60)
	}
	return fmt.Sprintf("%d mins", total)
}
