package recommendation

import "github.com/pageza/vitalog/backend/internal/models"

var sleepFactorTips = []struct {
	factor string
	tip    string
}{
	{"Caffeine", "Avoid caffeine at least 6 hours before bedtime"},
	{"Screen Time", "Consider using blue light filters and avoiding screens 1 hour before bed"},
	{"Stress", "Try meditation or deep breathing exercises before bed"},
	{"Exercise", "Complete intense workouts at least 2-3 hours before bedtime"},
	{"Late Meal", "Try to eat dinner at least 3 hours before sleeping"},
	{"Noise", "Consider using earplugs or white noise machine"},
	{"Temperature", "Keep bedroom temperature between 60-67°F (15-19°C)"},
}

const shortSleepTip = "Try to get at least 7-9 hours of sleep for optimal health"

// SleepTips returns advice for one night's sleep entry: a duration tip when
// the night was under seven hours, then one tip per recorded factor.
func SleepTips(sleep *models.SleepEntry) []string {
	tips := []string{}
	if sleep == nil {
		return tips
	}

	hours, known := sleep.Duration.Float(), sleep.Duration.Float() > 0
	if !known {
		if d, ok := sleep.ClockDuration(); ok {
			hours, known = d.Hours(), true
		}
	}
	if known && hours < minSleepHours {
		tips = append(tips, shortSleepTip)
	}

	for _, ft := range sleepFactorTips {
		if models.Has(sleep.Factors, ft.factor) {
			tips = append(tips, ft.tip)
		}
	}
	return tips
}
