package dashboard

import (
	"math"

	"github.com/pageza/vitalog/backend/internal/models"
)

var moodLabels = map[int]string{
	1: "Very Sad",
	2: "Sad",
	3: "Neutral",
	4: "Happy",
	5: "Very Happy",
}

// MoodLabel names a 1-5 mood rating.
func MoodLabel(v int) string {
	if label, ok := moodLabels[v]; ok {
		return label
	}
	return "Not recorded"
}

// AverageMood averages the recorded slots, rounded to one decimal.
func AverageMood(mood *models.MoodEntry) (float64, bool) {
	if mood == nil {
		return 0, false
	}
	var sum, n int
	for _, v := range mood.Values() {
		if v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return math.Round(float64(sum)/float64(n)*10) / 10, true
}
