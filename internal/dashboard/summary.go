// Package dashboard turns stored daily logs into display-ready summaries.
//
// Every function here is pure: absent or malformed data is read as zero and
// no input shape produces an error, NaN or Inf.
package dashboard

import (
	"math"
	"sort"

	"github.com/pageza/vitalog/backend/internal/models"
)

// MoodBuckets is the histogram order of DaySummary.MoodDistribution.
var MoodBuckets = [5]string{"Very Happy", "Happy", "Neutral", "Sad", "Very Sad"}

// defaultMoodDistribution is reported for days without any mood data.
// HasMoodData is false whenever it is used.
var defaultMoodDistribution = []int{0, 0, 0, 1, 0}

// DaySummary is the rollup of a single DailyLog.
type DaySummary struct {
	Date             string  `json:"date"`
	TotalCalories    float64 `json:"total_calories"`
	TotalProtein     float64 `json:"total_protein"`
	TotalCarbs       float64 `json:"total_carbs"`
	TotalFat         float64 `json:"total_fat"`
	WaterIntake      float64 `json:"water_intake"`
	SleepHours       float64 `json:"sleep_hours"`
	SleepQuality     int     `json:"sleep_quality"`
	WorkoutComplete  bool    `json:"workout_complete"`
	MoodDistribution []int   `json:"mood_distribution"`
	HasMoodData      bool    `json:"has_mood_data"`
	Supplements      int     `json:"supplements"`
	SupplementsTaken int     `json:"supplements_taken"`
}

// SummarizeDay rolls up one day's log.
func SummarizeDay(log models.DailyLog) DaySummary {
	s := DaySummary{Date: log.Date}

	slots := make([]string, 0, len(log.Meals))
	for slot := range log.Meals {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	var totals models.Macros
	for _, slot := range slots {
		totals = totals.Add(log.Meals[slot].Totals())
	}
	s.TotalCalories = finite(totals.Calories)
	s.TotalProtein = finite(totals.Protein)
	s.TotalCarbs = finite(totals.Carbs)
	s.TotalFat = finite(totals.Fat)

	s.WaterIntake = math.Max(0, log.WaterIntake.Float())

	if log.Sleep != nil {
		s.SleepHours = sleepHours(*log.Sleep)
		s.SleepQuality = int(math.Round(clamp(log.Sleep.Quality.Float(), 0, 5)))
	}

	s.WorkoutComplete = workoutComplete(log.Workouts)
	s.MoodDistribution, s.HasMoodData = moodDistribution(log)

	s.Supplements = len(log.Supplements)
	for _, supp := range log.Supplements {
		if supp.Taken {
			s.SupplementsTaken++
		}
	}

	return s
}

// SummarizeRange summarizes logs in the given order. A positive windowSize
// keeps only the last windowSize logs. Missing dates are not filled in.
func SummarizeRange(logs []models.DailyLog, windowSize int) []DaySummary {
	if windowSize > 0 && len(logs) > windowSize {
		logs = logs[len(logs)-windowSize:]
	}
	out := make([]DaySummary, 0, len(logs))
	for _, log := range logs {
		out = append(out, SummarizeDay(log))
	}
	return out
}

func sleepHours(sleep models.SleepEntry) float64 {
	if h := sleep.Duration.Float(); h > 0 {
		return h
	}
	if d, ok := sleep.ClockDuration(); ok {
		return d.Minutes() / 60
	}
	return 0
}

func workoutComplete(workouts []models.WorkoutEntry) bool {
	for _, w := range workouts {
		if w.Duration.Float() > 0 || len(w.Exercises) > 0 {
			return true
		}
	}
	return false
}

func moodDistribution(log models.DailyLog) ([]int, bool) {
	if len(log.MoodDistribution) == len(MoodBuckets) {
		dist := make([]int, len(MoodBuckets))
		for i, v := range log.MoodDistribution {
			if v > 0 {
				dist[i] = v
			}
		}
		return dist, true
	}

	if log.Mood != nil {
		dist := make([]int, len(MoodBuckets))
		recorded := false
		for _, v := range log.Mood.Values() {
			if v < 1 || v > 5 {
				continue
			}
			dist[5-v]++
			recorded = true
		}
		if recorded {
			return dist, true
		}
	}

	return append([]int(nil), defaultMoodDistribution...), false
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
