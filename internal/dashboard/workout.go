package dashboard

import (
	"math"

	"github.com/pageza/vitalog/backend/internal/models"
)

const (
	// DefaultBodyWeightKg is used for calorie estimates when the user's
	// weight is unknown.
	DefaultBodyWeightKg = 70.0
	defaultMET          = 3.0
	minutesPerSet       = 2.0
)

// metValues are metabolic equivalents per exercise name.
var metValues = map[string]float64{
	"Running":     11.0,
	"Cycling":     8.0,
	"Swimming":    7.0,
	"Jump Rope":   12.3,
	"HIIT":        8.0,
	"Bench Press": 3.8,
	"Squats":      5.0,
	"Deadlifts":   6.0,
	"Pull-ups":    4.0,
	"Push-ups":    3.8,
	"Yoga":        2.5,
	"Stretching":  2.3,
	"Pilates":     3.0,
}

// MET returns the metabolic equivalent for an exercise, or 3.0 when unknown.
func MET(exercise string) float64 {
	if met, ok := metValues[exercise]; ok {
		return met
	}
	return defaultMET
}

// EstimateCalories estimates kcal burned for minutes of exercise.
func EstimateCalories(exercise string, minutes, bodyWeightKg float64) float64 {
	if bodyWeightKg <= 0 {
		bodyWeightKg = DefaultBodyWeightKg
	}
	if minutes <= 0 {
		return 0
	}
	return math.Round(minutes / 60 * MET(exercise) * 3.5 * bodyWeightKg / 200)
}

// WorkoutSummary totals a day's workouts.
type WorkoutSummary struct {
	TotalDuration  float64  `json:"total_duration"`
	Duration       string   `json:"duration"`
	TotalCalories  float64  `json:"total_calories"`
	TotalSets      int      `json:"total_sets"`
	TotalVolume    float64  `json:"total_volume"`
	TotalDistance  float64  `json:"total_distance"`
	ExerciseTypes  []string `json:"exercise_types"`
	CompletedCount int      `json:"completed_count"`
}

// SummarizeWorkouts totals duration, calories, sets, lifted volume and
// distance. A workout's own duration and caloriesBurned win over the
// per-exercise estimates.
func SummarizeWorkouts(workouts []models.WorkoutEntry, bodyWeightKg float64) WorkoutSummary {
	s := WorkoutSummary{ExerciseTypes: []string{}}
	seen := make(map[string]bool)

	for _, w := range workouts {
		var derivedMinutes, estimated float64
		for _, ex := range w.Exercises {
			minutes := exerciseMinutes(ex)
			derivedMinutes += minutes
			estimated += EstimateCalories(ex.Name, minutes, bodyWeightKg)

			s.TotalSets += len(ex.Sets)
			for _, set := range ex.Sets {
				s.TotalVolume += set.Reps.Float() * set.Weight.Float()
			}
			s.TotalDistance += math.Max(0, ex.Distance.Float())
			if ex.Completed {
				s.CompletedCount++
			}
			if ex.Name != "" && !seen[ex.Name] {
				seen[ex.Name] = true
				s.ExerciseTypes = append(s.ExerciseTypes, ex.Name)
			}
		}

		if d := w.Duration.Float(); d > 0 {
			s.TotalDuration += d
		} else {
			s.TotalDuration += derivedMinutes
		}
		if c := w.CaloriesBurned.Float(); c > 0 {
			s.TotalCalories += c
		} else {
			s.TotalCalories += estimated
		}
	}

	s.TotalVolume = finite(s.TotalVolume)
	s.Duration = FormatMinutes(s.TotalDuration)
	return s
}

func exerciseMinutes(ex models.ExerciseEntry) float64 {
	if d := ex.Duration.Float(); d > 0 {
		return d
	}
	return float64(len(ex.Sets)) * minutesPerSet
}
