// Package plans holds the canned workout and meal plans offered to users.
package plans

import (
	"errors"
	"fmt"
)

// ErrUnknownPlan is returned when a plan key does not exist.
var ErrUnknownPlan = errors.New("unknown plan")

// Profile goals mapped to plans.
const (
	goalWeightLoss = "Weight Loss"
	goalMuscleGain = "Muscle Gain"
)

func unknown(kind, key string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownPlan, kind, key)
}

// Suggestion bundles the plans picked for a profile goal.
type Suggestion struct {
	Goal    string      `json:"goal"`
	Meal    MealPlan    `json:"meal_plan"`
	Program GoalProgram `json:"program"`
}

// Suggest picks the meal plan and weekly program for a profile's primary goal.
func Suggest(primaryGoal string) Suggestion {
	return Suggestion{
		Goal:    primaryGoal,
		Meal:    SuggestMealPlan(primaryGoal),
		Program: SuggestProgram(primaryGoal),
	}
}
