package recommendation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pageza/vitalog/backend/internal/models"
)

// Profile values the rules key on.
const (
	GoalWeightLoss  = "Weight Loss"
	GoalMuscleGain  = "Muscle Gain"
	GoalMaintenance = "Maintenance"

	ActivitySedentary = "Sedentary"

	WeeklyLossRateKg = 0.5

	minWaterLitres = 2.5
	minSleepHours  = 7.0
)

// Sections returns the advice table in output order.
func Sections() []Section {
	return []Section{
		{
			Category: CategoryWorkout,
			Header:   "Workout Recommendations:",
			Tips: []Tip{
				{
					Name: "hiit",
					When: workoutType("HIIT"),
					Lines: fixed(
						"Try alternating between HIIT days and recovery days to prevent burnout",
						"Incorporate 20-30 minute HIIT sessions 3 times a week",
					),
				},
				{
					Name: "vinyasa",
					When: workoutType("Yoga - Vinyasa Flow"),
					Lines: fixed(
						"Practice Vinyasa Flow in the morning to energize your day",
						"Consider adding restorative yoga on your rest days",
					),
				},
			},
		},
		{
			Category: CategoryNutrition,
			Header:   "Nutrition Guidelines:",
			When: func(p *models.UserProfile) bool {
				return len(p.DietaryRestrictions) > 0
			},
			Tips: []Tip{
				{
					Name: "lacto-ovo",
					When: func(p *models.UserProfile) bool {
						return models.Has(p.DietaryRestrictions, "Vegetarian - Lacto-Ovo")
					},
					Lines: fixed(
						"Ensure adequate protein through eggs, dairy, legumes",
						"Monitor B12 intake - consider supplementation",
					),
				},
				{
					Name: "hydration",
					When: func(p *models.UserProfile) bool {
						return below(p.WaterIntake, minWaterLitres)
					},
					Lines: fixed("Increase water intake to reach 2.5L daily target"),
				},
				{
					Name: "weight-loss-macros",
					When: goal(GoalWeightLoss),
					Lines: fixed(
						"Recommended macro split: 40% protein, 30% carbs, 30% fats",
						"Focus on high-protein, low-calorie foods",
						"Aim for a 500-calorie daily deficit",
					),
				},
				{
					Name: "muscle-gain-macros",
					When: goal(GoalMuscleGain),
					Lines: fixed(
						"Recommended macro split: 30% protein, 50% carbs, 20% fats",
						"Increase caloric intake by 300-500 calories",
						"Time carbs around workouts",
					),
				},
				{
					Name: "meal-timing",
					When: func(p *models.UserProfile) bool {
						return p.MealPreference != ""
					},
					Lines: mealTiming,
				},
			},
		},
		{
			Category: CategoryMedical,
			Header:   "Health Management:",
			When: func(p *models.UserProfile) bool {
				return models.Has(p.MedicalConditions, "Mild Asthma")
			},
			Tips: []Tip{
				{
					Name: "mild-asthma",
					Lines: fixed(
						"Keep inhaler accessible during workouts",
						"Warm up properly to prevent exercise-induced asthma",
						"Monitor air quality for outdoor activities",
					),
				},
			},
		},
		{
			Category: CategoryWeightManagement,
			Header:   "Weight Management Plan:",
			When:     goal(GoalWeightLoss),
			Tips: []Tip{
				{
					Name:  "weight-loss-plan",
					Lines: weightLossPlan,
				},
			},
		},
		{
			Category: CategoryRecovery,
			Header:   "Recovery Recommendations:",
			Tips: []Tip{
				{
					Name: "dynamic-stretching",
					When: func(p *models.UserProfile) bool {
						return models.Has(p.RecoveryMethods, "Dynamic Stretching")
					},
					Lines: fixed(
						"Perform dynamic stretches before workouts",
						"Include mobility work in your warm-up routine",
					),
				},
				{
					Name: "sleep",
					When: func(p *models.UserProfile) bool {
						return below(p.SleepDuration, minSleepHours)
					},
					Lines: fixed("Prioritize sleep - aim to increase duration to 7-8 hours"),
				},
			},
		},
		{
			Category: CategorySupplement,
			Header:   "Supplement Schedule:",
			When: func(p *models.UserProfile) bool {
				return len(p.SupplementsUsed) > 0
			},
			Tips: []Tip{
				{
					Name:  "whey",
					When:  supplement("Whey Protein"),
					Lines: fixed("Take whey protein within 30 minutes post-workout"),
				},
				{
					Name:  "vitamin-d",
					When:  supplement("Vitamin D"),
					Lines: fixed("Take Vitamin D with a meal containing healthy fats"),
				},
			},
		},
		{
			Category: CategoryTracking,
			Header:   "Tracking Recommendations:",
			Tips: []Tip{
				{
					Name: "tracking",
					Lines: func(p *models.UserProfile) []string {
						return []string{
							"Log your activities " + trackingFrequency(p),
							"Monitor your progress using your preferred metrics",
							"Update your goals every 4-6 weeks",
						}
					},
				},
			},
		},
	}
}

// WeeksToGoal is the number of whole weeks needed to lose the difference
// between weight and target at WeeklyLossRateKg. A partial week counts as a
// full one and a target at or above the current weight needs 0 weeks.
func WeeksToGoal(weight, target float64) int {
	weeks := (weight - target) / WeeklyLossRateKg
	// Trim float noise so 6.0000000001 is not rounded up to 7.
	weeks = math.Round(weeks*1e9) / 1e9
	if weeks <= 0 || math.IsNaN(weeks) {
		return 0
	}
	return int(math.Ceil(weeks))
}

func weightLossPlan(p *models.UserProfile) []string {
	lines := []string{fmt.Sprintf("Target weekly weight loss: %skg", formatNumber(WeeklyLossRateKg))}
	if p.Weight.Valid && p.TargetWeight.Valid {
		weeks := WeeksToGoal(p.Weight.Float(), p.TargetWeight.Float())
		lines = append(lines, fmt.Sprintf("Estimated timeline: %d weeks", weeks))
	}
	return append(lines, "Focus on creating a sustainable caloric deficit")
}

var fiveMealSchedule = []string{
	"  - Breakfast: 7-8am",
	"  - Snack: 10-11am",
	"  - Lunch: 1-2pm",
	"  - Pre-workout: 4-5pm",
	"  - Dinner: 7-8pm",
}

func mealTiming(p *models.UserProfile) []string {
	lines := []string{fmt.Sprintf("Optimal meal timing for %s:", p.MealPreference)}
	if p.MealPreference == "5 meals" {
		lines = append(lines, fiveMealSchedule...)
	}
	return lines
}

func trackingFrequency(p *models.UserProfile) string {
	if f := strings.TrimSpace(p.TrackingFrequency); f != "" {
		return strings.ToLower(f)
	}
	return "regularly"
}

func workoutType(name string) Predicate {
	return func(p *models.UserProfile) bool {
		return models.Has(p.PreferredWorkoutType, name)
	}
}

func supplement(name string) Predicate {
	return func(p *models.UserProfile) bool {
		return models.Has(p.SupplementsUsed, name)
	}
}

func goal(name string) Predicate {
	return func(p *models.UserProfile) bool {
		return p.PrimaryGoal == name
	}
}

// below holds only for values that were actually supplied.
func below(n models.Number, limit float64) bool {
	return n.Valid && n.Float() < limit
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
