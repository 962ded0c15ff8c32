package plans

// Meal plan keys
const (
	MealPlanWeightLoss  = "weightLoss"
	MealPlanMaintenance = "maintenance"
	MealPlanMuscleGain  = "muscleGain"
)

type Recipe struct {
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	VideoURL     string   `json:"video_url"`
	Source       string   `json:"source"`
}

type Meal struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  string `json:"protein"`
	Recipe   Recipe `json:"recipe"`
}

// MealSlot is one slot of a plan with its meal options.
type MealSlot struct {
	Slot    string `json:"slot"`
	Options []Meal `json:"options"`
}

// MealPlan is a daily meal template.
type MealPlan struct {
	Key            string     `json:"key"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	TargetCalories string     `json:"target_calories"`
	Meals          []MealSlot `json:"meals"`
}

var mealPlanKeys = []string{MealPlanWeightLoss, MealPlanMaintenance, MealPlanMuscleGain}

var mealPlans = map[string]MealPlan{
	MealPlanWeightLoss: {
		Key:            MealPlanWeightLoss,
		Name:           "Weight Loss Meal Plan",
		Description:    "A calorie-deficit meal plan focused on lean proteins and vegetables",
		TargetCalories: "1500-1800",
		Meals: []MealSlot{
			{Slot: "breakfast", Options: []Meal{{
				Name:     "Oatmeal with berries",
				Calories: 300,
				Protein:  "10g",
				Recipe: Recipe{
					Ingredients:  []string{"1 cup oats", "1 cup mixed berries", "1 tbsp honey", "1 cup almond milk"},
					Instructions: []string{"Cook oats with almond milk", "Top with berries and honey"},
					VideoURL:     "https://youtube.com/watch?v=healthyOatmeal",
					Source:       "Healthy Breakfast Recipes",
				},
			}}},
			{Slot: "lunch", Options: []Meal{{
				Name:     "Grilled chicken salad",
				Calories: 400,
				Protein:  "35g",
				Recipe: Recipe{
					Ingredients:  []string{"6 oz chicken breast", "Mixed greens", "Cherry tomatoes", "Cucumber", "Olive oil dressing"},
					Instructions: []string{"Grill chicken breast", "Mix vegetables", "Add dressing"},
					VideoURL:     "https://youtube.com/watch?v=chickenSalad",
					Source:       "Healthy Lunch Ideas",
				},
			}}},
		},
	},
	MealPlanMaintenance: {
		Key:            MealPlanMaintenance,
		Name:           "Maintenance Meal Plan",
		Description:    "Balanced nutrition to maintain current weight",
		TargetCalories: "2000-2200",
		Meals: []MealSlot{
			{Slot: "breakfast", Options: []Meal{{
				Name:     "Greek Yogurt Parfait",
				Calories: 350,
				Protein:  "15g",
				Recipe: Recipe{
					Ingredients:  []string{"1 cup Greek yogurt", "1/2 cup granola", "1 cup mixed berries", "1 tbsp honey"},
					Instructions: []string{"Layer yogurt with granola and berries", "Drizzle with honey"},
					VideoURL:     "https://youtube.com/watch?v=parfaitRecipe",
					Source:       "Healthy Breakfast Ideas",
				},
			}}},
			{Slot: "lunch", Options: []Meal{{
				Name:     "Turkey Avocado Wrap",
				Calories: 450,
				Protein:  "28g",
				Recipe: Recipe{
					Ingredients:  []string{"Whole wheat wrap", "4 oz turkey breast", "1/2 avocado", "Lettuce", "Tomato"},
					Instructions: []string{"Layer ingredients on wrap", "Roll tightly"},
					VideoURL:     "https://youtube.com/watch?v=wrapRecipe",
					Source:       "Quick Lunch Recipes",
				},
			}}},
			{Slot: "dinner", Options: []Meal{{
				Name:     "Baked Salmon with Quinoa",
				Calories: 550,
				Protein:  "35g",
				Recipe: Recipe{
					Ingredients:  []string{"6 oz salmon fillet", "1 cup quinoa", "Broccoli", "Lemon", "Olive oil"},
					Instructions: []string{"Bake salmon", "Cook quinoa", "Steam broccoli"},
					VideoURL:     "https://youtube.com/watch?v=salmonRecipe",
					Source:       "Healthy Dinner Ideas",
				},
			}}},
		},
	},
	MealPlanMuscleGain: {
		Key:            MealPlanMuscleGain,
		Name:           "Muscle Gain Meal Plan",
		Description:    "High protein meals for muscle growth",
		TargetCalories: "2500-3000",
		Meals: []MealSlot{
			{Slot: "breakfast", Options: []Meal{{
				Name:     "Protein Pancakes",
				Calories: 500,
				Protein:  "40g",
				Recipe: Recipe{
					Ingredients:  []string{"2 scoops protein powder", "1 banana", "2 eggs", "Oats"},
					Instructions: []string{"Blend ingredients", "Cook on griddle"},
					VideoURL:     "https://youtube.com/watch?v=proteinPancakes",
					Source:       "Fitness Recipes",
				},
			}}},
			{Slot: "lunch", Options: []Meal{{
				Name:     "Chicken Rice Bowl",
				Calories: 650,
				Protein:  "45g",
				Recipe: Recipe{
					Ingredients:  []string{"8 oz chicken breast", "1 cup brown rice", "Mixed vegetables"},
					Instructions: []string{"Cook chicken", "Prepare rice", "Steam vegetables"},
					VideoURL:     "https://youtube.com/watch?v=chickenBowl",
					Source:       "Bodybuilding Meals",
				},
			}}},
		},
	},
}

// MealPlans lists the templates in a fixed order.
func MealPlans() []MealPlan {
	out := make([]MealPlan, 0, len(mealPlanKeys))
	for _, key := range mealPlanKeys {
		out = append(out, mealPlans[key])
	}
	return out
}

// MealPlanFor returns the template for a key.
func MealPlanFor(key string) (MealPlan, error) {
	p, ok := mealPlans[key]
	if !ok {
		return MealPlan{}, unknown("meal plan", key)
	}
	return p, nil
}

// SuggestMealPlan maps a profile goal to a template. Goals without a
// dedicated plan get the maintenance plan.
func SuggestMealPlan(primaryGoal string) MealPlan {
	switch primaryGoal {
	case goalWeightLoss:
		return mealPlans[MealPlanWeightLoss]
	case goalMuscleGain:
		return mealPlans[MealPlanMuscleGain]
	default:
		return mealPlans[MealPlanMaintenance]
	}
}

// DayCalories sums the first option of every slot.
func (p MealPlan) DayCalories() int {
	total := 0
	for _, slot := range p.Meals {
		if len(slot.Options) > 0 {
			total += slot.Options[0].Calories
		}
	}
	return total
}
