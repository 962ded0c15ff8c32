package plans

// Workout levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// WorkoutDay is one day of a level template.
type WorkoutDay struct {
	Day       string   `json:"day"`
	Exercises []string `json:"exercises"`
}

// WorkoutTemplate is a weekly schedule for a fitness level.
type WorkoutTemplate struct {
	Level    string       `json:"level"`
	Name     string       `json:"name"`
	Schedule []WorkoutDay `json:"schedule"`
}

var workoutLevels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced}

var workoutTemplates = map[string]WorkoutTemplate{
	LevelBeginner: {
		Level: LevelBeginner,
		Name:  "Beginner Workout",
		Schedule: []WorkoutDay{
			{Day: "monday", Exercises: []string{"20 min Walk", "10 Basic Squats", "10 Knee Pushups", "30s Plank"}},
			{Day: "wednesday", Exercises: []string{"20 min Walk", "10 Lunges", "10 Wall Pushups", "35s Plank"}},
			{Day: "friday", Exercises: []string{"25 min Walk", "12 Basic Squats", "12 Knee Pushups", "40s Plank"}},
		},
	},
	LevelIntermediate: {
		Level: LevelIntermediate,
		Name:  "Intermediate Workout",
		Schedule: []WorkoutDay{
			{Day: "monday", Exercises: []string{"30 min Jog", "20 Squats", "15 Pushups", "60s Plank"}},
			{Day: "wednesday", Exercises: []string{"30 min HIIT", "20 Lunges", "15 Pushups", "70s Plank"}},
			{Day: "friday", Exercises: []string{"35 min Jog", "25 Squats", "20 Pushups", "80s Plank"}},
		},
	},
	LevelAdvanced: {
		Level: LevelAdvanced,
		Name:  "Advanced Workout",
		Schedule: []WorkoutDay{
			{Day: "monday", Exercises: []string{"45 min Run", "30 Jump Squats", "25 Pushups", "90s Plank"}},
			{Day: "tuesday", Exercises: []string{"40 min HIIT", "30 Lunges", "20 Burpees", "100s Plank"}},
			{Day: "thursday", Exercises: []string{"45 min Run", "35 Jump Squats", "30 Pushups", "120s Plank"}},
			{Day: "saturday", Exercises: []string{"50 min HIIT", "40 Lunges", "25 Burpees", "120s Plank"}},
		},
	},
}

// WorkoutTemplates lists the level templates from easiest to hardest.
func WorkoutTemplates() []WorkoutTemplate {
	out := make([]WorkoutTemplate, 0, len(workoutLevels))
	for _, level := range workoutLevels {
		out = append(out, workoutTemplates[level])
	}
	return out
}

// WorkoutTemplateFor returns the template for a level.
func WorkoutTemplateFor(level string) (WorkoutTemplate, error) {
	t, ok := workoutTemplates[level]
	if !ok {
		return WorkoutTemplate{}, unknown("workout level", level)
	}
	return t, nil
}

// Goal programs
const (
	ProgramWeightLoss = "weight-loss"
	ProgramWeightGain = "weight-gain"
)

// ProgramExercise is either set based ("4x12") or timed ("20 mins").
type ProgramExercise struct {
	Name     string `json:"name"`
	Sets     string `json:"sets,omitempty"`
	Duration string `json:"duration,omitempty"`
}

type ProgramDay struct {
	Day       string            `json:"day"`
	Focus     string            `json:"focus"`
	Exercises []ProgramExercise `json:"exercises"`
}

// GoalProgram is a weekly schedule aimed at a body-weight goal.
type GoalProgram struct {
	Goal           string       `json:"goal"`
	WeeklySchedule []ProgramDay `json:"weekly_schedule"`
	Tips           []string     `json:"tips"`
}

var goalPrograms = map[string]GoalProgram{
	ProgramWeightLoss: {
		Goal: ProgramWeightLoss,
		WeeklySchedule: []ProgramDay{
			{Day: "Monday", Focus: "HIIT + Lower Body", Exercises: []ProgramExercise{
				{Name: "HIIT Cardio", Duration: "20 mins"},
				{Name: "Squats", Sets: "4x12"},
				{Name: "Lunges", Sets: "3x15"},
				{Name: "Leg Press", Sets: "3x12"},
			}},
			{Day: "Tuesday", Focus: "Upper Body + Core", Exercises: []ProgramExercise{
				{Name: "Push-ups", Sets: "3x12"},
				{Name: "Dumbbell Rows", Sets: "3x12"},
				{Name: "Planks", Duration: "3x45s"},
			}},
			{Day: "Wednesday", Focus: "Cardio + Flexibility", Exercises: []ProgramExercise{
				{Name: "Running", Duration: "30 mins"},
				{Name: "Stretching", Duration: "15 mins"},
			}},
			{Day: "Thursday", Focus: "Full Body Circuit", Exercises: []ProgramExercise{
				{Name: "Burpees", Sets: "3x10"},
				{Name: "Mountain Climbers", Duration: "3x30s"},
				{Name: "Jump Rope", Duration: "10 mins"},
			}},
			{Day: "Friday", Focus: "Strength + HIIT", Exercises: []ProgramExercise{
				{Name: "Deadlifts", Sets: "4x10"},
				{Name: "Box Jumps", Sets: "3x12"},
				{Name: "HIIT Intervals", Duration: "15 mins"},
			}},
		},
		Tips: []string{
			"Keep rest periods short (30-60 seconds)",
			"Focus on compound movements",
			"Add cardio after strength training",
			"Stay hydrated throughout workouts",
			"Maintain a caloric deficit",
			"Get adequate protein intake",
		},
	},
	ProgramWeightGain: {
		Goal: ProgramWeightGain,
		WeeklySchedule: []ProgramDay{
			{Day: "Monday", Focus: "Chest + Triceps", Exercises: []ProgramExercise{
				{Name: "Bench Press", Sets: "5x5"},
				{Name: "Incline Dumbbell Press", Sets: "4x8"},
				{Name: "Tricep Extensions", Sets: "3x12"},
			}},
			{Day: "Tuesday", Focus: "Back + Biceps", Exercises: []ProgramExercise{
				{Name: "Deadlifts", Sets: "5x5"},
				{Name: "Barbell Rows", Sets: "4x8"},
				{Name: "Chin-ups", Sets: "3x8"},
			}},
			{Day: "Wednesday", Focus: "Recovery + Light Cardio", Exercises: []ProgramExercise{
				{Name: "Walking", Duration: "30 mins"},
				{Name: "Stretching", Duration: "20 mins"},
			}},
			{Day: "Thursday", Focus: "Legs + Shoulders", Exercises: []ProgramExercise{
				{Name: "Squats", Sets: "5x5"},
				{Name: "Military Press", Sets: "4x8"},
				{Name: "Leg Press", Sets: "3x12"},
			}},
			{Day: "Friday", Focus: "Full Body + Core", Exercises: []ProgramExercise{
				{Name: "Clean and Press", Sets: "4x6"},
				{Name: "Pull-ups", Sets: "3x8"},
				{Name: "Ab Wheel", Sets: "3x12"},
			}},
		},
		Tips: []string{
			"Focus on progressive overload",
			"Rest 2-3 minutes between sets",
			"Prioritize compound exercises",
			"Eat in a caloric surplus",
			"Get 7-9 hours of sleep",
			"Track protein intake",
		},
	},
}

// GoalPrograms lists the goal programs in a stable order.
func GoalPrograms() []GoalProgram {
	return []GoalProgram{goalPrograms[ProgramWeightLoss], goalPrograms[ProgramWeightGain]}
}

// GoalProgramFor returns the weekly program for a goal key.
func GoalProgramFor(goal string) (GoalProgram, error) {
	p, ok := goalPrograms[goal]
	if !ok {
		return GoalProgram{}, unknown("program", goal)
	}
	return p, nil
}

// SuggestProgram maps a profile goal to a program. Anything other than
// muscle gain gets the weight-loss program.
func SuggestProgram(primaryGoal string) GoalProgram {
	if primaryGoal == goalMuscleGain {
		return goalPrograms[ProgramWeightGain]
	}
	return goalPrograms[ProgramWeightLoss]
}
