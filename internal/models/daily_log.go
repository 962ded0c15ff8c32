package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal slot names used by the daily log editor.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
	SlotSnacks    = "snacks"
)

// Exercise types
const (
	ExerciseStrength    = "strength"
	ExerciseCardio      = "cardio"
	ExerciseFlexibility = "flexibility"
)

// DateLayout is the calendar-date format used for DailyLog.Date.
const DateLayout = "2006-01-02"

// DailyLog holds one user's record for a single calendar date.
type DailyLog struct {
	ID               uuid.UUID            `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID           uuid.UUID            `gorm:"type:varchar(36);not null;uniqueIndex:idx_daily_logs_user_date" json:"user_id"`
	Date             string               `gorm:"size:10;not null;uniqueIndex:idx_daily_logs_user_date" json:"date"`
	Meals            map[string]MealEntry `gorm:"serializer:json" json:"meals,omitempty"`
	WaterIntake      Number               `json:"water_intake"`
	Workouts         []WorkoutEntry       `gorm:"serializer:json" json:"workouts,omitempty"`
	Sleep            *SleepEntry          `gorm:"serializer:json" json:"sleep,omitempty"`
	Mood             *MoodEntry           `gorm:"serializer:json" json:"mood,omitempty"`
	MoodDistribution Ratings              `gorm:"serializer:json" json:"mood_distribution,omitempty"`
	Supplements      []SupplementEntry    `gorm:"serializer:json" json:"supplements,omitempty"`
	Weight           Number               `json:"weight"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// BeforeCreate assigns an id when the caller did not.
func (l *DailyLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// RecalculateMeals refreshes every slot's totals from its items.
func (l *DailyLog) RecalculateMeals() {
	for slot, meal := range l.Meals {
		meal.Recalculate()
		l.Meals[slot] = meal
	}
}

// ValidateDate checks that date is a YYYY-MM-DD calendar date.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return nil
}

// MealEntry is one meal slot. The totals mirror the sum of Items whenever
// Items is non-empty.
type MealEntry struct {
	Items    []FoodItem `json:"items,omitempty"`
	Calories Number     `json:"calories"`
	Protein  Number     `json:"protein"`
	Carbs    Number     `json:"carbs"`
	Fat      Number     `json:"fat"`
	Time     string     `json:"time,omitempty"`
}

// Recalculate sets the totals to the item sums. Entries without items keep
// their manually entered totals.
func (m *MealEntry) Recalculate() {
	if len(m.Items) == 0 {
		return
	}
	t := m.ItemTotals()
	m.Calories = NewNumber(t.Calories)
	m.Protein = NewNumber(t.Protein)
	m.Carbs = NewNumber(t.Carbs)
	m.Fat = NewNumber(t.Fat)
}

// Macros is a calorie and macronutrient total.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the element-wise sum.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
	}
}

// ItemTotals sums the items of the entry.
func (m MealEntry) ItemTotals() Macros {
	var t Macros
	for _, item := range m.Items {
		t = t.Add(Macros{
			Calories: item.Calories.Float(),
			Protein:  item.Protein.Float(),
			Carbs:    item.Carbs.Float(),
			Fat:      item.Fat.Float(),
		})
	}
	return t
}

// Totals returns the item sums when items exist, otherwise the stored totals.
func (m MealEntry) Totals() Macros {
	if len(m.Items) > 0 {
		return m.ItemTotals()
	}
	return Macros{
		Calories: m.Calories.Float(),
		Protein:  m.Protein.Float(),
		Carbs:    m.Carbs.Float(),
		Fat:      m.Fat.Float(),
	}
}

// FoodItem is a single food in a meal.
type FoodItem struct {
	Name     string  `json:"name"`
	Portion  Portion `json:"portion"`
	Calories Number  `json:"calories"`
	Protein  Number  `json:"protein"`
	Carbs    Number  `json:"carbs"`
	Fat      Number  `json:"fat"`
	Source   string  `json:"source,omitempty"`
}

type Portion struct {
	Amount Number `json:"amount"`
	Unit   string `json:"unit,omitempty"`
}

// WorkoutEntry is one workout session.
type WorkoutEntry struct {
	Type           string          `json:"type,omitempty"`
	Exercises      []ExerciseEntry `json:"exercises,omitempty"`
	Duration       Number          `json:"duration"`
	CaloriesBurned Number          `json:"calories_burned"`
}

// ExerciseEntry is a single exercise. Strength exercises carry Sets, cardio
// and flexibility exercises carry Duration and Distance.
type ExerciseEntry struct {
	Name      string     `json:"name"`
	Type      string     `json:"type,omitempty"`
	Sets      []SetEntry `json:"sets,omitempty"`
	Duration  Number     `json:"duration"`
	Distance  Number     `json:"distance"`
	Completed bool       `json:"completed"`
	Effort    Number     `json:"effort"`
	Notes     string     `json:"notes,omitempty"`
}

type SetEntry struct {
	Reps   Number `json:"reps"`
	Weight Number `json:"weight"`
}

// SleepEntry is the previous night's sleep. Duration is in hours and is
// optional when both clock times are known.
type SleepEntry struct {
	SleepStart string   `json:"sleep_start,omitempty"`
	SleepEnd   string   `json:"sleep_end,omitempty"`
	Duration   Number   `json:"duration"`
	Quality    Number   `json:"quality"`
	Factors    []string `json:"factors,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// ClockDuration is the time between SleepStart and SleepEnd. An end before
// the start crosses midnight.
func (s SleepEntry) ClockDuration() (time.Duration, bool) {
	return ClockDiff(s.SleepStart, s.SleepEnd)
}

// HasFactor reports whether factor was recorded, ignoring case.
func (s SleepEntry) HasFactor(factor string) bool {
	for _, f := range s.Factors {
		if strings.EqualFold(strings.TrimSpace(f), factor) {
			return true
		}
	}
	return false
}

// ClockDiff returns end-start for two "HH:MM" clock times, adding 24 hours
// when end is before start.
func ClockDiff(start, end string) (time.Duration, bool) {
	s, ok := parseClock(start)
	if !ok {
		return 0, false
	}
	e, ok := parseClock(end)
	if !ok {
		return 0, false
	}
	if e < s {
		e += 24 * time.Hour
	}
	return e - s, true
}

func parseClock(v string) (time.Duration, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, true
}

// MoodEntry holds mood ratings 1-5, with 0 meaning unrecorded.
type MoodEntry struct {
	Morning   Rating `json:"morning"`
	Afternoon Rating `json:"afternoon"`
	Evening   Rating `json:"evening"`
}

// Values returns the three slots in order.
func (m MoodEntry) Values() []int {
	return []int{int(m.Morning), int(m.Afternoon), int(m.Evening)}
}

// Rating is a whole-number score decoded the same way as Number: numeric
// strings are accepted and malformed input reads as 0.
type Rating int

// UnmarshalJSON implements json.Unmarshaler. It never fails on content.
func (r *Rating) UnmarshalJSON(data []byte) error {
	var n Number
	if err := n.UnmarshalJSON(data); err != nil {
		return err
	}
	*r = Rating(math.Round(n.Float()))
	return nil
}

// Ratings is a list of counts or scores with lenient element decoding.
type Ratings []int

// UnmarshalJSON implements json.Unmarshaler. A value that is not a list
// decodes as empty.
func (r *Ratings) UnmarshalJSON(data []byte) error {
	var raw []Rating
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		*r = nil
		return nil
	}
	out := make(Ratings, len(raw))
	for i, v := range raw {
		out[i] = int(v)
	}
	*r = out
	return nil
}

// SupplementEntry is one supplement scheduled for the day.
type SupplementEntry struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage,omitempty"`
	Time   string `json:"time,omitempty"`
	Taken  bool   `json:"taken"`
}
