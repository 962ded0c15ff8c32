package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserProfile is the personal health profile edited on the profile page.
// Every field is optional at the storage level; ProfileService enforces
// the save-time requirements.
type UserProfile struct {
	ID     uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`

	// Basic information
	Age         Number `json:"age"`
	Gender      string `gorm:"size:32" json:"gender"`
	DateOfBirth string `gorm:"size:10" json:"date_of_birth"`
	Height      Number `json:"height"`
	Weight      Number `json:"weight"`

	// Body measurements
	WaistCircumference Number `json:"waist_circumference"`
	HipCircumference   Number `json:"hip_circumference"`
	ChestCircumference Number `json:"chest_circumference"`
	BodyFatPercentage  Number `json:"body_fat_percentage"`

	// Health metrics
	BloodPressure    string `gorm:"size:32" json:"blood_pressure"`
	RestingHeartRate Number `json:"resting_heart_rate"`
	BloodType        string `gorm:"size:8" json:"blood_type"`
	BMI              Number `json:"bmi"`

	// Lifestyle
	Occupation       string `json:"occupation"`
	ActivityLevel    string `gorm:"size:32" json:"activity_level"`
	WorkoutFrequency string `gorm:"size:32" json:"workout_frequency"`
	SleepDuration    Number `json:"sleep_duration"`
	SleepQuality     string `gorm:"size:32" json:"sleep_quality"`
	StressLevel      string `gorm:"size:32" json:"stress_level"`

	// Medical history
	MedicalConditions datatypes.JSONSlice[string] `json:"medical_conditions"`
	Medications       datatypes.JSONSlice[string] `json:"medications"`
	Surgeries         datatypes.JSONSlice[string] `json:"surgeries"`
	Allergies         datatypes.JSONSlice[string] `json:"allergies"`
	FamilyHistory     datatypes.JSONSlice[string] `json:"family_history"`

	// Fitness goals
	PrimaryGoal          string                      `gorm:"size:64" json:"primary_goal"`
	TargetWeight         Number                      `json:"target_weight"`
	WeeklyGoal           Number                      `json:"weekly_goal"`
	PreferredWorkoutType datatypes.JSONSlice[string] `json:"preferred_workout_type"`

	// Dietary preferences
	DietaryRestrictions datatypes.JSONSlice[string] `json:"dietary_restrictions"`
	FoodAllergies       datatypes.JSONSlice[string] `json:"food_allergies"`
	MealPreference      string                      `gorm:"size:32" json:"meal_preference"`
	WaterIntake         Number                      `json:"water_intake"`
	SupplementsUsed     datatypes.JSONSlice[string] `json:"supplements_used"`

	// Recovery and wellness
	RecoveryMethods     datatypes.JSONSlice[string] `json:"recovery_methods"`
	InjuryHistory       datatypes.JSONSlice[string] `json:"injury_history"`
	MobilityLimitations datatypes.JSONSlice[string] `json:"mobility_limitations"`

	// Tracking preferences
	PreferredMeasurementUnit string                      `gorm:"size:16" json:"preferred_measurement_unit"`
	TrackingFrequency        string                      `gorm:"size:32" json:"tracking_frequency"`
	NotificationPreferences  datatypes.JSONSlice[string] `json:"notification_preferences"`

	PhotoURL  string    `gorm:"size:512" json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns an id when the caller did not.
func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Has reports whether list contains value exactly.
func Has(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
