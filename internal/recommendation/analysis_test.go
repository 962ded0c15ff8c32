package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/vitalog/backend/internal/models"
)

func TestGenerateProfileAnalysis(t *testing.T) {
	tests := []struct {
		name    string
		profile *models.UserProfile
		want    ProfileAnalysis
	}{
		{
			name:    "empty profile",
			profile: &models.UserProfile{},
			want:    ProfileAnalysis{Summary: []string{}, Recommendations: []string{}},
		},
		{
			name:    "high bmi only adds a summary",
			profile: &models.UserProfile{BMI: num(27.4)},
			want: ProfileAnalysis{
				Summary:         []string{"Your BMI indicates you might benefit from weight management strategies"},
				Recommendations: []string{},
			},
		},
		{
			name:    "bmi of exactly 25 is not flagged",
			profile: &models.UserProfile{BMI: num(25)},
			want:    ProfileAnalysis{Summary: []string{}, Recommendations: []string{}},
		},
		{
			name: "all rules in order",
			profile: &models.UserProfile{
				BMI:           num(31),
				ActivityLevel: ActivitySedentary,
				SleepDuration: num(5.5),
				Weight:        num(95),
				Height:        num(170),
			},
			want: ProfileAnalysis{
				Summary: []string{
					"Your BMI indicates you might benefit from weight management strategies",
					"Your activity level is currently sedentary",
					"You might not be getting enough sleep",
				},
				Recommendations: []string{
					"Consider increasing daily physical activity",
					"Aim for 7-9 hours of sleep per night",
				},
			},
		},
		{
			name:    "bmi is not derived from height and weight",
			profile: &models.UserProfile{Weight: num(120), Height: num(160)},
			want:    ProfileAnalysis{Summary: []string{}, Recommendations: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateProfileAnalysis(tt.profile))
		})
	}
}

func TestSleepTips(t *testing.T) {
	assert.Equal(t, []string{}, SleepTips(nil))

	tips := SleepTips(&models.SleepEntry{
		SleepStart: "23:30",
		SleepEnd:   "06:15",
		Factors:    []string{"Stress", "Caffeine", "Other"},
	})
	assert.Equal(t, []string{
		"Try to get at least 7-9 hours of sleep for optimal health",
		"Avoid caffeine at least 6 hours before bedtime",
		"Try meditation or deep breathing exercises before bed",
	}, tips)

	rested := SleepTips(&models.SleepEntry{Duration: num(8), Factors: []string{"Temperature"}})
	assert.Equal(t, []string{"Keep bedroom temperature between 60-67°F (15-19°C)"}, rested)

	unknown := SleepTips(&models.SleepEntry{Factors: []string{"Noise"}})
	assert.Equal(t, []string{"Consider using earplugs or white noise machine"}, unknown)
}
