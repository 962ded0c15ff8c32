package recommendation

import "github.com/pageza/vitalog/backend/internal/models"

// ProfileAnalysis is the short feedback shown right after a profile save.
type ProfileAnalysis struct {
	Summary         []string `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

type analysisRule struct {
	when           Predicate
	summary        string
	recommendation string
}

// BMI is never derived here; only a precomputed value is considered.
var analysisRules = []analysisRule{
	{
		when: func(p *models.UserProfile) bool {
			return p.BMI.Valid && p.BMI.Float() > 25
		},
		summary: "Your BMI indicates you might benefit from weight management strategies",
	},
	{
		when: func(p *models.UserProfile) bool {
			return p.ActivityLevel == ActivitySedentary
		},
		summary:        "Your activity level is currently sedentary",
		recommendation: "Consider increasing daily physical activity",
	},
	{
		when: func(p *models.UserProfile) bool {
			return below(p.SleepDuration, minSleepHours)
		},
		summary:        "You might not be getting enough sleep",
		recommendation: "Aim for 7-9 hours of sleep per night",
	},
}

// GenerateProfileAnalysis runs the post-save checks in order. The profile
// must be non-nil.
func GenerateProfileAnalysis(profile *models.UserProfile) ProfileAnalysis {
	analysis := ProfileAnalysis{Summary: []string{}, Recommendations: []string{}}
	for _, rule := range analysisRules {
		if !rule.when(profile) {
			continue
		}
		if rule.summary != "" {
			analysis.Summary = append(analysis.Summary, rule.summary)
		}
		if rule.recommendation != "" {
			analysis.Recommendations = append(analysis.Recommendations, rule.recommendation)
		}
	}
	return analysis
}
