// Package recommendation produces rule-based textual advice from a user
// profile. The engine is deterministic: the same profile always yields the
// same advice in the same order.
package recommendation

import (
	"errors"

	"github.com/pageza/vitalog/backend/internal/models"
)

// Category groups advice on the recommendations page.
type Category string

const (
	CategoryWorkout          Category = "workout"
	CategoryNutrition        Category = "nutrition"
	CategoryMedical          Category = "medical"
	CategoryWeightManagement Category = "weight_management"
	CategoryRecovery         Category = "recovery"
	CategorySupplement       Category = "supplement"
	CategoryTracking         Category = "tracking"
)

// ErrProfileIncomplete is returned by callers when no profile exists to
// advise on.
var ErrProfileIncomplete = errors.New("profile incomplete")

// ProfileIncompleteMessage is shown in place of advice for ErrProfileIncomplete.
const ProfileIncompleteMessage = "Please complete your profile first"

// Recommendation is one line of advice. Header lines open a category.
type Recommendation struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
	IsHeader bool     `json:"is_header"`
}

// Predicate inspects a profile. It must not modify it.
type Predicate func(p *models.UserProfile) bool

// LineFunc renders the detail lines of a tip.
type LineFunc func(p *models.UserProfile) []string

// Tip is a group of detail lines emitted together when When holds.
type Tip struct {
	Name  string
	When  Predicate
	Lines LineFunc
}

// Section is one category of advice. A section with a nil When always
// emits its header; otherwise the header and tips are skipped unless When
// holds.
type Section struct {
	Category Category
	Header   string
	When     Predicate
	Tips     []Tip
}

// Evaluate returns the header and firing tips of the section, or nil when
// the section does not apply.
func (s Section) Evaluate(p *models.UserProfile) []Recommendation {
	if s.When != nil && !s.When(p) {
		return nil
	}
	out := []Recommendation{{Category: s.Category, Text: s.Header, IsHeader: true}}
	for _, tip := range s.Tips {
		if tip.When != nil && !tip.When(p) {
			continue
		}
		for _, line := range tip.Lines(p) {
			out = append(out, Recommendation{Category: s.Category, Text: line})
		}
	}
	return out
}

// GenerateAdvice evaluates every section in order. The profile must be
// non-nil; callers resolve a missing profile to ErrProfileIncomplete before
// calling.
func GenerateAdvice(profile *models.UserProfile) []Recommendation {
	out := []Recommendation{}
	for _, section := range Sections() {
		out = append(out, section.Evaluate(profile)...)
	}
	return out
}

// Texts flattens advice to its lines.
func Texts(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Text
	}
	return out
}

func fixed(lines ...string) LineFunc {
	return func(*models.UserProfile) []string { return lines }
}
