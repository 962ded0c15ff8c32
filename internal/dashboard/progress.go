package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MetricDelta is the signed change of one metric between the first and the
// last summary of a range.
type MetricDelta struct {
	Metric   string  `json:"metric"`
	Delta    float64 `json:"delta"`
	Sentence string  `json:"sentence"`
}

// ProgressReport compares the first and last day of a range.
type ProgressReport struct {
	Days      int         `json:"days"`
	Calories  MetricDelta `json:"calories"`
	Sleep     MetricDelta `json:"sleep"`
	Water     MetricDelta `json:"water"`
	Sentences []string    `json:"sentences"`
	Summary   string      `json:"summary"`
}

const noProgressData = "No data available."

// CompareRange reports last-minus-first deltas for calories, sleep hours and
// water. A zero delta is worded as an increase.
func CompareRange(summaries []DaySummary) ProgressReport {
	report := ProgressReport{Days: len(summaries), Sentences: []string{}}
	if len(summaries) == 0 {
		report.Summary = noProgressData
		return report
	}

	first, last := summaries[0], summaries[len(summaries)-1]
	report.Calories = delta("calories", last.TotalCalories-first.TotalCalories, "Calories", "increased", "decreased", "")
	report.Sleep = delta("sleep", last.SleepHours-first.SleepHours, "Sleep", "improved", "reduced", " hrs")
	report.Water = delta("water", last.WaterIntake-first.WaterIntake, "Water intake", "increased", "decreased", " ml")

	report.Sentences = []string{report.Calories.Sentence, report.Sleep.Sentence, report.Water.Sentence}
	report.Summary = fmt.Sprintf("In the last %d days: %s.", report.Days, strings.Join(report.Sentences, ", "))
	return report
}

func delta(metric string, d float64, label, up, down, unit string) MetricDelta {
	d = round2(finite(d))
	verb := up
	if d < 0 {
		verb = down
	}
	return MetricDelta{
		Metric:   metric,
		Delta:    d,
		Sentence: fmt.Sprintf("%s %s by %s%s", label, verb, formatNumber(math.Abs(d)), unit),
	}
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
