package assessments

import (
	"sort"
	"time"

	"github.com/campuswell/pulse/internal/model"
)

// Summary periods.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// summaryMetrics are the feature averages reported per period.
var summaryMetrics = []string{
	"anxiety_level", "depression", "self_esteem",
	"sleep_quality", "study_load", "social_support",
}

// Trend verdicts comparing the period's first half to its second.
const (
	TrendImproving        = "improving"
	TrendWorsening        = "worsening"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

const (
	summaryFactorCap      = 5
	summaryContributorCap = 3
)

// DateRange bounds a summary period.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LevelShare is one stress level's slice of a period.
type LevelShare struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SummaryDistribution groups the period's assessments by stress level.
type SummaryDistribution struct {
	LowRisk      LevelShare `json:"low_risk"`
	ModerateRisk LevelShare `json:"moderate_risk"`
	HighRisk     LevelShare `json:"high_risk"`
}

// FactorCount is a feature's appearance count across the period's top
// contributor lists.
type FactorCount struct {
	Factor      string `json:"factor"`
	Occurrences int    `json:"occurrences"`
}

// SummaryStatistics is the body of a period summary. Distribution and the
// averages are absent when the period holds no assessments.
type SummaryStatistics struct {
	TotalAssessments   int                  `json:"total_assessments"`
	Message            string               `json:"message,omitempty"`
	StressDistribution *SummaryDistribution `json:"stress_distribution,omitempty"`
	AverageConfidence  float64              `json:"average_confidence,omitempty"`
	Trend              string               `json:"trend,omitempty"`
	AverageMetrics     map[string]float64   `json:"average_metrics,omitempty"`
	TopStressFactors   []FactorCount        `json:"top_stress_factors,omitempty"`
	LatestAssessment   *Assessment          `json:"latest_assessment,omitempty"`
}

// SummaryReport is the period summary payload.
type SummaryReport struct {
	Period    string            `json:"period"`
	DateRange DateRange         `json:"date_range"`
	Summary   SummaryStatistics `json:"summary"`
}

// periodWindow resolves a period name to its trailing day count and display
// label. Unknown periods fall back to the weekly window.
func periodWindow(period string) (int, string) {
	switch period {
	case PeriodMonth:
		return 30, "Last 30 Days"
	case PeriodYear:
		return 365, "Last 12 Months"
	default:
		return 7, "Last 7 Days"
	}
}

// levelRank orders the risk labels for trend comparisons. Unknown labels
// sit in the middle.
func levelRank(level string) int {
	switch level {
	case model.LabelLowRisk:
		return 0
	case model.LabelHighRisk:
		return 2
	default:
		return 1
	}
}

// buildSummary aggregates a chronologically ascending record slice into a
// period summary. An empty slice yields a message rather than an error.
func buildSummary(records []Assessment, period string, start, end time.Time) *SummaryReport {
	_, label := periodWindow(period)

	report := &SummaryReport{
		Period:    label,
		DateRange: DateRange{Start: start, End: end},
	}

	total := len(records)
	report.Summary.TotalAssessments = total
	if total == 0 {
		report.Summary.Message = "No assessments found in this period"
		return report
	}

	var low, moderate, high int
	var confidence float64
	for _, a := range records {
		confidence += a.ConfidenceScore
		switch a.StressLevel {
		case model.LabelLowRisk:
			low++
		case model.LabelModerateRisk:
			moderate++
		case model.LabelHighRisk:
			high++
		}
	}

	share := func(count int) LevelShare {
		return LevelShare{
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		}
	}

	report.Summary.StressDistribution = &SummaryDistribution{
		LowRisk:      share(low),
		ModerateRisk: share(moderate),
		HighRisk:     share(high),
	}
	report.Summary.AverageConfidence = confidence / float64(total)
	report.Summary.Trend = halfWindowTrend(records)
	report.Summary.AverageMetrics = averageMetrics(records)
	report.Summary.TopStressFactors = topStressFactors(records)
	report.Summary.LatestAssessment = &records[total-1]

	return report
}

// halfWindowTrend compares the high-risk rate of the period's first half
// against its second half. A single assessment cannot split.
func halfWindowTrend(records []Assessment) string {
	mid := len(records) / 2
	if mid == 0 {
		return TrendInsufficientData
	}

	highRate := func(part []Assessment) float64 {
		var high int
		for _, a := range part {
			if a.StressLevel == model.LabelHighRisk {
				high++
			}
		}
		return float64(high) / float64(len(part))
	}

	first := highRate(records[:mid])
	second := highRate(records[mid:])

	switch {
	case second < first:
		return TrendImproving
	case second > first:
		return TrendWorsening
	default:
		return TrendStable
	}
}

func averageMetrics(records []Assessment) map[string]float64 {
	averages := make(map[string]float64, len(summaryMetrics))
	for _, name := range summaryMetrics {
		var sum int
		for i := range records {
			v, _ := records[i].Features.Value(name)
			sum += v
		}
		averages[name] = float64(sum) / float64(len(records))
	}
	return averages
}

// topStressFactors counts how often each feature appears among the leading
// contributors of the period's assessments and keeps the most frequent.
// Ties keep first-seen order.
func topStressFactors(records []Assessment) []FactorCount {
	counts := make(map[string]int)
	var order []string

	for _, a := range records {
		contributors := a.TopContributors
		if len(contributors) > summaryContributorCap {
			contributors = contributors[:summaryContributorCap]
		}
		for _, c := range contributors {
			if _, seen := counts[c.Feature]; !seen {
				order = append(order, c.Feature)
			}
			counts[c.Feature]++
		}
	}

	// order is already first-seen; the stable sort keeps that for ties.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > summaryFactorCap {
		order = order[:summaryFactorCap]
	}

	factors := make([]FactorCount, 0, len(order))
	for _, f := range order {
		factors = append(factors, FactorCount{Factor: f, Occurrences: counts[f]})
	}
	return factors
}
