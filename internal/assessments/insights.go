package assessments

import (
	"fmt"
	"time"
)

// Insight classifications.
const (
	InsightPositive = "positive"
	InsightWarning  = "warning"
	InsightAlert    = "alert"
	InsightInfo     = "info"
	InsightReminder = "reminder"
)

const (
	insightRecentWindow   = 5
	insightHistoryWindow  = 10
	insightTrendThreshold = 0.3
	insightCheckinGapDays = 14
)

// factorLabels maps feature names to the wording used in insight messages.
var factorLabels = map[string]string{
	"anxiety_level":  "Anxiety",
	"depression":     "Depression",
	"self_esteem":    "Self-esteem",
	"sleep_quality":  "Sleep quality",
	"study_load":     "Study load",
	"social_support": "Social support",
}

// Insight is one personalized observation derived from assessment history.
type Insight struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
}

// InsightReport is the insights endpoint payload. Message is set when the
// history is too short to derive anything.
type InsightReport struct {
	Insights        []Insight `json:"insights"`
	Message         string    `json:"message,omitempty"`
	AssessmentCount int       `json:"assessment_count"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// buildInsights derives personalized observations from a newest-first
// record slice. Fewer than two assessments yields no insights.
func buildInsights(records []Assessment, now time.Time) *InsightReport {
	report := &InsightReport{
		Insights:        make([]Insight, 0, 4),
		AssessmentCount: len(records),
		GeneratedAt:     now,
	}

	if len(records) < 2 {
		report.Message = "Need at least 2 assessments for personalized insights"
		return report
	}

	recent := records
	if len(recent) > insightRecentWindow {
		recent = recent[:insightRecentWindow]
	}

	if insight, ok := trendInsight(records, recent); ok {
		report.Insights = append(report.Insights, insight)
	}
	if insight, ok := consistencyInsight(recent); ok {
		report.Insights = append(report.Insights, insight)
	}
	if insight, ok := keyFactorInsight(records); ok {
		report.Insights = append(report.Insights, insight)
	}
	if insight, ok := frequencyInsight(records); ok {
		report.Insights = append(report.Insights, insight)
	}

	return report
}

// trendInsight compares the average risk rank of the latest assessments
// against the five preceding them.
func trendInsight(records, recent []Assessment) (Insight, bool) {
	if len(records) <= insightRecentWindow {
		return Insight{}, false
	}

	older := records[insightRecentWindow:]
	if len(older) > insightRecentWindow {
		older = older[:insightRecentWindow]
	}

	avgRank := func(part []Assessment) float64 {
		var sum int
		for _, a := range part {
			sum += levelRank(a.StressLevel)
		}
		return float64(sum) / float64(len(part))
	}

	recentAvg := avgRank(recent)
	olderAvg := avgRank(older)

	switch {
	case recentAvg < olderAvg-insightTrendThreshold:
		return Insight{
			Type:    InsightPositive,
			Title:   "Great Progress!",
			Message: "Your stress levels have been improving compared to earlier assessments.",
			Icon:    "trending_down",
		}, true
	case recentAvg > olderAvg+insightTrendThreshold:
		return Insight{
			Type:    InsightWarning,
			Title:   "Stress Increasing",
			Message: "Your recent stress levels are higher than before. Consider reviewing your coping strategies.",
			Icon:    "trending_up",
		}, true
	}
	return Insight{}, false
}

// consistencyInsight fires when the three latest assessments share a level
// at either end of the risk scale.
func consistencyInsight(recent []Assessment) (Insight, bool) {
	if len(recent) < 3 {
		return Insight{}, false
	}

	level := recent[0].StressLevel
	for _, a := range recent[1:3] {
		if a.StressLevel != level {
			return Insight{}, false
		}
	}

	switch levelRank(level) {
	case 0:
		return Insight{
			Type:    InsightPositive,
			Title:   "Consistently Low Stress",
			Message: "You've maintained low stress levels! Keep up the great work.",
			Icon:    "check_circle",
		}, true
	case 2:
		return Insight{
			Type:    InsightAlert,
			Title:   "Persistent High Stress",
			Message: "Your stress has been consistently high. Please consider speaking with a counselor.",
			Icon:    "warning",
		}, true
	}
	return Insight{}, false
}

// keyFactorInsight names the feature that recurs most among the leading
// contributors of the latest assessments.
func keyFactorInsight(records []Assessment) (Insight, bool) {
	window := records
	if len(window) > insightHistoryWindow {
		window = window[:insightHistoryWindow]
	}

	counts := make(map[string]int)
	var top string
	for _, a := range window {
		contributors := a.TopContributors
		if len(contributors) > 2 {
			contributors = contributors[:2]
		}
		for _, c := range contributors {
			counts[c.Feature]++
			if top == "" || counts[c.Feature] > counts[top] {
				top = c.Feature
			}
		}
	}

	if top == "" {
		return Insight{}, false
	}

	label, ok := factorLabels[top]
	if !ok {
		label = top
	}

	return Insight{
		Type:    InsightInfo,
		Title:   "Key Stress Factor",
		Message: fmt.Sprintf("%s appears frequently as a stress contributor. Focus on this area for improvement.", label),
		Icon:    "lightbulb",
	}, true
}

// frequencyInsight nudges toward weekly check-ins when the two latest
// assessments are far apart.
func frequencyInsight(records []Assessment) (Insight, bool) {
	gap := records[0].CreatedAt.Sub(records[1].CreatedAt)
	if int(gap.Hours()/24) <= insightCheckinGapDays {
		return Insight{}, false
	}

	return Insight{
		Type:    InsightReminder,
		Title:   "Regular Check-ins",
		Message: "Consider taking assessments more frequently (weekly) to better track your mental health.",
		Icon:    "schedule",
	}, true
}
