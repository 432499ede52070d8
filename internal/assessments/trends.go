package assessments

import (
	"time"

	"github.com/campuswell/pulse/internal/model"
)

// DefaultTrendDays is the trend window applied when the client omits one.
const DefaultTrendDays = 180

// TrendPoint is one assessment flattened for charting.
type TrendPoint struct {
	Date          time.Time          `json:"date"`
	StressLevel   string             `json:"stress_level"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
}

// TrendStatistics summarizes the distribution of stress levels across the
// window. Percentages are of total assessments and LatestStressLevel is
// null when the window holds no records.
type TrendStatistics struct {
	TotalAssessments       int     `json:"total_assessments"`
	LowRiskPercentage      float64 `json:"low_risk_percentage"`
	ModerateRiskPercentage float64 `json:"moderate_risk_percentage"`
	HighRiskPercentage     float64 `json:"high_risk_percentage"`
	LatestStressLevel      *string `json:"latest_stress_level"`
}

// TrendReport is the trend endpoint payload: chronological points plus
// window statistics.
type TrendReport struct {
	Days       int             `json:"days"`
	Trends     []TrendPoint    `json:"trends"`
	Statistics TrendStatistics `json:"statistics"`
}

// BuildTrends aggregates a chronologically ascending record slice into a
// trend report. An empty slice yields an empty point list and zeroed
// statistics rather than an error.
func BuildTrends(records []Assessment, days int) *TrendReport {
	report := &TrendReport{
		Days:   days,
		Trends: make([]TrendPoint, 0, len(records)),
	}

	var low, moderate, high int
	for _, a := range records {
		report.Trends = append(report.Trends, TrendPoint{
			Date:          a.CreatedAt,
			StressLevel:   a.StressLevel,
			Confidence:    a.ConfidenceScore,
			Probabilities: a.Probabilities,
		})

		switch a.StressLevel {
		case model.LabelLowRisk:
			low++
		case model.LabelModerateRisk:
			moderate++
		case model.LabelHighRisk:
			high++
		}
	}

	total := len(records)
	report.Statistics.TotalAssessments = total
	if total > 0 {
		report.Statistics.LowRiskPercentage = float64(low) / float64(total) * 100
		report.Statistics.ModerateRiskPercentage = float64(moderate) / float64(total) * 100
		report.Statistics.HighRiskPercentage = float64(high) / float64(total) * 100
		latest := records[total-1].StressLevel
		report.Statistics.LatestStressLevel = &latest
	}

	return report
}
