// Package dashboard aggregates counselor-facing statistics across all users
// and assessments.
package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/campuswell/pulse/internal/model"
	"github.com/campuswell/pulse/internal/schema"
)

// Aggregation windows.
const (
	RecentWindowDays    = 30
	TrendWindowDays     = 7
	DefaultAlertDays    = 7
	AlertContributorCap = 3
)

// Distribution counts assessments per stress level across the whole store.
type Distribution struct {
	LowRisk      int `json:"low_risk"`
	ModerateRisk int `json:"moderate_risk"`
	HighRisk     int `json:"high_risk"`
}

// DailyCount is one day's assessment volume in the trend window.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Stats is the dashboard payload. HighRiskStudents counts distinct users
// whose most recent assessment is High Risk; DailyTrend always covers the
// full window with days of zero volume filled in.
type Stats struct {
	TotalUsers         int          `json:"total_users"`
	TotalAssessments   int          `json:"total_assessments"`
	RecentAssessments  int          `json:"recent_assessments"`
	HighRiskStudents   int          `json:"high_risk_students"`
	StressDistribution Distribution `json:"stress_distribution"`
	DailyTrend         []DailyCount `json:"trend_data"`
	AverageConfidence  float64      `json:"average_confidence"`
}

// AlertUser identifies the student behind a high-risk alert.
type AlertUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Alert is one recent high-risk assessment joined with its user.
type Alert struct {
	AssessmentID    uuid.UUID           `json:"assessment_id"`
	User            AlertUser           `json:"user"`
	StressLevel     string              `json:"stress_level"`
	Confidence      float64             `json:"confidence"`
	Date            time.Time           `json:"date"`
	TopContributors []model.Contributor `json:"top_contributors"`
}

// ResearchRow is one anonymized assessment in the research export: the raw
// features flattened beside the pipeline outcome, with no user reference.
type ResearchRow struct {
	schema.FeatureVector
	StressLevel     string    `json:"stress_level"`
	ConfidenceScore float64   `json:"confidence_score"`
	Date            time.Time `json:"date"`
}

// ResearchExport is the research export payload.
type ResearchExport struct {
	Data  []ResearchRow `json:"data"`
	Count int           `json:"count"`
}
