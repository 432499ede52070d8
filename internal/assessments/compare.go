package assessments

import (
	"time"

	"github.com/google/uuid"

	"github.com/campuswell/pulse/internal/schema"
)

// lowerIsBetter marks the features where a drop between assessments counts
// as improvement. For everything else a rise does.
var lowerIsBetter = map[string]bool{
	"anxiety_level":          true,
	"depression":             true,
	"peer_pressure":          true,
	"bullying":               true,
	"noise_level":            true,
	"study_load":             true,
	"headache":               true,
	"blood_pressure":         true,
	"breathing_problem":      true,
	"future_career_concerns": true,
}

// ComparisonSide is one assessment's snapshot within a comparison.
type ComparisonSide struct {
	ID          uuid.UUID            `json:"id"`
	Date        time.Time            `json:"date"`
	StressLevel string               `json:"stress_level"`
	Confidence  float64              `json:"confidence"`
	Data        schema.FeatureVector `json:"data"`
}

// FeatureChange tracks one feature's movement between two assessments.
type FeatureChange struct {
	Before   int  `json:"before"`
	After    int  `json:"after"`
	Change   int  `json:"change"`
	Improved bool `json:"improved"`
}

// OverallChange summarizes the risk-level movement between two assessments.
type OverallChange struct {
	StressImproved  bool `json:"stress_improved"`
	StressWorsened  bool `json:"stress_worsened"`
	StressUnchanged bool `json:"stress_unchanged"`
	DaysBetween     int  `json:"days_between"`
}

// Comparison is the side-by-side payload for two of a user's assessments.
type Comparison struct {
	Assessment1   ComparisonSide           `json:"assessment1"`
	Assessment2   ComparisonSide           `json:"assessment2"`
	Differences   map[string]FeatureChange `json:"differences"`
	OverallChange OverallChange            `json:"overall_change"`
}

// buildComparison diffs every feature of two assessments and classifies the
// risk-level movement from the first to the second.
func buildComparison(a1, a2 *Assessment) *Comparison {
	side := func(a *Assessment) ComparisonSide {
		return ComparisonSide{
			ID:          a.ID,
			Date:        a.CreatedAt,
			StressLevel: a.StressLevel,
			Confidence:  a.ConfidenceScore,
			Data:        a.Features,
		}
	}

	differences := make(map[string]FeatureChange, len(schema.Entries))
	for _, entry := range schema.Entries {
		before, _ := a1.Features.Value(entry.Name)
		after, _ := a2.Features.Value(entry.Name)
		diff := after - before

		improved := diff > 0
		if lowerIsBetter[entry.Name] {
			improved = diff < 0
		}

		differences[entry.Name] = FeatureChange{
			Before:   before,
			After:    after,
			Change:   diff,
			Improved: improved,
		}
	}

	rankChange := levelRank(a2.StressLevel) - levelRank(a1.StressLevel)

	return &Comparison{
		Assessment1: side(a1),
		Assessment2: side(a2),
		Differences: differences,
		OverallChange: OverallChange{
			StressImproved:  rankChange < 0,
			StressWorsened:  rankChange > 0,
			StressUnchanged: rankChange == 0,
			DaysBetween:     int(a2.CreatedAt.Sub(a1.CreatedAt).Hours() / 24),
		},
	}
}
