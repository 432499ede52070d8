package model

import (
	"sort"

	"github.com/campuswell/pulse/internal/schema"
)

// FeatureImportance pairs one feature with its global importance weight.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// ImportanceSummary returns the artifact's global importances sorted
// descending, with schema order as the tie-break.
func (a *Artifact) ImportanceSummary() []FeatureImportance {
	summary := make([]FeatureImportance, 0, len(schema.Entries))
	for _, entry := range schema.Entries {
		summary = append(summary, FeatureImportance{
			Feature:    entry.Name,
			Importance: a.importance[entry.Name],
		})
	}

	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].Importance > summary[j].Importance
	})

	return summary
}
