package model

import (
	"fmt"
	"sort"

	"github.com/campuswell/pulse/internal/schema"
)

// TopContributorCount caps how many contributors a prediction reports.
const TopContributorCount = 5

// Contributor scores one feature's contribution to a submission. ImpactScore
// is the raw value weighted by the feature's global importance. It is a
// global heuristic, not a per-instance explanation, so features with large
// numeric scales rank higher than equally-important small-scale ones.
type Contributor struct {
	Feature     string  `json:"feature"`
	Value       int     `json:"value"`
	Importance  float64 `json:"importance"`
	ImpactScore float64 `json:"impact_score"`
}

// TopContributors ranks all features by impact score descending and returns
// the top five. Ties preserve schema declaration order.
func (a *Artifact) TopContributors(v *schema.FeatureVector) ([]Contributor, error) {
	contributors := make([]Contributor, 0, len(schema.Entries))

	for _, entry := range schema.Entries {
		importance, ok := a.importance[entry.Name]
		if !ok {
			return nil, fmt.Errorf("%w: no importance for feature %q", ErrInference, entry.Name)
		}

		value, _ := v.Value(entry.Name)
		contributors = append(contributors, Contributor{
			Feature:     entry.Name,
			Value:       value,
			Importance:  importance,
			ImpactScore: float64(value) * importance,
		})
	}

	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].ImpactScore > contributors[j].ImpactScore
	})

	if len(contributors) > TopContributorCount {
		contributors = contributors[:TopContributorCount]
	}

	return contributors, nil
}
