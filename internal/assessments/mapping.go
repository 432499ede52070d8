package assessments

import (
	"encoding/json"
	"fmt"

	"github.com/campuswell/pulse/pkg/query"
	"github.com/campuswell/pulse/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "assessments", "a").
	Project("id", "ID").
	Project("user_id", "UserID").
	Project("features", "Features").
	Project("stress_level", "StressLevel").
	Project("confidence_score", "ConfidenceScore").
	Project("probabilities", "Probabilities").
	Project("top_contributors", "TopContributors").
	Project("recommendations", "Recommendations").
	Project("notes", "Notes").
	Project("created_at", "CreatedAt")

var newestFirst = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

var oldestFirst = query.SortField{
	Field: "CreatedAt",
}

func scanAssessment(s repository.Scanner) (Assessment, error) {
	var (
		a             Assessment
		features      []byte
		probabilities []byte
		contributors  []byte
		recs          []byte
	)

	if err := s.Scan(
		&a.ID,
		&a.UserID,
		&features,
		&a.StressLevel,
		&a.ConfidenceScore,
		&probabilities,
		&contributors,
		&recs,
		&a.Notes,
		&a.CreatedAt,
	); err != nil {
		return a, err
	}

	if err := json.Unmarshal(features, &a.Features); err != nil {
		return a, fmt.Errorf("unmarshal features: %w", err)
	}
	if err := json.Unmarshal(probabilities, &a.Probabilities); err != nil {
		return a, fmt.Errorf("unmarshal probabilities: %w", err)
	}
	if err := json.Unmarshal(contributors, &a.TopContributors); err != nil {
		return a, fmt.Errorf("unmarshal top contributors: %w", err)
	}
	if err := json.Unmarshal(recs, &a.Recommendations); err != nil {
		return a, fmt.Errorf("unmarshal recommendations: %w", err)
	}

	return a, nil
}
