// Package assessments implements the submission pipeline and history queries
// for stress assessments: validate, classify, attribute, recommend, persist.
package assessments

import (
	"time"

	"github.com/google/uuid"

	"github.com/campuswell/pulse/internal/model"
	"github.com/campuswell/pulse/internal/schema"
)

// Assessment is one persisted submission together with everything the
// pipeline derived from it. Notes is the only field that may change after
// the record is written.
type Assessment struct {
	ID              uuid.UUID            `json:"id"`
	UserID          uuid.UUID            `json:"user_id"`
	Features        schema.FeatureVector `json:"features"`
	StressLevel     string               `json:"stress_level"`
	ConfidenceScore float64              `json:"confidence_score"`
	Probabilities   map[string]float64   `json:"all_probabilities"`
	TopContributors []model.Contributor  `json:"top_contributors"`
	Recommendations []string             `json:"recommendations"`
	Notes           *string              `json:"notes"`
	CreatedAt       time.Time            `json:"created_at"`
}
