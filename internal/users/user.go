// Package users implements the minimal user registry backing assessments
// and the counselor dashboard. Authentication is an external concern; this
// package only tracks identity and per-user assessment rollups.
package users

import (
	"time"

	"github.com/google/uuid"
)

// User is one registered student or staff member.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary is a user augmented with their assessment rollup for dashboard
// listings. Latest fields are nil for users with no assessments.
type Summary struct {
	User
	AssessmentCount      int        `json:"assessment_count"`
	LatestStressLevel    *string    `json:"latest_stress_level"`
	LatestAssessmentDate *time.Time `json:"latest_assessment_date"`
}

// CreateCommand carries the fields required to register a user.
type CreateCommand struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}
