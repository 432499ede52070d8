package users

import (
	"github.com/campuswell/pulse/pkg/query"
	"github.com/campuswell/pulse/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "users", "u").
	Project("id", "ID").
	Project("email", "Email").
	Project("first_name", "FirstName").
	Project("last_name", "LastName").
	Project("role", "Role").
	Project("created_at", "CreatedAt")

// summaryQuery joins each user with their assessment rollup. DISTINCT ON
// with a window count collapses the assessment history to one row per user.
const summaryQuery = `
	SELECT u.id, u.email, u.first_name, u.last_name, u.role, u.created_at,
		COALESCE(r.assessment_count, 0),
		r.latest_stress_level,
		r.latest_assessment_date
	FROM public.users u
	LEFT JOIN (
		SELECT DISTINCT ON (user_id) user_id,
			COUNT(*) OVER (PARTITION BY user_id) AS assessment_count,
			stress_level AS latest_stress_level,
			created_at AS latest_assessment_date
		FROM public.assessments
		ORDER BY user_id, created_at DESC
	) r ON r.user_id = u.id
	ORDER BY u.created_at DESC
	LIMIT $1 OFFSET $2`

func scanUser(s repository.Scanner) (User, error) {
	var u User
	err := s.Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.CreatedAt,
	)
	return u, err
}

func scanSummary(s repository.Scanner) (Summary, error) {
	var sm Summary
	err := s.Scan(
		&sm.ID,
		&sm.Email,
		&sm.FirstName,
		&sm.LastName,
		&sm.Role,
		&sm.CreatedAt,
		&sm.AssessmentCount,
		&sm.LatestStressLevel,
		&sm.LatestAssessmentDate,
	)
	return sm, err
}
