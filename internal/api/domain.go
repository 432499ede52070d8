package api

import (
	"github.com/campuswell/pulse/internal/assessments"
	"github.com/campuswell/pulse/internal/dashboard"
	"github.com/campuswell/pulse/internal/recommend"
	"github.com/campuswell/pulse/internal/users"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Users       users.System
	Assessments assessments.System
	Dashboard   dashboard.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	usersSystem := users.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	assessmentsSystem := assessments.New(
		runtime.Database.Connection(),
		runtime.Model,
		recommend.NewEngine(runtime.MaxRecommendations),
		runtime.Logger,
		runtime.Pagination,
	)

	dashboardSystem := dashboard.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	return &Domain{
		Users:       usersSystem,
		Assessments: assessmentsSystem,
		Dashboard:   dashboardSystem,
	}
}
