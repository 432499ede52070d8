package api

import (
	"github.com/campuswell/pulse/internal/config"
	"github.com/campuswell/pulse/internal/infrastructure"
	"github.com/campuswell/pulse/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination         pagination.Config
	MaxRecommendations int
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
			Model:     infra.Model,
		},
		Pagination:         cfg.API.Pagination,
		MaxRecommendations: cfg.API.MaxRecommendations,
	}
}
