package api

import (
	"net/http"

	"github.com/campuswell/pulse/internal/config"
	"github.com/campuswell/pulse/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Assessments.Handler(cfg.API.MaxRequestSizeBytes()).Routes(),
		domain.Users.Handler().Routes(),
		domain.Dashboard.Handler().Routes(),
		newModelHandler(runtime.Model, runtime.Logger).routes(),
	)
}
