package api

import (
	"log/slog"
	"net/http"

	"github.com/campuswell/pulse/internal/model"
	"github.com/campuswell/pulse/pkg/handlers"
	"github.com/campuswell/pulse/pkg/routes"
)

type modelHandler struct {
	artifact *model.Artifact
	logger   *slog.Logger
}

func newModelHandler(artifact *model.Artifact, logger *slog.Logger) *modelHandler {
	return &modelHandler{
		artifact: artifact,
		logger:   logger.With("handler", "model"),
	}
}

func (h *modelHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/model",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/importance", Handler: h.importance},
		},
	}
}

func (h *modelHandler) importance(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"model_version":      h.artifact.Version(),
		"feature_importance": h.artifact.ImportanceSummary(),
	})
}
