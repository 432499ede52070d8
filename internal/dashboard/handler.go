package dashboard

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/campuswell/pulse/pkg/handlers"
	"github.com/campuswell/pulse/pkg/routes"
)

// Handler provides HTTP endpoints for dashboard aggregation.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "dashboard"),
	}
}

// Routes returns the route group definition for dashboard endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/dashboard",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Stats},
			{Method: "GET", Pattern: "/alerts", Handler: h.Alerts},
			{Method: "GET", Pattern: "/export", Handler: h.Export},
		},
	}
}

// Stats returns the aggregate dashboard statistics.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.sys.Stats(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}

// Alerts returns recent high-risk assessments with their users. The days
// query parameter bounds the window.
func (h *Handler) Alerts(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	alerts, err := h.sys.Alerts(r.Context(), days)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
}

// Export returns the anonymized research dataset.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	export, err := h.sys.Export(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, export)
}
