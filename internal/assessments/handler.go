package assessments

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/campuswell/pulse/internal/schema"
	"github.com/campuswell/pulse/pkg/handlers"
	"github.com/campuswell/pulse/pkg/pagination"
	"github.com/campuswell/pulse/pkg/routes"
)

// Handler provides HTTP endpoints for assessment operations.
type Handler struct {
	sys            System
	logger         *slog.Logger
	pagination     pagination.Config
	maxRequestSize int64
}

// NewHandler creates a Handler with the given system, logger, pagination
// config, and submission body size limit.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
	maxRequestSize int64,
) *Handler {
	return &Handler{
		sys:            sys,
		logger:         logger.With("handler", "assessments"),
		pagination:     pagination,
		maxRequestSize: maxRequestSize,
	}
}

// Routes returns the route group definition for assessment endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/assessments",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/{userId}", Handler: h.Submit},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "PUT", Pattern: "/{id}/notes", Handler: h.UpdateNotes},
			{Method: "GET", Pattern: "/user/{userId}", Handler: h.ListByUser},
			{Method: "GET", Pattern: "/user/{userId}/trends", Handler: h.Trends},
			{Method: "GET", Pattern: "/user/{userId}/summary", Handler: h.Summary},
			{Method: "GET", Pattern: "/user/{userId}/insights", Handler: h.Insights},
			{Method: "GET", Pattern: "/user/{userId}/streak", Handler: h.Streak},
			{Method: "GET", Pattern: "/user/{userId}/export", Handler: h.Export},
			{Method: "GET", Pattern: "/compare/{id1}/{id2}", Handler: h.Compare},
		},
	}
}

// Submit runs the full pipeline over a raw submission body and returns the
// persisted record. Validation failures return every offending field at once.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrUserNotFound)
		return
	}

	var raw map[string]any
	body := http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrRequestBodyTooLarge)
			return
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return
	}

	assessment, err := h.sys.Submit(r.Context(), userID, raw)
	if err != nil {
		h.respondPipelineError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, assessment)
}

// Find returns a single assessment by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	assessment, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, assessment)
}

// ListByUser returns a user's assessment history, newest first.
func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrUserNotFound)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.ListByUser(r.Context(), userID, page)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Trends returns the user's stress trend over the trailing window given by
// the days query parameter.
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrUserNotFound)
		return
	}

	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	report, err := h.sys.Trends(r.Context(), userID, days)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// Summary returns the user's aggregated statistics over the period query
// parameter: week, month, or year.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrUserNotFound)
		return
	}

	report, err := h.sys.Summary(r.Context(), userID, r.URL.Query().Get("period"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// Insights returns personalized observations over the user's history.
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrUserNotFound)
		return
	}

	report, err := h.sys.Insights(r.Context(), userID)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// Streak returns the user's engagement streak and earned achievements.
func (h *Handler) Streak(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrUserNotFound)
		return
	}

	report, err := h.sys.Streak(r.Context(), userID)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// Compare diffs two assessments of the same user side by side.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	id1, err := uuid.Parse(r.PathValue("id1"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}
	id2, err := uuid.Parse(r.PathValue("id2"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	comparison, err := h.sys.Compare(r.Context(), id1, id2)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, comparison)
}

// Export returns all of the user's assessments in the requested format.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrUserNotFound)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = FormatJSON
	}

	export, err := h.sys.Export(r.Context(), userID, format)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, export)
}

// UpdateNotes replaces the notes on an existing assessment.
func (h *Handler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return
	}

	assessment, err := h.sys.UpdateNotes(r.Context(), id, req.Notes)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, assessment)
}

// respondPipelineError gives validation failures a structured field payload;
// everything else goes through the standard error response.
func (h *Handler) respondPipelineError(w http.ResponseWriter, err error) {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		handlers.RespondJSON(w, http.StatusBadRequest, map[string]any{
			"error":  verr.Error(),
			"fields": verr.Fields,
		})
		return
	}

	handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
}
