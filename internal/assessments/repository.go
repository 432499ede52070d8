package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campuswell/pulse/internal/model"
	"github.com/campuswell/pulse/internal/recommend"
	"github.com/campuswell/pulse/internal/schema"
	"github.com/campuswell/pulse/pkg/pagination"
	"github.com/campuswell/pulse/pkg/query"
	"github.com/campuswell/pulse/pkg/repository"
)

const returningColumns = `id, user_id, features, stress_level, confidence_score,
		probabilities, top_contributors, recommendations, notes, created_at`

type repo struct {
	db         *sql.DB
	artifact   *model.Artifact
	engine     *recommend.Engine
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an assessment repository implementing the System interface.
// The artifact and engine are shared immutable pipeline stages.
func New(
	db *sql.DB,
	artifact *model.Artifact,
	engine *recommend.Engine,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		artifact:   artifact,
		engine:     engine,
		logger:     logger.With("system", "assessments"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxRequestSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxRequestSize)
}

// Submit runs the full pipeline over a raw submission. Validation and
// inference happen before any write, so a failed pipeline persists nothing.
func (r *repo) Submit(ctx context.Context, userID uuid.UUID, raw map[string]any) (*Assessment, error) {
	vector, err := schema.Validate(raw)
	if err != nil {
		return nil, err
	}

	prediction, err := r.artifact.Predict(vector)
	if err != nil {
		return nil, err
	}

	contributors, err := r.artifact.TopContributors(vector)
	if err != nil {
		return nil, err
	}

	recommendations := r.engine.Generate(recommend.Input{
		Vector:       vector,
		StressLevel:  prediction.StressLevel,
		Contributors: contributors,
	})

	features, err := json.Marshal(vector)
	if err != nil {
		return nil, fmt.Errorf("marshal features: %w", err)
	}
	probabilities, err := json.Marshal(prediction.Probabilities)
	if err != nil {
		return nil, fmt.Errorf("marshal probabilities: %w", err)
	}
	topContributors, err := json.Marshal(contributors)
	if err != nil {
		return nil, fmt.Errorf("marshal top contributors: %w", err)
	}
	recs, err := json.Marshal(recommendations)
	if err != nil {
		return nil, fmt.Errorf("marshal recommendations: %w", err)
	}

	q := fmt.Sprintf(`
		INSERT INTO assessments(id, user_id, features, stress_level, confidence_score, probabilities, top_contributors, recommendations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, returningColumns)

	insertArgs := []any{
		uuid.New(),
		userID,
		features,
		prediction.StressLevel,
		prediction.Confidence,
		probabilities,
		topContributors,
		recs,
	}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Assessment, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanAssessment)
	})

	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrUserNotFound
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("assessment submitted",
		"id", a.ID,
		"user_id", a.UserID,
		"stress_level", a.StressLevel,
	)
	return &a, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAssessment)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	page pagination.PageRequest,
) (*pagination.PageResult[Assessment], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, newestFirst).
		WhereEquals("UserID", userID)

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.QueryValue[int](ctx, r.db, countSQL, countArgs...)
	if err != nil {
		return nil, fmt.Errorf("count assessments: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PerPage)
	records, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAssessment)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PerPage)
	return &result, nil
}

// Trends aggregates the user's assessments within the trailing window.
// Non-positive days falls back to DefaultTrendDays.
func (r *repo) Trends(ctx context.Context, userID uuid.UUID, days int) (*TrendReport, error) {
	if days <= 0 {
		days = DefaultTrendDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	q, args := query.
		NewBuilder(projection, oldestFirst).
		WhereEquals("UserID", userID).
		WhereGte("CreatedAt", since).
		Build()

	records, err := repository.QueryMany(ctx, r.db, q, args, scanAssessment)
	if err != nil {
		return nil, fmt.Errorf("query trend window: %w", err)
	}

	return BuildTrends(records, days), nil
}

func (r *repo) Export(ctx context.Context, userID uuid.UUID, format string) (*Export, error) {
	records, err := r.historyByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query export records: %w", err)
	}

	return buildExport(records, format, time.Now().UTC())
}

// Summary aggregates the user's assessments over the named trailing period.
// Unknown periods fall back to the weekly window.
func (r *repo) Summary(ctx context.Context, userID uuid.UUID, period string) (*SummaryReport, error) {
	days, _ := periodWindow(period)
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	q, args := query.
		NewBuilder(projection, oldestFirst).
		WhereEquals("UserID", userID).
		WhereGte("CreatedAt", start).
		Build()

	records, err := repository.QueryMany(ctx, r.db, q, args, scanAssessment)
	if err != nil {
		return nil, fmt.Errorf("query summary window: %w", err)
	}

	return buildSummary(records, period, start, end), nil
}

func (r *repo) Insights(ctx context.Context, userID uuid.UUID) (*InsightReport, error) {
	records, err := r.historyByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query insight history: %w", err)
	}

	return buildInsights(records, time.Now().UTC()), nil
}

func (r *repo) Streak(ctx context.Context, userID uuid.UUID) (*StreakReport, error) {
	records, err := r.historyByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query streak history: %w", err)
	}

	return buildStreak(records), nil
}

// Compare diffs two of a user's assessments. Records belonging to different
// users read as missing.
func (r *repo) Compare(ctx context.Context, id1, id2 uuid.UUID) (*Comparison, error) {
	a1, err := r.Find(ctx, id1)
	if err != nil {
		return nil, err
	}
	a2, err := r.Find(ctx, id2)
	if err != nil {
		return nil, err
	}

	if a1.UserID != a2.UserID {
		return nil, ErrNotFound
	}

	return buildComparison(a1, a2), nil
}

// historyByUser returns every assessment for the user, newest first.
func (r *repo) historyByUser(ctx context.Context, userID uuid.UUID) ([]Assessment, error) {
	q, args := query.
		NewBuilder(projection, newestFirst).
		WhereEquals("UserID", userID).
		Build()

	return repository.QueryMany(ctx, r.db, q, args, scanAssessment)
}

func (r *repo) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (*Assessment, error) {
	q := fmt.Sprintf(`
		UPDATE assessments
		SET notes = $1
		WHERE id = $2
		RETURNING %s`, returningColumns)

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Assessment, error) {
		return repository.QueryOne(ctx, tx, q, []any{notes, id}, scanAssessment)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("assessment notes updated", "id", id)
	return &a, nil
}
