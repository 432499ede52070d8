package assessments

import (
	"context"

	"github.com/google/uuid"

	"github.com/campuswell/pulse/pkg/pagination"
)

// System defines the public contract for assessment domain operations.
type System interface {
	Handler(maxRequestSize int64) *Handler

	Submit(ctx context.Context, userID uuid.UUID, raw map[string]any) (*Assessment, error)
	Find(ctx context.Context, id uuid.UUID) (*Assessment, error)

	ListByUser(
		ctx context.Context,
		userID uuid.UUID,
		page pagination.PageRequest,
	) (*pagination.PageResult[Assessment], error)

	Trends(ctx context.Context, userID uuid.UUID, days int) (*TrendReport, error)
	Summary(ctx context.Context, userID uuid.UUID, period string) (*SummaryReport, error)
	Insights(ctx context.Context, userID uuid.UUID) (*InsightReport, error)
	Streak(ctx context.Context, userID uuid.UUID) (*StreakReport, error)
	Compare(ctx context.Context, id1, id2 uuid.UUID) (*Comparison, error)
	Export(ctx context.Context, userID uuid.UUID, format string) (*Export, error)
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (*Assessment, error)
}
