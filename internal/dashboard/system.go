package dashboard

import "context"

// System defines the public contract for dashboard aggregation.
type System interface {
	Handler() *Handler

	Stats(ctx context.Context) (*Stats, error)
	Alerts(ctx context.Context, days int) ([]Alert, error)
	Export(ctx context.Context) (*ResearchExport, error)
}
