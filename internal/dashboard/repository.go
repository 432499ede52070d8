package dashboard

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/campuswell/pulse/internal/model"
	"github.com/campuswell/pulse/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a dashboard repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "dashboard"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// Stats fans the independent aggregate queries out concurrently and
// assembles the dashboard payload. Any query failure fails the whole call.
func (r *repo) Stats(ctx context.Context) (*Stats, error) {
	now := time.Now().UTC()
	stats := &Stats{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := repository.QueryValue[int](gctx, r.db, "SELECT COUNT(*) FROM users")
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		stats.TotalUsers = total
		return nil
	})

	g.Go(func() error {
		total, err := repository.QueryValue[int](gctx, r.db, "SELECT COUNT(*) FROM assessments")
		if err != nil {
			return fmt.Errorf("count assessments: %w", err)
		}
		stats.TotalAssessments = total
		return nil
	})

	g.Go(func() error {
		since := now.AddDate(0, 0, -RecentWindowDays)
		count, err := repository.QueryValue[int](
			gctx, r.db,
			"SELECT COUNT(*) FROM assessments WHERE created_at >= $1",
			since,
		)
		if err != nil {
			return fmt.Errorf("count recent assessments: %w", err)
		}
		stats.RecentAssessments = count
		return nil
	})

	g.Go(func() error {
		dist, err := r.distribution(gctx)
		if err != nil {
			return err
		}
		stats.StressDistribution = dist
		return nil
	})

	g.Go(func() error {
		count, err := repository.QueryValue[int](gctx, r.db, `
			SELECT COUNT(*) FROM (
				SELECT DISTINCT ON (user_id) stress_level
				FROM assessments
				ORDER BY user_id, created_at DESC
			) latest
			WHERE latest.stress_level = $1`,
			model.LabelHighRisk,
		)
		if err != nil {
			return fmt.Errorf("count high risk students: %w", err)
		}
		stats.HighRiskStudents = count
		return nil
	})

	g.Go(func() error {
		trend, err := r.dailyTrend(gctx, now)
		if err != nil {
			return err
		}
		stats.DailyTrend = trend
		return nil
	})

	g.Go(func() error {
		avg, err := repository.QueryValue[float64](
			gctx, r.db,
			"SELECT COALESCE(AVG(confidence_score), 0) FROM assessments",
		)
		if err != nil {
			return fmt.Errorf("average confidence: %w", err)
		}
		stats.AverageConfidence = roundConfidence(avg)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *repo) distribution(ctx context.Context) (Distribution, error) {
	var dist Distribution

	rows, err := r.db.QueryContext(ctx, `
		SELECT stress_level, COUNT(*)
		FROM assessments
		GROUP BY stress_level`)
	if err != nil {
		return dist, fmt.Errorf("query distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return dist, fmt.Errorf("scan distribution: %w", err)
		}

		switch level {
		case model.LabelLowRisk:
			dist.LowRisk = count
		case model.LabelModerateRisk:
			dist.ModerateRisk = count
		case model.LabelHighRisk:
			dist.HighRisk = count
		}
	}

	if err := rows.Err(); err != nil {
		return dist, fmt.Errorf("read distribution: %w", err)
	}

	return dist, nil
}

func (r *repo) dailyTrend(ctx context.Context, now time.Time) ([]DailyCount, error) {
	since := now.AddDate(0, 0, -(TrendWindowDays - 1))

	rows, err := r.db.QueryContext(ctx, `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
		FROM assessments
		WHERE created_at >= $1
		GROUP BY day`,
		since.Truncate(24*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("query daily trend: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("scan daily trend: %w", err)
		}
		counts[day] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read daily trend: %w", err)
	}

	return fillDailyTrend(counts, now, TrendWindowDays), nil
}

// Alerts returns recent high-risk assessments joined with their users,
// newest first, each trimmed to the leading top contributors.
func (r *repo) Alerts(ctx context.Context, days int) ([]Alert, error) {
	if days <= 0 {
		days = DefaultAlertDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, u.id, u.first_name, u.last_name, u.email,
			a.stress_level, a.confidence_score, a.created_at, a.top_contributors
		FROM assessments a
		JOIN users u ON u.id = a.user_id
		WHERE a.stress_level = $1 AND a.created_at >= $2
		ORDER BY a.created_at DESC`,
		model.LabelHighRisk,
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]Alert, 0)
	for rows.Next() {
		var (
			alert        Alert
			first, last  string
			contributors []byte
		)

		if err := rows.Scan(
			&alert.AssessmentID,
			&alert.User.ID,
			&first,
			&last,
			&alert.User.Email,
			&alert.StressLevel,
			&alert.Confidence,
			&alert.Date,
			&contributors,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}

		alert.User.Name = first + " " + last

		if err := json.Unmarshal(contributors, &alert.TopContributors); err != nil {
			return nil, fmt.Errorf("unmarshal alert contributors: %w", err)
		}
		if len(alert.TopContributors) > AlertContributorCap {
			alert.TopContributors = alert.TopContributors[:AlertContributorCap]
		}

		alerts = append(alerts, alert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read alerts: %w", err)
	}

	return alerts, nil
}

// Export returns every assessment stripped of user identity for offline
// analysis, oldest first.
func (r *repo) Export(ctx context.Context) (*ResearchExport, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT features, stress_level, confidence_score, created_at
		FROM assessments
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query research export: %w", err)
	}
	defer rows.Close()

	data := make([]ResearchRow, 0)
	for rows.Next() {
		var (
			row      ResearchRow
			features []byte
		)

		if err := rows.Scan(&features, &row.StressLevel, &row.ConfidenceScore, &row.Date); err != nil {
			return nil, fmt.Errorf("scan research row: %w", err)
		}
		if err := json.Unmarshal(features, &row.FeatureVector); err != nil {
			return nil, fmt.Errorf("unmarshal research features: %w", err)
		}

		data = append(data, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read research export: %w", err)
	}

	return &ResearchExport{Data: data, Count: len(data)}, nil
}
