package assessments

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/campuswell/pulse/internal/model"
)

func record(level string, confidence float64, created time.Time) Assessment {
	return Assessment{
		StressLevel:     level,
		ConfidenceScore: confidence,
		Probabilities:   map[string]float64{level: confidence},
		CreatedAt:       created,
	}
}

func TestBuildTrendsEmpty(t *testing.T) {
	report := BuildTrends(nil, 180)

	if report.Days != 180 {
		t.Errorf("days = %d, want 180", report.Days)
	}
	if len(report.Trends) != 0 {
		t.Errorf("trends = %v, want empty", report.Trends)
	}

	stats := report.Statistics
	if stats.TotalAssessments != 0 {
		t.Errorf("total = %d, want 0", stats.TotalAssessments)
	}
	if stats.LowRiskPercentage != 0 || stats.ModerateRiskPercentage != 0 || stats.HighRiskPercentage != 0 {
		t.Errorf("percentages = %v, want all zero", stats)
	}
	if stats.LatestStressLevel != nil {
		t.Errorf("latest = %q, want nil", *stats.LatestStressLevel)
	}
}

func TestBuildTrendsEmptyLatestMarshalsNull(t *testing.T) {
	payload, err := json.Marshal(BuildTrends(nil, DefaultTrendDays).Statistics)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if !strings.Contains(string(payload), `"latest_stress_level":null`) {
		t.Errorf("payload = %s, want latest_stress_level null", payload)
	}
}

func TestBuildTrendsStatistics(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	records := []Assessment{
		record(model.LabelLowRisk, 0.9, base),
		record(model.LabelLowRisk, 0.8, base.AddDate(0, 0, 7)),
		record(model.LabelModerateRisk, 0.7, base.AddDate(0, 0, 14)),
		record(model.LabelHighRisk, 0.85, base.AddDate(0, 0, 21)),
	}

	report := BuildTrends(records, 90)
	stats := report.Statistics

	if stats.TotalAssessments != 4 {
		t.Fatalf("total = %d, want 4", stats.TotalAssessments)
	}

	close := func(got, want float64) bool {
		return math.Abs(got-want) < 1e-9
	}

	if !close(stats.LowRiskPercentage, 50) {
		t.Errorf("low = %v, want 50", stats.LowRiskPercentage)
	}
	if !close(stats.ModerateRiskPercentage, 25) {
		t.Errorf("moderate = %v, want 25", stats.ModerateRiskPercentage)
	}
	if !close(stats.HighRiskPercentage, 25) {
		t.Errorf("high = %v, want 25", stats.HighRiskPercentage)
	}
	if stats.LatestStressLevel == nil || *stats.LatestStressLevel != model.LabelHighRisk {
		t.Errorf("latest = %v, want %q", stats.LatestStressLevel, model.LabelHighRisk)
	}
}

func TestBuildTrendsPoints(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	records := []Assessment{
		record(model.LabelModerateRisk, 0.62, base),
		record(model.LabelLowRisk, 0.71, base.AddDate(0, 0, 3)),
	}

	report := BuildTrends(records, 30)

	if len(report.Trends) != 2 {
		t.Fatalf("got %d points, want 2", len(report.Trends))
	}

	first := report.Trends[0]
	if !first.Date.Equal(base) {
		t.Errorf("first point date = %v, want %v", first.Date, base)
	}
	if first.StressLevel != model.LabelModerateRisk {
		t.Errorf("first point level = %q, want %q", first.StressLevel, model.LabelModerateRisk)
	}
	if first.Confidence != 0.62 {
		t.Errorf("first point confidence = %v, want 0.62", first.Confidence)
	}

	if report.Trends[1].StressLevel != model.LabelLowRisk {
		t.Errorf("second point level = %q, want %q", report.Trends[1].StressLevel, model.LabelLowRisk)
	}
}

func TestBuildTrendsPercentagesSum(t *testing.T) {
	base := time.Now().UTC()
	records := []Assessment{
		record(model.LabelLowRisk, 0.9, base),
		record(model.LabelModerateRisk, 0.6, base.Add(time.Hour)),
		record(model.LabelHighRisk, 0.8, base.Add(2*time.Hour)),
	}

	stats := BuildTrends(records, 30).Statistics
	sum := stats.LowRiskPercentage + stats.ModerateRiskPercentage + stats.HighRiskPercentage

	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("percentage sum = %v, want 100", sum)
	}
}
