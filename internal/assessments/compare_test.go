package assessments

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campuswell/pulse/internal/model"
	"github.com/campuswell/pulse/internal/schema"
)

func TestBuildComparisonDifferences(t *testing.T) {
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()

	before := &Assessment{
		ID:              uuid.New(),
		UserID:          userID,
		StressLevel:     model.LabelHighRisk,
		ConfidenceScore: 0.82,
		Features:        schema.FeatureVector{AnxietyLevel: 25, SocialSupport: 1, Headache: 4},
		CreatedAt:       base,
	}
	after := &Assessment{
		ID:              uuid.New(),
		UserID:          userID,
		StressLevel:     model.LabelLowRisk,
		ConfidenceScore: 0.91,
		Features:        schema.FeatureVector{AnxietyLevel: 8, SocialSupport: 4, Headache: 4},
		CreatedAt:       base.AddDate(0, 0, 30),
	}

	cmp := buildComparison(before, after)

	if len(cmp.Differences) != len(schema.Entries) {
		t.Fatalf("got %d differences, want %d", len(cmp.Differences), len(schema.Entries))
	}

	anxiety := cmp.Differences["anxiety_level"]
	if anxiety.Before != 25 || anxiety.After != 8 || anxiety.Change != -17 {
		t.Errorf("anxiety = %+v", anxiety)
	}
	if !anxiety.Improved {
		t.Error("anxiety drop should count as improvement")
	}

	support := cmp.Differences["social_support"]
	if support.Change != 3 || !support.Improved {
		t.Errorf("social support = %+v, rise should count as improvement", support)
	}

	headache := cmp.Differences["headache"]
	if headache.Change != 0 || headache.Improved {
		t.Errorf("headache = %+v, no change is no improvement", headache)
	}
}

func TestBuildComparisonOverallChange(t *testing.T) {
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()

	side := func(level string, created time.Time) *Assessment {
		return &Assessment{ID: uuid.New(), UserID: userID, StressLevel: level, CreatedAt: created}
	}

	improved := buildComparison(
		side(model.LabelHighRisk, base),
		side(model.LabelLowRisk, base.AddDate(0, 0, 14)),
	).OverallChange
	if !improved.StressImproved || improved.StressWorsened || improved.StressUnchanged {
		t.Errorf("overall = %+v, want improved", improved)
	}
	if improved.DaysBetween != 14 {
		t.Errorf("days between = %d, want 14", improved.DaysBetween)
	}

	worsened := buildComparison(
		side(model.LabelLowRisk, base),
		side(model.LabelModerateRisk, base.AddDate(0, 0, 7)),
	).OverallChange
	if !worsened.StressWorsened {
		t.Errorf("overall = %+v, want worsened", worsened)
	}

	unchanged := buildComparison(
		side(model.LabelModerateRisk, base),
		side(model.LabelModerateRisk, base.AddDate(0, 0, 7)),
	).OverallChange
	if !unchanged.StressUnchanged {
		t.Errorf("overall = %+v, want unchanged", unchanged)
	}
}

func TestBuildComparisonSides(t *testing.T) {
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()

	a1 := &Assessment{
		ID:              uuid.New(),
		UserID:          userID,
		StressLevel:     model.LabelModerateRisk,
		ConfidenceScore: 0.67,
		Features:        schema.FeatureVector{Depression: 12},
		CreatedAt:       base,
	}
	a2 := &Assessment{
		ID:              uuid.New(),
		UserID:          userID,
		StressLevel:     model.LabelLowRisk,
		ConfidenceScore: 0.88,
		Features:        schema.FeatureVector{Depression: 4},
		CreatedAt:       base.AddDate(0, 0, 10),
	}

	cmp := buildComparison(a1, a2)

	if cmp.Assessment1.ID != a1.ID || cmp.Assessment2.ID != a2.ID {
		t.Errorf("sides = %v / %v, want record ids preserved", cmp.Assessment1.ID, cmp.Assessment2.ID)
	}
	if cmp.Assessment1.Confidence != 0.67 || cmp.Assessment2.Confidence != 0.88 {
		t.Errorf("confidences = %v / %v", cmp.Assessment1.Confidence, cmp.Assessment2.Confidence)
	}
	if cmp.Assessment1.Data.Depression != 12 || cmp.Assessment2.Data.Depression != 4 {
		t.Errorf("feature snapshots not carried: %v / %v", cmp.Assessment1.Data, cmp.Assessment2.Data)
	}
}
