package assessments

import (
	"testing"
	"time"

	"github.com/campuswell/pulse/internal/model"
)

func hasAchievement(report *StreakReport, id string) bool {
	for _, a := range report.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

func TestBuildStreakEmpty(t *testing.T) {
	report := buildStreak(nil)

	if report.CurrentStreak != 0 || report.WeeksActive != 0 || report.TotalAssessments != 0 {
		t.Errorf("report = %+v, want zeroes", report)
	}
	if len(report.Achievements) != 0 {
		t.Errorf("achievements = %v, want none", report.Achievements)
	}
	if report.NextAchievement != nil {
		t.Errorf("next = %+v, want nil", report.NextAchievement)
	}
}

func TestBuildStreakFirstAssessment(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	report := buildStreak(historyOf(now, model.LabelLowRisk))

	if !hasAchievement(report, "first_step") {
		t.Errorf("missing first_step: %v", report.Achievements)
	}
	if len(report.Achievements) != 1 {
		t.Errorf("got %d achievements, want 1", len(report.Achievements))
	}
	if report.NextAchievement == nil ||
		report.NextAchievement.NextMilestone != 5 ||
		report.NextAchievement.AssessmentsNeeded != 4 {
		t.Errorf("next = %+v, want milestone 5 needing 4", report.NextAchievement)
	}
}

func TestBuildStreakMilestones(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	levels := make([]string, 12)
	for i := range levels {
		levels[i] = model.LabelModerateRisk
	}
	report := buildStreak(historyOf(now, levels...))

	for _, id := range []string{"first_step", "getting_started", "committed"} {
		if !hasAchievement(report, id) {
			t.Errorf("missing %s: %v", id, report.Achievements)
		}
	}
	if hasAchievement(report, "dedicated") {
		t.Errorf("dedicated earned at 12 assessments: %v", report.Achievements)
	}
	if report.NextAchievement.NextMilestone != 25 {
		t.Errorf("next milestone = %d, want 25", report.NextAchievement.NextMilestone)
	}
}

func TestBuildStreakOvercomer(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	report := buildStreak(historyOf(now,
		model.LabelLowRisk, model.LabelModerateRisk, model.LabelHighRisk,
	))

	if !hasAchievement(report, "overcomer") {
		t.Errorf("missing overcomer: %v", report.Achievements)
	}

	// Two records cannot earn it even with the right endpoints.
	short := buildStreak(historyOf(now, model.LabelLowRisk, model.LabelHighRisk))
	if hasAchievement(short, "overcomer") {
		t.Errorf("overcomer from 2 records: %v", short.Achievements)
	}
}

func TestBuildStreakWeeksActive(t *testing.T) {
	// A Wednesday, so the two preceding days share its ISO week.
	now := time.Date(2026, 6, 3, 12, 0, 0, 0, time.UTC)

	// Three assessments in the same ISO week plus one three weeks back.
	records := []Assessment{
		{StressLevel: model.LabelLowRisk, CreatedAt: now},
		{StressLevel: model.LabelLowRisk, CreatedAt: now.AddDate(0, 0, -1)},
		{StressLevel: model.LabelLowRisk, CreatedAt: now.AddDate(0, 0, -2)},
		{StressLevel: model.LabelLowRisk, CreatedAt: now.AddDate(0, 0, -21)},
	}

	report := buildStreak(records)

	if report.WeeksActive != 2 {
		t.Errorf("weeks active = %d, want 2", report.WeeksActive)
	}
	if report.CurrentStreak != 2 {
		t.Errorf("current streak = %d, want 2", report.CurrentStreak)
	}
	if report.TotalAssessments != 4 {
		t.Errorf("total = %d, want 4", report.TotalAssessments)
	}
}
