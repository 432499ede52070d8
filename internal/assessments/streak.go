package assessments

import "github.com/campuswell/pulse/internal/model"

// Achievement milestones by total assessment count.
var milestones = []int{5, 10, 25, 50}

// Achievement is one earned engagement badge.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
}

// NextAchievement points at the closest unearned milestone.
type NextAchievement struct {
	AssessmentsNeeded int `json:"assessments_needed"`
	NextMilestone     int `json:"next_milestone"`
}

// StreakReport is the streak endpoint payload. The streak counts distinct
// ISO weeks holding at least one assessment.
type StreakReport struct {
	CurrentStreak    int              `json:"current_streak"`
	TotalAssessments int              `json:"total_assessments"`
	WeeksActive      int              `json:"weeks_active"`
	Achievements     []Achievement    `json:"achievements"`
	NextAchievement  *NextAchievement `json:"next_achievement,omitempty"`
}

type isoWeek struct {
	year int
	week int
}

// buildStreak derives engagement statistics from a newest-first record
// slice.
func buildStreak(records []Assessment) *StreakReport {
	report := &StreakReport{
		TotalAssessments: len(records),
		Achievements:     make([]Achievement, 0, 5),
	}

	if len(records) == 0 {
		return report
	}

	weeks := make(map[isoWeek]struct{})
	for _, a := range records {
		year, week := a.CreatedAt.ISOWeek()
		weeks[isoWeek{year, week}] = struct{}{}
	}
	report.CurrentStreak = len(weeks)
	report.WeeksActive = len(weeks)

	total := len(records)
	if total >= 1 {
		report.Achievements = append(report.Achievements, Achievement{
			ID:          "first_step",
			Title:       "First Step",
			Description: "Completed your first assessment",
			Icon:        "star",
			Earned:      true,
		})
	}
	if total >= 5 {
		report.Achievements = append(report.Achievements, Achievement{
			ID:          "getting_started",
			Title:       "Getting Started",
			Description: "Completed 5 assessments",
			Icon:        "emoji_events",
			Earned:      true,
		})
	}
	if total >= 10 {
		report.Achievements = append(report.Achievements, Achievement{
			ID:          "committed",
			Title:       "Committed",
			Description: "Completed 10 assessments",
			Icon:        "military_tech",
			Earned:      true,
		})
	}
	if total >= 25 {
		report.Achievements = append(report.Achievements, Achievement{
			ID:          "dedicated",
			Title:       "Dedicated",
			Description: "Completed 25 assessments",
			Icon:        "workspace_premium",
			Earned:      true,
		})
	}

	// Recovery badge: newest record Low Risk after a High Risk start.
	if total >= 3 {
		newest := records[0]
		oldest := records[total-1]
		if newest.StressLevel == model.LabelLowRisk && oldest.StressLevel == model.LabelHighRisk {
			report.Achievements = append(report.Achievements, Achievement{
				ID:          "overcomer",
				Title:       "Overcomer",
				Description: "Improved from High Risk to Low Risk",
				Icon:        "trending_up",
				Earned:      true,
			})
		}
	}

	report.NextAchievement = nextMilestone(total)
	return report
}

// nextMilestone finds the first milestone above total. Totals past the
// last milestone report a non-positive remaining count.
func nextMilestone(total int) *NextAchievement {
	next := milestones[len(milestones)-1]
	for _, m := range milestones {
		if total < m {
			next = m
			break
		}
	}
	return &NextAchievement{
		AssessmentsNeeded: next - total,
		NextMilestone:     next,
	}
}
