package recommend

import "github.com/campuswell/pulse/internal/model"

// DefaultRules returns the standard rule table in evaluation order: stress
// level rules first, then contributor-specific rules, then the always-on
// wellness fallbacks. Contributor rules only fire when the feature ranks
// among the submission's top contributors, so recommendations track what
// actually drove the classification.
func DefaultRules() []Rule {
	return []Rule{
		// Predicted stress level.
		{
			Match:  level(model.LabelHighRisk),
			Text:   "PRIORITY: Consider scheduling an appointment with campus counseling services",
			Urgent: true,
		},
		{
			Match: level(model.LabelHighRisk),
			Text:  "Reach out to your academic advisor to discuss stress management strategies",
		},
		{
			Match: level(model.LabelHighRisk),
			Text:  "Take immediate steps to reduce overwhelming commitments",
		},
		{
			Match: level(model.LabelModerateRisk),
			Text:  "Monitor your stress levels and consider preventive strategies",
		},

		// Severe anxiety.
		{
			Match: contributing("anxiety_level", atLeast(15)),
			Text:  "Practice deep breathing exercises (4-7-8 technique) for 5-10 minutes daily",
		},
		{
			Match: contributing("anxiety_level", atLeast(15)),
			Text:  "Consider mindfulness meditation using apps like Headspace or Calm",
		},
		{
			Match: contributing("anxiety_level", atLeast(15)),
			Text:  "Engage in regular physical exercise (30 minutes, 3-4 times per week)",
		},

		// Moderate anxiety.
		{
			Match: contributing("anxiety_level", between(10, 14)),
			Text:  "Try progressive muscle relaxation techniques",
		},
		{
			Match: contributing("anxiety_level", between(10, 14)),
			Text:  "Take short breaks during study sessions (Pomodoro technique)",
		},

		// Low self-esteem.
		{
			Match: contributing("self_esteem", atMost(10)),
			Text:  "Set small, achievable daily goals to build confidence",
		},
		{
			Match: contributing("self_esteem", atMost(10)),
			Text:  "Practice positive self-talk and challenge negative thoughts",
		},
		{
			Match: contributing("self_esteem", atMost(10)),
			Text:  "Join student clubs or activities aligned with your interests",
		},

		// Poor sleep.
		{
			Match: contributing("sleep_quality", atMost(2)),
			Text:  "Establish a consistent sleep schedule (same bedtime and wake time)",
		},
		{
			Match: contributing("sleep_quality", atMost(2)),
			Text:  "Create a relaxing bedtime routine (no screens 1 hour before bed)",
		},
		{
			Match: contributing("sleep_quality", atMost(2)),
			Text:  "Avoid caffeine after 2 PM",
		},

		// Academic struggles.
		{
			Match: contributing("academic_performance", atMost(2)),
			Text:  "Visit your professor during office hours for clarification",
		},
		{
			Match: contributing("academic_performance", atMost(2)),
			Text:  "Form or join study groups with classmates",
		},
		{
			Match: contributing("academic_performance", atMost(2)),
			Text:  "Utilize campus tutoring services and academic support centers",
		},

		// Overwhelming study load.
		{
			Match: contributing("study_load", atLeast(4)),
			Text:  "Use time management tools (calendar, planner, apps)",
		},
		{
			Match: contributing("study_load", atLeast(4)),
			Text:  "Prioritize tasks using the Eisenhower Matrix (urgent/important)",
		},
		{
			Match: contributing("study_load", atLeast(4)),
			Text:  "Learn to say 'no' to non-essential commitments",
		},

		// Lacking social support.
		{
			Match: contributing("social_support", atMost(2)),
			Text:  "Join campus clubs, organizations, or sports teams",
		},
		{
			Match: contributing("social_support", atMost(2)),
			Text:  "Attend campus events and social activities",
		},

		// Depression at crisis threshold.
		{
			Match:  contributing("depression", atLeast(20)),
			Text:   "IMPORTANT: Reach out to campus counseling services immediately",
			Urgent: true,
		},
		{
			Match:  contributing("depression", atLeast(20)),
			Text:   "Contact the National Suicide Prevention Lifeline: 988",
			Urgent: true,
		},
		{
			Match: contributing("depression", atLeast(20)),
			Text:  "Talk to a trusted friend, family member, or mentor",
		},
		{
			Match: contributing("depression", atLeast(20)),
			Text:  "Maintain a daily routine including regular meals and sleep",
		},
		{
			Match: contributing("depression", atLeast(20)),
			Text:  "Engage in activities you previously enjoyed",
		},
		{
			Match: contributing("depression", atLeast(20)),
			Text:  "Consider professional mental health treatment",
		},

		// Career concerns.
		{
			Match: contributing("future_career_concerns", atLeast(4)),
			Text:  "Visit the career services center for guidance",
		},
		{
			Match: contributing("future_career_concerns", atLeast(4)),
			Text:  "Attend career fairs and networking events",
		},
		{
			Match: contributing("future_career_concerns", atLeast(4)),
			Text:  "Seek internships or volunteer opportunities in your field",
		},

		// Peer pressure.
		{
			Match: contributing("peer_pressure", atLeast(4)),
			Text:  "Practice assertiveness skills and saying 'no'",
		},
		{
			Match: contributing("peer_pressure", atLeast(4)),
			Text:  "Surround yourself with positive, supportive friends",
		},

		// Bullying.
		{
			Match:  contributing("bullying", atLeast(4)),
			Text:   "IMPORTANT: Report bullying to campus authorities immediately",
			Urgent: true,
		},
		{
			Match: contributing("bullying", atLeast(4)),
			Text:  "Document incidents (dates, times, witnesses)",
		},
		{
			Match: contributing("bullying", atLeast(4)),
			Text:  "Speak with a counselor or trusted adult",
		},
		{
			Match: contributing("bullying", atLeast(4)),
			Text:  "Contact campus security if you feel unsafe",
		},
		{
			Match: contributing("bullying", atLeast(4)),
			Text:  "Know that bullying is never your fault",
		},
		{
			Match: contributing("bullying", atLeast(4)),
			Text:  "Consider joining support groups for bullying victims",
		},

		// General wellness fallbacks: always-true predicates, lowest priority.
		{Match: always, Text: "Maintain a balanced diet with regular meals"},
		{Match: always, Text: "Stay hydrated throughout the day"},
		{Match: always, Text: "Schedule regular breaks and leisure time"},
		{Match: always, Text: "Connect with friends and family regularly"},
	}
}

func always(Input) bool {
	return true
}

func level(label string) func(Input) bool {
	return func(in Input) bool {
		return in.StressLevel == label
	}
}

// contributing holds when feature ranks among the submission's top
// contributors and its raw value satisfies cond.
func contributing(feature string, cond func(int) bool) func(Input) bool {
	return func(in Input) bool {
		for _, c := range in.Contributors {
			if c.Feature == feature {
				return cond(c.Value)
			}
		}
		return false
	}
}

func atLeast(n int) func(int) bool {
	return func(v int) bool { return v >= n }
}

func atMost(n int) func(int) bool {
	return func(v int) bool { return v <= n }
}

func between(lo, hi int) func(int) bool {
	return func(v int) bool { return v >= lo && v <= hi }
}
