// Package recommend generates coping recommendations from a validated
// submission. The rule set is a declarative ordered table rather than a
// branching chain: evaluation order, urgency precedence, and deduplication
// are data, and each is independently testable.
package recommend

import (
	"github.com/campuswell/pulse/internal/model"
	"github.com/campuswell/pulse/internal/schema"
)

// Input carries everything a rule predicate may inspect: the validated
// vector, the predicted stress level, and the ranked top contributors.
type Input struct {
	Vector       *schema.FeatureVector
	StressLevel  string
	Contributors []model.Contributor
}

// Rule pairs a predicate with one recommendation. Urgent rules surface
// before all standard ones regardless of table position, and are never
// dropped by the output cap.
type Rule struct {
	Match  func(Input) bool
	Text   string
	Urgent bool
}

// DefaultMaxRecommendations caps Engine output when no limit is configured.
const DefaultMaxRecommendations = 15

// Engine evaluates an ordered rule table. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	rules []Rule
	max   int
}

// NewEngine creates an Engine over the default rule table. A non-positive
// max falls back to DefaultMaxRecommendations.
func NewEngine(max int) *Engine {
	if max <= 0 {
		max = DefaultMaxRecommendations
	}
	return &Engine{
		rules: DefaultRules(),
		max:   max,
	}
}

// Generate evaluates the table in order and returns the matching texts,
// urgent first, deduplicated by exact text in first-seen order. When the cap
// is exceeded standard items are truncated; urgent items always survive.
func (e *Engine) Generate(in Input) []string {
	seen := make(map[string]bool)
	var urgent, standard []string

	for _, rule := range e.rules {
		if !rule.Match(in) || seen[rule.Text] {
			continue
		}
		seen[rule.Text] = true

		if rule.Urgent {
			urgent = append(urgent, rule.Text)
		} else {
			standard = append(standard, rule.Text)
		}
	}

	if remaining := e.max - len(urgent); remaining < len(standard) {
		if remaining < 0 {
			remaining = 0
		}
		standard = standard[:remaining]
	}

	out := make([]string, 0, len(urgent)+len(standard))
	out = append(out, urgent...)
	out = append(out, standard...)
	return out
}
