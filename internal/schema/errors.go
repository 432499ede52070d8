package schema

import (
	"fmt"
	"strings"
)

// Problem classifies why a submitted field failed validation.
type Problem string

// Field validation problems.
const (
	ProblemMissing    Problem = "missing"
	ProblemNotNumeric Problem = "not_numeric"
	ProblemOutOfRange Problem = "out_of_range"
)

// FieldError describes a single invalid field in a submission.
type FieldError struct {
	Field   string  `json:"field"`
	Problem Problem `json:"problem"`
	Value   any     `json:"value,omitempty"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
}

func (e FieldError) String() string {
	switch e.Problem {
	case ProblemMissing:
		return fmt.Sprintf("%s is required", e.Field)
	case ProblemNotNumeric:
		return fmt.Sprintf("%s must be an integer", e.Field)
	default:
		return fmt.Sprintf("%s must be between %d and %d", e.Field, e.Min, e.Max)
	}
}

// ValidationError reports every invalid field in a submission, in schema
// order. It is always complete: callers see all problems at once rather
// than fixing them one at a time.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "invalid assessment data: " + strings.Join(parts, "; ")
}
