package schema

import (
	"encoding/json"
	"math"
	"strconv"
)

// Validate checks a raw submission against the feature schema and returns the
// typed vector. Every schema field must be present, numeric, and within its
// inclusive bounds. On failure it returns a *ValidationError listing all
// offending fields in schema order; the returned vector is nil.
func Validate(raw map[string]any) (*FeatureVector, error) {
	var vector FeatureVector
	var fields []FieldError

	for _, entry := range Entries {
		value, ok := raw[entry.Name]
		if !ok {
			fields = append(fields, FieldError{
				Field:   entry.Name,
				Problem: ProblemMissing,
				Min:     entry.Min,
				Max:     entry.Max,
			})
			continue
		}

		n, ok := coerceInt(value)
		if !ok {
			fields = append(fields, FieldError{
				Field:   entry.Name,
				Problem: ProblemNotNumeric,
				Value:   value,
				Min:     entry.Min,
				Max:     entry.Max,
			})
			continue
		}

		if n < entry.Min || n > entry.Max {
			fields = append(fields, FieldError{
				Field:   entry.Name,
				Problem: ProblemOutOfRange,
				Value:   n,
				Min:     entry.Min,
				Max:     entry.Max,
			})
			continue
		}

		*entry.field(&vector) = n
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return &vector, nil
}

// coerceInt accepts the numeric representations a decoded JSON payload can
// carry. Fractional values are rejected rather than truncated.
func coerceInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		if f, err := strconv.ParseFloat(n.String(), 64); err == nil && f == math.Trunc(f) {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}
