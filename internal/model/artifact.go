// Package model loads the trained stress classifier artifact and exposes
// prediction and attribution over validated feature vectors. The artifact is
// loaded exactly once at process start and is immutable afterwards; a new
// artifact requires a process restart, never a runtime swap.
package model

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/campuswell/pulse/internal/schema"
)

// Stress risk labels, in ascending risk order. The classifier's probability
// output follows this order, as do tie-breaks (lower risk wins).
const (
	LabelLowRisk      = "Low Risk"
	LabelModerateRisk = "Moderate Risk"
	LabelHighRisk     = "High Risk"
)

// Labels lists the three risk labels in classifier output order.
var Labels = []string{LabelLowRisk, LabelModerateRisk, LabelHighRisk}

// ArtifactKind is the only classifier representation this service loads:
// a standardized multinomial logistic model exported by the training job.
const ArtifactKind = "multinomial_logit"

const importanceSumTolerance = 1e-6

// Artifact is an immutable trained-model bundle: the classifier coefficients,
// the per-feature scaler, and the global feature importances, all keyed to a
// fixed feature order. Safe for concurrent use without locking.
type Artifact struct {
	version    string
	features   []string
	mean       []float64
	std        []float64
	coef       [][]float64
	intercepts []float64
	importance map[string]float64
}

type artifactFile struct {
	Kind     string   `json:"kind"`
	Version  string   `json:"version"`
	Labels   []string `json:"labels"`
	Features []string `json:"features"`
	Scaler   struct {
		Mean []float64 `json:"mean"`
		Std  []float64 `json:"std"`
	} `json:"scaler"`
	Coefficients [][]float64        `json:"coefficients"`
	Intercepts   []float64          `json:"intercepts"`
	Importance   map[string]float64 `json:"feature_importance"`
}

// Decode reads and validates a model artifact from JSON.
func Decode(r io.Reader) (*Artifact, error) {
	var file artifactFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: decode artifact: %w", ErrModelUnavailable, err)
	}

	if err := validateArtifact(&file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}

	return &Artifact{
		version:    file.Version,
		features:   file.Features,
		mean:       file.Scaler.Mean,
		std:        file.Scaler.Std,
		coef:       file.Coefficients,
		intercepts: file.Intercepts,
		importance: file.Importance,
	}, nil
}

// LoadFile reads and validates a model artifact from the filesystem.
func LoadFile(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrModelUnavailable, path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Version returns the artifact's version string, if the training job set one.
func (a *Artifact) Version() string {
	return a.version
}

// Features returns the artifact's feature order.
func (a *Artifact) Features() []string {
	return a.features
}

func validateArtifact(file *artifactFile) error {
	if file.Kind != ArtifactKind {
		return fmt.Errorf("unsupported artifact kind %q", file.Kind)
	}

	if len(file.Labels) != len(Labels) {
		return fmt.Errorf("artifact has %d labels, want %d", len(file.Labels), len(Labels))
	}
	for i, label := range file.Labels {
		if label != Labels[i] {
			return fmt.Errorf("artifact label %d is %q, want %q", i, label, Labels[i])
		}
	}

	n := len(schema.Entries)
	if len(file.Features) != n {
		return fmt.Errorf("artifact has %d features, want %d", len(file.Features), n)
	}
	seen := make(map[string]bool, n)
	for _, name := range file.Features {
		if schema.Index(name) < 0 {
			return fmt.Errorf("artifact feature %q is not in the schema", name)
		}
		if seen[name] {
			return fmt.Errorf("artifact feature %q is duplicated", name)
		}
		seen[name] = true
	}

	if len(file.Scaler.Mean) != n || len(file.Scaler.Std) != n {
		return fmt.Errorf("scaler dimensions %d/%d do not match %d features",
			len(file.Scaler.Mean), len(file.Scaler.Std), n)
	}
	for i, std := range file.Scaler.Std {
		if std == 0 {
			return fmt.Errorf("scaler std for %s is zero", file.Features[i])
		}
	}

	if len(file.Coefficients) != len(Labels) {
		return fmt.Errorf("artifact has %d coefficient rows, want %d", len(file.Coefficients), len(Labels))
	}
	for i, row := range file.Coefficients {
		if len(row) != n {
			return fmt.Errorf("coefficient row %d has %d entries, want %d", i, len(row), n)
		}
	}
	if len(file.Intercepts) != len(Labels) {
		return fmt.Errorf("artifact has %d intercepts, want %d", len(file.Intercepts), len(Labels))
	}

	var sum float64
	for _, name := range file.Features {
		w, ok := file.Importance[name]
		if !ok {
			return fmt.Errorf("artifact importance is missing feature %q", name)
		}
		if w < 0 || w > 1 {
			return fmt.Errorf("artifact importance for %q is %v, want [0,1]", name, w)
		}
		sum += w
	}
	if math.Abs(sum-1) > importanceSumTolerance {
		return fmt.Errorf("artifact importances sum to %v, want 1", sum)
	}

	return nil
}
