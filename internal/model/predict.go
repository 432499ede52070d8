package model

import (
	"fmt"
	"math"

	"github.com/campuswell/pulse/internal/schema"
)

// Prediction is one classification result: the chosen label, its probability,
// and the full distribution over all three labels.
type Prediction struct {
	StressLevel   string             `json:"stress_level"`
	Confidence    float64            `json:"confidence_score"`
	Probabilities map[string]float64 `json:"all_probabilities"`
}

// Predict classifies a validated feature vector. Each raw value is z-scaled
// with the artifact's stored mean/std, assembled in the artifact's feature
// order, and pushed through the classifier. The label is the argmax of the
// probability distribution; exact ties resolve to the lower-risk label.
func (a *Artifact) Predict(v *schema.FeatureVector) (*Prediction, error) {
	scaled := make([]float64, len(a.features))
	for i, name := range a.features {
		raw, ok := v.Value(name)
		if !ok {
			return nil, fmt.Errorf("%w: artifact feature %q missing from vector", ErrInference, name)
		}
		scaled[i] = (float64(raw) - a.mean[i]) / a.std[i]
	}

	probs := a.softmax(scaled)

	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}

	distribution := make(map[string]float64, len(Labels))
	for i, label := range Labels {
		distribution[label] = probs[i]
	}

	return &Prediction{
		StressLevel:   Labels[best],
		Confidence:    probs[best],
		Probabilities: distribution,
	}, nil
}

// softmax computes class probabilities from the linear logits, shifted by the
// max logit for numerical stability.
func (a *Artifact) softmax(scaled []float64) []float64 {
	logits := make([]float64, len(Labels))
	for k := range logits {
		logit := a.intercepts[k]
		for i, x := range scaled {
			logit += a.coef[k][i] * x
		}
		logits[k] = logit
	}

	maxLogit := logits[0]
	for _, l := range logits[1:] {
		if l > maxLogit {
			maxLogit = l
		}
	}

	probs := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		probs[i] = math.Exp(l - maxLogit)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}

	return probs
}
