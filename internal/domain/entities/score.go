package entities

import (
	"fmt"
	"math"

	apperrors "github.com/keebscout/keebscout/pkg/errors"
)

// weightTolerance is how far a weight vector may drift from summing to 1.0
const weightTolerance = 1e-6

// Weights is the scoring weight vector. It is an immutable configuration
// value passed to the scoring engine at construction time, never shared
// mutable state.
type Weights struct {
	Ergonomics float64 `json:"ergonomics"`
	Reviews    float64 `json:"reviews"`
	Value      float64 `json:"value"`
	Build      float64 `json:"build"`
}

// DefaultWeights returns the standard keyboard weight vector.
func DefaultWeights() Weights {
	return Weights{
		Ergonomics: 0.40,
		Reviews:    0.20,
		Value:      0.20,
		Build:      0.20,
	}
}

// Validate returns an invalid weights error when the vector does not sum
// to 1.0 within tolerance.
func (w Weights) Validate() error {
	sum := w.Ergonomics + w.Reviews + w.Value + w.Build
	if math.Abs(sum-1.0) > weightTolerance {
		return apperrors.NewInvalidWeightsError(
			fmt.Sprintf("scoring weights must sum to 1.0, got %.6f", sum),
		)
	}
	return nil
}

// ScoreBreakdown holds the four sub-scores, the weighted composite, and
// the weight vector that produced it. It lives only as long as the
// pipeline run that computed it.
type ScoreBreakdown struct {
	Total      float64 `json:"total"`
	Ergonomics float64 `json:"ergonomics"`
	Reviews    float64 `json:"reviews"`
	Value      float64 `json:"value"`
	Build      float64 `json:"build"`
	Weights    Weights `json:"weights"`
}
