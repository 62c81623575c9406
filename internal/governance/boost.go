package governance

import "fmt"

// Default eco-boost parameters, overridable via config.
const (
	DefaultBoostBase      = 1.75
	DefaultBoostThreshold = 0.7
)

// ComputeBoost returns the stake multiplier for an option given the
// externally supplied sentiment score in [0,1].
//
//	non-eco option            → exactly 1, always
//	eco, sentiment ≥ threshold → base
//	eco, sentiment < threshold → 1 + (base-1) * (sentiment/threshold)
//
// The boost degrades linearly to 1 as sentiment approaches 0 and
// reaches exactly base at the threshold. Pure and deterministic:
// sentiment is an input from the oracle collaborator, never generated
// here.
func ComputeBoost(isEco bool, sentiment, base, threshold float64) (float64, error) {
	if sentiment < 0 || sentiment > 1 {
		return 0, fmt.Errorf("%w: score %.4f outside [0,1]", ErrInvalidSentiment, sentiment)
	}
	if !isEco {
		return 1, nil
	}
	if sentiment >= threshold {
		return base, nil
	}
	return 1 + (base-1)*(sentiment/threshold), nil
}
