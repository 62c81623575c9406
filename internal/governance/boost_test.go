package governance

import (
	"errors"
	"testing"
)

func TestComputeBoost_NonEcoAlwaysOne(t *testing.T) {
	// Non-eco options never receive a boost, whatever the sentiment.
	for _, sentiment := range []float64{0, 0.1, 0.5, 0.69, 0.7, 0.71, 1.0} {
		got, err := ComputeBoost(false, sentiment, 1.75, 0.7)
		if err != nil {
			t.Fatalf("ComputeBoost(false, %.2f) error: %v", sentiment, err)
		}
		if got != 1.0 {
			t.Errorf("ComputeBoost(false, %.2f) = %.4f, want exactly 1", sentiment, got)
		}
	}
}

func TestComputeBoost_EcoAboveThreshold(t *testing.T) {
	tests := []struct {
		name      string
		sentiment float64
	}{
		{"at threshold", 0.7},
		{"just above threshold", 0.71},
		{"high sentiment", 0.95},
		{"max sentiment", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBoost(true, tt.sentiment, 1.75, 0.7)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != 1.75 {
				t.Errorf("ComputeBoost(true, %.2f) = %.4f, want 1.75", tt.sentiment, got)
			}
		})
	}
}

func TestComputeBoost_EcoBelowThresholdScalesLinearly(t *testing.T) {
	tests := []struct {
		name      string
		sentiment float64
		want      float64
	}{
		{"zero sentiment degrades to 1", 0.0, 1.0},
		{"half threshold", 0.35, 1.375},
		{"near threshold", 0.63, 1.675},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBoost(true, tt.sentiment, 1.75, 0.7)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("ComputeBoost(true, %.2f) = %.6f, want %.6f", tt.sentiment, got, tt.want)
			}
		})
	}
}

func TestComputeBoost_Monotonic(t *testing.T) {
	// Non-decreasing in sentiment for a fixed eco option.
	prev := 0.0
	for s := 0.0; s <= 1.0; s += 0.01 {
		got, err := ComputeBoost(true, s, 1.75, 0.7)
		if err != nil {
			t.Fatalf("ComputeBoost(true, %.2f) error: %v", s, err)
		}
		if got < prev {
			t.Fatalf("boost decreased: f(%.2f) = %.6f < previous %.6f", s, got, prev)
		}
		prev = got
	}
}

func TestComputeBoost_InvalidSentiment(t *testing.T) {
	for _, sentiment := range []float64{-0.01, -1, 1.01, 2} {
		_, err := ComputeBoost(true, sentiment, 1.75, 0.7)
		if !errors.Is(err, ErrInvalidSentiment) {
			t.Errorf("ComputeBoost(true, %.2f) error = %v, want ErrInvalidSentiment", sentiment, err)
		}
	}
}

func TestComputeBoost_Deterministic(t *testing.T) {
	first, err := ComputeBoost(true, 0.42, 1.75, 0.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := ComputeBoost(true, 0.42, 1.75, 0.7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != first {
			t.Fatalf("call %d returned %.10f, first call returned %.10f", i, got, first)
		}
	}
}

func almostEqual(a, b, epsilon float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}
