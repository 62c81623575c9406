package service

import (
	"testing"
)

func TestComputeDistribution_Empty(t *testing.T) {
	dist := computeDistribution("p1", nil)

	if dist.Count != 0 {
		t.Errorf("count = %d, want 0", dist.Count)
	}
	if dist.Mean != 0 || dist.Median != 0 || dist.P90 != 0 {
		t.Errorf("empty distribution should be all zero, got %+v", dist)
	}
}

func TestComputeDistribution_SingleStake(t *testing.T) {
	dist := computeDistribution("p1", []float64{26.25})

	if dist.Count != 1 {
		t.Errorf("count = %d, want 1", dist.Count)
	}
	if dist.Mean != 26.25 || dist.Median != 26.25 {
		t.Errorf("mean/median = %.2f/%.2f, want 26.25/26.25", dist.Mean, dist.Median)
	}
	if dist.Min != 26.25 || dist.Max != 26.25 {
		t.Errorf("min/max = %.2f/%.2f, want 26.25/26.25", dist.Min, dist.Max)
	}
	if dist.StdDev != 0 {
		t.Errorf("stddev of one value = %.4f, want 0", dist.StdDev)
	}
}

func TestComputeDistribution_KnownValues(t *testing.T) {
	// Amounts 10, 20, 30, 40: mean 25, median 25.
	dist := computeDistribution("p1", []float64{10, 20, 30, 40})

	if dist.Count != 4 {
		t.Errorf("count = %d, want 4", dist.Count)
	}
	if !almostEqual(dist.Mean, 25, 1e-9) {
		t.Errorf("mean = %.4f, want 25", dist.Mean)
	}
	if !almostEqual(dist.Median, 25, 1e-9) {
		t.Errorf("median = %.4f, want 25", dist.Median)
	}
	if dist.Min != 10 || dist.Max != 40 {
		t.Errorf("min/max = %.2f/%.2f, want 10/40", dist.Min, dist.Max)
	}
	if dist.P90 < dist.Median || dist.P90 > dist.Max {
		t.Errorf("p90 = %.4f, want within [median, max]", dist.P90)
	}
}

func TestComputeDistribution_SkewedStakes(t *testing.T) {
	// One whale among small voters: median stays low while mean is pulled up.
	dist := computeDistribution("p1", []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 500})

	if dist.Median != 1 {
		t.Errorf("median = %.4f, want 1", dist.Median)
	}
	if dist.Mean <= dist.Median {
		t.Errorf("mean %.4f should exceed median %.4f for a whale-skewed set", dist.Mean, dist.Median)
	}
	if dist.Max != 500 {
		t.Errorf("max = %.2f, want 500", dist.Max)
	}
}

func almostEqual(a, b, epsilon float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}
