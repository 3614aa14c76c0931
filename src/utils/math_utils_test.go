package utils

import (
	"math"
	"testing"
)

func TestComputeCAGR(t *testing.T) {
	tests := []struct {
		name       string
		startValue float64
		endValue   float64
		years      float64
		expected   float64
	}{
		{"known growth", 35080, 46500, 4, 0.0729},
		{"no change", 1000, 1000, 5, 0},
		{"decline", 200, 100, 1, -0.5},
		{"zero years undefined", 100, 200, 0, 0},
		{"zero start undefined", 0, 200, 3, 0},
		{"negative end undefined", 100, -50, 3, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeCAGR(tc.startValue, tc.endValue, tc.years)
			if math.Abs(got-tc.expected) > 0.001 {
				t.Errorf("ComputeCAGR(%v, %v, %v) = %v, want %v",
					tc.startValue, tc.endValue, tc.years, got, tc.expected)
			}
		})
	}
}

func TestComputeCAGRRoundTrip(t *testing.T) {
	start, rate, years := 35080.0, 0.0725, 4.0
	end := start * math.Pow(1+rate, years)
	got := ComputeCAGR(start, end, years)
	if math.Abs(got-rate) > 1e-9 {
		t.Errorf("round-trip CAGR = %v, want %v", got, rate)
	}
}

func TestProjectValue(t *testing.T) {
	got := ProjectValue(35080, 2021, 2027, 0.0725)
	want := 35080 * math.Pow(1.0725, 6)
	if math.Abs(got-want) > 0.01 {
		t.Errorf("ProjectValue = %v, want %v", got, want)
	}
}

func TestProjectValueBackwardIsNoOp(t *testing.T) {
	if got := ProjectValue(1000, 2025, 2020, 0.05); got != 1000 {
		t.Errorf("backward projection = %v, want unchanged 1000", got)
	}
	if got := ProjectValue(1000, 2025, 2025, 0.05); got != 1000 {
		t.Errorf("same-year projection = %v, want unchanged 1000", got)
	}
}

func TestSampleStdDev(t *testing.T) {
	// Known sample: stdev of {2,4,4,4,5,5,7,9} with n-1 denominator.
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	got := SampleStdDev(xs)
	want := 2.138089935
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("SampleStdDev = %v, want %v", got, want)
	}
}

func TestSampleStdDevDegenerate(t *testing.T) {
	if got := SampleStdDev(nil); got != 0 {
		t.Errorf("SampleStdDev(nil) = %v, want 0", got)
	}
	if got := SampleStdDev([]float64{5}); got != 0 {
		t.Errorf("SampleStdDev(single) = %v, want 0", got)
	}
}
