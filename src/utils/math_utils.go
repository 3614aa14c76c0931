package utils

import (
	"math"

	"github.com/username/eduplan/backend/src/logger"
)

// ComputeCAGR returns the compound annual growth rate that takes startValue
// to endValue over the given number of years.
// Returns 0 when the rate is undefined (years <= 0 or startValue <= 0);
// callers must treat 0 as "no growth assumption", not as a true rate.
// A negative endValue would need a complex root, which never occurs in real
// fee or price data, so it is logged and treated as undefined.
func ComputeCAGR(startValue, endValue, years float64) float64 {
	if years <= 0 || startValue <= 0 {
		return 0
	}
	if endValue < 0 {
		if logger.L != nil {
			logger.L.Warn("ComputeCAGR called with negative end value", "startValue", startValue, "endValue", endValue)
		}
		return 0
	}
	return math.Pow(endValue/startValue, 1/years) - 1
}

// ProjectValue compounds baseValue forward from baseYear to targetYear at the
// given annual rate. Backward projection is a no-op: targetYear at or before
// baseYear returns baseValue unchanged.
func ProjectValue(baseValue float64, baseYear, targetYear int, rate float64) float64 {
	if targetYear <= baseYear {
		return baseValue
	}
	return baseValue * math.Pow(1+rate, float64(targetYear-baseYear))
}

// SampleStdDev returns the sample standard deviation (n-1 denominator) of xs.
// Returns 0 for fewer than two values.
func SampleStdDev(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(n)
	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(n-1))
}

// RoundFloat rounds a float64 to a specified number of decimal places.
func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}
