package utils

import "math"

// FormatFloat rounds f to the given number of decimal places,
// NaN and Inf are returned unchanged.
func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow(10, float64(round))
	return math.Round(f*pow) / pow
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
