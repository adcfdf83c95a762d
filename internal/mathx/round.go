// Package mathx provides the shared rounding and number-formatting helpers
// used by every calculation package. All engine outputs round through this
// package so golden-output tests stay stable.
package mathx

import "math"

// Round rounds v to the given number of decimal places using
// round-half-away-from-zero semantics (2.345 -> 2.35, -2.345 -> -2.35).
// This matches the display convention for INR amounts and kg quantities.
func Round(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

// Round2 rounds to 2 decimal places, the convention for kg CO2e and INR.
func Round2(v float64) float64 {
	return Round(v, 2)
}

// Round1 rounds to 1 decimal place, the convention for match scores.
func Round1(v float64) float64 {
	return Round(v, 1)
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
