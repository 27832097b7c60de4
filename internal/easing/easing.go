// Package easing provides the progress curves used by the lowerthird timeline.
//
// All functions map a normalized progress value in [0,1] to an eased value in
// [0,1] with fixed endpoints (0→0, 1→1) and are monotonic non-decreasing.
// Inputs outside the domain are clamped.
package easing

import (
	"github.com/tanema/gween/ease"
)

// OutQuart is a quartic ease-out: fast start, decelerating finish.
// Used for scale and opacity reveals that should feel like they arrive.
// OutQuart(t) = 1 - (1-t)^4.
func OutQuart(t float64) float64 {
	return float64(ease.OutQuart(float32(Clamp(t)), 0, 1, 1))
}

// InOutSine is a symmetric accelerate/decelerate curve.
// Used for the bar-width sweep. InOutSine(t) = (1 - cos(pi*t)) / 2.
func InOutSine(t float64) float64 {
	return float64(ease.InOutSine(float32(Clamp(t)), 0, 1, 1))
}

// Linear passes progress through unchanged, clamped to [0,1].
func Linear(t float64) float64 {
	return Clamp(t)
}

// Clamp limits t to the [0,1] domain.
func Clamp(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
