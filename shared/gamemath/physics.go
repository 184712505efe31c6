package gamemath

import "math"

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X, Y float64
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Sign returns -1 for negative values and 1 otherwise, so zero counts as positive.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Trunc drops the fractional part, rounding toward zero.
func Trunc(v float64) float64 {
	return math.Trunc(v)
}
