package geometry

import "math"

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ClampAngle limits delta to [-limit, limit]. Units are whatever the caller uses.
func ClampAngle(delta, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, delta))
}
