package planner

import "math"

// DefaultGridScale is the on-screen pixel size of one grid unit (one
// meter) at 100% zoom.
const DefaultGridScale = 50.0

// ScreenToGrid converts a screen-space pixel coordinate to grid units,
// snapped to 0.1-unit resolution.
func ScreenToGrid(pixel, gridScale float64) float64 {
	if gridScale <= 0 {
		gridScale = DefaultGridScale
	}
	return math.Round(pixel/gridScale*10) / 10
}

// NormalizeRotation maps any degree value, including negatives, into
// [0,360). Mathematical modulo, not the sign-following remainder.
func NormalizeRotation(degrees int) int {
	r := degrees % 360
	if r < 0 {
		r += 360
	}
	return r
}
