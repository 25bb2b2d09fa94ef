package stats

import (
	"math"
)

// Zoom returns the indexes of the axis values nearest to low and high, for
// slicing out a region of interest. The first index wins on ties. The axis is
// expected to be monotonic but this is not checked.
func Zoom(axis []float64, low, high float64) (start, stop int, err error) {
	if len(axis) == 0 {
		return 0, 0, ErrEmptyInput
	}
	return nearest(axis, low), nearest(axis, high), nil
}

func nearest(axis []float64, v float64) int {
	best := 0
	bestDist := math.Abs(axis[0] - v)
	for i := 1; i < len(axis); i++ {
		if d := math.Abs(axis[i] - v); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
