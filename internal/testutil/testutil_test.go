package testutil

import "testing"

func TestRequireNearlyEqualWithinTolerance(t *testing.T) {
	RequireNearlyEqual(t, 1.0, 1.0+1e-10, 1e-9)
	RequireNearlyEqual(t, -2.5, -2.5, 0)
	RequireSliceNearlyEqual(t, []float64{0.1 + 0.2, 1}, []float64{0.3, 1}, 1e-15)
	RequireSliceNearlyEqual(t, nil, []float64{}, 0)
}

func TestSignalBuilders(t *testing.T) {
	s := Sine(25, 100, 2, 4)
	RequireSliceNearlyEqual(t, s, []float64{0, 2, 0, -2}, 1e-12)

	RequireSliceNearlyEqual(t, Impulse(4, 2), []float64{0, 0, 1, 0}, 0)
	RequireSliceNearlyEqual(t, Impulse(3, 5), []float64{0, 0, 0}, 0)
	RequireSliceNearlyEqual(t, DC(0.5, 3), []float64{0.5, 0.5, 0.5}, 0)
	RequireSliceNearlyEqual(t, TimeAxis(1, 0.25, 3), []float64{1, 1.25, 1.5}, 0)

	RequireFinite(t, s)
}
