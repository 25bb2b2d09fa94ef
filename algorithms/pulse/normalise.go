package pulse

import (
	"fmt"
	"math"
)

// Normalise returns (value - control) / reference. Division by zero follows
// IEEE rules.
func Normalise(value, control, reference float64) float64 {
	return (value - control) / reference
}

// NormaliseSlice applies Normalise to every element of values
func NormaliseSlice(values []float64, control, reference float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = Normalise(v, control, reference)
	}
	return out
}

// OpticalDepth returns ln(reference*cFactor / transmitted) elementwise.
// cFactor corrects the reference channel gain; use 1 when none is needed.
func OpticalDepth(reference, transmitted []float64, cFactor float64) ([]float64, error) {
	if len(reference) != len(transmitted) {
		return nil, fmt.Errorf("pulse: %d reference samples for %d transmitted", len(reference), len(transmitted))
	}

	od := make([]float64, len(reference))
	for i := range od {
		od[i] = math.Log(reference[i] * cFactor / transmitted[i])
	}
	return od, nil
}
