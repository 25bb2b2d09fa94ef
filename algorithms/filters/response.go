package filters

import (
	"math"
	"math/cmplx"
)

// Response computes the magnitude (linear) and phase (radians) of an FIR
// kernel at frequency f, expressed in cycles per sample.
//
// The frequency response is
// H(e^jw) = sum_k h[k] * e^(-j*w*k), w = 2*pi*f
func Response(kernel []float64, f float64) (magnitude, phase float64) {
	w := 2 * math.Pi * f

	var h complex128
	for k, c := range kernel {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return cmplx.Abs(h), cmplx.Phase(h)
}

// MagnitudeResponse evaluates Response at every frequency in freqs
func MagnitudeResponse(kernel []float64, freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i], _ = Response(kernel, f)
	}
	return out
}
