package filters

import (
	"github.com/mjibson/go-dsp/dsputils"
	"github.com/mjibson/go-dsp/fft"
)

// Convolve returns the full linear convolution of a and b, of length
// len(a)+len(b)-1, computed in the frequency domain.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(a) + len(b) - 1

	// zero-padding to the full length turns the circular convolution linear
	ac := dsputils.ZeroPad(dsputils.ToComplex(a), n)
	bc := dsputils.ZeroPad(dsputils.ToComplex(b), n)

	circular := fft.Convolve(ac, bc)

	out := make([]float64, n)
	for i := range out {
		out[i] = real(circular[i])
	}
	return out, nil
}
