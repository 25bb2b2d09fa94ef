package filters

import (
	"math"

	"github.com/RyanBlaney/labtrace/algorithms/windowing"
)

// Sinc is the normalised sinc function sin(pi*x)/(pi*x), with Sinc(0) = 1
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// SincFilter samples sinc(2*fc*(n-(N-1)/2)) for n = 0..N-1.
// An even size is bumped to the next odd value so the peak sits on a tap.
// fc is a fraction of the sample rate and should lie in (0, 0.5).
func SincFilter(size int, fc float64) ([]float64, error) {
	n, err := taps(size)
	if err != nil {
		return nil, err
	}

	centre := float64(n-1) / 2
	out := make([]float64, n)
	for i := range out {
		out[i] = Sinc(2 * fc * (float64(i) - centre))
	}
	return out, nil
}

func taps(size int) (int, error) {
	if size < 1 {
		return 0, ErrInvalidTaps
	}
	return windowing.OddLength(size), nil
}
