package filters

import (
	"errors"
	"fmt"
	"math"

	"github.com/RyanBlaney/labtrace/algorithms/windowing"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidTaps is returned for filter lengths below one.
	ErrInvalidTaps = errors.New("filters: filter length must be positive")
	// ErrEmptyInput is returned when a signal or kernel has no samples.
	ErrEmptyInput = errors.New("filters: empty input")
	// ErrEvenKernel is returned when a smoothing kernel has no centre tap.
	ErrEvenKernel = errors.New("filters: kernel length must be odd")
)

// Windowed-sinc FIR design.
//
// Cut-off frequencies are fractions of the sample rate. Values outside
// (0, 0.5) are not rejected: they produce aliased or degenerate kernels whose
// normalisation is ill-conditioned, and it is up to the caller to avoid them.

// LowPass returns a Blackman-windowed sinc low-pass kernel normalised to unit DC gain.
func LowPass(size int, fc float64) ([]float64, error) {
	kernel, err := SincFilter(size, fc)
	if err != nil {
		return nil, err
	}

	floats.Mul(kernel, windowing.NewBlackman(size).GetCoefficients())
	return windowing.Normalize(kernel), nil
}

// HighPass returns the spectral inversion of LowPass: every weight is negated
// and one is added back at the centre tap.
func HighPass(size int, fc float64) ([]float64, error) {
	kernel, err := LowPass(size, fc)
	if err != nil {
		return nil, err
	}

	floats.Scale(-1, kernel)
	kernel[(len(kernel)-1)/2] += 1
	return kernel, nil
}

// BandPass convolves LowPass(size, low) with HighPass(size, high) and rescales
// the result to sum to one. The kernel has 2N-1 taps for the odd length N.
//
// The high-pass stage has zero DC gain, so the sum used for rescaling is
// close to zero and the resulting weights are large; the shape is what matters.
func BandPass(size int, low, high float64) ([]float64, error) {
	lp, err := LowPass(size, low)
	if err != nil {
		return nil, err
	}
	hp, err := HighPass(size, high)
	if err != nil {
		return nil, err
	}

	kernel, err := Convolve(lp, hp)
	if err != nil {
		return nil, fmt.Errorf("band-pass convolution: %w", err)
	}
	return windowing.Normalize(kernel), nil
}

// Points returns the number of taps needed for a transition band of the given
// width (fraction of the sample rate), ceil(4/band).
func Points(band float64) int {
	return int(math.Ceil(4 / band))
}

// Ratio expresses a cut-off frequency as a fraction of the sample rate
func Ratio(sampleRate, fc float64) float64 {
	return fc / sampleRate
}

// SampleRate derives the sample rate from the first two entries of a uniform time axis
func SampleRate(time []float64) (float64, error) {
	if len(time) < 2 {
		return 0, fmt.Errorf("time axis needs at least two samples, got %d", len(time))
	}
	dt := time[1] - time[0]
	if dt <= 0 {
		return 0, fmt.Errorf("time axis must be increasing, got step %g", dt)
	}
	return 1 / dt, nil
}
