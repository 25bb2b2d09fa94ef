package spectral

import (
	"errors"
	"fmt"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

var (
	// ErrShortTimeAxis is returned when fewer than two time samples are given.
	ErrShortTimeAxis = errors.New("spectral: time axis needs at least two samples")
	// ErrLengthMismatch is returned when time and amplitude differ in length.
	ErrLengthMismatch = errors.New("spectral: time and amplitude lengths differ")
	// ErrSampleInterval is returned when time[1]-time[0] is not positive.
	ErrSampleInterval = errors.New("spectral: sample interval must be positive")
)

// FFT provides Fast Fourier Transform functionality
type FFT struct {
	// No state needed
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the complex DFT of a real sequence using mjibson/go-dsp.
// Every length is supported, not only powers of two.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	return fft.FFTReal(x)
}

// ComputeInverse computes inverse FFT
func (f *FFT) ComputeInverse(x []complex128) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	return fft.IFFT(x)
}

// ComputeInverseReal computes inverse FFT and returns real part only
func (f *FFT) ComputeInverseReal(x []complex128) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	result := fft.IFFT(x)
	realResult := make([]float64, len(result))
	for i, val := range result {
		realResult[i] = real(val)
	}
	return realResult
}

// FFTFreq returns the frequency of each DFT bin for n samples spaced d apart,
// in the usual order: zero, the positive frequencies, then the negative ones.
//
//	[0, 1, ..., (n-1)/2, -n/2, ..., -1] / (n*d)
func FFTFreq(n int, d float64) []float64 {
	freqs := make([]float64, n)
	if n == 0 {
		return freqs
	}

	scale := 1 / (float64(n) * d)
	positive := (n-1)/2 + 1
	for i := 0; i < positive; i++ {
		freqs[i] = float64(i) * scale
	}
	for i := positive; i < n; i++ {
		freqs[i] = float64(i-n) * scale
	}
	return freqs
}

// CalcFFT transforms a uniformly sampled amplitude trace. The sampling
// interval is time[1]-time[0]. No window or zero padding is applied.
func CalcFFT(time, amplitude []float64) (*Spectrum, error) {
	dt, err := sampleInterval(time, amplitude)
	if err != nil {
		return nil, err
	}

	return &Spectrum{
		Frequencies: FFTFreq(len(time), dt),
		Transform:   NewFFT().Compute(amplitude),
	}, nil
}

// OneSided returns only the non-negative frequency bins of the transform,
// n/2+1 of them, computed with gonum's real FFT.
func OneSided(time, amplitude []float64) (*Spectrum, error) {
	dt, err := sampleInterval(time, amplitude)
	if err != nil {
		return nil, err
	}

	plan := fourier.NewFFT(len(amplitude))
	coeffs := plan.Coefficients(nil, amplitude)

	freqs := make([]float64, len(coeffs))
	for i := range freqs {
		freqs[i] = plan.Freq(i) / dt
	}

	return &Spectrum{
		Frequencies: freqs,
		Transform:   coeffs,
	}, nil
}

func sampleInterval(time, amplitude []float64) (float64, error) {
	if len(time) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrShortTimeAxis, len(time))
	}
	if len(time) != len(amplitude) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(time), len(amplitude))
	}
	dt := time[1] - time[0]
	if !(dt > 0) {
		return 0, fmt.Errorf("%w: %g", ErrSampleInterval, dt)
	}
	return dt, nil
}
