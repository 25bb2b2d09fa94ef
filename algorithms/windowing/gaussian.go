package windowing

import (
	"math"
)

// Profile evaluates a bell curve at the given positions. It is usually backed
// by the curve-fitting code that owns the Gaussian model.
type Profile interface {
	Evaluate(positions []float64, amplitude, mean, sigma float64) []float64
}

// ProfileFunc adapts an ordinary function to the Profile interface
type ProfileFunc func(positions []float64, amplitude, mean, sigma float64) []float64

// Evaluate calls f
func (f ProfileFunc) Evaluate(positions []float64, amplitude, mean, sigma float64) []float64 {
	return f(positions, amplitude, mean, sigma)
}

// NormalProfile is the plain Gaussian amplitude*exp(-(x-mean)^2/(2*sigma^2))
var NormalProfile Profile = ProfileFunc(func(positions []float64, amplitude, mean, sigma float64) []float64 {
	out := make([]float64, len(positions))
	twoSigmaSq := 2 * sigma * sigma
	for i, x := range positions {
		d := x - mean
		out[i] = amplitude * math.Exp(-d*d/twoSigmaSq)
	}
	return out
})

// GaussianWindow samples a Profile at positions 0..N-1 with amplitude 1,
// mean N/2 and standard deviation (N-1)/5.
type GaussianWindow struct {
	size         int
	profile      Profile
	coefficients []float64
}

// NewGaussian creates a Gaussian window. An even size is bumped to the next
// odd value; a nil profile selects NormalProfile.
func NewGaussian(size int, profile Profile) *GaussianWindow {
	if profile == nil {
		profile = NormalProfile
	}
	g := &GaussianWindow{
		size:    OddLength(size),
		profile: profile,
	}
	g.generate()
	return g
}

func (g *GaussianWindow) generate() {
	positions := make([]float64, g.size)
	for i := range positions {
		positions[i] = float64(i)
	}

	n := float64(g.size)
	sigma := (n - 1) / 5
	if sigma == 0 {
		// single tap: any finite weight normalises to one
		g.coefficients = []float64{1}
		return
	}

	g.coefficients = g.profile.Evaluate(positions, 1, n/2, sigma)
}

// Apply applies the window to a signal (creates new array)
func (g *GaussianWindow) Apply(signal []float64) []float64 {
	return applyCoefficients(g.coefficients, signal)
}

// ApplyInPlace applies the window to a signal in-place
func (g *GaussianWindow) ApplyInPlace(signal []float64) error {
	return applyCoefficientsInPlace(g.coefficients, signal)
}

// GetCoefficients returns a copy of the window coefficients
func (g *GaussianWindow) GetCoefficients() []float64 {
	return copyCoefficients(g.coefficients)
}

// GetSize returns the window size
func (g *GaussianWindow) GetSize() int {
	return g.size
}

// GetType returns the window type
func (g *GaussianWindow) GetType() Mode {
	return Gaussian
}
