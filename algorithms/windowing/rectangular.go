package windowing

import (
	"github.com/mjibson/go-dsp/window"
)

// Rectangular represents a rectangular (boxcar) window: every weight is one
type Rectangular struct {
	size         int
	coefficients []float64
}

// NewRectangular creates a rectangular window. An even size is bumped to the next odd value.
func NewRectangular(size int) *Rectangular {
	r := &Rectangular{size: OddLength(size)}
	r.generate()
	return r
}

func (r *Rectangular) generate() {
	r.coefficients = window.Rectangular(r.size)
}

// Apply applies the window to a signal (creates new array)
func (r *Rectangular) Apply(signal []float64) []float64 {
	if len(signal) != r.size {
		return nil
	}
	// For rectangular window, just return a copy
	return copyCoefficients(signal)
}

// ApplyInPlace applies the window to a signal in-place
func (r *Rectangular) ApplyInPlace(signal []float64) error {
	// signal is unchanged, only the length is checked
	return applyCoefficientsInPlace(r.coefficients, signal)
}

// GetCoefficients returns a copy of the window coefficients
func (r *Rectangular) GetCoefficients() []float64 {
	return copyCoefficients(r.coefficients)
}

// GetSize returns the window size
func (r *Rectangular) GetSize() int {
	return r.size
}

// GetType returns the window type
func (r *Rectangular) GetType() Mode {
	return Uniform
}
