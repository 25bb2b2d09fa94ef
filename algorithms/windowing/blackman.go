package windowing

import (
	"github.com/mjibson/go-dsp/window"
)

// BlackmanWindow holds the symmetric Blackman window
//
//	w[n] = 0.42 - 0.5*cos(2*pi*n/(N-1)) + 0.08*cos(4*pi*n/(N-1))
//
// The coefficients are not normalised; CreateWindow and the filter designs
// normalise after combining them.
type BlackmanWindow struct {
	size         int
	coefficients []float64
}

// NewBlackman creates a Blackman window. An even size is bumped to the next odd value.
func NewBlackman(size int) *BlackmanWindow {
	b := &BlackmanWindow{size: OddLength(size)}
	b.generate()
	return b
}

func (b *BlackmanWindow) generate() {
	b.coefficients = window.Blackman(b.size)
}

// Apply applies the window to a signal (creates new array)
func (b *BlackmanWindow) Apply(signal []float64) []float64 {
	return applyCoefficients(b.coefficients, signal)
}

// ApplyInPlace applies the window to a signal in-place
func (b *BlackmanWindow) ApplyInPlace(signal []float64) error {
	return applyCoefficientsInPlace(b.coefficients, signal)
}

// GetCoefficients returns a copy of the window coefficients
func (b *BlackmanWindow) GetCoefficients() []float64 {
	return copyCoefficients(b.coefficients)
}

// GetSize returns the window size
func (b *BlackmanWindow) GetSize() int {
	return b.size
}

// GetType returns the window type
func (b *BlackmanWindow) GetType() Mode {
	return Blackman
}
