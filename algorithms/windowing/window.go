package windowing

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrUnknownMode is returned when a window mode name is not recognised.
	ErrUnknownMode = errors.New("windowing: unknown window mode")
	// ErrInvalidSize is returned for window lengths below one.
	ErrInvalidSize = errors.New("windowing: window size must be positive")
)

// Mode selects the weighting profile of a smoothing window
type Mode int

const (
	// Uniform weights every sample equally (boxcar / square window)
	Uniform Mode = iota
	// Gaussian follows a bell curve centred on the window
	Gaussian
	// Blackman is the three-term cosine-sum window
	Blackman
)

func (m Mode) String() string {
	switch m {
	case Uniform:
		return "uniform"
	case Gaussian:
		return "gaussian"
	case Blackman:
		return "blackman"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a mode name onto a Mode. "square" and "rectangular" are
// accepted as aliases for Uniform.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "uniform", "square", "rectangular", "boxcar":
		return Uniform, nil
	case "gaussian":
		return Gaussian, nil
	case "blackman":
		return Blackman, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// MarshalText implements encoding.TextMarshaler so modes read naturally in JSON configs
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Uniform, Gaussian, Blackman:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Window is implemented by every window type in this package
type Window interface {
	Apply(signal []float64) []float64
	ApplyInPlace(signal []float64) error
	GetCoefficients() []float64
	GetSize() int
	GetType() Mode
}

// OddLength returns n when it is odd and n+1 otherwise, so that every window
// and kernel has a unique centre tap.
func OddLength(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}

// New builds the raw (unnormalised) window for mode. The length is forced odd.
// profile is only consulted for Gaussian windows; nil selects NormalProfile.
func New(mode Mode, size int, profile Profile) (Window, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	switch mode {
	case Uniform:
		return NewRectangular(size), nil
	case Gaussian:
		return NewGaussian(size, profile), nil
	case Blackman:
		return NewBlackman(size), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
}

// CreateWindow returns a smoothing window of odd length whose weights sum to one.
func CreateWindow(size int, mode Mode, profile Profile) ([]float64, error) {
	w, err := New(mode, size, profile)
	if err != nil {
		return nil, err
	}
	return Normalize(w.GetCoefficients()), nil
}

// Normalize scales coeffs in place so they sum to one and returns them.
// A zero sum is not special-cased: the weights become Inf or NaN.
func Normalize(coeffs []float64) []float64 {
	floats.Scale(1/floats.Sum(coeffs), coeffs)
	return coeffs
}

func applyCoefficients(coeffs, signal []float64) []float64 {
	if len(signal) != len(coeffs) {
		return nil
	}
	windowed := make([]float64, len(coeffs))
	floats.MulTo(windowed, signal, coeffs)
	return windowed
}

func applyCoefficientsInPlace(coeffs, signal []float64) error {
	if len(signal) != len(coeffs) {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), len(coeffs))
	}
	floats.Mul(signal, coeffs)
	return nil
}

func copyCoefficients(coeffs []float64) []float64 {
	out := make([]float64, len(coeffs))
	copy(out, coeffs)
	return out
}
