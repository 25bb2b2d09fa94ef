package filters

import (
	"fmt"

	"github.com/RyanBlaney/labtrace/algorithms/windowing"
	"github.com/RyanBlaney/labtrace/logging"
)

// Smoother convolves signals with a normalised window or a designed kernel.
//
// Before convolving, the signal is wrapped: its second half is prepended and
// its first half appended. Convolution then sees plausible data past both
// ends instead of zeros, and the result is cropped back to the input length
// with the kernel's centre tap aligned on each input sample.
type Smoother struct {
	profile windowing.Profile
	logger  logging.Logger
}

// NewSmoother creates a smoother. profile backs Gaussian windows; nil selects
// windowing.NormalProfile.
func NewSmoother(profile windowing.Profile) *Smoother {
	return NewSmootherWithLogger(profile, logging.WithFields(logging.Fields{
		"component": "smoother",
	}))
}

// NewSmootherWithLogger creates a smoother that logs through logger
func NewSmootherWithLogger(profile windowing.Profile, logger logging.Logger) *Smoother {
	if logger == nil {
		logger = &logging.NoOpLogger{}
	}
	return &Smoother{
		profile: profile,
		logger:  logger,
	}
}

// SmoothData smooths signal with a window of the given mode. size is forced odd.
func (s *Smoother) SmoothData(signal []float64, size int, mode windowing.Mode) ([]float64, error) {
	logger := s.logger.WithFields(logging.Fields{
		"function":    "SmoothData",
		"window_size": size,
		"mode":        mode.String(),
	})

	window, err := windowing.CreateWindow(windowing.OddLength(size), mode, s.profile)
	if err != nil {
		logger.Error(err, "Failed to create smoothing window")
		return nil, err
	}

	return s.smooth(logger, signal, window)
}

// SmoothWith smooths signal with a caller-supplied kernel of odd length,
// for example one built by LowPass or BandPass.
func (s *Smoother) SmoothWith(signal, kernel []float64) ([]float64, error) {
	logger := s.logger.WithFields(logging.Fields{
		"function":    "SmoothWith",
		"kernel_size": len(kernel),
	})
	return s.smooth(logger, signal, kernel)
}

func (s *Smoother) smooth(logger logging.Logger, signal, kernel []float64) ([]float64, error) {
	if len(signal) == 0 || len(kernel) == 0 {
		logger.Error(ErrEmptyInput, "Nothing to smooth")
		return nil, ErrEmptyInput
	}
	if len(kernel)%2 == 0 {
		err := fmt.Errorf("%w: %d", ErrEvenKernel, len(kernel))
		logger.Error(err, "Kernel has no centre tap")
		return nil, err
	}

	padded, lead := wrapPad(signal)

	full, err := Convolve(kernel, padded)
	if err != nil {
		logger.Error(err, "Convolution failed")
		return nil, err
	}

	// skip the prepended samples and the kernel half-width
	offset := lead + len(kernel)/2
	out := make([]float64, len(signal))
	copy(out, full[offset:offset+len(signal)])

	logger.Debug("Signal smoothed", logging.Fields{
		"samples": len(signal),
		"padding": len(padded) - len(signal),
	})

	return out, nil
}

// wrapPad returns signal[n/2:] ++ signal ++ signal[:n/2] and the number of
// samples placed in front of the original signal.
func wrapPad(signal []float64) ([]float64, int) {
	n := len(signal)
	half := n / 2

	padded := make([]float64, 0, 2*n)
	padded = append(padded, signal[half:]...)
	padded = append(padded, signal...)
	padded = append(padded, signal[:half]...)

	return padded, n - half
}
