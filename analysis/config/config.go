package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/RyanBlaney/labtrace/algorithms/pulse"
	"github.com/RyanBlaney/labtrace/algorithms/windowing"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid analysis config")

type SmoothingConfig struct {
	WindowSize int            `json:"window_size"` // forced odd when the window is built
	Mode       windowing.Mode `json:"mode"`        // "uniform", "gaussian" or "blackman"
}

// FilterConfig describes a windowed-sinc kernel. Cut-offs are fractions of
// the sample rate; zero disables the stage. With both stages set the kernel
// is the band-pass convolution of the two.
type FilterConfig struct {
	Taps           int     `json:"taps"`
	LowPassCutoff  float64 `json:"low_pass_cutoff"`
	HighPassCutoff float64 `json:"high_pass_cutoff"`
}

type PulseAreaConfig struct {
	// [transmitted, reference, time] or
	// [transmitted, reference, time, baseline_start, baseline_stop]
	Indexes          []int   `json:"indexes"`
	CorrectionFactor float64 `json:"correction_factor"` // reference gain correction for optical depth
}

type AnalysisConfig struct {
	Smoothing SmoothingConfig `json:"smoothing"`
	Filter    FilterConfig    `json:"filter"`
	PulseArea PulseAreaConfig `json:"pulse_area"`
	LogLevel  string          `json:"log_level"`
}

func DefaultSmoothingConfig() SmoothingConfig {
	return SmoothingConfig{
		WindowSize: 100,
		Mode:       windowing.Uniform,
	}
}

func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		Taps:          101,
		LowPassCutoff: 0.1,
	}
}

func DefaultPulseAreaConfig() PulseAreaConfig {
	return PulseAreaConfig{
		Indexes:          []int{0, 1, 2},
		CorrectionFactor: 1,
	}
}

// DefaultAnalysisConfig returns sensible defaults for a single trace table
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Smoothing: DefaultSmoothingConfig(),
		Filter:    DefaultFilterConfig(),
		PulseArea: DefaultPulseAreaConfig(),
		LogLevel:  "info",
	}
}

// Parse decodes JSON over the defaults, so omitted fields keep their default
// values, and validates the result.
func Parse(data []byte) (*AnalysisConfig, error) {
	cfg := DefaultAnalysisConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses a JSON config file
func Load(path string) (*AnalysisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Validate checks the parameters that would otherwise fail deep inside a run
func (c *AnalysisConfig) Validate() error {
	if c.Smoothing.WindowSize < 1 {
		return fmt.Errorf("%w: smoothing window size %d", ErrInvalidConfig, c.Smoothing.WindowSize)
	}
	if c.Filter.Taps < 1 {
		return fmt.Errorf("%w: filter taps %d", ErrInvalidConfig, c.Filter.Taps)
	}
	for name, fc := range map[string]float64{
		"low_pass_cutoff":  c.Filter.LowPassCutoff,
		"high_pass_cutoff": c.Filter.HighPassCutoff,
	} {
		if fc < 0 || fc >= 0.5 {
			return fmt.Errorf("%w: %s %g outside [0, 0.5)", ErrInvalidConfig, name, fc)
		}
	}
	if _, err := pulse.ParseRecord(c.PulseArea.Indexes); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !(c.PulseArea.CorrectionFactor > 0) {
		return fmt.Errorf("%w: correction factor %g", ErrInvalidConfig, c.PulseArea.CorrectionFactor)
	}
	return nil
}
