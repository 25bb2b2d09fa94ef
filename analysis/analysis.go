// Package analysis runs the signal-processing building blocks under one
// configuration: smoothing and band-limiting, spectra, pulse areas, optical
// depth and averaging of repeated captures.
package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/RyanBlaney/labtrace/algorithms/filters"
	"github.com/RyanBlaney/labtrace/algorithms/pulse"
	"github.com/RyanBlaney/labtrace/algorithms/spectral"
	"github.com/RyanBlaney/labtrace/algorithms/stats"
	"github.com/RyanBlaney/labtrace/algorithms/windowing"
	"github.com/RyanBlaney/labtrace/analysis/config"
	"github.com/RyanBlaney/labtrace/logging"
	"gonum.org/v1/gonum/mat"
)

// ErrNoFilter is returned by BandLimit when neither filter stage is enabled
var ErrNoFilter = errors.New("analysis: no filter stage configured")

// Analyzer applies the configured processing chain
type Analyzer struct {
	config   *config.AnalysisConfig
	smoother *filters.Smoother
	logger   logging.Logger
}

// Report summarises one trace table
type Report struct {
	PulseArea     float64  `json:"pulse_area"`
	OpticalDepth  *float64 `json:"optical_depth,omitempty"` // omitted when the area ratio is not positive
	PeakFrequency float64  `json:"peak_frequency"`          // of the smoothed transmitted channel
	PeakMagnitude float64  `json:"peak_magnitude"`
	Samples       int      `json:"samples"`
}

// NewAnalyzer creates an analyzer. A nil cfg selects the defaults; profile
// backs Gaussian smoothing windows and may be nil.
func NewAnalyzer(cfg *config.AnalysisConfig, profile windowing.Profile) (*Analyzer, error) {
	return NewAnalyzerWithLogger(cfg, profile, logging.WithFields(logging.Fields{
		"component": "analyzer",
	}))
}

// NewAnalyzerWithLogger creates an analyzer that logs through logger
func NewAnalyzerWithLogger(cfg *config.AnalysisConfig, profile windowing.Profile, logger logging.Logger) (*Analyzer, error) {
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = &logging.NoOpLogger{}
	}

	return &Analyzer{
		config:   cfg,
		smoother: filters.NewSmootherWithLogger(profile, logger.WithFields(logging.Fields{"stage": "smoothing"})),
		logger:   logger,
	}, nil
}

// Config returns the configuration in use
func (a *Analyzer) Config() *config.AnalysisConfig {
	return a.config
}

// Smooth applies the configured smoothing window
func (a *Analyzer) Smooth(signal []float64) ([]float64, error) {
	return a.smoother.SmoothData(signal, a.config.Smoothing.WindowSize, a.config.Smoothing.Mode)
}

// Kernel designs the configured FIR kernel
func (a *Analyzer) Kernel() ([]float64, error) {
	fc := a.config.Filter
	switch {
	case fc.LowPassCutoff > 0 && fc.HighPassCutoff > 0:
		return filters.BandPass(fc.Taps, fc.LowPassCutoff, fc.HighPassCutoff)
	case fc.LowPassCutoff > 0:
		return filters.LowPass(fc.Taps, fc.LowPassCutoff)
	case fc.HighPassCutoff > 0:
		return filters.HighPass(fc.Taps, fc.HighPassCutoff)
	default:
		return nil, ErrNoFilter
	}
}

// BandLimit filters signal with the configured kernel
func (a *Analyzer) BandLimit(signal []float64) ([]float64, error) {
	kernel, err := a.Kernel()
	if err != nil {
		a.logger.Error(err, "Failed to design filter kernel", logging.Fields{
			"taps": a.config.Filter.Taps,
		})
		return nil, err
	}
	return a.smoother.SmoothWith(signal, kernel)
}

// Spectrum computes the DFT of amplitude sampled on time
func (a *Analyzer) Spectrum(time, amplitude []float64) (*spectral.Spectrum, error) {
	spec, err := spectral.CalcFFT(time, amplitude)
	if err != nil {
		a.logger.Error(err, "Failed to compute spectrum")
		return nil, err
	}
	return spec, nil
}

// PulseArea computes the corrected, normalised pulse area of trace using the
// configured column indexes. control may be nil.
func (a *Analyzer) PulseArea(trace, control mat.Matrix) (float64, error) {
	logger := a.logger.WithFields(logging.Fields{
		"function": "PulseArea",
		"indexes":  a.config.PulseArea.Indexes,
	})

	area, err := pulse.CorrectedPulseArea(trace, a.config.PulseArea.Indexes, control)
	if err != nil {
		logger.Error(err, "Failed to compute pulse area")
		return 0, err
	}

	if math.IsNaN(area) || math.IsInf(area, 0) {
		logger.Warn("Pulse area is not finite; check the reference channel", logging.Fields{"area": area})
	} else {
		logger.Debug("Pulse area computed", logging.Fields{"area": area})
	}
	return area, nil
}

// OpticalDepth computes ln(reference*c/transmitted) with the configured correction factor
func (a *Analyzer) OpticalDepth(reference, transmitted []float64) ([]float64, error) {
	return pulse.OpticalDepth(reference, transmitted, a.config.PulseArea.CorrectionFactor)
}

// Average combines repeated captures, skipping any containing Inf or NaN
func (a *Analyzer) Average(arrays [][]float64) (mean, std []float64, err error) {
	mean, std, err = stats.AverageArrays(arrays)
	if err != nil {
		a.logger.Error(err, "Failed to average arrays", logging.Fields{"arrays": len(arrays)})
		return nil, nil, err
	}
	return mean, std, nil
}

// Analyze runs the full chain on a trace table: the pulse area and the
// optical depth derived from it, then the spectral peak of the smoothed
// transmitted channel.
func (a *Analyzer) Analyze(trace, control mat.Matrix) (*Report, error) {
	record, err := pulse.ParseRecord(a.config.PulseArea.Indexes)
	if err != nil {
		return nil, err
	}

	area, err := a.PulseArea(trace, control)
	if err != nil {
		return nil, err
	}

	rows, _ := trace.Dims()
	report := &Report{
		PulseArea: area,
		Samples:   rows,
	}

	// the normalised area is a transmission ratio, so OD = ln(c / ratio)
	od, err := a.OpticalDepth([]float64{1}, []float64{area})
	if err == nil && !math.IsNaN(od[0]) && !math.IsInf(od[0], 0) {
		report.OpticalDepth = &od[0]
	}

	time := mat.Col(nil, record.Time, trace)
	smoothed, err := a.Smooth(mat.Col(nil, record.Transmitted, trace))
	if err != nil {
		return nil, fmt.Errorf("smoothing transmitted channel: %w", err)
	}
	spec, err := a.Spectrum(time, smoothed)
	if err != nil {
		return nil, fmt.Errorf("spectrum of transmitted channel: %w", err)
	}
	report.PeakFrequency, report.PeakMagnitude = spec.PeakFrequency(true)

	a.logger.Info("Trace analysed", logging.Fields{
		"samples":        rows,
		"pulse_area":     area,
		"peak_frequency": report.PeakFrequency,
	})

	return report, nil
}
