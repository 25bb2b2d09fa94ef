package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/RyanBlaney/labtrace/algorithms/windowing"
)

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultAnalysisConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`{
		"smoothing": {"window_size": 21, "mode": "gaussian"},
		"pulse_area": {"indexes": [1, 2, 0, 0, 50]}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Smoothing.WindowSize != 21 || cfg.Smoothing.Mode != windowing.Gaussian {
		t.Errorf("smoothing = %+v", cfg.Smoothing)
	}
	if len(cfg.PulseArea.Indexes) != 5 || cfg.PulseArea.Indexes[4] != 50 {
		t.Errorf("indexes = %v", cfg.PulseArea.Indexes)
	}
	// untouched sections keep their defaults
	if cfg.Filter != DefaultFilterConfig() || cfg.PulseArea.CorrectionFactor != 1 {
		t.Errorf("defaults lost: %+v %+v", cfg.Filter, cfg.PulseArea)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown mode":   `{"smoothing": {"mode": "hann"}}`,
		"four indexes":   `{"pulse_area": {"indexes": [0, 1, 2, 3]}}`,
		"cutoff":         `{"filter": {"low_pass_cutoff": 0.7}}`,
		"taps":           `{"filter": {"taps": 0}}`,
		"window size":    `{"smoothing": {"window_size": -1}}`,
		"correction":     `{"pulse_area": {"correction_factor": 0}}`,
		"malformed json": `{"smoothing": `,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(body)); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	if _, err := Parse([]byte(`{"filter": {"taps": 0}}`)); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err=%v, want ErrInvalidConfig", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.json")
	if err := os.WriteFile(path, []byte(`{"log_level": "debug"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
