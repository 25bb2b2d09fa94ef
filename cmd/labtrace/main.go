package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/RyanBlaney/labtrace/algorithms/windowing"
	"github.com/RyanBlaney/labtrace/analysis"
	"github.com/RyanBlaney/labtrace/analysis/config"
	"github.com/RyanBlaney/labtrace/logging"
	"gonum.org/v1/gonum/mat"
)

const version = "0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logging.Error(err, "labtrace failed")
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("labtrace", flag.ContinueOnError)
	fs.SetOutput(stderr)

	filePath := fs.String("file", "", "Path to CSV trace table (required)")
	controlPath := fs.String("control", "", "Path to CSV control trace table")
	configPath := fs.String("config", "", "Path to JSON analysis config")
	indexes := fs.String("indexes", "", "Column indexes overriding the config: t,r,time[,baseline_start,baseline_stop]")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	pretty := fs.Bool("pretty", false, "Indent the JSON report")
	showVersion := fs.Bool("version", false, "Print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `labtrace - pulse area, optical depth and spectra of sampled traces

Usage:
  labtrace -file trace.csv
  labtrace -file trace.csv -control control.csv -indexes 0,1,2,0,100
  labtrace -file trace.csv -config analysis.json -pretty

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "labtrace %s\n", version)
		return nil
	}
	if *filePath == "" {
		fs.Usage()
		return fmt.Errorf("-file is required")
	}

	cfg := config.DefaultAnalysisConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *indexes != "" {
		idx, err := parseIndexes(*indexes)
		if err != nil {
			return err
		}
		cfg.PulseArea.Indexes = idx
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := logging.NewDefaultLoggerWithOutput(stderr)
	logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	logging.SetGlobalLogger(logger)

	trace, err := loadTable(*filePath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", *filePath, err)
	}
	rows, cols := trace.Dims()
	logger.Debug("Loaded trace table", logging.Fields{"file": *filePath, "rows": rows, "columns": cols})

	var control mat.Matrix
	if *controlPath != "" {
		c, err := loadTable(*controlPath)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", *controlPath, err)
		}
		control = c
	}

	analyzer, err := analysis.NewAnalyzerWithLogger(cfg, windowing.NormalProfile,
		logger.WithFields(logging.Fields{"component": "analyzer"}))
	if err != nil {
		return err
	}

	report, err := analyzer.Analyze(trace, control)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}
