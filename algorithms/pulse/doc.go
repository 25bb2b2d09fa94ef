// Package pulse turns raw transmitted, reference and control traces into
// calibrated pulse areas and optical depths.
//
// A trace table is a gonum matrix whose rows are samples and whose columns
// are channels; a Record names the transmitted, reference and time columns
// and, optionally, a pulse-free window used to estimate the baseline.
package pulse
