package pulse

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
)

// BaselineBins is the histogram resolution used when baseline-correcting
// traces before integration.
const BaselineBins = 1000

var (
	// ErrInvalidIndexes is returned when an index list has neither 3 nor 5 entries.
	ErrInvalidIndexes = errors.New("pulse: index list must have 3 or 5 entries")
	// ErrColumnRange is returned when a column index is outside the trace table.
	ErrColumnRange = errors.New("pulse: column index out of range")
	// ErrWindowRange is returned when a baseline window does not fit the trace.
	ErrWindowRange = errors.New("pulse: baseline window out of range")
	// ErrShortTrace is returned when a trace is too short to integrate.
	ErrShortTrace = errors.New("pulse: trace needs at least three samples")
	// ErrTimeAxis is returned when the time column is not strictly increasing.
	ErrTimeAxis = errors.New("pulse: time axis must be strictly increasing")
)

// Record locates the channels of one measurement inside a trace table
type Record struct {
	Transmitted int     `json:"transmitted"`
	Reference   int     `json:"reference"`
	Time        int     `json:"time"`
	Baseline    *Window `json:"baseline,omitempty"`
}

// ParseRecord reads an index list of the form
//
//	[transmitted, reference, time]
//	[transmitted, reference, time, baselineStart, baselineStop]
func ParseRecord(indexes []int) (Record, error) {
	switch len(indexes) {
	case 3:
		return Record{
			Transmitted: indexes[0],
			Reference:   indexes[1],
			Time:        indexes[2],
		}, nil
	case 5:
		return Record{
			Transmitted: indexes[0],
			Reference:   indexes[1],
			Time:        indexes[2],
			Baseline:    &Window{Start: indexes[3], Stop: indexes[4]},
		}, nil
	default:
		return Record{}, fmt.Errorf("%w: got %d", ErrInvalidIndexes, len(indexes))
	}
}

// Indexes returns the record in index-list form
func (r Record) Indexes() []int {
	if r.Baseline == nil {
		return []int{r.Transmitted, r.Reference, r.Time}
	}
	return []int{r.Transmitted, r.Reference, r.Time, r.Baseline.Start, r.Baseline.Stop}
}

func (r Record) checkColumns(cols int) error {
	for _, c := range []int{r.Transmitted, r.Reference, r.Time} {
		if c < 0 || c >= cols {
			return fmt.Errorf("%w: %d of %d columns", ErrColumnRange, c, cols)
		}
	}
	return nil
}

// column extracts column j and, when the record has a baseline window,
// subtracts the baseline measured over it.
func (r Record) column(trace mat.Matrix, j int) ([]float64, error) {
	col := mat.Col(nil, j, trace)
	if r.Baseline == nil {
		return col, nil
	}
	return SubtractBaseline(col, *r.Baseline, BaselineBins)
}

// Area integrates y over x with the composite Simpson's rule. x must be
// strictly increasing; it need not be uniform.
func Area(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("pulse: %d time samples for %d values", len(x), len(y))
	}
	if len(x) < 3 {
		return 0, fmt.Errorf("%w: got %d", ErrShortTrace, len(x))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return 0, fmt.Errorf("%w: x[%d]=%g after %g", ErrTimeAxis, i, x[i], x[i-1])
		}
	}
	return integrate.Simpsons(x, y), nil
}

// CorrectedPulseArea integrates the transmitted and reference columns of
// trace against its time column and returns
//
//	(area_transmitted - control) / area_reference
//
// When indexes carries a baseline window, both columns are baseline-corrected
// over it first. control may be nil; otherwise the absolute area of its
// transmitted column, corrected the same way, is the control term.
// A zero reference area yields ±Inf or NaN, not an error.
func CorrectedPulseArea(trace mat.Matrix, indexes []int, control mat.Matrix) (float64, error) {
	record, err := ParseRecord(indexes)
	if err != nil {
		return 0, err
	}

	areaT, areaR, err := record.areas(trace)
	if err != nil {
		return 0, err
	}

	controlArea := 0.0
	if control != nil {
		controlArea, err = record.controlArea(control)
		if err != nil {
			return 0, fmt.Errorf("control trace: %w", err)
		}
	}

	return Normalise(areaT, controlArea, areaR), nil
}

func (r Record) areas(trace mat.Matrix) (transmitted, reference float64, err error) {
	_, cols := trace.Dims()
	if err := r.checkColumns(cols); err != nil {
		return 0, 0, err
	}

	time := mat.Col(nil, r.Time, trace)

	tx, err := r.column(trace, r.Transmitted)
	if err != nil {
		return 0, 0, err
	}
	ref, err := r.column(trace, r.Reference)
	if err != nil {
		return 0, 0, err
	}

	if transmitted, err = Area(time, tx); err != nil {
		return 0, 0, err
	}
	if reference, err = Area(time, ref); err != nil {
		return 0, 0, err
	}
	return transmitted, reference, nil
}

func (r Record) controlArea(control mat.Matrix) (float64, error) {
	_, cols := control.Dims()
	if err := r.checkColumns(cols); err != nil {
		return 0, err
	}

	tx, err := r.column(control, r.Transmitted)
	if err != nil {
		return 0, err
	}
	area, err := Area(mat.Col(nil, r.Time, control), tx)
	if err != nil {
		return 0, err
	}
	return math.Abs(area), nil
}
