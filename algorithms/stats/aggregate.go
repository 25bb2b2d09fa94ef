package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrNoValidArrays is returned when every array was excluded for holding Inf or NaN.
	ErrNoValidArrays = errors.New("stats: no valid arrays found")
	// ErrLengthMismatch is returned when arrays that should align differ in length.
	ErrLengthMismatch = errors.New("stats: array lengths differ")
)

// AverageArrays returns the elementwise mean and population standard
// deviation across arrays.
//
// An array whose total is infinite or NaN is dropped as a whole; there is no
// per-element filtering. All arrays must share one length.
func AverageArrays(arrays [][]float64) (mean, std []float64, err error) {
	if len(arrays) == 0 {
		return nil, nil, ErrEmptyInput
	}

	n := len(arrays[0])
	valid := make([][]float64, 0, len(arrays))
	for i, a := range arrays {
		if len(a) != n {
			return nil, nil, fmt.Errorf("%w: array %d has %d elements, want %d", ErrLengthMismatch, i, len(a), n)
		}
		total := floats.Sum(a)
		if math.IsNaN(total) || math.IsInf(total, 0) {
			continue
		}
		valid = append(valid, a)
	}
	if len(valid) == 0 {
		return nil, nil, ErrNoValidArrays
	}

	mean = make([]float64, n)
	std = make([]float64, n)
	column := make([]float64, len(valid))
	for j := 0; j < n; j++ {
		for i, a := range valid {
			column[i] = a[j]
		}
		mean[j], std[j] = stat.PopMeanStdDev(column, nil)
	}

	return mean, std, nil
}

// FindLongest returns the first of the longest arrays and its length
func FindLongest(arrays [][]float64) ([]float64, int) {
	var longest []float64
	length := 0
	for i, a := range arrays {
		if i == 0 || len(a) > length {
			longest, length = a, len(a)
		}
	}
	return longest, length
}
