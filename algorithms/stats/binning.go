package stats

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the bin count used for quick baseline estimates
const DefaultBins = 10

var (
	// ErrEmptyInput is returned when there is no data to work on.
	ErrEmptyInput = errors.New("stats: empty input")
	// ErrInvalidBins is returned for bin counts below one.
	ErrInvalidBins = errors.New("stats: bin count must be positive")
)

// BinData estimates the central value of data as the mean of its most
// populated histogram bin.
//
// bins equal-width bins span [min(data), max(data)]. With edge unset a sample
// x lands in bin i when edges[i-1] <= x < edges[i], so the maximum forms a
// bin of its own; with edge set the comparison is edges[i-1] < x <= edges[i]
// and the minimum is the one set apart. Ties between bins go to the lower one.
//
// Unlike the mean, the result follows the dominant level of the data: a pulse
// riding on a flat background does not drag the estimate off the background.
func BinData(data []float64, bins int, edge bool) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	if bins < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBins, bins)
	}

	edges := floats.Span(make([]float64, bins+1), floats.Min(data), floats.Max(data))

	index := make([]int, len(data))
	counts := make([]int, bins+2)
	for i, x := range data {
		index[i] = digitize(edges, x, edge)
		counts[index[i]]++
	}

	mode := 0
	for i, c := range counts {
		if c > counts[mode] {
			mode = i
		}
	}

	members := make([]float64, 0, counts[mode])
	for i, x := range data {
		if index[i] == mode {
			members = append(members, x)
		}
	}

	return stat.Mean(members, nil), nil
}

// digitize returns the number of edges <= x, or the number of edges < x when
// right is set.
func digitize(edges []float64, x float64, right bool) int {
	if right {
		return sort.SearchFloat64s(edges, x)
	}
	return sort.Search(len(edges), func(i int) bool { return edges[i] > x })
}
