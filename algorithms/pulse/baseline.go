package pulse

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/labtrace/algorithms/stats"
	"gonum.org/v1/gonum/floats"
)

// Window is the half-open range [Start, Stop) of a pulse-free stretch of trace
type Window struct {
	Start int `json:"start"`
	Stop  int `json:"stop"`
}

func (w Window) validate(n int) error {
	if w.Start < 0 || w.Stop > n || w.Start >= w.Stop {
		return fmt.Errorf("%w: [%d, %d) of %d samples", ErrWindowRange, w.Start, w.Stop, n)
	}
	return nil
}

// ZeroData lifts data by the magnitude of the baseline measured over w.
//
// The shift is always upward: data + |baseline|. A trace whose baseline is
// already positive is pushed further from zero rather than centred on it.
func ZeroData(data []float64, w Window) ([]float64, error) {
	if err := w.validate(len(data)); err != nil {
		return nil, err
	}

	baseline, err := stats.BinData(data[w.Start:w.Stop], stats.DefaultBins, false)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(data))
	copy(out, data)
	floats.AddConst(math.Abs(baseline), out)
	return out, nil
}

// SubtractBaseline removes the mode-bin baseline measured over w, using bins
// histogram bins, and returns a corrected copy of data.
func SubtractBaseline(data []float64, w Window, bins int) ([]float64, error) {
	if err := w.validate(len(data)); err != nil {
		return nil, err
	}

	baseline, err := stats.BinData(data[w.Start:w.Stop], bins, false)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(data))
	copy(out, data)
	floats.AddConst(-baseline, out)
	return out, nil
}
