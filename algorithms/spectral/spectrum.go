package spectral

import (
	"math"
	"math/cmplx"
)

// Spectrum pairs each transform value with its bin frequency
type Spectrum struct {
	Frequencies []float64    `json:"frequencies"`
	Transform   []complex128 `json:"-"`
}

// Len returns the number of bins
func (s *Spectrum) Len() int {
	return len(s.Frequencies)
}

// Magnitudes returns |X[k]| for every bin
func (s *Spectrum) Magnitudes() []float64 {
	mags := make([]float64, len(s.Transform))
	for i, v := range s.Transform {
		mags[i] = cmplx.Abs(v)
	}
	return mags
}

// Phases returns arg(X[k]) in radians for every bin
func (s *Spectrum) Phases() []float64 {
	phases := make([]float64, len(s.Transform))
	for i, v := range s.Transform {
		phases[i] = cmplx.Phase(v)
	}
	return phases
}

// PeakFrequency returns the non-negative frequency whose bin has the largest
// magnitude, and that magnitude. The DC bin is skipped when skipDC is set.
func (s *Spectrum) PeakFrequency(skipDC bool) (freq, magnitude float64) {
	magnitude = math.Inf(-1)
	for i, f := range s.Frequencies {
		if f < 0 || (skipDC && f == 0) {
			continue
		}
		if m := cmplx.Abs(s.Transform[i]); m > magnitude {
			freq, magnitude = f, m
		}
	}
	if math.IsInf(magnitude, -1) {
		return 0, 0
	}
	return freq, magnitude
}
