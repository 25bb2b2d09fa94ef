package filters

import (
	"errors"
	"testing"

	"github.com/RyanBlaney/labtrace/algorithms/windowing"
	"github.com/RyanBlaney/labtrace/internal/testutil"
	"github.com/RyanBlaney/labtrace/logging"
)

func newTestSmoother() *Smoother {
	return NewSmootherWithLogger(nil, &logging.NoOpLogger{})
}

func TestConvolveFull(t *testing.T) {
	got, err := Convolve([]float64{1, 2, 3}, []float64{0, 1, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 1, 2.5, 4, 1.5}, 1e-9)

	if _, err := Convolve(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err=%v, want ErrEmptyInput", err)
	}
}

// The crop must cancel both the wrap padding and the kernel half-width: an
// impulse smoothed by a 5-tap boxcar spreads symmetrically around its own index.
func TestSmoothImpulseGolden(t *testing.T) {
	for _, length := range []int{20, 21} {
		const pos = 7
		got, err := newTestSmoother().SmoothData(testutil.Impulse(length, pos), 5, windowing.Uniform)
		if err != nil {
			t.Fatal(err)
		}

		want := make([]float64, length)
		for i := pos - 2; i <= pos+2; i++ {
			want[i] = 0.2
		}
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}
}

func TestSmoothWrapsAroundEdges(t *testing.T) {
	got, err := newTestSmoother().SmoothData(testutil.Impulse(20, 0), 4, windowing.Uniform)
	if err != nil {
		t.Fatal(err)
	}

	want := make([]float64, 20)
	for _, i := range []int{18, 19, 0, 1, 2} {
		want[i] = 0.2
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestSmoothPreservesConstant(t *testing.T) {
	for _, mode := range []windowing.Mode{windowing.Uniform, windowing.Gaussian, windowing.Blackman} {
		got, err := newTestSmoother().SmoothData(testutil.DC(3.5, 64), 11, mode)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireSliceNearlyEqual(t, got, testutil.DC(3.5, 64), 1e-9)
	}
}

func TestSmoothWithLowPassKeepsSlowSine(t *testing.T) {
	kernel, err := LowPass(51, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	// whole number of periods so the wrap padding is seamless
	signal := testutil.Sine(2, 200, 1, 200)
	got, err := newTestSmoother().SmoothWith(signal, kernel)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, signal, 1e-3)
}

func TestSmoothErrors(t *testing.T) {
	s := newTestSmoother()
	if _, err := s.SmoothData(nil, 5, windowing.Uniform); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty signal: err=%v", err)
	}
	if _, err := s.SmoothWith([]float64{1, 2, 3}, []float64{0.5, 0.5}); !errors.Is(err, ErrEvenKernel) {
		t.Errorf("even kernel: err=%v", err)
	}
	if _, err := s.SmoothData([]float64{1, 2, 3}, 0, windowing.Uniform); err != nil {
		// size 0 is bumped to a single tap
		t.Errorf("size 0: unexpected err=%v", err)
	}
	if _, err := s.SmoothData([]float64{1, 2, 3}, 3, windowing.Mode(9)); !errors.Is(err, windowing.ErrUnknownMode) {
		t.Errorf("bad mode: err=%v", err)
	}
}
