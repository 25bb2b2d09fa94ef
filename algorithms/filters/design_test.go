package filters

import (
	"errors"
	"math"
	"testing"

	"github.com/RyanBlaney/labtrace/internal/testutil"
	"gonum.org/v1/gonum/floats"
)

func TestSincFilterCentreTap(t *testing.T) {
	kernel, err := SincFilter(10, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(kernel) != 11 {
		t.Fatalf("len=%d, want 11", len(kernel))
	}
	testutil.RequireNearlyEqual(t, kernel[5], 1, 0)
	testutil.RequireNearlyEqual(t, kernel[6], Sinc(0.2), 1e-15)
	testutil.RequireNearlyEqual(t, kernel[4], kernel[6], 1e-15)
}

func TestSinc(t *testing.T) {
	testutil.RequireNearlyEqual(t, Sinc(0), 1, 0)
	testutil.RequireNearlyEqual(t, Sinc(1), 0, 1e-15)
	testutil.RequireNearlyEqual(t, Sinc(0.5), 2/math.Pi, 1e-15)
}

func TestLowPassUnitDCGain(t *testing.T) {
	for _, n := range []int{11, 51, 100} {
		lp, err := LowPass(n, 0.1)
		if err != nil {
			t.Fatal(err)
		}
		if len(lp)%2 != 1 {
			t.Fatalf("n=%d: even kernel length %d", n, len(lp))
		}
		testutil.RequireNearlyEqual(t, floats.Sum(lp), 1, 1e-12)
		mag, _ := Response(lp, 0)
		testutil.RequireNearlyEqual(t, mag, 1, 1e-12)
	}
}

func TestLowPassStopBand(t *testing.T) {
	lp, err := LowPass(101, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if mag, _ := Response(lp, 0.4); mag > 1e-3 {
		t.Fatalf("stop-band gain at 0.4 = %g", mag)
	}
	if mag, _ := Response(lp, 0.02); math.Abs(mag-1) > 1e-3 {
		t.Fatalf("pass-band gain at 0.02 = %g", mag)
	}
}

func TestHighPassSpectralInversion(t *testing.T) {
	const n, fc = 51, 0.15
	lp, err := LowPass(n, fc)
	if err != nil {
		t.Fatal(err)
	}
	hp, err := HighPass(n, fc)
	if err != nil {
		t.Fatal(err)
	}

	sum := make([]float64, len(lp))
	floats.AddTo(sum, lp, hp)
	testutil.RequireSliceNearlyEqual(t, sum, testutil.Impulse(n, (n-1)/2), 1e-12)

	dc, _ := Response(hp, 0)
	testutil.RequireNearlyEqual(t, dc, 0, 1e-12)
	nyq, _ := Response(hp, 0.5)
	testutil.RequireNearlyEqual(t, nyq, 1, 1e-3)
}

func TestBandPassShape(t *testing.T) {
	const n = 31
	bp, err := BandPass(n, 0.3, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(bp) != 2*n-1 {
		t.Fatalf("len=%d, want %d", len(bp), 2*n-1)
	}
	testutil.RequireFinite(t, bp)

	scale := floats.Norm(bp, math.Inf(1))
	for i := range bp {
		if d := math.Abs(bp[i] - bp[len(bp)-1-i]); d > 1e-9*scale {
			t.Fatalf("kernel not symmetric at %d: diff %g", i, d)
		}
	}
}

func TestBandPassEvenLength(t *testing.T) {
	bp, err := BandPass(10, 0.3, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(bp) != 21 {
		t.Fatalf("len=%d, want 21", len(bp))
	}
}

func TestInvalidTaps(t *testing.T) {
	if _, err := LowPass(0, 0.1); !errors.Is(err, ErrInvalidTaps) {
		t.Errorf("LowPass(0): err=%v", err)
	}
	if _, err := HighPass(-3, 0.1); !errors.Is(err, ErrInvalidTaps) {
		t.Errorf("HighPass(-3): err=%v", err)
	}
	if _, err := BandPass(0, 0.1, 0.2); !errors.Is(err, ErrInvalidTaps) {
		t.Errorf("BandPass(0): err=%v", err)
	}
}

func TestDesignHelpers(t *testing.T) {
	if got := Points(0.05); got != 80 {
		t.Errorf("Points(0.05)=%d, want 80", got)
	}
	if got := Points(0.03); got != 134 {
		t.Errorf("Points(0.03)=%d, want 134", got)
	}
	testutil.RequireNearlyEqual(t, Ratio(1000, 50), 0.05, 1e-15)

	sr, err := SampleRate([]float64{0, 0.01, 0.02})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNearlyEqual(t, sr, 100, 1e-9)

	if _, err := SampleRate([]float64{1}); err == nil {
		t.Error("expected error for single-sample axis")
	}
	if _, err := SampleRate([]float64{1, 1}); err == nil {
		t.Error("expected error for zero step")
	}
}

func TestLowPassResponseSweep(t *testing.T) {
	lp, err := LowPass(101, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	pass := floats.Span(make([]float64, 11), 0, 0.05)
	for i, mag := range MagnitudeResponse(lp, pass) {
		if math.Abs(mag-1) > 1e-3 {
			t.Fatalf("pass-band gain at %g = %g", pass[i], mag)
		}
	}

	stop := floats.Span(make([]float64, 35), 0.16, 0.5)
	for i, mag := range MagnitudeResponse(lp, stop) {
		if mag > 1e-3 {
			t.Fatalf("stop-band gain at %g = %g", stop[i], mag)
		}
	}
}
