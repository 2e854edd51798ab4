package design

import (
	"math"
	"testing"

	"github.com/admacollub/JPO-DSP-lib/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cheb1Ref struct {
	k, k2, sRe, aSq, gain float64
}

func newCheb1Ref(fc, rippleDB, fs float64) cheb1Ref {
	eps := math.Sqrt(math.Pow(10, rippleDB/10) - 1)
	v := math.Asinh(1/eps) / 2
	k := math.Tan(math.Pi * fc / fs)
	sRe := -math.Sinh(v) * math.Sin(math.Pi/4)
	sIm := math.Cosh(v) * math.Cos(math.Pi/4)
	return cheb1Ref{
		k:    k,
		k2:   k * k,
		sRe:  sRe,
		aSq:  sRe*sRe + sIm*sIm,
		gain: 1 / math.Sqrt(1+eps*eps),
	}
}

// biquadMag evaluates |H(e^{jw})| for b (3 taps) and a (a1, a2).
func biquadMag(b, a []float64, freq, fs float64) float64 {
	w := 2 * math.Pi * freq / fs
	num := complex(b[0], 0) + complex(b[1], 0)*expj(-w) + complex(b[2], 0)*expj(-2*w)
	den := 1 + complex(a[0], 0)*expj(-w) + complex(a[1], 0)*expj(-2*w)
	h := num / den
	return math.Hypot(real(h), imag(h))
}

func expj(x float64) complex128 {
	return complex(math.Cos(x), math.Sin(x))
}

func TestChebyshev1LowpassBiquad_ClosedForm(t *testing.T) {
	const fc, ripple, fs = 3000.0, 1.0, 44100.0
	r := newCheb1Ref(fc, ripple, fs)
	a0 := r.k2 - 2*r.sRe*r.k + r.aSq
	wantB := []float64{r.k2 / a0 * r.gain, 2 * r.k2 / a0 * r.gain, r.k2 / a0 * r.gain}
	wantA := []float64{2 * (r.k2 - r.aSq) / a0, (r.k2 + 2*r.sRe*r.k + r.aSq) / a0}

	b, a := Chebyshev1LowpassBiquad(fc, ripple, fs)
	require.Len(t, b, 3)
	require.Len(t, a, 2)
	testutil.RequireSliceRelEqual(t, b, wantB, 1e-9)
	testutil.RequireSliceRelEqual(t, a, wantA, 1e-9)

	// Precomputed reference values.
	testutil.RequireSliceRelEqual(t, b, []float64{0.0302474641482962, 0.0604949282965924, 0.0302474641482962}, 1e-9)
	testutil.RequireSliceRelEqual(t, a, []float64{-1.5209261522600264, 0.656679004140928}, 1e-9)
}

func TestChebyshev1HighpassBiquad_ClosedForm(t *testing.T) {
	const fc, ripple, fs = 3000.0, 1.0, 44100.0
	r := newCheb1Ref(fc, ripple, fs)
	a0 := r.aSq*r.k2 - 2*r.sRe*r.k + 1
	wantB := []float64{r.gain / a0, -2 * r.gain / a0, r.gain / a0}
	wantA := []float64{2 * (r.aSq*r.k2 - 1) / a0, (r.aSq*r.k2 + 2*r.sRe*r.k + 1) / a0}

	b, a := Chebyshev1HighpassBiquad(fc, ripple, fs)
	testutil.RequireSliceRelEqual(t, b, wantB, 1e-9)
	testutil.RequireSliceRelEqual(t, a, wantA, 1e-9)
	testutil.RequireSliceRelEqual(t, b, []float64{0.6908018836641575, -1.381603767328315, 0.6908018836641575}, 1e-9)
	testutil.RequireSliceRelEqual(t, a, []float64{-1.4696845542638663, 0.6306852926871048}, 1e-9)
}

func TestChebyshev1_PassbandGain(t *testing.T) {
	// Both sections reach exactly the ripple floor 10^(-R/20) at the band
	// edge opposite the cutoff (DC for lowpass, Nyquist for highpass).
	const fs = 48000.0
	for _, ripple := range []float64{0.1, 0.5, 1, 3} {
		want := math.Pow(10, -ripple/20)

		b, a := Chebyshev1LowpassBiquad(2000, ripple, fs)
		dc := (b[0] + b[1] + b[2]) / (1 + a[0] + a[1])
		assert.InDelta(t, want, dc, 1e-12, "lowpass ripple %v", ripple)

		b, a = Chebyshev1HighpassBiquad(2000, ripple, fs)
		ny := (b[0] - b[1] + b[2]) / (1 - a[0] + a[1])
		assert.InDelta(t, want, ny, 1e-12, "highpass ripple %v", ripple)
	}
}

func TestChebyshev1_Stable(t *testing.T) {
	const fs = 44100.0
	for _, fc := range []float64{50, 500, 3000, 10000, 20000} {
		for _, kind := range []Kind{Lowpass, Highpass} {
			_, a := Chebyshev1Biquad(kind, fc, 1, fs)
			// Stability triangle for 1 + a1 z^-1 + a2 z^-2.
			if !(math.Abs(a[1]) < 1 && math.Abs(a[0]) < 1+a[1]) {
				t.Errorf("%s fc=%v: unstable a=%v", kind, fc, a)
			}
		}
	}
}

func TestChebyshev1_ResponseShape(t *testing.T) {
	const fs = 44100.0
	b, a := Chebyshev1LowpassBiquad(1000, 1, fs)
	if got := biquadMag(b, a, 15000, fs); got > 0.05 {
		t.Errorf("lowpass stopband magnitude = %v", got)
	}
	b, a = Chebyshev1HighpassBiquad(1000, 1, fs)
	if got := biquadMag(b, a, 50, fs); got > 0.05 {
		t.Errorf("highpass stopband magnitude = %v", got)
	}
}

func TestChebyshev1HighpassBiquad_ClampsCutoff(t *testing.T) {
	const fs = 44100.0
	tests := []struct {
		name    string
		cutoff  float64
		clamped float64
	}{
		{"zero", 0, 1},
		{"negative", -300, 1},
		{"nyquist", fs / 2, fs/2 - 1},
		{"above nyquist", 30000, fs/2 - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, a := Chebyshev1HighpassBiquad(tt.cutoff, 1, fs)
			wb, wa := Chebyshev1HighpassBiquad(tt.clamped, 1, fs)
			assert.Equal(t, wb, b)
			assert.Equal(t, wa, a)
			testutil.RequireFinite(t, b)
			testutil.RequireFinite(t, a)
		})
	}
}

func TestChebyshev1Biquad_Dispatch(t *testing.T) {
	b, a := Chebyshev1Biquad(Lowpass, 3000, 1, 44100)
	wb, wa := Chebyshev1LowpassBiquad(3000, 1, 44100)
	assert.Equal(t, wb, b)
	assert.Equal(t, wa, a)

	b, a = Chebyshev1Biquad(Bandpass, 3000, 1, 44100)
	assert.Nil(t, b)
	assert.Nil(t, a)
}
