package design

import (
	"math"

	"github.com/admacollub/JPO-DSP-lib/dsp/core"
)

// Chebyshev1Biquad designs a second-order Chebyshev Type I section of the
// given kind and returns feedforward b (3 taps) and feedback a (2 taps,
// a0 = 1 implied) for the iir engine. Only Lowpass and Highpass are
// supported; other kinds return nil, nil.
func Chebyshev1Biquad(kind Kind, cutoff, rippleDB, sampleRate float64) (b, a []float64) {
	switch kind {
	case Lowpass:
		return Chebyshev1LowpassBiquad(cutoff, rippleDB, sampleRate)
	case Highpass:
		return Chebyshev1HighpassBiquad(cutoff, rippleDB, sampleRate)
	default:
		return nil, nil
	}
}

// Chebyshev1LowpassBiquad designs a Chebyshev Type I lowpass biquad with
// rippleDB of passband ripple, using bilinear-transform prewarping.
//
// The cutoff is not range checked. A cutoff at or beyond Nyquist, or a
// ripple <= 0 dB, yields Inf/NaN coefficients.
func Chebyshev1LowpassBiquad(cutoff, rippleDB, sampleRate float64) (b, a []float64) {
	p := newCheby1Prototype(rippleDB)
	k := math.Tan(math.Pi * cutoff / sampleRate)
	k2 := k * k

	a0 := k2 - 2*p.sRe*k + p.aSq

	b = []float64{
		k2 / a0 * p.gain,
		2 * k2 / a0 * p.gain,
		k2 / a0 * p.gain,
	}
	a = []float64{
		2 * (k2 - p.aSq) / a0,
		(k2 + 2*p.sRe*k + p.aSq) / a0,
	}
	return b, a
}

// Chebyshev1HighpassBiquad designs a Chebyshev Type I highpass biquad.
//
// The cutoff is first pulled inside (0, sampleRate/2): a cutoff <= 0
// becomes 1 Hz and a cutoff >= Nyquist becomes Nyquist - 1 Hz.
func Chebyshev1HighpassBiquad(cutoff, rippleDB, sampleRate float64) (b, a []float64) {
	nyquist := sampleRate / 2
	if cutoff <= 0 {
		cutoff = 1
	}
	if cutoff >= nyquist {
		cutoff = nyquist - 1
	}

	p := newCheby1Prototype(rippleDB)
	k := math.Tan(math.Pi * cutoff / sampleRate)
	k2 := k * k

	a0 := p.aSq*k2 - 2*p.sRe*k + 1

	b = []float64{
		1 / a0 * p.gain,
		-2 / a0 * p.gain,
		1 / a0 * p.gain,
	}
	a = []float64{
		2 * (p.aSq*k2 - 1) / a0,
		(p.aSq*k2 + 2*p.sRe*k + 1) / a0,
	}
	return b, a
}

// cheby1Prototype holds the analog pole pair of a 2nd-order Chebyshev I
// prototype: real part sRe, squared pole magnitude aSq, and the passband
// gain correction 1/sqrt(1+eps^2).
type cheby1Prototype struct {
	sRe  float64
	aSq  float64
	gain float64
}

func newCheby1Prototype(rippleDB float64) cheby1Prototype {
	eps := math.Sqrt(core.DBPowerToLinear(rippleDB) - 1)
	v := math.Asinh(1/eps) / 2

	sRe := -math.Sinh(v) * math.Sin(math.Pi/4)
	sIm := math.Cosh(v) * math.Cos(math.Pi/4)

	return cheby1Prototype{
		sRe:  sRe,
		aSq:  sRe*sRe + sIm*sIm,
		gain: 1 / math.Sqrt(1+eps*eps),
	}
}
