package fir

import (
	"math"
	"math/cmplx"

	"github.com/admacollub/JPO-DSP-lib/dsp/core"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter"
	"github.com/tphakala/simd/f64"
)

// Filter implements a direct-form (transversal) FIR filter.
//
// The delay line is kept most-recent-first: history[0] is the latest input
// and history[N-1] the oldest. len(history) always equals len(coeffs).
type Filter struct {
	filter.Meta

	coeffs  []float64
	history []float64
}

var _ filter.Filter = (*Filter)(nil)

// New creates a FIR filter from the given coefficient slice. The
// coefficients are copied. Without options the filter runs at
// core.DefaultSampleRate and is named "FIR".
func New(coeffs []float64, opts ...core.Option) (*Filter, error) {
	meta, err := filter.NewMeta(core.ApplyOptions(core.DefaultConfig("FIR"), opts...))
	if err != nil {
		return nil, err
	}
	f := &Filter{Meta: meta}
	if err := f.SetCoefficients(coeffs); err != nil {
		return nil, err
	}
	return f, nil
}

// SetCoefficients replaces the coefficients and clears the delay line to
// len(coeffs) zeros. An empty slice is rejected with
// filter.ErrEmptyCoefficients and the filter is left untouched.
func (f *Filter) SetCoefficients(coeffs []float64) error {
	if len(coeffs) == 0 {
		return filter.ErrEmptyCoefficients
	}
	f.coeffs = core.Clone(coeffs)
	f.history = make([]float64, len(coeffs))
	return nil
}

// ProcessSample filters one input sample.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	core.ShiftIn(f.history, x)
	return f64.DotProductUnsafe(f.coeffs, f.history)
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	core.Zero(f.history)
}

// Clone returns a deep copy with identical coefficients and delay line.
func (f *Filter) Clone() filter.Filter {
	return f.clone()
}

func (f *Filter) clone() *Filter {
	return &Filter{
		Meta:    f.Meta,
		coeffs:  core.Clone(f.coeffs),
		history: core.Clone(f.history),
	}
}

// Len returns the number of taps.
func (f *Filter) Len() int {
	return len(f.coeffs)
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() []float64 {
	return core.Clone(f.coeffs)
}

// History returns a copy of the delay line, most recent input first.
func (f *Filter) History() []float64 {
	return core.Clone(f.history)
}

// Response computes the complex frequency response H(e^{jw}) at freqHz,
// evaluated at the filter's own sample rate.
func (f *Filter) Response(freqHz float64) complex128 {
	w := 2 * math.Pi * freqHz / f.SampleRate()
	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at freqHz.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz)))
}
