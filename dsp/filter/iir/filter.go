package iir

import (
	"math"
	"math/cmplx"

	"github.com/admacollub/JPO-DSP-lib/dsp/core"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter"
	"github.com/tphakala/simd/f64"
)

// Filter is a direct-form recursive filter.
//
// Both delay lines are most-recent-first. inputs has len(b) slots; outputs
// has len(a)+1 slots, slot 0 holding the latest output and slots 1..len(a)
// the values the feedback taps read.
type Filter struct {
	filter.Meta

	b       []float64
	a       []float64
	inputs  []float64
	outputs []float64
}

var _ filter.Filter = (*Filter)(nil)

// New creates an IIR filter from feedforward b and feedback a. Both slices
// are copied. Without options the filter runs at core.DefaultSampleRate and
// is named "IIR".
func New(b, a []float64, opts ...core.Option) (*Filter, error) {
	meta, err := filter.NewMeta(core.ApplyOptions(core.DefaultConfig("IIR"), opts...))
	if err != nil {
		return nil, err
	}
	f := &Filter{Meta: meta}
	if err := f.SetCoefficients(b, a); err != nil {
		return nil, err
	}
	return f, nil
}

// SetCoefficients replaces both coefficient vectors and clears the delay
// lines. If either vector is empty filter.ErrEmptyCoefficients is returned
// and nothing changes; use a = []float64{0} for a pure feedforward filter.
func (f *Filter) SetCoefficients(b, a []float64) error {
	if len(b) == 0 || len(a) == 0 {
		return filter.ErrEmptyCoefficients
	}
	f.b = core.Clone(b)
	f.a = core.Clone(a)
	f.inputs = make([]float64, len(b))
	f.outputs = make([]float64, len(a)+1)
	return nil
}

// ProcessSample filters one input sample.
func (f *Filter) ProcessSample(x float64) float64 {
	core.ShiftIn(f.inputs, x)
	// Slot 0 is overwritten below; shifting frees it for the new output.
	core.ShiftIn(f.outputs, 0)

	y := f64.DotProductUnsafe(f.b, f.inputs) - f64.DotProductUnsafe(f.a, f.outputs[1:])
	f.outputs[0] = y
	return y
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

// Reset clears both delay lines to zero.
func (f *Filter) Reset() {
	core.Zero(f.inputs)
	core.Zero(f.outputs)
}

// Clone returns a deep copy with identical coefficients and delay lines.
func (f *Filter) Clone() filter.Filter {
	return f.clone()
}

func (f *Filter) clone() *Filter {
	return &Filter{
		Meta:    f.Meta,
		b:       core.Clone(f.b),
		a:       core.Clone(f.a),
		inputs:  core.Clone(f.inputs),
		outputs: core.Clone(f.outputs),
	}
}

// FeedForward returns a copy of the b coefficients.
func (f *Filter) FeedForward() []float64 { return core.Clone(f.b) }

// Feedback returns a copy of the a coefficients (a0 excluded).
func (f *Filter) Feedback() []float64 { return core.Clone(f.a) }

// InputHistory returns a copy of the input delay line, most recent first.
func (f *Filter) InputHistory() []float64 { return core.Clone(f.inputs) }

// OutputHistory returns a copy of the output delay line, most recent first.
func (f *Filter) OutputHistory() []float64 { return core.Clone(f.outputs) }

// Response computes the complex frequency response H(e^{jw}) at freqHz,
// evaluated at the filter's own sample rate.
func (f *Filter) Response(freqHz float64) complex128 {
	w := 2 * math.Pi * freqHz / f.SampleRate()

	var num complex128
	for k, c := range f.b {
		num += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	den := complex(1, 0)
	for k, c := range f.a {
		den += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k+1)))
	}
	return num / den
}

// MagnitudeDB returns the magnitude response in dB at freqHz.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz)))
}
