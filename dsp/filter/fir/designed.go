package fir

import (
	"fmt"

	"github.com/admacollub/JPO-DSP-lib/dsp/core"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter/design"
)

// defaultCoeffs is the pass-through response of a default-constructed
// designed filter.
var defaultCoeffs = []float64{0, 1, 0}

const (
	defaultOrder  = 2
	defaultCutoff = 2250.0
)

// Designed is a FIR filter whose taps come from a windowed-sinc design.
// It remembers the design parameters so it can be redesigned in place.
type Designed struct {
	Filter

	kind  design.Kind
	order int
	low   float64
	high  float64
	opts  []design.Option
}

var _ filter.Filter = (*Designed)(nil)

// NewLowpass designs a unity-DC-gain lowpass of the given order.
func NewLowpass(order int, cutoff float64, opts ...core.Option) (*Designed, error) {
	return newDesigned(design.Lowpass, order, cutoff, 0, opts)
}

// NewHighpass designs a highpass of the given order.
func NewHighpass(order int, cutoff float64, opts ...core.Option) (*Designed, error) {
	return newDesigned(design.Highpass, order, cutoff, 0, opts)
}

// NewBandpass designs a bandpass passing [low, high] Hz.
func NewBandpass(order int, low, high float64, opts ...core.Option) (*Designed, error) {
	return newDesigned(design.Bandpass, order, low, high, opts)
}

// NewBandstop designs a bandstop rejecting [low, high] Hz.
func NewBandstop(order int, low, high float64, opts ...core.Option) (*Designed, error) {
	return newDesigned(design.Bandstop, order, low, high, opts)
}

// NewDefault returns a designed filter of the given kind in its initial
// state: 44.1 kHz, order 2 and pass-through taps {0, 1, 0}. No design is
// computed until Update is called. The stored cutoffs are 2250 Hz for a
// lowpass, 0 Hz for a highpass and 0..2250 Hz for band filters.
func NewDefault(kind design.Kind) *Designed {
	d := &Designed{
		Filter: Filter{
			coeffs:  core.Clone(defaultCoeffs),
			history: make([]float64, len(defaultCoeffs)),
		},
		kind:  kind,
		order: defaultOrder,
	}
	// The default config is always valid.
	d.Meta, _ = filter.NewMeta(core.DefaultConfig(defaultName(kind)))

	switch kind {
	case design.Lowpass:
		d.low = defaultCutoff
	case design.Bandpass, design.Bandstop:
		d.high = defaultCutoff
	}
	return d
}

func newDesigned(kind design.Kind, order int, low, high float64, opts []core.Option) (*Designed, error) {
	meta, err := filter.NewMeta(core.ApplyOptions(core.DefaultConfig(defaultName(kind)), opts...))
	if err != nil {
		return nil, err
	}
	d := &Designed{Filter: Filter{Meta: meta}, kind: kind}
	if err := d.Update(order, low, high); err != nil {
		return nil, fmt.Errorf("fir: %s order %d: %w", kind, order, err)
	}
	return d, nil
}

func defaultName(kind design.Kind) string {
	switch kind {
	case design.Lowpass:
		return "Lowpass"
	case design.Highpass:
		return "Highpass"
	case design.Bandpass:
		return "Bandpass"
	case design.Bandstop:
		return "Bandstop"
	default:
		return "FIR"
	}
}

// Update recomputes the taps for new design parameters at the filter's
// current sample rate and clears the delay line. Lowpass and highpass
// filters use low as their cutoff and ignore high.
//
// If the design yields no taps (negative order) filter.ErrEmptyCoefficients
// is returned and neither the taps nor the stored parameters change.
func (d *Designed) Update(order int, low, high float64) error {
	taps := design.WindowedSinc(d.kind, order, low, high, d.SampleRate(), d.opts...)
	if err := d.SetCoefficients(taps); err != nil {
		return err
	}
	d.order = order
	d.low = low
	d.high = high
	return nil
}

// SetDesignOptions installs design options (for example a window taper)
// and redesigns with the current parameters.
func (d *Designed) SetDesignOptions(opts ...design.Option) error {
	prev := d.opts
	d.opts = append([]design.Option(nil), opts...)
	if err := d.Update(d.order, d.low, d.high); err != nil {
		d.opts = prev
		return err
	}
	return nil
}

// Clone returns a deep copy including the design parameters.
func (d *Designed) Clone() filter.Filter {
	return &Designed{
		Filter: *d.Filter.clone(),
		kind:   d.kind,
		order:  d.order,
		low:    d.low,
		high:   d.high,
		opts:   append([]design.Option(nil), d.opts...),
	}
}

// Kind returns the response type.
func (d *Designed) Kind() design.Kind { return d.kind }

// DesignOrder returns the order the taps were designed for. It equals
// Order() except for a default-constructed filter that has not been
// updated yet.
func (d *Designed) DesignOrder() int { return d.order }

// Cutoff returns the cutoff of a lowpass or highpass, or the lower band
// edge of a band filter.
func (d *Designed) Cutoff() float64 { return d.low }

// LowCutoff returns the lower band edge in Hz.
func (d *Designed) LowCutoff() float64 { return d.low }

// HighCutoff returns the upper band edge in Hz (zero for lowpass/highpass).
func (d *Designed) HighCutoff() float64 { return d.high }
