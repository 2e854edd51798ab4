package iir

import (
	"errors"
	"fmt"

	"github.com/admacollub/JPO-DSP-lib/dsp/core"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter/design"
)

const (
	biquadOrder   = 2
	defaultCutoff = 2250.0
	defaultRipple = 1.0
)

// Chebyshev is a second-order Chebyshev Type I filter that remembers its
// design parameters. The order is stored for reference only; the section
// is always a biquad.
type Chebyshev struct {
	Filter

	kind     design.Kind
	order    int
	cutoff   float64
	rippleDB float64
}

var _ filter.Filter = (*Chebyshev)(nil)

// NewChebyshevLowpass designs a Chebyshev Type I lowpass biquad.
func NewChebyshevLowpass(order int, cutoff, rippleDB float64, opts ...core.Option) (*Chebyshev, error) {
	return newChebyshev(design.Lowpass, order, cutoff, rippleDB, opts)
}

// NewChebyshevHighpass designs a Chebyshev Type I highpass biquad.
func NewChebyshevHighpass(order int, cutoff, rippleDB float64, opts ...core.Option) (*Chebyshev, error) {
	return newChebyshev(design.Highpass, order, cutoff, rippleDB, opts)
}

// ErrUnsupportedKind is returned for a Chebyshev kind other than lowpass
// or highpass.
var ErrUnsupportedKind = errors.New("iir: chebyshev supports lowpass and highpass only")

// NewDefaultChebyshev returns a Chebyshev filter in its initial state:
// 44.1 kHz, b = {0, 1, 0}, a = {0, 0} (a one-sample delay), 2250 Hz cutoff
// and 1 dB ripple. No design is computed until Update is called.
func NewDefaultChebyshev(kind design.Kind) (*Chebyshev, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	meta, err := filter.NewMeta(core.DefaultConfig(chebyshevName(kind)))
	if err != nil {
		return nil, err
	}
	c := &Chebyshev{
		Filter:   Filter{Meta: meta},
		kind:     kind,
		order:    biquadOrder,
		cutoff:   defaultCutoff,
		rippleDB: defaultRipple,
	}
	if err := c.SetCoefficients([]float64{0, 1, 0}, []float64{0, 0}); err != nil {
		return nil, err
	}
	return c, nil
}

func checkKind(kind design.Kind) error {
	if kind != design.Lowpass && kind != design.Highpass {
		return fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	return nil
}

func newChebyshev(kind design.Kind, order int, cutoff, rippleDB float64, opts []core.Option) (*Chebyshev, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	meta, err := filter.NewMeta(core.ApplyOptions(core.DefaultConfig(chebyshevName(kind)), opts...))
	if err != nil {
		return nil, err
	}
	c := &Chebyshev{Filter: Filter{Meta: meta}, kind: kind}
	if err := c.Update(order, cutoff, rippleDB); err != nil {
		return nil, err
	}
	return c, nil
}

func chebyshevName(kind design.Kind) string {
	if kind == design.Highpass {
		return "Chebyshev Highpass"
	}
	return "Chebyshev Lowpass"
}

// Update recomputes the biquad for a new cutoff and ripple at the filter's
// current sample rate and clears the delay lines. Parameters are stored
// only when the coefficients were accepted.
func (c *Chebyshev) Update(order int, cutoff, rippleDB float64) error {
	b, a := design.Chebyshev1Biquad(c.kind, cutoff, rippleDB, c.SampleRate())
	if err := c.SetCoefficients(b, a); err != nil {
		return err
	}
	c.order = order
	c.cutoff = cutoff
	c.rippleDB = rippleDB
	return nil
}

// Clone returns a deep copy including the design parameters.
func (c *Chebyshev) Clone() filter.Filter {
	return &Chebyshev{
		Filter:   *c.Filter.clone(),
		kind:     c.kind,
		order:    c.order,
		cutoff:   c.cutoff,
		rippleDB: c.rippleDB,
	}
}

// Kind returns design.Lowpass or design.Highpass.
func (c *Chebyshev) Kind() design.Kind { return c.kind }

// Order returns the stored design order.
func (c *Chebyshev) Order() int { return c.order }

// Cutoff returns the requested cutoff in Hz, before any highpass clamping.
func (c *Chebyshev) Cutoff() float64 { return c.cutoff }

// Ripple returns the passband ripple in dB.
func (c *Chebyshev) Ripple() float64 { return c.rippleDB }
