package cascade

import (
	"github.com/admacollub/JPO-DSP-lib/dsp/core"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter"
)

// Join builds a new cascade from copies of a then b. The cascade runs at
// a's sample rate and is named "Cascade" unless opts say otherwise; b must
// match that rate. Neither argument is modified.
func Join(a, b filter.Filter, opts ...core.Option) (*Cascade, error) {
	if filter.IsNil(a) || filter.IsNil(b) {
		return nil, filter.ErrNilFilter
	}
	opts = append([]core.Option{core.WithSampleRate(a.SampleRate())}, opts...)
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := c.Append(a); err != nil {
		return nil, err
	}
	if err := c.Append(b); err != nil {
		return nil, err
	}
	return c, nil
}

// Extend returns a copy of c with a copy of f appended. c is not modified.
func Extend(c *Cascade, f filter.Filter) (*Cascade, error) {
	if c == nil {
		return nil, filter.ErrNilFilter
	}
	out := c.clone()
	if err := out.Append(f); err != nil {
		return nil, err
	}
	return out, nil
}

// Concat returns a new cascade holding copies of a's stages followed by
// copies of b's stages. It takes a's name and sample rate; neither argument
// is modified.
func Concat(a, b *Cascade) (*Cascade, error) {
	if a == nil {
		return nil, filter.ErrNilFilter
	}
	out := a.clone()
	if err := out.Merge(b); err != nil {
		return nil, err
	}
	return out, nil
}
