package cascade

import (
	"fmt"

	"github.com/admacollub/JPO-DSP-lib/dsp/core"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter"
)

// Cascade is an ordered series of filters. Each stage's output feeds the
// next stage's input. A Cascade is itself a filter.Filter and can be nested.
type Cascade struct {
	filter.Meta

	stages []filter.Filter
}

var _ filter.Filter = (*Cascade)(nil)

// New creates an empty cascade. Without options it runs at
// core.DefaultSampleRate and is named "Cascade".
func New(opts ...core.Option) (*Cascade, error) {
	meta, err := filter.NewMeta(core.ApplyOptions(core.DefaultConfig("Cascade"), opts...))
	if err != nil {
		return nil, err
	}
	return &Cascade{Meta: meta}, nil
}

// Append adds a deep copy of f as the last stage. A nil f, including a nil
// pointer in the interface, fails with filter.ErrNilFilter. It fails with
// filter.ErrFrequencyMismatch if f does not run at the cascade's sample
// rate, leaving the cascade unchanged. Appending a cascade nests it as a
// single stage.
func (c *Cascade) Append(f filter.Filter) error {
	if err := c.compatible(f); err != nil {
		return err
	}
	c.stages = append(c.stages, f.Clone())
	return nil
}

// Merge appends deep copies of every stage of other, in order. other and
// each of its stages must run at the cascade's sample rate; on failure the
// cascade is unchanged. Merging a cascade into itself doubles its stages.
func (c *Cascade) Merge(other *Cascade) error {
	if other == nil {
		return filter.ErrNilFilter
	}
	if err := c.compatible(other); err != nil {
		return err
	}
	// A stage may have been re-rated after it was inserted into other.
	for _, s := range other.stages {
		if err := c.compatible(s); err != nil {
			return err
		}
	}
	n := len(other.stages)
	for i := range n {
		c.stages = append(c.stages, other.stages[i].Clone())
	}
	return nil
}

func (c *Cascade) compatible(f filter.Filter) error {
	if filter.IsNil(f) {
		return filter.ErrNilFilter
	}
	if f.SampleRate() != c.SampleRate() {
		return fmt.Errorf("%w: %q runs at %g Hz, cascade %q at %g Hz",
			filter.ErrFrequencyMismatch, f.Name(), f.SampleRate(), c.Name(), c.SampleRate())
	}
	return nil
}

// ProcessSample feeds x through every stage in insertion order. An empty
// cascade passes x through unchanged.
func (c *Cascade) ProcessSample(x float64) float64 {
	for _, s := range c.stages {
		x = s.ProcessSample(x)
	}
	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Cascade) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = c.ProcessSample(x)
	}
}

// Reset clears the memory of every stage, in order.
func (c *Cascade) Reset() {
	for _, s := range c.stages {
		s.Reset()
	}
}

// Clone returns a deep copy of the cascade and every stage.
func (c *Cascade) Clone() filter.Filter {
	return c.clone()
}

func (c *Cascade) clone() *Cascade {
	out := &Cascade{
		Meta:   c.Meta,
		stages: make([]filter.Filter, len(c.stages)),
	}
	for i, s := range c.stages {
		out.stages[i] = s.Clone()
	}
	return out
}

// Len returns the number of top-level stages. A nested cascade counts as
// one stage.
func (c *Cascade) Len() int {
	return len(c.stages)
}

// Stage returns a deep copy of the i-th stage. It panics if i is out of
// range.
func (c *Cascade) Stage(i int) filter.Filter {
	return c.stages[i].Clone()
}

// Names returns the names of the top-level stages in order.
func (c *Cascade) Names() []string {
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.Name()
	}
	return names
}
