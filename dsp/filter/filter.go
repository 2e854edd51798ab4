package filter

import (
	"errors"
	"reflect"

	"github.com/admacollub/JPO-DSP-lib/dsp/core"
)

var (
	// ErrInvalidSampleRate is returned for a sample rate that is not > 0.
	ErrInvalidSampleRate = core.ErrInvalidSampleRate

	// ErrEmptyName is returned for an empty filter name.
	ErrEmptyName = core.ErrEmptyName

	// ErrEmptyCoefficients is returned when a coefficient vector is empty.
	// The filter keeps its previous coefficients and memory.
	ErrEmptyCoefficients = errors.New("filter: coefficients must not be empty")

	// ErrFrequencyMismatch is returned when filters with different sample
	// rates are chained.
	ErrFrequencyMismatch = errors.New("filter: sample rate mismatch")

	// ErrNilFilter is returned when a nil filter is passed to a composer.
	ErrNilFilter = errors.New("filter: nil filter")
)

// Filter is a stateful single-channel sample processor.
type Filter interface {
	// ProcessSample filters one input sample and returns the output.
	ProcessSample(x float64) float64

	// Reset clears the filter memory. Coefficients are kept.
	Reset()

	// Clone returns an independent deep copy. No coefficient or memory
	// slice is shared between the original and the copy.
	Clone() Filter

	// SampleRate returns the sampling frequency in Hz.
	SampleRate() float64

	// Name returns the display name.
	Name() string
}

// Meta stores the sample rate and name of a filter. Embed it to satisfy the
// SampleRate and Name methods of [Filter].
type Meta struct {
	sampleRate float64
	name       string
}

// NewMeta validates cfg and returns the corresponding Meta.
func NewMeta(cfg core.Config) (Meta, error) {
	if err := cfg.Validate(); err != nil {
		return Meta{}, err
	}
	return Meta{sampleRate: cfg.SampleRate, name: cfg.Name}, nil
}

// SampleRate returns the sampling frequency in Hz.
func (m *Meta) SampleRate() float64 { return m.sampleRate }

// Name returns the display name.
func (m *Meta) Name() string { return m.name }

// SetSampleRate changes the sampling frequency. A rate that is not finite
// and positive is rejected and the previous value is kept.
//
// Coefficients already computed for the old rate are not recomputed.
func (m *Meta) SetSampleRate(sampleRate float64) error {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return err
	}
	m.sampleRate = sampleRate
	return nil
}

// SetName changes the display name. An empty name is rejected and the
// previous value is kept.
func (m *Meta) SetName(name string) error {
	if err := core.ValidateName(name); err != nil {
		return err
	}
	m.name = name
	return nil
}

// IsNil reports whether f is nil or an interface holding a nil pointer.
func IsNil(f Filter) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ProcessBlock filters buf in-place, one sample at a time.
func ProcessBlock(f Filter, buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ImpulseResponse returns the first n output samples of f driven by a unit
// impulse, starting from zero memory. It works on a clone, so f is not
// modified.
func ImpulseResponse(f Filter, n int) []float64 {
	if IsNil(f) || n <= 0 {
		return nil
	}
	c := f.Clone()
	c.Reset()
	out := make([]float64, n)
	out[0] = c.ProcessSample(1)
	for i := 1; i < n; i++ {
		out[i] = c.ProcessSample(0)
	}
	return out
}

// StepResponse returns the first n output samples of f driven by a unit
// step, starting from zero memory. f is not modified.
func StepResponse(f Filter, n int) []float64 {
	if IsNil(f) || n <= 0 {
		return nil
	}
	c := f.Clone()
	c.Reset()
	out := make([]float64, n)
	for i := range out {
		out[i] = c.ProcessSample(1)
	}
	return out
}
