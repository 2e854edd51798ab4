package buffer

import (
	"github.com/admacollub/JPO-DSP-lib/dsp/core"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter"
)

// Buffer wraps a mono float64 slice and the rate it was sampled at.
type Buffer struct {
	samples    []float64
	sampleRate float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int, sampleRate float64) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length), sampleRate: sampleRate}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice(s []float64, sampleRate float64) *Buffer {
	return &Buffer{samples: s, sampleRate: sampleRate}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// SampleRate returns the rate in Hz the samples were taken at.
func (b *Buffer) SampleRate() float64 {
	return b.sampleRate
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s
	}
	// The backing array may hold stale data from earlier use.
	if n > oldLen {
		core.Zero(b.samples[oldLen:])
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	core.Zero(b.samples)
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	s := make([]float64, len(b.samples))
	copy(s, b.samples)
	return &Buffer{samples: s, sampleRate: b.sampleRate}
}

// Process filters the buffer in place with f. It fails with
// filter.ErrFrequencyMismatch if f runs at a different sample rate.
func (b *Buffer) Process(f filter.Filter) error {
	if err := checkRate(f, b.sampleRate); err != nil {
		return err
	}
	filter.ProcessBlock(f, b.samples)
	return nil
}
