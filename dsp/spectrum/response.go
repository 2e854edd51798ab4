package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/admacollub/JPO-DSP-lib/dsp/core"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter"
)

// ErrInvalidFFTSize is returned for an FFT size below 2.
var ErrInvalidFFTSize = errors.New("spectrum: fft size must be >= 2")

// Response is the sampled frequency response of a filter, from DC to
// Nyquist inclusive.
type Response struct {
	SampleRate float64
	FFTSize    int
	Bins       []complex128
}

// FilterResponse measures f with an FFT of at least fftSize points
// (rounded up to a power of two). f itself is not modified.
func FilterResponse(f filter.Filter, fftSize int) (*Response, error) {
	if filter.IsNil(f) {
		return nil, filter.ErrNilFilter
	}
	if fftSize < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}
	n := nextPowerOf2(fftSize)

	ir := filter.ImpulseResponse(f, n)
	in := make([]complex128, n)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT: %w", err)
	}

	return &Response{
		SampleRate: f.SampleRate(),
		FFTSize:    n,
		Bins:       out[:n/2+1],
	}, nil
}

// Frequencies returns the centre frequency in Hz of every bin.
func (r *Response) Frequencies() []float64 {
	out := make([]float64, len(r.Bins))
	step := r.SampleRate / float64(r.FFTSize)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}

// Magnitude returns the linear magnitude of every bin.
func (r *Response) Magnitude() []float64 {
	return Magnitude(r.Bins)
}

// MagnitudeDB returns the magnitude of every bin in dB.
func (r *Response) MagnitudeDB() []float64 {
	mag := r.Magnitude()
	for i, m := range mag {
		mag[i] = core.LinearToDB(m)
	}
	return mag
}

// Phase returns the unwrapped phase of every bin in radians.
func (r *Response) Phase() []float64 {
	return UnwrapPhase(Phase(r.Bins))
}

// GroupDelay returns the group delay of every bin in samples.
func (r *Response) GroupDelay() ([]float64, error) {
	return GroupDelayFromPhase(r.Phase(), r.FFTSize)
}

// At returns the bin nearest to freqHz. Frequencies outside [0, Nyquist]
// are clamped to the edge bins.
func (r *Response) At(freqHz float64) complex128 {
	k := int(math.Round(freqHz * float64(r.FFTSize) / r.SampleRate))
	k = max(0, min(k, len(r.Bins)-1))
	return r.Bins[k]
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
