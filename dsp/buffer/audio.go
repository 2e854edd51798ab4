package buffer

import (
	"errors"
	"fmt"

	"github.com/admacollub/JPO-DSP-lib/dsp/filter"
	"github.com/go-audio/audio"
)

var (
	// ErrNoFormat is returned for a go-audio buffer without a Format.
	ErrNoFormat = errors.New("buffer: audio buffer has no format")

	// ErrNotMono is returned for multi-channel audio.
	ErrNotMono = errors.New("buffer: only mono audio is supported")
)

// FromFloatBuffer wraps the samples of a mono go-audio buffer without
// copying.
func FromFloatBuffer(fb *audio.FloatBuffer) (*Buffer, error) {
	if err := checkFormat(fb); err != nil {
		return nil, err
	}
	return FromSlice(fb.Data, float64(fb.Format.SampleRate)), nil
}

// FloatBuffer returns a go-audio view of b sharing the same samples. The
// sample rate is rounded to whole hertz.
func (b *Buffer) FloatBuffer() *audio.FloatBuffer {
	return &audio.FloatBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  int(b.sampleRate + 0.5),
		},
		Data: b.samples,
	}
}

// ProcessFloatBuffer filters a mono go-audio buffer in place. The buffer's
// sample rate must equal f's.
func ProcessFloatBuffer(f filter.Filter, fb *audio.FloatBuffer) error {
	b, err := FromFloatBuffer(fb)
	if err != nil {
		return err
	}
	return b.Process(f)
}

func checkFormat(fb *audio.FloatBuffer) error {
	if fb == nil || fb.Format == nil {
		return ErrNoFormat
	}
	if fb.Format.NumChannels != 1 {
		return fmt.Errorf("%w: %d channels", ErrNotMono, fb.Format.NumChannels)
	}
	return nil
}

func checkRate(f filter.Filter, sampleRate float64) error {
	if filter.IsNil(f) {
		return filter.ErrNilFilter
	}
	if f.SampleRate() != sampleRate {
		return fmt.Errorf("%w: filter %q runs at %g Hz, buffer at %g Hz",
			filter.ErrFrequencyMismatch, f.Name(), f.SampleRate(), sampleRate)
	}
	return nil
}
