package buffer

import (
	"testing"

	"github.com/admacollub/JPO-DSP-lib/dsp/filter"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter/fir"
	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monoBuffer(rate int, data ...float64) *audio.FloatBuffer {
	return &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:   data,
	}
}

func TestFromFloatBuffer(t *testing.T) {
	fb := monoBuffer(48000, 1, 2, 3)
	b, err := FromFloatBuffer(fb)
	require.NoError(t, err)
	assert.Equal(t, 48000.0, b.SampleRate())
	assert.Equal(t, 3, b.Len())

	b.Samples()[1] = 7
	assert.Equal(t, 7.0, fb.Data[1])
}

func TestFromFloatBuffer_Errors(t *testing.T) {
	_, err := FromFloatBuffer(nil)
	require.ErrorIs(t, err, ErrNoFormat)

	_, err = FromFloatBuffer(&audio.FloatBuffer{Data: []float64{1}})
	require.ErrorIs(t, err, ErrNoFormat)

	stereo := &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: 44100},
		Data:   []float64{1, 1},
	}
	_, err = FromFloatBuffer(stereo)
	require.ErrorIs(t, err, ErrNotMono)
}

func TestFloatBuffer(t *testing.T) {
	b := FromSlice([]float64{0.5, -0.5}, 44100)
	fb := b.FloatBuffer()
	assert.Equal(t, 1, fb.Format.NumChannels)
	assert.Equal(t, 44100, fb.Format.SampleRate)
	assert.Len(t, fb.Data, 2)

	fb.Data[0] = 1
	assert.Equal(t, 1.0, b.Samples()[0])
}

func TestProcessFloatBuffer(t *testing.T) {
	f, err := fir.New([]float64{0, 1})
	require.NoError(t, err)

	fb := monoBuffer(44100, 1, 2, 3)
	require.NoError(t, ProcessFloatBuffer(f, fb))
	assert.Equal(t, []float64{0, 1, 2}, fb.Data)

	other := monoBuffer(22050, 1, 2, 3)
	require.ErrorIs(t, ProcessFloatBuffer(f, other), filter.ErrFrequencyMismatch)
	assert.Equal(t, []float64{1, 2, 3}, other.Data)
}
