package buffer

import (
	"testing"

	"github.com/admacollub/JPO-DSP-lib/dsp/core"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter/fir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := New(4, 44100)
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 44100.0, b.SampleRate())
	assert.Equal(t, []float64{0, 0, 0, 0}, b.Samples())

	assert.Equal(t, 0, New(-3, 44100).Len())
}

func TestFromSlice_Shares(t *testing.T) {
	s := []float64{1, 2, 3}
	b := FromSlice(s, 48000)
	b.Samples()[0] = 9
	assert.Equal(t, 9.0, s[0])
}

func TestResize(t *testing.T) {
	b := FromSlice([]float64{1, 2, 3, 4}, 44100)

	b.Resize(2)
	assert.Equal(t, []float64{1, 2}, b.Samples())

	// Growing within capacity zeroes the stale tail.
	b.Resize(4)
	assert.Equal(t, []float64{1, 2, 0, 0}, b.Samples())

	b.Resize(8)
	assert.Equal(t, []float64{1, 2, 0, 0, 0, 0, 0, 0}, b.Samples())

	b.Resize(-1)
	assert.Equal(t, 0, b.Len())
}

func TestZeroAndCopy(t *testing.T) {
	b := FromSlice([]float64{1, 2}, 44100)
	c := b.Copy()
	b.Zero()
	assert.Equal(t, []float64{0, 0}, b.Samples())
	assert.Equal(t, []float64{1, 2}, c.Samples())
	assert.Equal(t, b.SampleRate(), c.SampleRate())
}

func TestProcess(t *testing.T) {
	f, err := fir.New([]float64{0.5, 0.5})
	require.NoError(t, err)

	b := FromSlice([]float64{2, 2, 4}, core.DefaultSampleRate)
	require.NoError(t, b.Process(f))
	assert.Equal(t, []float64{1, 2, 3}, b.Samples())
}

func TestProcess_RateMismatch(t *testing.T) {
	f, err := fir.New([]float64{0.5, 0.5}, core.WithSampleRate(48000))
	require.NoError(t, err)

	b := FromSlice([]float64{2, 2, 4}, 44100)
	require.ErrorIs(t, b.Process(f), filter.ErrFrequencyMismatch)
	assert.Equal(t, []float64{2, 2, 4}, b.Samples())

	require.ErrorIs(t, b.Process(nil), filter.ErrNilFilter)

	var typed *fir.Filter
	require.ErrorIs(t, b.Process(typed), filter.ErrNilFilter)
}
