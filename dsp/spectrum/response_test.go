package spectrum

import (
	"math/cmplx"
	"testing"

	"github.com/admacollub/JPO-DSP-lib/dsp/core"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter/fir"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter/iir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterResponse_MatchesDTFT(t *testing.T) {
	f, err := fir.New([]float64{0.25, 0.5, 0.25}, core.WithSampleRate(48000))
	require.NoError(t, err)

	r, err := FilterResponse(f, 100)
	require.NoError(t, err)
	assert.Equal(t, 128, r.FFTSize)
	assert.Equal(t, 48000.0, r.SampleRate)
	require.Len(t, r.Bins, 65)

	freqs := r.Frequencies()
	assert.Equal(t, 0.0, freqs[0])
	assert.InDelta(t, 24000, freqs[64], 1e-9)

	for k, b := range r.Bins {
		want := f.Response(freqs[k])
		assert.InDelta(t, real(want), real(b), 1e-12, "bin %d", k)
		assert.InDelta(t, imag(want), imag(b), 1e-12, "bin %d", k)
	}

	mag := r.Magnitude()
	assert.InDelta(t, 1.0, mag[0], 1e-12)
	assert.InDelta(t, 0.0, mag[64], 1e-12)
}

func TestFilterResponse_LowpassPassband(t *testing.T) {
	lp, err := fir.NewLowpass(32, 2000)
	require.NoError(t, err)

	r, err := FilterResponse(lp, 1024)
	require.NoError(t, err)
	db := r.MagnitudeDB()
	assert.InDelta(t, 0.0, db[0], 1e-9)
	assert.Less(t, db[len(db)/2], -10.0)
}

func TestFilterResponse_IIRDoesNotTouchFilter(t *testing.T) {
	c, err := iir.NewChebyshevLowpass(2, 3000, 1)
	require.NoError(t, err)
	c.ProcessSample(1)
	before := c.OutputHistory()

	r, err := FilterResponse(c, 4096)
	require.NoError(t, err)
	assert.Equal(t, before, c.OutputHistory())

	// The impulse response of a well damped biquad has decayed long before
	// 4096 samples, so the bins match the analytic response.
	freqs := r.Frequencies()
	for _, k := range []int{0, 93, 279, 929, 2048} {
		assert.InDelta(t, cmplx.Abs(c.Response(freqs[k])), cmplx.Abs(r.Bins[k]), 1e-9, "bin %d", k)
	}
}

func TestFilterResponse_GroupDelayOfDelay(t *testing.T) {
	f, err := fir.New([]float64{0, 0, 1})
	require.NoError(t, err)

	r, err := FilterResponse(f, 64)
	require.NoError(t, err)
	gd, err := r.GroupDelay()
	require.NoError(t, err)
	for i, v := range gd {
		assert.InDelta(t, 2.0, v, 1e-9, "bin %d", i)
	}
}

func TestFilterResponse_Errors(t *testing.T) {
	f, err := fir.New([]float64{1})
	require.NoError(t, err)

	_, err = FilterResponse(f, 1)
	require.ErrorIs(t, err, ErrInvalidFFTSize)

	_, err = FilterResponse(nil, 64)
	require.ErrorIs(t, err, filter.ErrNilFilter)

	var typed *fir.Filter
	_, err = FilterResponse(typed, 64)
	require.ErrorIs(t, err, filter.ErrNilFilter)
}

func TestResponseAt_Clamps(t *testing.T) {
	r := &Response{SampleRate: 8, FFTSize: 8, Bins: []complex128{0, 1, 2, 3, 4}}
	assert.Equal(t, complex128(0), r.At(-100))
	assert.Equal(t, complex128(2), r.At(2.2))
	assert.Equal(t, complex128(4), r.At(1000))
}
