package main

import (
	"fmt"

	"github.com/admacollub/JPO-DSP-lib/dsp/core"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter/design"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter/fir"
	"github.com/admacollub/JPO-DSP-lib/dsp/filter/iir"
	"github.com/admacollub/JPO-DSP-lib/dsp/window"
)

// build designs the filter described by the command-line flags.
func (c *CLI) build() (filter.Filter, error) {
	kind, err := design.ParseKind(c.Kind)
	if err != nil {
		return nil, err
	}
	opts := []core.Option{core.WithSampleRate(c.SampleRate)}

	switch c.Engine {
	case "iir":
		var ch *iir.Chebyshev
		switch kind {
		case design.Lowpass:
			ch, err = iir.NewChebyshevLowpass(2, c.Cutoff, c.Ripple, opts...)
		case design.Highpass:
			ch, err = iir.NewChebyshevHighpass(2, c.Cutoff, c.Ripple, opts...)
		default:
			return nil, fmt.Errorf("iir engine supports lowpass and highpass only, not %s", kind)
		}
		if err != nil {
			return nil, err
		}
		return ch, nil
	case "fir", "":
		d, err := c.buildFIR(kind, opts)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown engine %q", c.Engine)
	}
}

func (c *CLI) buildFIR(kind design.Kind, opts []core.Option) (*fir.Designed, error) {
	win, err := window.Parse(c.Window)
	if err != nil {
		return nil, err
	}

	var d *fir.Designed
	switch kind {
	case design.Lowpass:
		d, err = fir.NewLowpass(c.Order, c.Cutoff, opts...)
	case design.Highpass:
		d, err = fir.NewHighpass(c.Order, c.Cutoff, opts...)
	case design.Bandpass:
		d, err = fir.NewBandpass(c.Order, c.Cutoff, c.High, opts...)
	case design.Bandstop:
		d, err = fir.NewBandstop(c.Order, c.Cutoff, c.High, opts...)
	}
	if err != nil {
		return nil, err
	}

	if win != window.TypeRectangular {
		if err := d.SetDesignOptions(design.WithWindow(win)); err != nil {
			return nil, err
		}
	}
	return d, nil
}
