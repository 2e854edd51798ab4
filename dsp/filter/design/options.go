package design

import "github.com/admacollub/JPO-DSP-lib/dsp/window"

// Option configures the windowed-sinc FIR designers.
//
// Without options the taps are the plain truncated sinc (rectangular
// window), exactly as given by the closed-form formulas.
type Option func(*firConfig)

type firConfig struct {
	window     window.Type
	windowOpts []window.Option
}

// WithWindow tapers the truncated sinc with the given window before any
// normalisation. Window options (for example Kaiser beta via
// window.WithAlpha) are passed through.
func WithWindow(t window.Type, opts ...window.Option) Option {
	wopts := append([]window.Option(nil), opts...)
	return func(c *firConfig) {
		c.window = t
		c.windowOpts = wopts
	}
}

func applyOptions(opts []Option) firConfig {
	cfg := firConfig{window: window.TypeRectangular}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}
