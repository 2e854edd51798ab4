// Command filterinfo designs a filter and prints its coefficients and
// sampled magnitude response.
//
// Usage:
//
//	filterinfo [flags] <kind>
//
// Examples:
//
//	filterinfo lowpass --order 32 --cutoff 2000
//	filterinfo bandpass --cutoff 300 --high 3400 --window hamming
//	filterinfo highpass --engine iir --cutoff 80 --ripple 0.5
//	filterinfo lowpass --engine iir --cutoff 3000 --coeffs
package main

import (
	"os"

	"github.com/alecthomas/kong"
)

var version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Version    bool    `short:"v" help:"Show version information"`
	Engine     string  `short:"e" enum:"fir,iir" default:"fir" help:"Filter engine: windowed-sinc FIR or Chebyshev I biquad (fir, iir)"`
	Order      int     `short:"o" default:"32" help:"FIR order (taps - 1)"`
	Cutoff     float64 `short:"c" default:"2250" help:"Cutoff, or lower band edge, in Hz"`
	High       float64 `default:"4500" help:"Upper band edge in Hz for bandpass/bandstop"`
	Ripple     float64 `default:"1" help:"Chebyshev passband ripple in dB"`
	SampleRate float64 `short:"r" name:"sample-rate" default:"44100" help:"Sample rate in Hz"`
	Window     string  `short:"w" default:"rectangular" help:"FIR window taper (rectangular, hann, hamming, blackman, kaiser, triangle)"`
	FFT        int     `default:"1024" help:"FFT size used to sample the response"`
	Points     int     `short:"n" default:"16" help:"Number of response rows to print"`
	Coeffs     bool    `help:"Print the coefficients"`
	Kind       string  `arg:"" optional:"" help:"Response type: lowpass, highpass, bandpass or bandstop"`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("filterinfo"),
		kong.Description("Design a digital filter and print its response"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	if cliArgs.Version {
		printVersion(os.Stdout, version)
		os.Exit(0)
	}

	if cliArgs.Kind == "" {
		printError("no filter kind specified")
		_ = ctx.PrintUsage(false)
		os.Exit(1)
	}

	f, err := cliArgs.build()
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}

	if err := report(os.Stdout, f, cliArgs.FFT, cliArgs.Points, cliArgs.Coeffs); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}
