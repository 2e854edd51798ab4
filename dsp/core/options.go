package core

import (
	"errors"
	"fmt"
)

// DefaultSampleRate is the sampling frequency used when none is configured.
const DefaultSampleRate = 44100.0

var (
	// ErrInvalidConfig is the root of every configuration error.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidSampleRate reports a sample rate that is not finite and > 0.
	ErrInvalidSampleRate = fmt.Errorf("%w: sample rate must be finite and > 0", ErrInvalidConfig)

	// ErrEmptyName reports an empty filter or cascade name.
	ErrEmptyName = fmt.Errorf("%w: name must not be empty", ErrInvalidConfig)
)

// Config holds the identity shared by every filter and cascade.
type Config struct {
	SampleRate float64
	Name       string
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a Config at DefaultSampleRate with the given name.
func DefaultConfig(name string) Config {
	return Config{
		SampleRate: DefaultSampleRate,
		Name:       name,
	}
}

// WithSampleRate sets the sampling frequency in Hz. The value is stored as
// given; Validate rejects non-positive rates.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = sampleRate
	}
}

// WithName sets the display name.
func WithName(name string) Option {
	return func(cfg *Config) {
		cfg.Name = name
	}
}

// ApplyOptions applies zero or more options on top of base.
func ApplyOptions(base Config, opts ...Option) Config {
	cfg := base
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate checks that the sample rate is finite and positive and that the
// name is non-empty.
func (c Config) Validate() error {
	if err := ValidateSampleRate(c.SampleRate); err != nil {
		return err
	}
	return ValidateName(c.Name)
}

// ValidateSampleRate returns ErrInvalidSampleRate unless sampleRate is
// finite and positive.
func ValidateSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || !IsFinite(sampleRate) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	return nil
}

// ValidateName returns ErrEmptyName for "".
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	return nil
}
