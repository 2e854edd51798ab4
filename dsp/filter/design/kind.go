package design

import (
	"fmt"
	"strings"
)

// Kind selects the frequency response a designer produces.
type Kind int

const (
	Lowpass Kind = iota
	Highpass
	Bandpass
	Bandstop
)

var kindNames = [...]string{
	Lowpass:  "lowpass",
	Highpass: "highpass",
	Bandpass: "bandpass",
	Bandstop: "bandstop",
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsBand reports whether k is described by two cutoff frequencies.
func (k Kind) IsBand() bool {
	return k == Bandpass || k == Bandstop
}

// ParseKind maps a name such as "lowpass" or "band-stop" to a Kind.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for k, name := range kindNames {
		if norm == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("design: unknown filter kind %q", s)
}
