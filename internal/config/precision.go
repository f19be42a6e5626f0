package config

import (
	"fmt"
	"strings"
)

// PrecisionPreset scales how far one key press moves or turns a shape.
type PrecisionPreset string

const (
	PrecisionFine   PrecisionPreset = "fine"
	PrecisionNormal PrecisionPreset = "normal"
	PrecisionCoarse PrecisionPreset = "coarse"
)

// ParsePrecision converts a string to a PrecisionPreset.
// Empty input means PrecisionNormal.
func ParsePrecision(s string) (PrecisionPreset, error) {
	switch p := PrecisionPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PrecisionNormal, nil
	case PrecisionFine, PrecisionNormal, PrecisionCoarse:
		return p, nil
	default:
		return "", fmt.Errorf("unknown precision %q (want fine, normal or coarse)", s)
	}
}

// Factor returns the multiplier applied to the configured steps.
func (p PrecisionPreset) Factor() float64 {
	switch p {
	case PrecisionFine:
		return 0.2
	case PrecisionCoarse:
		return 3
	default:
		return 1
	}
}

// ApplyPrecision scales the move and rotate steps by the preset's factor.
func ApplyPrecision(v *ViewSettings, p PrecisionPreset) {
	f := p.Factor()
	v.Step *= f
	v.SpinStepDeg *= f
}
