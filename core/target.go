package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTarget is returned when a name does not denote a target color
var ErrUnknownTarget = errors.New("unknown target color")

// Target is the color the player must currently present
type Target uint8

const (
	TargetRed Target = iota
	TargetGreen
	TargetBlue
	targetCount
)

// Targets lists every valid target in draw order
var Targets = [targetCount]Target{TargetRed, TargetGreen, TargetBlue}

var targetNames = [targetCount]string{"RED", "GREEN", "BLUE"}

// Ideal reference colors used for distance scoring
var targetReferences = [targetCount]RGB{
	{220, 30, 30},
	{30, 220, 30},
	{30, 30, 220},
}

// DefaultTarget is the fallback for out-of-range values
const DefaultTarget = TargetGreen

// Valid reports whether t is one of the closed target set
func (t Target) Valid() bool {
	return t < targetCount
}

// String returns the display name, e.g. "RED"
func (t Target) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Target(%d)", uint8(t))
	}
	return targetNames[t]
}

// Reference returns the ideal color for the target
// Out-of-range values fall back to the DefaultTarget reference
func (t Target) Reference() RGB {
	if !t.Valid() {
		return targetReferences[DefaultTarget]
	}
	return targetReferences[t]
}

// Channel returns the mean value of the target's own channel and the two others
// ok is false for out-of-range values
func (t Target) Channel(m MeanRGB) (own, other1, other2 float64, ok bool) {
	switch t {
	case TargetRed:
		return m.R, m.G, m.B, true
	case TargetGreen:
		return m.G, m.R, m.B, true
	case TargetBlue:
		return m.B, m.R, m.G, true
	}
	return 0, 0, 0, false
}

// ParseTarget resolves a case-insensitive color name
func ParseTarget(name string) (Target, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range targetNames {
		if n == upper {
			return Target(i), nil
		}
	}
	return DefaultTarget, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
}
