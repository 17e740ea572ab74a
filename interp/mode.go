// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"strings"
)

// Mode selects the curve used for fractional lookups.
//
// The set is closed: every switch over Mode in this package handles all
// named values and treats anything else exactly like None.
type Mode int

const (
	// None means no curve was selected; fractional lookups fail.
	None Mode = iota
	// Linear interpolates between the two neighbouring points.
	Linear
	// Bezier2 is a piecewise quadratic Bezier over consecutive point triples.
	Bezier2
	// Bezier3 is a piecewise cubic Bezier over consecutive point quadruples.
	Bezier3
	// CatmullRom is a cubic Catmull–Rom spline over a sliding 4-point window.
	CatmullRom
	// Lagrange is the global Lagrange polynomial through every point.
	Lagrange
)

// Epsilon is the distance from an integer under which a fractional position
// is read as that integer index.
const Epsilon = 1e-6

var modeNames = [...]string{
	None:       "none",
	Linear:     "linear",
	Bezier2:    "bezier2",
	Bezier3:    "bezier3",
	CatmullRom: "catmull-rom",
	Lagrange:   "lagrange",
}

// aliases accepted by ParseMode in addition to the canonical names.
var modeAliases = map[string]Mode{
	"lin":        Linear,
	"catrom":     CatmullRom,
	"catmullrom": CatmullRom,
	"lagran":     Lagrange,
}

// Modes lists every usable mode (None excluded) in declaration order.
func Modes() []Mode {
	return []Mode{Linear, Bezier2, Bezier3, CatmullRom, Lagrange}
}

// Valid reports whether m is one of the usable modes.
func (m Mode) Valid() bool {
	return m > None && m <= Lagrange
}

// MinPoints returns the smallest number of control points m can work with,
// or 0 for None and unknown values.
func (m Mode) MinPoints() int {
	switch m {
	case Linear, Lagrange:
		return 2
	case Bezier2:
		return 3
	case Bezier3, CatmullRom:
		return 4
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m >= None && m <= Lagrange {
		return modeNames[m]
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a case-insensitive name (canonical or alias) to a Mode.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == key {
			return Mode(m), nil
		}
	}
	if m, ok := modeAliases[key]; ok {
		return m, nil
	}

	return None, fmt.Errorf("ParseMode(%q): %w", s, ErrInterpolationMode)
}
