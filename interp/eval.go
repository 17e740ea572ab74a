// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Snap reports whether pos lies within Epsilon of its truncated integer and,
// if so, returns that integer. Positions slightly below an integer are not
// snapped up; they interpolate like any other fractional position.
func Snap[F constraints.Float](pos F) (int, bool) {
	whole := math.Trunc(float64(pos))
	if math.Abs(float64(pos)-whole) < Epsilon {
		return int(whole), true
	}

	return 0, false
}

// InRange reports whether pos is a legal position for n points, i.e. 0 ≤ pos ≤ n-1.
func InRange[F constraints.Float](pos F, n int) bool {
	if math.IsNaN(float64(pos)) {
		return false
	}

	return pos >= 0 && pos <= F(n-1)
}

// Eval samples the curve selected by mode through pts at position pos.
//
// Implementation:
//   - Stage 1: reject pos outside [0, len(pts)-1] with ErrOutOfRange.
//   - Stage 2: return pts[i] unchanged when pos snaps to an integer i.
//   - Stage 3: check the mode and its minimum point count, then run the kernel.
//
// Errors:
//   - ErrOutOfRange, ErrInsufficientPoints, ErrInterpolationMode (all wrapped).
//
// Complexity:
//   - O(1) for the piecewise modes, O(n²) for Lagrange.
func Eval[F constraints.Float](mode Mode, pts []F, pos F) (F, error) {
	n := len(pts)
	if !InRange(pos, n) {
		return 0, fmt.Errorf("Eval(%s, n=%d, pos=%v): %w", mode, n, pos, ErrOutOfRange)
	}
	if i, ok := Snap(pos); ok {
		return pts[i], nil
	}

	return evalCurve(mode, pts, pos)
}

// evalCurve dispatches to the kernel for mode. pos must already be in range
// and not integral.
func evalCurve[F constraints.Float](mode Mode, pts []F, pos F) (F, error) {
	if !mode.Valid() {
		return 0, fmt.Errorf("Eval(%s): %w", mode, ErrInterpolationMode)
	}
	if len(pts) < mode.MinPoints() {
		return 0, fmt.Errorf("Eval(%s): have %d points, need %d: %w",
			mode, len(pts), mode.MinPoints(), ErrInsufficientPoints)
	}

	switch mode {
	case Linear:
		return linear(pts, pos), nil
	case Bezier2:
		return bezier2(pts, pos), nil
	case Bezier3:
		return bezier3(pts, pos), nil
	case CatmullRom:
		return catmullRom(pts, pos), nil
	case Lagrange:
		return lagrange(pts, pos), nil
	default:
		return 0, fmt.Errorf("Eval(%s): %w", mode, ErrInterpolationMode)
	}
}

// linear blends the two neighbours of pos.
func linear[F constraints.Float](pts []F, pos F) F {
	ind := int(pos)
	t := pos - F(ind)

	return (1-t)*pts[ind] + t*pts[ind+1]
}

// bezier2 evaluates the quadratic segment anchored at the even index below pos.
// When that segment would run past the last point the anchor moves back by one
// and t absorbs the half step.
func bezier2[F constraints.Float](pts []F, pos F) F {
	n := len(pts)
	ind := (int(pos) / 2) * 2
	t := (pos - F(ind)) / 2
	if ind >= n-2 {
		ind--
		t += 0.5
	}

	return quad(pts[ind], pts[ind+1], pts[ind+2], t)
}

// bezier3 evaluates the cubic segment anchored at the multiple of three below
// pos, shifting the anchor back by one or two points near the end.
func bezier3[F constraints.Float](pts []F, pos F) F {
	n := len(pts)
	ind := (int(pos) / 3) * 3
	t := (pos - F(ind)) / 3
	switch ind {
	case n - 3:
		ind--
		t += F(1) / 3
	case n - 2:
		ind -= 2
		t += F(2) / 3
	}
	u := 1 - t

	// De Casteljau: two quadratic blends combined linearly.
	return quad(pts[ind], pts[ind+1], pts[ind+2], t)*u +
		quad(pts[ind+1], pts[ind+2], pts[ind+3], t)*t
}

// quad is the quadratic Bezier blend of (a, b, c) at t.
func quad[F constraints.Float](a, b, c, t F) F {
	u := 1 - t

	return (a*u+b*t)*u + (b*u+c*t)*t
}

// catmullRom evaluates the Catmull–Rom basis on the four points starting at
// floor(pos), pulling the window back so it never passes the last point.
func catmullRom[F constraints.Float](pts []F, pos F) F {
	n := len(pts)
	ind := int(pos)
	t := pos - F(ind)
	switch ind {
	case n - 3:
		ind--
	case n - 2:
		ind -= 2
	}
	t2 := t * t
	t3 := t2 * t

	return 0.5 * ((-t3+2*t2-t)*pts[ind] +
		(3*t3-5*t2+2)*pts[ind+1] +
		(-3*t3+4*t2+t)*pts[ind+2] +
		(t3-t2)*pts[ind+3])
}

// lagrange sums every point weighted by its Lagrange basis polynomial at pos,
// using the point indices as abscissas.
func lagrange[F constraints.Float](pts []F, pos F) F {
	n := len(pts)
	var result F
	for i := 0; i < n; i++ {
		factor := F(1)
		for j := 0; j < n; j++ {
			if i != j {
				factor *= (pos - F(j)) / F(i-j)
			}
		}
		result += factor * pts[i]
	}

	return result
}
