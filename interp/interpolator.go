// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Interpolator binds a copy of a point sequence to a Mode so the mode and
// point-count checks run once, at construction.
type Interpolator[F constraints.Float] struct {
	pts  []F
	mode Mode
}

// New validates mode against len(points) and returns an Interpolator over a
// private copy of points.
//
// Errors:
//   - ErrInterpolationMode when mode is None or unknown.
//   - ErrInsufficientPoints when len(points) < mode.MinPoints().
func New[F constraints.Float](points []F, mode Mode) (*Interpolator[F], error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("New(%s): %w", mode, ErrInterpolationMode)
	}
	if len(points) < mode.MinPoints() {
		return nil, fmt.Errorf("New(%s): have %d points, need %d: %w",
			mode, len(points), mode.MinPoints(), ErrInsufficientPoints)
	}
	cp := make([]F, len(points))
	copy(cp, points)

	return &Interpolator[F]{pts: cp, mode: mode}, nil
}

// Mode returns the bound curve mode.
func (ip *Interpolator[F]) Mode() Mode { return ip.mode }

// Len returns the number of control points.
func (ip *Interpolator[F]) Len() int { return len(ip.pts) }

// Eval evaluates the curve at x. See the package Eval for the contract.
func (ip *Interpolator[F]) Eval(x F) (F, error) {
	return Eval(ip.mode, ip.pts, x)
}

// EvalAll evaluates the curve at each of xs. An optional output slice can be
// supplied to avoid an allocation; it must have len(xs) elements.
// The first failing position aborts the call.
func (ip *Interpolator[F]) EvalAll(xs []F, out ...[]F) ([]F, error) {
	var res []F
	switch {
	case len(out) == 0:
		res = make([]F, len(xs))
	case len(out[0]) != len(xs):
		return nil, fmt.Errorf("EvalAll: output has %d slots for %d positions: %w",
			len(out[0]), len(xs), ErrBadSampleCount)
	default:
		res = out[0]
	}

	for i, x := range xs {
		y, err := ip.Eval(x)
		if err != nil {
			return nil, err
		}
		res[i] = y
	}

	return res, nil
}

// Resample evaluates the curve through points at n evenly spaced positions
// covering [0, len(points)-1]; the first and last samples are the end points.
//
// Errors:
//   - ErrBadSampleCount when n < 2.
//   - any error New would return for (points, mode).
func Resample[F constraints.Float](points []F, mode Mode, n int) ([]F, error) {
	if n < 2 {
		return nil, fmt.Errorf("Resample(n=%d): %w", n, ErrBadSampleCount)
	}
	ip, err := New(points, mode)
	if err != nil {
		return nil, err
	}

	span := float64(len(points) - 1)
	xs := make([]F, n)
	for i := range xs {
		xs[i] = F(span * float64(i) / float64(n-1))
	}
	xs[n-1] = F(span) // pin the end against rounding

	return ip.EvalAll(xs)
}
