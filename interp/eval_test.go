// SPDX-License-Identifier: MIT

package interp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvvec/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// ramp returns [0, 1, …, n-1].
func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

// TestEvalLinearMidpoint checks the straight-line blend on a tent shape.
func TestEvalLinearMidpoint(t *testing.T) {
	v, err := interp.Eval(interp.Linear, []float64{1, 3, 1}, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 2.0, v, tol)

	v, err = interp.Eval(interp.Linear, []float64{1, 3, 1}, 1.25)
	require.NoError(t, err)
	require.InDelta(t, 2.5, v, tol)
}

// TestEvalBezier2Tent checks the quadratic segment on [1,3,1]: the segment
// spans two index steps, so pos 0.5 sits at t=0.25.
func TestEvalBezier2Tent(t *testing.T) {
	pts := []float64{1, 3, 1}

	v, err := interp.Eval(interp.Bezier2, pts, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 1.75, v, tol)

	v, err = interp.Eval(interp.Bezier2, pts, 1.5)
	require.NoError(t, err)
	require.InDelta(t, 1.75, v, tol)
}

// TestEvalReproducesRamp verifies that the Bezier, Linear and Lagrange modes
// reproduce evenly spaced collinear points exactly, including the shifted
// end segments of the piecewise Bezier modes.
func TestEvalReproducesRamp(t *testing.T) {
	modes := []interp.Mode{interp.Linear, interp.Bezier2, interp.Bezier3, interp.Lagrange}
	for _, mode := range modes {
		for _, n := range []int{4, 5, 6, 7} {
			pts := ramp(n)
			for pos := 0.05; pos < float64(n-1); pos += 0.1 {
				v, err := interp.Eval(mode, pts, pos)
				require.NoError(t, err, "mode=%s n=%d pos=%v", mode, n, pos)
				assert.InDelta(t, pos, v, 1e-7, "mode=%s n=%d pos=%v", mode, n, pos)
			}
		}
	}
}

// TestEvalCatmullRomWindow checks the closed-form basis on y=x² samples.
// The window starts at floor(pos), and is pulled back to the last four
// points near the end, so 0.5 and 2.5 share the same window.
func TestEvalCatmullRomWindow(t *testing.T) {
	pts := []float64{0, 1, 4, 9}

	v, err := interp.Eval(interp.CatmullRom, pts, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 2.25, v, tol)

	v, err = interp.Eval(interp.CatmullRom, pts, 2.5)
	require.NoError(t, err)
	require.InDelta(t, 2.25, v, tol)

	// Constant data stays constant whatever the window.
	flat := []float64{7, 7, 7, 7, 7, 7}
	for _, pos := range []float64{0.3, 2.7, 3.5, 4.9} {
		v, err = interp.Eval(interp.CatmullRom, flat, pos)
		require.NoError(t, err)
		require.InDelta(t, 7.0, v, tol)
	}
}

// TestEvalLagrange covers the two-point degenerate case and a quadratic.
func TestEvalLagrange(t *testing.T) {
	v, err := interp.Eval(interp.Lagrange, []float64{2, 10}, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 6.0, v, tol)

	sq := []float64{0, 1, 4, 9, 16}
	for _, pos := range []float64{0.5, 1.5, 2.25, 3.75} {
		v, err = interp.Eval(interp.Lagrange, sq, pos)
		require.NoError(t, err)
		require.InDelta(t, pos*pos, v, 1e-9)
	}
}

// TestEvalSnapsToIntegers ensures integral positions bypass the curve, even
// with no mode selected.
func TestEvalSnapsToIntegers(t *testing.T) {
	pts := []float64{1, 3, 1}
	for _, mode := range append(interp.Modes(), interp.None, interp.Mode(42)) {
		v, err := interp.Eval(mode, pts, 1.0)
		require.NoError(t, err)
		require.Equal(t, 3.0, v)

		v, err = interp.Eval(mode, pts, 1e-7)
		require.NoError(t, err)
		require.Equal(t, 1.0, v)
	}
}

// TestEvalErrors walks the error taxonomy.
func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name string
		mode interp.Mode
		pts  []float64
		pos  float64
		want error
	}{
		{"negative", interp.Linear, []float64{1, 2}, -0.1, interp.ErrOutOfRange},
		{"past end", interp.Linear, []float64{1, 2}, 1.1, interp.ErrOutOfRange},
		{"nan", interp.Linear, []float64{1, 2}, math.NaN(), interp.ErrOutOfRange},
		{"none", interp.None, []float64{1, 2, 3}, 0.5, interp.ErrInterpolationMode},
		{"unknown", interp.Mode(42), []float64{1, 2, 3}, 0.5, interp.ErrInterpolationMode},
		{"bezier2 short", interp.Bezier2, []float64{1, 2}, 0.5, interp.ErrInsufficientPoints},
		{"bezier3 short", interp.Bezier3, []float64{1, 2, 3}, 0.5, interp.ErrInsufficientPoints},
		{"catmull-rom short", interp.CatmullRom, []float64{1, 2, 3}, 1.5, interp.ErrInsufficientPoints},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := interp.Eval(tc.mode, tc.pts, tc.pos)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestEvalFloat32 checks the generic path on float32 storage.
func TestEvalFloat32(t *testing.T) {
	v, err := interp.Eval(interp.Linear, []float32{0, 10}, float32(0.25))
	require.NoError(t, err)
	require.InDelta(t, 2.5, float64(v), 1e-6)
}
