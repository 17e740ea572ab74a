// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvvec/interp"
	"golang.org/x/exp/constraints"
)

const (
	ctxAtFrac   = "AtFrac"
	ctxResample = "Resample"
)

// Float is a Vector of floating-point elements that can also be read at
// fractional positions. The elements are treated as samples at x = 0, 1, …,
// Size()-1 and the selected interp.Mode decides the curve between them.
type Float[F constraints.Float] struct {
	*Vector[F]
	mode interp.Mode
}

// NewFloat allocates a zero-filled Float. The initial mode comes from
// WithMode and defaults to interp.None.
//
// Errors:
//   - ErrConstruction when capacity <= 0.
func NewFloat[F constraints.Float](capacity int, opts ...Option) (*Float[F], error) {
	o := gatherOptions(opts...)
	v, err := newVector[F](capacity, o)
	if err != nil {
		return nil, err
	}

	return &Float[F]{Vector: v, mode: o.mode}, nil
}

// NewFloatDefault is NewFloat(DefaultCapacity, opts...).
func NewFloatDefault[F constraints.Float](opts ...Option) (*Float[F], error) {
	return NewFloat[F](DefaultCapacity, opts...)
}

// SetInterpolation selects the curve for AtFrac. The value is stored as is;
// an unknown mode is only reported when AtFrac needs it.
func (f *Float[F]) SetInterpolation(mode interp.Mode) { f.mode = mode }

// Interpolation returns the selected curve mode.
func (f *Float[F]) Interpolation() interp.Mode { return f.mode }

// AtFrac reads the vector at a fractional position.
//
// Implementation:
//   - Stage 1: reject pos outside [0, Size()-1] with ErrIndex.
//   - Stage 2: a pos within interp.Epsilon of an integer returns that element.
//   - Stage 3: otherwise evaluate the selected curve.
//
// Errors:
//   - ErrIndex, ErrInsufficientPoints, ErrInterpolationMode, ErrReleased.
//
// Complexity:
//   - O(1) for the piecewise modes, O(Size()²) for interp.Lagrange.
func (f *Float[F]) AtFrac(pos F) (F, error) {
	if err := f.live(ctxAtFrac); err != nil {
		return 0, err
	}
	y, err := interp.Eval(f.mode, f.buf.View(), pos)
	if err != nil {
		if errors.Is(err, interp.ErrOutOfRange) {
			return 0, fmt.Errorf("Float.%s(%v): %w: %w", ctxAtFrac, pos, ErrIndex, err)
		}

		return 0, fmt.Errorf("Float.%s(%v): %w", ctxAtFrac, pos, err)
	}

	return y, nil
}

// Resample evaluates the current curve at n evenly spaced positions covering
// [0, Size()-1].
//
// Errors:
//   - interp.ErrBadSampleCount when n < 2.
//   - ErrInsufficientPoints, ErrInterpolationMode, ErrReleased.
func (f *Float[F]) Resample(n int) ([]F, error) {
	if err := f.live(ctxResample); err != nil {
		return nil, err
	}
	ys, err := interp.Resample(f.buf.View(), f.mode, n)
	if err != nil {
		return nil, fmt.Errorf("Float.%s(%d): %w", ctxResample, n, err)
	}

	return ys, nil
}

// Clone returns an independent deep copy carrying the same mode.
func (f *Float[F]) Clone() (*Float[F], error) {
	v, err := f.Vector.Clone()
	if err != nil {
		return nil, err
	}

	return &Float[F]{Vector: v, mode: f.mode}, nil
}

// Move transfers storage and mode into a new Float. The receiver is left
// released with mode interp.None.
func (f *Float[F]) Move() (*Float[F], error) {
	v, err := f.Vector.Move()
	if err != nil {
		return nil, err
	}
	dst := &Float[F]{Vector: v, mode: f.mode}
	f.mode = interp.None

	return dst, nil
}

// Assign makes the receiver a deep copy of src, mode included.
func (f *Float[F]) Assign(src *Float[F]) error {
	tmp, err := src.Clone()
	if err != nil {
		return fmt.Errorf("Float.%s: %w", ctxAssign, err)
	}
	tmp.Swap(f)
	tmp.Release()

	return nil
}

// AssignMove moves src's storage and mode into the receiver; src is left
// released. Assigning a Float to itself is a no-op.
func (f *Float[F]) AssignMove(src *Float[F]) error {
	if src == f {
		return nil
	}
	tmp, err := src.Move()
	if err != nil {
		return fmt.Errorf("Float.%s: %w", ctxAssignMove, err)
	}
	tmp.Swap(f)
	tmp.Release()

	return nil
}

// Swap exchanges storage, capacity, lifecycle state and mode with other.
func (f *Float[F]) Swap(other *Float[F]) {
	f.Vector.Swap(other.Vector)
	f.mode, other.mode = other.mode, f.mode
}

// Release drops the storage and resets the mode to interp.None.
func (f *Float[F]) Release() {
	f.Vector.Release()
	f.mode = interp.None
}
