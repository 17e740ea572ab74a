// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvvec/buffer"
	"github.com/katalvlaran/lvvec/internal/logging"
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxRef        = "Ref"
	ctxFill       = "Fill"
	ctxClone      = "Clone"
	ctxMove       = "Move"
	ctxAssign     = "Assign"
	ctxAssignMove = "AssignMove"
)

// state is the lifecycle tag of a vector. The zero value is released, so a
// zero Vector behaves like one whose storage was already dropped.
type state uint8

const (
	released state = iota // no storage: never built, released, or moved out
	active                // storage owned and addressable
)

// Vector is a fixed-capacity array of T.
//   - buf is exclusively owned; nil once released.
//   - capacity is fixed while active and 0 once released.
type Vector[T any] struct {
	buf      *buffer.Fixed[T]
	capacity int
	state    state
	log      *logging.Logger
}

var _ fmt.Stringer = (*Vector[int])(nil)

// vectorErrorf wraps err with the method name and index or capacity argument.
func vectorErrorf(method string, arg int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, arg, err)
}

// New allocates a Vector of capacity zero-valued elements.
//
// Implementation:
//   - Stage 1: resolve options.
//   - Stage 2: allocate the backing buffer; capacity <= 0 fails.
//
// Errors:
//   - ErrConstruction (wrapping buffer.ErrBadLength).
//
// Complexity:
//   - Time O(capacity), Space O(capacity).
func New[T any](capacity int, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)

	return newVector[T](capacity, o)
}

// NewDefault is New(DefaultCapacity, opts...).
func NewDefault[T any](opts ...Option) (*Vector[T], error) {
	return New[T](DefaultCapacity, opts...)
}

func newVector[T any](capacity int, o Options) (*Vector[T], error) {
	buf, err := buffer.NewFixed[T](capacity)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w: %w", ctxNew, capacity, ErrConstruction, err)
	}
	o.logger.LogLifecycle("construct", capacity)

	return &Vector[T]{buf: buf, capacity: capacity, state: active, log: o.logger}, nil
}

// Size returns the capacity. Every slot counts as present, so there is no
// separate logical length. A released vector reports 0.
func (v *Vector[T]) Size() int { return v.capacity }

// Released reports whether the storage was released or moved out.
func (v *Vector[T]) Released() bool { return v.state == released }

// live returns ErrReleased for a released vector.
func (v *Vector[T]) live(method string) error {
	if v.state == released {
		return fmt.Errorf("Vector.%s: %w", method, ErrReleased)
	}

	return nil
}

// At returns the element at i.
//
// Errors:
//   - ErrIndex when i is outside [0, Size()).
//   - ErrReleased after Release or Move.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.live(ctxAt); err != nil {
		var zero T

		return zero, err
	}
	x, err := v.buf.At(i)
	if err != nil {
		return x, vectorErrorf(ctxAt, i, fmt.Errorf("%w: %w", ErrIndex, err))
	}

	return x, nil
}

// Ref returns a live pointer to the element at i. Writes through it are seen
// by later reads. The pointer is only meaningful while the vector stays active;
// after Move it aliases the new owner's storage.
//
// Errors:
//   - ErrIndex, ErrReleased.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := v.live(ctxRef); err != nil {
		return nil, err
	}
	p, err := v.buf.Ref(i)
	if err != nil {
		return nil, vectorErrorf(ctxRef, i, fmt.Errorf("%w: %w", ErrIndex, err))
	}

	return p, nil
}

// Set stores x at i.
//
// Errors:
//   - ErrIndex, ErrReleased.
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.live(ctxSet); err != nil {
		return err
	}
	if err := v.buf.Set(i, x); err != nil {
		return vectorErrorf(ctxSet, i, fmt.Errorf("%w: %w", ErrIndex, err))
	}

	return nil
}

// Fill assigns x to every element.
func (v *Vector[T]) Fill(x T) error {
	if err := v.live(ctxFill); err != nil {
		return err
	}
	v.buf.Fill(x)

	return nil
}

// Values returns a copy of the elements in index order, or nil once released.
func (v *Vector[T]) Values() []T {
	if v.state == released {
		return nil
	}

	return v.buf.Values()
}

// All iterates (index, element) pairs. A released vector yields nothing.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v.state == released {
			return
		}
		for i, x := range v.buf.View() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Clone returns an independent deep copy (copy construction).
// Complexity: O(capacity).
func (v *Vector[T]) Clone() (*Vector[T], error) {
	if err := v.live(ctxClone); err != nil {
		return nil, err
	}
	v.log.LogLifecycle("clone", v.capacity)

	return &Vector[T]{buf: v.buf.Clone(), capacity: v.capacity, state: active, log: v.log}, nil
}

// Move transfers the storage into a new Vector (move construction). The
// receiver is left released: Size() == 0 and accesses fail with ErrReleased.
// Complexity: O(1).
func (v *Vector[T]) Move() (*Vector[T], error) {
	if err := v.live(ctxMove); err != nil {
		return nil, err
	}
	v.log.LogLifecycle("move", v.capacity)
	dst := &Vector[T]{buf: v.buf, capacity: v.capacity, state: active, log: v.log}
	v.buf, v.capacity, v.state = nil, 0, released

	return dst, nil
}

// Assign makes the receiver a deep copy of src (copy assignment): src is
// cloned into a temporary, the temporary is swapped in, and the receiver's
// previous storage is released with the temporary.
//
// Errors:
//   - ErrReleased when src is released; the receiver is then unchanged.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	tmp, err := src.Clone()
	if err != nil {
		return fmt.Errorf("Vector.%s: %w", ctxAssign, err)
	}
	tmp.Swap(v)
	tmp.Release()

	return nil
}

// AssignMove moves src's storage into the receiver (move assignment). src is
// left released. Assigning a vector to itself is a no-op.
//
// Errors:
//   - ErrReleased when src is released; the receiver is then unchanged.
func (v *Vector[T]) AssignMove(src *Vector[T]) error {
	if src == v {
		return nil
	}
	tmp, err := src.Move()
	if err != nil {
		return fmt.Errorf("Vector.%s: %w", ctxAssignMove, err)
	}
	tmp.Swap(v)
	tmp.Release()

	return nil
}

// Swap exchanges storage, capacity and lifecycle state with other in O(1).
// Loggers stay with their vectors.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.capacity, other.capacity = other.capacity, v.capacity
	v.state, other.state = other.state, v.state
}

// Release drops the storage. Size() becomes 0 and every accessor fails with
// ErrReleased. Releasing twice is a no-op.
func (v *Vector[T]) Release() {
	if v.state == released {
		return
	}
	v.log.LogLifecycle("release", v.capacity)
	v.buf, v.capacity, v.state = nil, 0, released
}

// String renders the elements as "[a, b, c]", or "[released]".
func (v *Vector[T]) String() string {
	if v.state == released {
		return "[released]"
	}

	return v.buf.String()
}
