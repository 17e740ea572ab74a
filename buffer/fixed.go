// SPDX-License-Identifier: MIT

package buffer

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRef = "Ref" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// fixedErrorf wraps an error with a uniform Fixed context and the offending index.
func fixedErrorf(method string, i int, err error) error {
	return fmt.Errorf("Fixed.%s(%d): %w", method, i, err)
}

// Fixed is a flat buffer of n elements of type T.
//   - n is set once at construction and never changes.
//   - data is allocated by make and therefore zero-filled.
type Fixed[T any] struct {
	n    int // element count (> 0)
	data []T // contiguous storage (len == n)
}

var _ fmt.Stringer = (*Fixed[int])(nil)

// NewFixed allocates a zero-filled buffer of n elements.
//
// Implementation:
//   - Stage 1: validate n > 0; else ErrBadLength.
//   - Stage 2: allocate the backing slice (make zero-fills it).
//
// Errors:
//   - ErrBadLength (wrapped with the requested length).
//
// Complexity:
//   - Time O(n), Space O(n).
func NewFixed[T any](n int) (*Fixed[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewFixed(%d): %w", n, ErrBadLength)
	}

	return &Fixed[T]{n: n, data: make([]T, n)}, nil
}

// Len returns the element count. Complexity: O(1).
func (f *Fixed[T]) Len() int { return f.n }

// indexOf validates i against [0, n).
func (f *Fixed[T]) indexOf(i int) (int, error) {
	if i < 0 || i >= f.n {
		return 0, ErrOutOfRange
	}

	return i, nil
}

// At returns the element at i or ErrOutOfRange.
// Complexity: O(1).
func (f *Fixed[T]) At(i int) (T, error) {
	off, err := f.indexOf(i)
	if err != nil {
		var zero T

		return zero, fixedErrorf(ctxAt, i, err)
	}

	return f.data[off], nil
}

// Set stores v at i or returns ErrOutOfRange.
// Complexity: O(1).
func (f *Fixed[T]) Set(i int, v T) error {
	off, err := f.indexOf(i)
	if err != nil {
		return fixedErrorf(ctxSet, i, err)
	}
	f.data[off] = v

	return nil
}

// Ref returns a live pointer to the element at i.
// Writes through the pointer are visible to every later At on this buffer;
// the pointer must not be retained once the owning container drops the buffer.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Len()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (f *Fixed[T]) Ref(i int) (*T, error) {
	off, err := f.indexOf(i)
	if err != nil {
		return nil, fixedErrorf(ctxRef, i, err)
	}

	return &f.data[off], nil
}

// Clone returns a deep copy with its own backing slice.
// Complexity: O(n).
func (f *Fixed[T]) Clone() *Fixed[T] {
	cp := make([]T, f.n)
	copy(cp, f.data)

	return &Fixed[T]{n: f.n, data: cp}
}

// Fill assigns v to every element.
func (f *Fixed[T]) Fill(v T) {
	for i := range f.data {
		f.data[i] = v
	}
}

// Values returns a copy of the stored elements in index order.
func (f *Fixed[T]) Values() []T {
	out := make([]T, f.n)
	copy(out, f.data)

	return out
}

// View exposes the backing slice without copying. Callers must not append to
// it or keep it past the buffer's lifetime; it exists for read-only numeric
// kernels that would otherwise pay for Values on every call.
func (f *Fixed[T]) View() []T { return f.data }

// CopyFrom copies min(len(src), Len()) elements from src into the buffer and
// returns the number copied.
func (f *Fixed[T]) CopyFrom(src []T) int {
	return copy(f.data, src)
}

// String renders the buffer as "[a, b, c]" for diagnostics.
// Complexity: O(n).
func (f *Fixed[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < f.n; i++ {
		b.WriteString(fmt.Sprint(f.data[i]))
		if i+1 < f.n {
			b.WriteString(_fmtSep)
		}
	}
	b.WriteString(_fmtClose)

	return b.String()
}
