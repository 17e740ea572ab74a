// SPDX-License-Identifier: MIT

package bitvec

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/lvvec/internal/logging"
)

// state is the lifecycle tag; the zero value is released.
type state uint8

const (
	released state = iota
	active
)

// BitVector is a fixed-capacity array of booleans stored one bit each.
type BitVector struct {
	data     []byte // capacity/8 + 1 bytes
	capacity int    // in bits
	state    state
	log      *logging.Logger
}

var _ fmt.Stringer = (*BitVector)(nil)

// storageLen is the byte count backing capacity bits, one slack byte included.
func storageLen(capacity int) int { return capacity/8 + 1 }

// New allocates a zeroed BitVector of capacity bits.
//
// Errors:
//   - ErrConstruction when capacity <= 0.
func New(capacity int, opts ...Option) (*BitVector, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("New(%d): %w", capacity, ErrConstruction)
	}
	o := gatherOptions(opts...)
	o.logger.LogLifecycle("construct", capacity)

	return &BitVector{
		data:     make([]byte, storageLen(capacity)),
		capacity: capacity,
		state:    active,
		log:      o.logger,
	}, nil
}

// NewDefault is New(DefaultCapacity, opts...).
func NewDefault(opts ...Option) (*BitVector, error) {
	return New(DefaultCapacity, opts...)
}

// Size returns the capacity in bits, or 0 once released.
func (bv *BitVector) Size() int { return bv.capacity }

// Released reports whether the storage was released or moved out.
func (bv *BitVector) Released() bool { return bv.state == released }

// At returns a Ref to bit i. There is no bounds check; see the package
// documentation for what happens outside [0, Size()).
func (bv *BitVector) At(i int) Ref {
	u := uint(i) // negative i becomes huge and trips the slice bounds check

	return Ref{b: &bv.data[u>>3], shift: uint8(u & 7)}
}

// Count returns the number of set bits among the first Size() bits.
func (bv *BitVector) Count() int {
	if bv.state == released {
		return 0
	}
	full := bv.capacity / 8
	n := 0
	for _, b := range bv.data[:full] {
		n += bits.OnesCount8(b)
	}
	if rem := bv.capacity % 8; rem != 0 {
		n += bits.OnesCount8(bv.data[full] & (1<<rem - 1))
	}

	return n
}

// Bytes returns a copy of the packed storage, slack byte included, or nil once released.
func (bv *BitVector) Bytes() []byte {
	if bv.state == released {
		return nil
	}
	out := make([]byte, len(bv.data))
	copy(out, bv.data)

	return out
}

// Clone returns an independent deep copy.
func (bv *BitVector) Clone() (*BitVector, error) {
	if bv.state == released {
		return nil, fmt.Errorf("BitVector.Clone: %w", ErrReleased)
	}
	bv.log.LogLifecycle("clone", bv.capacity)

	return &BitVector{data: bv.Bytes(), capacity: bv.capacity, state: active, log: bv.log}, nil
}

// Move transfers the storage into a new BitVector; the receiver is left released.
func (bv *BitVector) Move() (*BitVector, error) {
	if bv.state == released {
		return nil, fmt.Errorf("BitVector.Move: %w", ErrReleased)
	}
	bv.log.LogLifecycle("move", bv.capacity)
	dst := &BitVector{data: bv.data, capacity: bv.capacity, state: active, log: bv.log}
	bv.data, bv.capacity, bv.state = nil, 0, released

	return dst, nil
}

// Assign makes the receiver a deep copy of src.
func (bv *BitVector) Assign(src *BitVector) error {
	tmp, err := src.Clone()
	if err != nil {
		return fmt.Errorf("BitVector.Assign: %w", err)
	}
	tmp.Swap(bv)
	tmp.Release()

	return nil
}

// AssignMove moves src's storage into the receiver; src is left released.
// Assigning a vector to itself is a no-op.
func (bv *BitVector) AssignMove(src *BitVector) error {
	if src == bv {
		return nil
	}
	tmp, err := src.Move()
	if err != nil {
		return fmt.Errorf("BitVector.AssignMove: %w", err)
	}
	tmp.Swap(bv)
	tmp.Release()

	return nil
}

// Swap exchanges storage, capacity and lifecycle state with other in O(1).
func (bv *BitVector) Swap(other *BitVector) {
	bv.data, other.data = other.data, bv.data
	bv.capacity, other.capacity = other.capacity, bv.capacity
	bv.state, other.state = other.state, bv.state
}

// Release drops the storage. Releasing twice is a no-op.
func (bv *BitVector) Release() {
	if bv.state == released {
		return
	}
	bv.log.LogLifecycle("release", bv.capacity)
	bv.data, bv.capacity, bv.state = nil, 0, released
}

// String renders the first Size() bits as '0'/'1' characters, index 0 first.
func (bv *BitVector) String() string {
	if bv.state == released {
		return "[released]"
	}
	var b strings.Builder
	b.Grow(bv.capacity)
	for i := 0; i < bv.capacity; i++ {
		if bv.At(i).Get() {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}

// ToRoaring returns a roaring bitmap holding the indices of the set bits.
func (bv *BitVector) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for i := 0; i < bv.capacity; i++ {
		if bv.At(i).Get() {
			rb.Add(uint32(i))
		}
	}

	return rb
}

// FromRoaring builds a BitVector of capacity bits with the bits listed in rb set.
//
// Errors:
//   - ErrConstruction when capacity <= 0.
//   - ErrOutOfRange when rb holds an index >= capacity.
func FromRoaring(rb *roaring.Bitmap, capacity int, opts ...Option) (*BitVector, error) {
	bv, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	if !rb.IsEmpty() && int64(rb.Maximum()) >= int64(capacity) {
		return nil, fmt.Errorf("FromRoaring: index %d, capacity %d: %w", rb.Maximum(), capacity, ErrOutOfRange)
	}
	it := rb.Iterator()
	for it.HasNext() {
		bv.At(int(it.Next())).Set(true)
	}

	return bv, nil
}

// ToBitSet returns a bitset of length Size() with the same bits set.
func (bv *BitVector) ToBitSet() *bitset.BitSet {
	bs := bitset.New(uint(bv.capacity))
	for i := 0; i < bv.capacity; i++ {
		if bv.At(i).Get() {
			bs.Set(uint(i))
		}
	}

	return bs
}
