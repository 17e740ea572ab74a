// SPDX-License-Identifier: MIT

package bitvec

// Ref addresses one bit inside a BitVector's byte storage. It is a small
// value: copying a Ref copies the address, not the bit. A Ref does not keep
// the vector alive in any useful sense; once the vector is released or moved
// from, writes through old Refs are no longer observed by it.
type Ref struct {
	b     *byte
	shift uint8 // 0..7
}

// Get reports whether the bit is set.
func (r Ref) Get() bool {
	return *r.b&(1<<r.shift) != 0
}

// Set sets or clears the bit, leaving the other seven bits of the byte alone,
// and returns r so writes can be chained.
func (r Ref) Set(v bool) Ref {
	if v {
		*r.b |= 1 << r.shift
	} else {
		*r.b &^= 1 << r.shift
	}

	return r
}

// Assign copies the value of the bit behind o into r and returns r.
func (r Ref) Assign(o Ref) Ref {
	return r.Set(o.Get())
}

// Toggle flips the bit and returns r.
func (r Ref) Toggle() Ref {
	*r.b ^= 1 << r.shift

	return r
}
