// SPDX-License-Identifier: MIT

package bitvec

import "errors"

var (
	// ErrConstruction is returned when a bit vector cannot be built (capacity <= 0).
	ErrConstruction = errors.New("bitvec: bad constructing")

	// ErrReleased indicates use of a vector whose storage was released or moved out.
	ErrReleased = errors.New("bitvec: storage released")

	// ErrOutOfRange indicates an imported bit index >= capacity.
	ErrOutOfRange = errors.New("bitvec: bit index out of range")
)
