// SPDX-License-Identifier: MIT

package vector

import (
	"errors"

	"github.com/katalvlaran/lvvec/interp"
)

var (
	// ErrConstruction is returned when a vector cannot be built (capacity <= 0).
	ErrConstruction = errors.New("vector: bad constructing")

	// ErrIndex indicates an integer index outside [0, capacity) or a fractional
	// position outside [0, capacity-1].
	ErrIndex = errors.New("vector: bad index")

	// ErrReleased indicates use of a vector whose storage was released or moved out.
	ErrReleased = errors.New("vector: storage released")

	// ErrInsufficientPoints is interp.ErrInsufficientPoints, re-exported so the
	// whole error set can be matched from this package.
	ErrInsufficientPoints = interp.ErrInsufficientPoints

	// ErrInterpolationMode is interp.ErrInterpolationMode, re-exported.
	ErrInterpolationMode = interp.ErrInterpolationMode
)
