// SPDX-License-Identifier: MIT

package interp

import "errors"

var (
	// ErrOutOfRange indicates a position outside [0, n-1] (or NaN).
	ErrOutOfRange = errors.New("interp: position out of range")

	// ErrInsufficientPoints indicates fewer control points than the mode requires.
	ErrInsufficientPoints = errors.New("interp: not enough points for interpolation")

	// ErrInterpolationMode indicates that no usable mode was chosen (None or unknown).
	ErrInterpolationMode = errors.New("interp: interpolation mode is not chosen")

	// ErrBadSampleCount indicates a resample request with fewer than two samples.
	ErrBadSampleCount = errors.New("interp: sample count must be >= 2")
)
