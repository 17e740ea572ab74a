// SPDX-License-Identifier: MIT

package buffer

import "errors"

// Every message is prefixed with "buffer: ..." for consistency. Methods wrap
// these sentinels with call-site context; callers match them with errors.Is.
var (
	// ErrBadLength is returned when a buffer is requested with length <= 0.
	ErrBadLength = errors.New("buffer: length must be > 0")

	// ErrOutOfRange indicates that an index is outside [0, Len()).
	ErrOutOfRange = errors.New("buffer: index out of range")
)
