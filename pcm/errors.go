// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrInvalidWidth indicates a sample width other than 2 or 4 bytes
	ErrInvalidWidth = errors.New("sample width must be 2 or 4 bytes")

	// ErrUnalignedBuffer indicates a buffer that does not hold whole frames
	ErrUnalignedBuffer = errors.New("buffer is not a whole number of frames")
)
