// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	// ErrDecode indicates the engine could not open the module.
	ErrDecode = errors.New("module decode failed")

	// ErrInvalidSampleRate indicates a zero sample rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrInvalidSampleWidth indicates a width other than Narrow or Wide.
	ErrInvalidSampleWidth = errors.New("unsupported sample width")
)
