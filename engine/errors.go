// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	// ErrUnavailable indicates the engine backend is not compiled in.
	ErrUnavailable = errors.New("module engine unavailable")

	// ErrSampleIndex indicates a sample index outside the session's slots.
	ErrSampleIndex = errors.New("sample index out of range")
)
