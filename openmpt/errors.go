// SPDX-License-Identifier: EPL-2.0

package openmpt

import "errors"

var (
	// ErrLoad is returned when libopenmpt rejects the module data.
	ErrLoad = errors.New("openmpt: cannot load module")

	// ErrEmptyInput is returned for zero-length module data.
	ErrEmptyInput = errors.New("openmpt: empty input")

	// ErrRenderParam is returned when a render parameter is refused.
	ErrRenderParam = errors.New("openmpt: render parameter rejected")

	// ErrMute is returned when a mute request is refused.
	ErrMute = errors.New("openmpt: mute request rejected")
)
