// SPDX-License-Identifier: EPL-2.0

package batch

import "errors"

var (
	// ErrNoInput is returned when an input path does not exist.
	ErrNoInput = errors.New("input path does not exist")

	// ErrEmptySong marks songs without channels, instruments or duration.
	ErrEmptySong = errors.New("song has nothing to render")
)
