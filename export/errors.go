// SPDX-License-Identifier: EPL-2.0

package export

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat indicates a container without a registered encoder
	ErrUnknownFormat = errors.New("unknown export format")

	// ErrNoSampleData indicates a session that did not load sample data
	ErrNoSampleData = errors.New("session has no sample data")

	// ErrInvalidStem indicates an empty or malformed output path stem
	ErrInvalidStem = errors.New("invalid output path stem")

	// ErrInvalidSlot indicates a slot number below 1
	ErrInvalidSlot = errors.New("sample slot numbers start at 1")

	// ErrEmptySample indicates a sample buffer without format or data
	ErrEmptySample = errors.New("sample has no audio data")

	// ErrUnsupportedBitDepth indicates a bit depth the encoders cannot store
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

	// ErrUnsupportedChannels indicates a channel layout the encoder cannot store
	ErrUnsupportedChannels = errors.New("unsupported channel count")
)

// SlotError records the failure of a single sample slot.
type SlotError struct {
	Slot int // 1-based, as in the file name
	Path string
	Err  error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("sample slot %d (%s): %v", e.Slot, e.Path, e.Err)
}

func (e *SlotError) Unwrap() error { return e.Err }
