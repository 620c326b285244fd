// SPDX-License-Identifier: EPL-2.0

package render

import "fmt"

// SampleWidth selects the PCM sample type of rendered output.
type SampleWidth int

const (
	// Narrow is 16-bit signed integer PCM.
	Narrow SampleWidth = iota
	// Wide is 32-bit IEEE float PCM in [-1,1].
	Wide
)

// Bytes returns the size of one sample, or 0 for an unknown width.
func (w SampleWidth) Bytes() int {
	switch w {
	case Narrow:
		return 2
	case Wide:
		return 4
	default:
		return 0
	}
}

func (w SampleWidth) String() string {
	switch w {
	case Narrow:
		return "int16"
	case Wide:
		return "float"
	default:
		return fmt.Sprintf("SampleWidth(%d)", int(w))
	}
}

// ParseSampleWidth maps "int16" and "float" to a SampleWidth.
func ParseSampleWidth(s string) (SampleWidth, error) {
	switch s {
	case "int16":
		return Narrow, nil
	case "float":
		return Wide, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidSampleWidth)
	}
}

// Selection picks one channel or instrument index. The zero value selects all.
type Selection struct {
	index uint32
	set   bool
}

// All selects every index.
var All = Selection{}

// Solo selects only index i.
func Solo(i uint32) Selection {
	return Selection{index: i, set: true}
}

// Get returns the soloed index and whether one is set.
func (s Selection) Get() (uint32, bool) {
	return s.index, s.set
}

// Allows reports whether index i is audible under s.
func (s Selection) Allows(i int) bool {
	return !s.set || (i >= 0 && uint32(i) == s.index)
}

func (s Selection) String() string {
	if !s.set {
		return "all"
	}
	return fmt.Sprintf("%d", s.index)
}

// Params configure a single render call.
type Params struct {
	SampleRate  uint32
	SampleWidth SampleWidth
	Channel     Selection
	Instrument  Selection
	// StereoSeparation in percent; nil keeps the engine default.
	StereoSeparation *int32
	Stereo           bool
}

// Channels returns the number of output channels, 1 or 2.
func (p Params) Channels() int {
	if p.Stereo {
		return 2
	}
	return 1
}

// FrameBytes returns the size of one output frame.
func (p Params) FrameBytes() int {
	return p.SampleWidth.Bytes() * p.Channels()
}

// Validate reports parameters that cannot be rendered.
func (p Params) Validate() error {
	if p.SampleRate == 0 {
		return ErrInvalidSampleRate
	}
	if p.SampleWidth.Bytes() == 0 {
		return fmt.Errorf("%v: %w", p.SampleWidth, ErrInvalidSampleWidth)
	}
	return nil
}
