// SPDX-License-Identifier: EPL-2.0

package render

import (
	"encoding/binary"
	"math"

	"github.com/ik5/modpbx/engine"
)

// frameWriter renders frames from a session into little-endian bytes.
// One strategy is chosen per render call.
type frameWriter interface {
	// FrameBytes is the byte size of one output frame.
	FrameBytes() int
	// Write renders up to frames frames into dst and returns the frames
	// produced. dst must hold frames*FrameBytes() bytes.
	Write(s engine.Session, sampleRate int, dst []byte, frames int) int
}

// newFrameWriter resolves the strategy for width and layout. quantum is the
// largest frame count Write will be asked for.
func newFrameWriter(width SampleWidth, stereo bool, quantum int) (frameWriter, error) {
	switch {
	case width == Narrow && !stereo:
		return &narrowMono{buf: make([]int16, quantum)}, nil
	case width == Narrow && stereo:
		return &narrowStereo{buf: make([]int16, quantum*2)}, nil
	case width == Wide && !stereo:
		return &wideMono{buf: make([]float32, quantum)}, nil
	case width == Wide && stereo:
		return &wideStereo{buf: make([]float32, quantum*2)}, nil
	default:
		return nil, ErrInvalidSampleWidth
	}
}

type narrowMono struct{ buf []int16 }

func (w *narrowMono) FrameBytes() int { return 2 }

func (w *narrowMono) Write(s engine.Session, sampleRate int, dst []byte, frames int) int {
	n := clampFrames(s.ReadMono16(sampleRate, w.buf[:frames]), frames)
	putInt16(dst, w.buf[:n])
	return n
}

type narrowStereo struct{ buf []int16 }

func (w *narrowStereo) FrameBytes() int { return 4 }

func (w *narrowStereo) Write(s engine.Session, sampleRate int, dst []byte, frames int) int {
	n := clampFrames(s.ReadStereo16(sampleRate, w.buf[:frames*2]), frames)
	putInt16(dst, w.buf[:n*2])
	return n
}

type wideMono struct{ buf []float32 }

func (w *wideMono) FrameBytes() int { return 4 }

func (w *wideMono) Write(s engine.Session, sampleRate int, dst []byte, frames int) int {
	n := clampFrames(s.ReadMonoFloat(sampleRate, w.buf[:frames]), frames)
	putFloat32(dst, w.buf[:n])
	return n
}

type wideStereo struct{ buf []float32 }

func (w *wideStereo) FrameBytes() int { return 8 }

func (w *wideStereo) Write(s engine.Session, sampleRate int, dst []byte, frames int) int {
	n := clampFrames(s.ReadStereoFloat(sampleRate, w.buf[:frames*2]), frames)
	putFloat32(dst, w.buf[:n*2])
	return n
}

func putInt16(dst []byte, samples []int16) {
	for i, v := range samples {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(v))
	}
}

func putFloat32(dst []byte, samples []float32) {
	for i, v := range samples {
		binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(v))
	}
}

// clampFrames bounds an engine's reported frame count to [0, frames].
func clampFrames(n, frames int) int {
	return max(min(n, frames), 0)
}
