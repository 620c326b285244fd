// SPDX-License-Identifier: EPL-2.0

package enginetest

import (
	"fmt"

	"github.com/ik5/modpbx/engine"
	"github.com/ik5/modpbx/pcm"
)

// MuteCall records one call made through the interactive capability.
type MuteCall struct {
	Instrument bool // false for a channel mute
	Index      int
	Mute       bool
}

// Session is the fake engine.Session. Exported fields record what the
// code under test asked for.
type Session struct {
	song Song
	opts engine.Options

	pos         int
	separation  int
	mutedChans  map[int]bool
	mutedInstrs map[int]bool

	// Reads holds the frame count of every read request.
	Reads []int
	// MuteCalls holds every mute request in order.
	MuteCalls []MuteCall
	// SeparationCalls holds every stereo separation request.
	SeparationCalls []int
	Closed          bool
}

// Options returns the options the session was opened with.
func (s *Session) Options() engine.Options { return s.opts }

func (s *Session) NumChannels() int         { return s.song.Channels }
func (s *Session) NumInstruments() int      { return s.song.Instruments }
func (s *Session) NumSamples() int          { return len(s.song.Samples) }
func (s *Session) DurationSeconds() float64 { return s.song.Duration }

func (s *Session) Close() error {
	s.Closed = true
	return nil
}

func (s *Session) SetStereoSeparation(percent int) error {
	s.SeparationCalls = append(s.SeparationCalls, percent)
	s.separation = percent
	return nil
}

func (s *Session) Interactive() (engine.Interactive, bool) {
	if s.song.NoInteractive {
		return nil, false
	}
	return interactive{s}, true
}

func (s *Session) Samples() (engine.SampleBank, bool) {
	if s.opts.SkipSamples || s.song.NoSamples {
		return nil, false
	}
	return bank{s}, true
}

func (s *Session) ReadMono16(sampleRate int, dst []int16) int {
	return s.render(sampleRate, len(dst), func(i int, l, r float32) {
		dst[i] = pcm.Float32ToInt16(l + r)
	})
}

func (s *Session) ReadStereo16(sampleRate int, dst []int16) int {
	return s.render(sampleRate, len(dst)/2, func(i int, l, r float32) {
		dst[2*i] = pcm.Float32ToInt16(l)
		dst[2*i+1] = pcm.Float32ToInt16(r)
	})
}

func (s *Session) ReadMonoFloat(sampleRate int, dst []float32) int {
	return s.render(sampleRate, len(dst), func(i int, l, r float32) {
		dst[i] = clamp(l + r)
	})
}

func (s *Session) ReadStereoFloat(sampleRate int, dst []float32) int {
	return s.render(sampleRate, len(dst)/2, func(i int, l, r float32) {
		dst[2*i] = clamp(l)
		dst[2*i+1] = clamp(r)
	})
}

// render mixes up to frames frames and hands each left/right pair to put.
func (s *Session) render(sampleRate, frames int, put func(i int, l, r float32)) int {
	s.Reads = append(s.Reads, frames)

	total := int(s.song.Duration * float64(sampleRate))
	available := total - s.pos
	if available < 0 {
		available = 0
	}
	if frames > available {
		frames = available
	}

	sep := float32(s.separation) / 100
	for i := 0; i < frames; i++ {
		var l, r float32
		for _, v := range s.song.Voices {
			if s.mutedChans[v.Channel] || s.mutedInstrs[v.Instrument] {
				continue
			}

			x := v.Waveform(s.pos+i, sampleRate)
			pan := float32(-1)
			if v.Channel%2 == 1 {
				pan = 1
			}
			l += x * (1 - pan*sep) / 2
			r += x * (1 + pan*sep) / 2
		}
		put(i, l, r)
	}

	s.pos += frames
	return frames
}

func clamp(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

type interactive struct{ s *Session }

func (i interactive) SetChannelMute(channel int, mute bool) error {
	i.s.MuteCalls = append(i.s.MuteCalls, MuteCall{Index: channel, Mute: mute})
	i.s.mutedChans[channel] = mute
	return nil
}

func (i interactive) SetInstrumentMute(instrument int, mute bool) error {
	i.s.MuteCalls = append(i.s.MuteCalls, MuteCall{Instrument: true, Index: instrument, Mute: mute})
	i.s.mutedInstrs[instrument] = mute
	return nil
}

type bank struct{ s *Session }

func (b bank) Sample(index int) (engine.Sample, error) {
	if index < 0 || index >= len(b.s.song.Samples) {
		return engine.Sample{}, fmt.Errorf("sample %d: %w", index, engine.ErrSampleIndex)
	}
	if b.s.song.FailSamples[index] {
		return engine.Sample{}, fmt.Errorf("sample %d: %w", index, ErrSampleUnreadable)
	}
	return b.s.song.Samples[index], nil
}
