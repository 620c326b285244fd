// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"io"
	"log"

	goaudio "github.com/go-audio/audio"
)

// Options control how a session loads a module.
type Options struct {
	// SkipSamples skips loading sample data. Metadata stays available.
	SkipSamples bool
	// SkipPlugins skips instantiating plugins.
	SkipPlugins bool
	// Logger receives the engine's diagnostics for this session only.
	// A nil Logger discards them.
	Logger *log.Logger
}

// ProbeOptions returns the fast, metadata-only load options.
func ProbeOptions(logger *log.Logger) Options {
	return Options{SkipSamples: true, SkipPlugins: true, Logger: logger}
}

// ExportOptions loads sample data but skips plugins.
func ExportOptions(logger *log.Logger) Options {
	return Options{SkipPlugins: true, Logger: logger}
}

// FullOptions loads everything needed for full-fidelity rendering.
func FullOptions(logger *log.Logger) Options {
	return Options{Logger: logger}
}

// SessionLogger returns the options logger or a discarding one.
func (o Options) SessionLogger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard, "", 0)
}

// Engine constructs decode sessions from raw module bytes.
type Engine interface {
	// Open parses data and returns a session owned by the caller.
	// Malformed or unsupported input returns an error.
	Open(data []byte, opts Options) (Session, error)
}

// Session is a single decode session over one module.
//
// A session is not safe for concurrent use; each call that opens a
// session must close it.
type Session interface {
	NumChannels() int
	// NumInstruments is the raw instrument count; formats without
	// instrument metadata report 0.
	NumInstruments() int
	// NumSamples is the raw sample-slot count.
	NumSamples() int
	DurationSeconds() float64

	// ReadMono16 renders len(dst) mono frames at sampleRate and returns
	// the number of frames produced. A short count means the song ended.
	ReadMono16(sampleRate int, dst []int16) int
	// ReadStereo16 renders len(dst)/2 interleaved stereo frames.
	ReadStereo16(sampleRate int, dst []int16) int
	// ReadMonoFloat renders len(dst) mono frames in [-1,1].
	ReadMonoFloat(sampleRate int, dst []float32) int
	// ReadStereoFloat renders len(dst)/2 interleaved stereo frames in [-1,1].
	ReadStereoFloat(sampleRate int, dst []float32) int

	// SetStereoSeparation sets the stereo separation in percent.
	SetStereoSeparation(percent int) error

	// Interactive returns the mute capability if the session has one.
	Interactive() (Interactive, bool)
	// Samples returns access to raw sample data if the session loaded it.
	Samples() (SampleBank, bool)

	Close() error
}

// Interactive mutes and unmutes channels and instruments of a session.
type Interactive interface {
	SetChannelMute(channel int, mute bool) error
	SetInstrumentMute(instrument int, mute bool) error
}

// Sample is the raw sound data of one sample slot.
type Sample struct {
	Name   string
	Buffer *goaudio.IntBuffer
}

// SampleBank gives access to the sample slots of a session.
// Indices are 0-based.
type SampleBank interface {
	Sample(index int) (Sample, error)
}
