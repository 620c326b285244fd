// SPDX-License-Identifier: EPL-2.0

// Package enginetest provides a deterministic engine.Engine for tests.
//
// A Song describes a module as a set of voices, each bound to one channel
// and one instrument and driven by a waveform function. Rendering sums the
// audible voices; even channels are panned left and odd channels right.
package enginetest

import (
	"bytes"
	"errors"
	"math"
	"sync"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/modpbx/engine"
)

// Magic prefixes every module the fake engine accepts.
var Magic = []byte("MODPBXTEST\x00")

var (
	// ErrMalformed is returned by Open for input without Magic.
	ErrMalformed = errors.New("malformed test module")

	// ErrSampleUnreadable is returned for sample indices listed in Song.FailSamples.
	ErrSampleUnreadable = errors.New("sample unreadable")
)

// Voice is one sound source of a Song.
type Voice struct {
	Channel    int
	Instrument int
	Waveform   func(frame, sampleRate int) float32
}

// Song describes the module the fake engine decodes.
type Song struct {
	Channels    int
	Instruments int
	Samples     []engine.Sample
	Duration    float64 // seconds
	Voices      []Voice

	// NoInteractive removes the mute capability from sessions.
	NoInteractive bool
	// NoSamples removes sample data access from sessions.
	NoSamples bool
	// FailSamples lists 0-based sample indices whose data cannot be read.
	FailSamples map[int]bool
}

// Module returns bytes the fake engine accepts.
func Module() []byte {
	return append(append([]byte{}, Magic...), "song"...)
}

// Engine is a fake engine.Engine. It is safe for concurrent use.
type Engine struct {
	Song Song

	mu       sync.Mutex
	sessions []*Session
}

// New creates a fake engine decoding every valid module as song.
func New(song Song) *Engine {
	return &Engine{Song: song}
}

func (e *Engine) Open(data []byte, opts engine.Options) (engine.Session, error) {
	if !bytes.HasPrefix(data, Magic) {
		opts.SessionLogger().Printf("enginetest: rejecting %d bytes without magic", len(data))
		return nil, ErrMalformed
	}

	s := &Session{
		song:        e.Song,
		opts:        opts,
		separation:  100,
		mutedChans:  make(map[int]bool),
		mutedInstrs: make(map[int]bool),
	}

	e.mu.Lock()
	e.sessions = append(e.sessions, s)
	e.mu.Unlock()

	return s, nil
}

// Sessions returns every session opened so far, in order.
func (e *Engine) Sessions() []*Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*Session, len(e.sessions))
	copy(out, e.sessions)
	return out
}

// LastSession returns the most recently opened session or nil.
func (e *Engine) LastSession() *Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.sessions) == 0 {
		return nil
	}
	return e.sessions[len(e.sessions)-1]
}

// Sine returns a waveform of the given frequency and amplitude.
func Sine(frequency float64, amplitude float32) func(frame, sampleRate int) float32 {
	return func(frame, sampleRate int) float32 {
		t := float64(frame) / float64(sampleRate)
		return amplitude * float32(math.Sin(2*math.Pi*frequency*t))
	}
}

// Constant returns a waveform holding value.
func Constant(value float32) func(frame, sampleRate int) float32 {
	return func(int, int) float32 { return value }
}

// NewSample builds a mono 16-bit sample slot.
func NewSample(name string, sampleRate int, data ...int) engine.Sample {
	return engine.Sample{
		Name: name,
		Buffer: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
			Data:           data,
			SourceBitDepth: 16,
		},
	}
}
