// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"io"
	"strings"
	"sync"

	goaudio "github.com/go-audio/audio"
)

// Format names an encoded container. Its value doubles as the file extension.
type Format string

const (
	WAV  Format = "wav"
	FLAC Format = "flac"
	AIFF Format = "aiff"
)

// Extension returns the file extension without the dot.
func (f Format) Extension() string { return string(f) }

// ParseFormat accepts a container name in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case WAV, FLAC, AIFF:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Encoder writes a PCM buffer as a complete encoded file.
type Encoder interface {
	Encode(w io.WriteSeeker, buf *goaudio.IntBuffer) error
}

// Registry maps formats to encoders.
type Registry struct {
	encoders map[Format]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		encoders: make(map[Format]Encoder),
		mtx:      &sync.Mutex{},
	}
}

// DefaultRegistry returns a registry with the WAV, FLAC and AIFF encoders.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(WAV, WAVEncoder{})
	r.Register(FLAC, FLACEncoder{})
	r.Register(AIFF, AIFFEncoder{})
	return r
}

func (r *Registry) Register(f Format, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[f] = e
}

func (r *Registry) Get(f Format) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[f]
	return e, ok
}
