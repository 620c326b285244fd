// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"io"
	"log"

	"github.com/ik5/modpbx/engine"
)

// Renderer renders modules through an engine.
//
// A Renderer holds no per-call state and may be used concurrently;
// every call opens and closes its own sessions.
type Renderer struct {
	Engine engine.Engine
	// Logger receives diagnostics of every session opened by this
	// renderer. nil discards them.
	Logger *log.Logger
}

// NewRenderer creates a Renderer with a discarding logger.
func NewRenderer(eng engine.Engine) *Renderer {
	return &Renderer{Engine: eng}
}

func (r *Renderer) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.New(io.Discard, "", 0)
}

// Probe reads the metadata of data in fast-probe mode.
func (r *Renderer) Probe(data []byte) (SongInfo, error) {
	return Probe(r.Engine, data, r.logger())
}

// Render renders data into out and returns the number of bytes produced.
//
// Rendering stops when the next one-second quantum no longer fits into out
// or when the song ends. A result below len(out) with a nil error means the
// song ended early; it is never an error. The result is always a multiple
// of p.FrameBytes().
func (r *Renderer) Render(out, data []byte, p Params) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	logger := r.logger()

	// cheap metadata pass rejects bad input before the full load
	if _, err := Probe(r.Engine, data, logger); err != nil {
		return 0, err
	}

	rate := int(p.SampleRate)
	if rate*p.FrameBytes() > len(out) {
		logger.Printf("buffer of %d bytes holds less than one second at %d Hz, nothing rendered", len(out), rate)
		return 0, nil
	}

	s, err := r.Engine.Open(data, engine.FullOptions(logger))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer s.Close()

	if p.StereoSeparation != nil {
		if err := s.SetStereoSeparation(int(*p.StereoSeparation)); err != nil {
			return 0, fmt.Errorf("stereo separation: %w", err)
		}
	}

	info := Info(s)
	mask := NewMuteMask(int(info.ChannelCount), int(info.InstrumentCount), p.Channel, p.Instrument)
	if err := mask.Apply(s, logger); err != nil {
		return 0, err
	}

	w, err := newFrameWriter(p.SampleWidth, p.Stereo, rate)
	if err != nil {
		return 0, err
	}

	n := renderLoop(s, w, rate, out)
	logger.Printf("rendered %d bytes of %d (%d Hz, %v, channels=%d)",
		n, len(out), rate, p.SampleWidth, p.Channels())

	return n, nil
}
