// SPDX-License-Identifier: EPL-2.0

package modpbx

import (
	"io"
	"log"

	"github.com/ik5/modpbx/engine"
	"github.com/ik5/modpbx/export"
	"github.com/ik5/modpbx/render"
)

type (
	SongInfo     = render.SongInfo
	RenderParams = render.Params
	SampleWidth  = render.SampleWidth
	Selection    = render.Selection
	ExportFormat = export.Format
)

const (
	Narrow = render.Narrow
	Wide   = render.Wide

	WAV  = export.WAV
	FLAC = export.FLAC
	AIFF = export.AIFF
)

// All selects every channel or instrument.
var All = render.All

// Solo selects a single channel or instrument.
func Solo(i uint32) Selection { return render.Solo(i) }

// Module is the flat entry point over a decoding engine. Every failure is
// reported as a zero value; use the render and export packages directly
// for error details.
type Module struct {
	Engine engine.Engine
	// Logger receives per-call diagnostics. nil discards them.
	Logger *log.Logger
}

// New creates a Module over eng with diagnostics discarded.
func New(eng engine.Engine) *Module {
	return &Module{Engine: eng}
}

func (m *Module) logger() *log.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return log.New(io.Discard, "", 0)
}

// Probe returns the metadata of data, or the zero SongInfo if the module
// cannot be decoded.
func (m *Module) Probe(data []byte) SongInfo {
	info, err := render.Probe(m.Engine, data, m.logger())
	if err != nil {
		m.logger().Printf("probe: %v", err)
		return SongInfo{}
	}
	return info
}

// Render renders data into out and returns the bytes written.
//
// It returns 0 when the module cannot be decoded or the parameters are
// invalid. A result below len(out) otherwise means the song ended.
func (m *Module) Render(out, data []byte, p RenderParams) uint32 {
	r := &render.Renderer{Engine: m.Engine, Logger: m.logger()}

	n, err := r.Render(out, data, p)
	if err != nil {
		m.logger().Printf("render: %v", err)
		return 0
	}
	return uint32(n)
}

// ProbeAndExport probes data and writes every sample slot to
// "<stem>_sample_NNNN.<ext>". Export failures are logged and never change
// the returned metadata.
//
// Export needs an engine whose sessions expose sample data. The
// libopenmpt engine (openmpt.Engine) does not, so with it ProbeAndExport
// writes no files and only logs export.ErrNoSampleData.
func (m *Module) ProbeAndExport(data []byte, stem string, format ExportFormat) SongInfo {
	logger := m.logger()

	s, err := m.Engine.Open(data, engine.ExportOptions(logger))
	if err != nil {
		logger.Printf("probe: %v: %v", render.ErrDecode, err)
		return SongInfo{}
	}
	defer s.Close()

	info := render.Info(s)

	report, err := export.NewExporter(logger).Export(s, stem, format)
	if err != nil {
		logger.Printf("export: %v", err)
	} else if err := report.Err(); err != nil {
		logger.Printf("export: %d of %d slots failed", len(report.Failed), s.NumSamples())
	}

	return info
}
