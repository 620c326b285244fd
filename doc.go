// SPDX-License-Identifier: EPL-2.0

// Package modpbx renders tracker music modules to raw PCM and exports
// their samples.
//
// The package is a thin boundary over a module decoding engine (see the
// engine subpackage). Every call opens its own decode session from the
// raw module bytes and closes it before returning; nothing is shared
// between calls, so independent calls may run concurrently.
//
// # Quick Start
//
//	m := modpbx.New(openmpt.Engine{})
//	data, _ := os.ReadFile("song.xm")
//
//	info := m.Probe(data)
//	if info == (modpbx.SongInfo{}) {
//	    // not a module, or an empty one
//	}
//
//	// ten seconds of 44.1kHz int16 stereo
//	out := make([]byte, 10*44100*4)
//	n := m.Render(out, data, modpbx.RenderParams{
//	    SampleRate:  44100,
//	    SampleWidth: modpbx.Narrow,
//	    Stereo:      true,
//	})
//	pcm := out[:n]
//
// # Failures
//
// The boundary reports failures as zero values only:
//   - Probe returns the zero SongInfo
//   - Render returns 0
//   - ProbeAndExport returns the zero SongInfo when the module cannot be
//     read; per-slot export failures are logged and otherwise ignored
//
// An empty song and a broken file look the same from here. The render and
// export subpackages return the underlying errors for callers that need
// them.
//
// # Solo and Layout
//
//	p := modpbx.RenderParams{
//	    SampleRate:  48000,
//	    SampleWidth: modpbx.Wide,        // float32 samples
//	    Channel:     modpbx.Solo(3),     // only channel 3
//	    Instrument:  modpbx.All,
//	    Stereo:      false,              // mono
//	}
//
// # Sample Export
//
//	m.ProbeAndExport(data, "/tmp/song", modpbx.FLAC)
//	// /tmp/song_sample_0001.flac, /tmp/song_sample_0002.flac, ...
//
// See the subpackages for details:
//   - engine: the decoding engine contract
//   - render: probe, solo, format conversion and the render loop
//   - export: sample slot encoders (WAV, FLAC, AIFF)
//   - openmpt: libopenmpt-backed engine (build tag openmpt)
package modpbx
