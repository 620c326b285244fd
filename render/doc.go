// SPDX-License-Identifier: EPL-2.0

// Package render turns tracker modules into raw PCM.
//
// It contains the whole rendering pipeline on top of an engine.Engine:
//   - Probe reads metadata from a fast, metadata-only session
//   - MuteMask computes and applies channel/instrument solo
//   - frame writers convert engine output to int16 or float32 bytes,
//     mono or interleaved stereo
//   - the render loop drives generation in one-second quanta
//
// # Probing
//
//	info, err := render.Probe(eng, data, logger)
//	if errors.Is(err, render.ErrDecode) {
//	    // malformed or unsupported module
//	}
//
// Formats that keep their sounds as plain samples report zero instruments.
// For those, SongInfo.InstrumentCount holds the sample-slot count.
//
// # Rendering
//
//	r := render.NewRenderer(eng)
//	out := make([]byte, 10*44100*4) // ten seconds, int16 stereo
//	n, err := r.Render(out, data, render.Params{
//	    SampleRate:  44100,
//	    SampleWidth: render.Narrow,
//	    Channel:     render.Solo(2),
//	    Stereo:      true,
//	})
//
// The loop requests SampleRate frames per iteration and stops before a
// quantum that would not fit into out, so size buffers in whole seconds.
// n < len(out) means the song ended.
//
// # Solo
//
// Channel and instrument solo are applied through the session's
// interactive capability before the first quantum. Sessions without that
// capability render unmuted. When both a channel and an instrument are
// soloed both mute passes run, so only the intersection stays audible.
package render
