// SPDX-License-Identifier: EPL-2.0

// Package export writes the raw sample slots of a module to audio files.
//
// # Supported Containers
//
//   - WAV (16/24-bit PCM) via github.com/go-audio/wav
//   - AIFF (16/24-bit PCM) via github.com/go-audio/aiff
//   - FLAC (16/24-bit, verbatim subframes) via github.com/mewkiz/flac
//
// 8-bit sample data is widened to 16 bits before encoding.
//
// # Exporting Samples
//
//	session, _ := eng.Open(data, engine.ExportOptions(logger))
//	defer session.Close()
//
//	x := export.NewExporter(logger)
//	report, err := x.Export(session, "/tmp/song", export.WAV)
//	// writes /tmp/song_sample_0001.wav, /tmp/song_sample_0002.wav, ...
//
// Slot numbers in file names start at 1. Export is best effort: failed
// slots are listed in report.Failed (see SlotError) and do not stop the
// remaining slots. Empty slots are skipped and listed in report.Skipped.
//
// # Custom Encoders
//
// The Registry maps a Format to an Encoder:
//
//	reg := export.NewRegistry()
//	reg.Register(export.WAV, export.WAVEncoder{})
//	x := &export.Exporter{Registry: reg}
package export
