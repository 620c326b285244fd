// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"log"

	"github.com/ik5/modpbx/engine"
)

// SongInfo is the metadata of a module. The zero value means the probe failed.
type SongInfo struct {
	ChannelCount    uint32
	InstrumentCount uint32
	DurationSeconds float32
}

// Probe opens data in fast-probe mode and reads its metadata.
//
// On failure the zero SongInfo is returned with an error wrapping ErrDecode.
func Probe(eng engine.Engine, data []byte, logger *log.Logger) (SongInfo, error) {
	s, err := eng.Open(data, engine.ProbeOptions(logger))
	if err != nil {
		return SongInfo{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer s.Close()

	return Info(s), nil
}

// Info reads metadata from an open session.
//
// Formats that store sound as numbered samples report zero instruments;
// for those the sample-slot count is used instead.
func Info(s engine.Session) SongInfo {
	instruments := s.NumInstruments()
	if instruments == 0 {
		instruments = s.NumSamples()
	}

	return SongInfo{
		ChannelCount:    count(s.NumChannels()),
		InstrumentCount: count(instruments),
		DurationSeconds: float32(s.DurationSeconds()),
	}
}

func count(n int) uint32 {
	if n < 0 {
		return 0
	}
	return uint32(n)
}
