// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavFormatPCM is the WAVE_FORMAT_PCM tag of the fmt chunk.
const wavFormatPCM = 1

// WAVEncoder writes integer PCM WAV files.
type WAVEncoder struct{}

func (WAVEncoder) Encode(w io.WriteSeeker, buf *goaudio.IntBuffer) error {
	buf, depth, err := prepare(buf)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(w, buf.Format.SampleRate, depth, buf.Format.NumChannels, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}

	return nil
}
