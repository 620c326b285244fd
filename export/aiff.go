// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// AIFFEncoder writes integer PCM AIFF files.
type AIFFEncoder struct{}

func (AIFFEncoder) Encode(w io.WriteSeeker, buf *goaudio.IntBuffer) error {
	buf, depth, err := prepare(buf)
	if err != nil {
		return err
	}

	enc := aiff.NewEncoder(w, buf.Format.SampleRate, depth, buf.Format.NumChannels)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("aiff: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("aiff: %w", err)
	}

	return nil
}
