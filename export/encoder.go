// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/modpbx/pcm"
)

// prepare validates buf and returns it at a bit depth every encoder can
// store (16 or 24). 8-bit data is widened to 16 bits; a missing depth is
// taken as 16.
func prepare(buf *goaudio.IntBuffer) (*goaudio.IntBuffer, int, error) {
	if buf == nil || buf.Format == nil || buf.Format.SampleRate < 1 || len(buf.Data) == 0 {
		return nil, 0, ErrEmptySample
	}
	if buf.Format.NumChannels < 1 || len(buf.Data)%buf.Format.NumChannels != 0 {
		return nil, 0, pcm.ErrUnalignedBuffer
	}

	switch buf.SourceBitDepth {
	case 16, 24:
		return buf, buf.SourceBitDepth, nil
	case 0:
		return buf, 16, nil
	case 8:
		wide := &goaudio.IntBuffer{
			Format:         buf.Format,
			Data:           make([]int, len(buf.Data)),
			SourceBitDepth: 16,
		}
		for i, v := range buf.Data {
			wide.Data[i] = v << 8
		}
		return wide, 16, nil
	default:
		return nil, 0, fmt.Errorf("%d bits: %w", buf.SourceBitDepth, ErrUnsupportedBitDepth)
	}
}
