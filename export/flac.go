// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

// flacBlockSize is the number of frames per FLAC frame.
const flacBlockSize = 4096

// FLACEncoder writes mono or stereo FLAC files with verbatim subframes.
type FLACEncoder struct{}

func (FLACEncoder) Encode(w io.WriteSeeker, buf *goaudio.IntBuffer) error {
	buf, depth, err := prepare(buf)
	if err != nil {
		return err
	}

	var layout frame.Channels
	switch buf.Format.NumChannels {
	case 1:
		layout = frame.ChannelsMono
	case 2:
		layout = frame.ChannelsLR
	default:
		return fmt.Errorf("flac: %d channels: %w", buf.Format.NumChannels, ErrUnsupportedChannels)
	}

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	info := &meta.StreamInfo{
		BlockSizeMin:  16,
		BlockSizeMax:  flacBlockSize,
		SampleRate:    uint32(buf.Format.SampleRate),
		NChannels:     uint8(channels),
		BitsPerSample: uint8(depth),
		NSamples:      uint64(frames),
	}

	enc, err := flac.NewEncoder(w, info)
	if err != nil {
		return fmt.Errorf("flac: %w", err)
	}

	for start, num := 0, uint64(0); start < frames; start, num = start+flacBlockSize, num+1 {
		n := min(flacBlockSize, frames-start)

		subframes := make([]*frame.Subframe, channels)
		for c := 0; c < channels; c++ {
			samples := make([]int32, n)
			for i := 0; i < n; i++ {
				samples[i] = int32(buf.Data[(start+i)*channels+c])
			}
			subframes[c] = &frame.Subframe{
				SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
				Samples:   samples,
				NSamples:  n,
			}
		}

		f := &frame.Frame{
			Header: frame.Header{
				HasFixedBlockSize: true,
				BlockSize:         uint16(n),
				SampleRate:        uint32(buf.Format.SampleRate),
				Channels:          layout,
				BitsPerSample:     uint8(depth),
				Num:               num,
			},
			Subframes: subframes,
		}
		if err := enc.WriteFrame(f); err != nil {
			enc.Close()
			return fmt.Errorf("flac: frame %d: %w", num, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("flac: %w", err)
	}

	return nil
}
