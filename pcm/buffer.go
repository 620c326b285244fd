// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"math"

	goaudio "github.com/go-audio/audio"
)

// ToIntBuffer converts rendered little-endian PCM into a go-audio buffer.
//
// bytesPerSample is 2 for int16 data and 4 for float32 data. Float data is
// stored as 24-bit integers, int16 data keeps its 16-bit depth.
func ToIntBuffer(data []byte, bytesPerSample, channels, sampleRate int) (*goaudio.IntBuffer, error) {
	if bytesPerSample != 2 && bytesPerSample != 4 {
		return nil, ErrInvalidWidth
	}
	if channels < 1 || len(data)%(bytesPerSample*channels) != 0 {
		return nil, ErrUnalignedBuffer
	}

	samples := len(data) / bytesPerSample
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:   make([]int, samples),
	}

	if bytesPerSample == 2 {
		buf.SourceBitDepth = 16
		for i := 0; i < samples; i++ {
			buf.Data[i] = int(int16(binary.LittleEndian.Uint16(data[2*i:])))
		}
		return buf, nil
	}

	buf.SourceBitDepth = 24
	for i := 0; i < samples; i++ {
		f := math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
		buf.Data[i] = int(Float32ToInt24(f))
	}

	return buf, nil
}
