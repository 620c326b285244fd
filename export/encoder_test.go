// SPDX-License-Identifier: EPL-2.0

package export

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/modpbx/pcm"
	"github.com/mewkiz/flac"
)

func testBuffer(channels, rate, depth int, data ...int) *goaudio.IntBuffer {
	return &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: depth,
	}
}

func encodeToFile(t *testing.T, enc Encoder, buf *goaudio.IntBuffer, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}
	defer f.Close()

	if err := enc.Encode(f, buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return path
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	buf, depth, err := prepare(testBuffer(1, 8363, 8, 1, -1, 127))
	if err != nil {
		t.Fatalf("prepare() error = %v", err)
	}
	if depth != 16 || buf.SourceBitDepth != 16 {
		t.Errorf("depth = %d, want 16", depth)
	}
	if want := []int{256, -256, 127 << 8}; !reflect.DeepEqual(buf.Data, want) {
		t.Errorf("Data = %v, want %v", buf.Data, want)
	}

	if _, depth, _ := prepare(testBuffer(1, 8000, 0, 1)); depth != 16 {
		t.Errorf("depth for unset bit depth = %d, want 16", depth)
	}
	if _, depth, _ := prepare(testBuffer(2, 8000, 24, 1, 2)); depth != 24 {
		t.Errorf("depth for 24-bit = %d, want 24", depth)
	}
}

func TestPrepare_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  *goaudio.IntBuffer
		want error
	}{
		{"nil", nil, ErrEmptySample},
		{"no format", &goaudio.IntBuffer{Data: []int{1}}, ErrEmptySample},
		{"no data", testBuffer(1, 8000, 16), ErrEmptySample},
		{"zero rate", testBuffer(1, 0, 16, 1), ErrEmptySample},
		{"partial frame", testBuffer(2, 8000, 16, 1, 2, 3), pcm.ErrUnalignedBuffer},
		{"32-bit", testBuffer(1, 8000, 32, 1), ErrUnsupportedBitDepth},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := prepare(tt.buf); !errors.Is(err, tt.want) {
				t.Errorf("prepare() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWAVEncoder_RoundTrip(t *testing.T) {
	t.Parallel()

	data := []int{0, 1000, -1000, 32767, -32768, 12}
	path := encodeToFile(t, WAVEncoder{}, testBuffer(2, 22050, 16, data...), "s.wav")

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("os.Open() error = %v", err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		t.Fatal("encoded file is not a valid WAV file")
	}

	got, err := d.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}

	if d.SampleRate != 22050 || d.NumChans != 2 || d.BitDepth != 16 {
		t.Errorf("header = %d Hz, %d channels, %d bits", d.SampleRate, d.NumChans, d.BitDepth)
	}
	if !reflect.DeepEqual(got.Data, data) {
		t.Errorf("Data = %v, want %v", got.Data, data)
	}
}

func TestAIFFEncoder_RoundTrip(t *testing.T) {
	t.Parallel()

	data := []int{5, -5, 300, -300, 32000}
	path := encodeToFile(t, AIFFEncoder{}, testBuffer(1, 8363, 16, data...), "s.aiff")

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("os.Open() error = %v", err)
	}
	defer f.Close()

	d := aiff.NewDecoder(f)
	if !d.IsValidFile() {
		t.Fatal("encoded file is not a valid AIFF file")
	}

	got, err := d.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}
	if !reflect.DeepEqual(got.Data, data) {
		t.Errorf("Data = %v, want %v", got.Data, data)
	}
}

func TestFLACEncoder_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		depth    int
		frames   int
	}{
		{"mono 16-bit", 1, 16, 10},
		{"stereo 24-bit", 2, 24, 5000}, // spans two FLAC frames
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := make([]int, tt.frames*tt.channels)
			for i := range data {
				data[i] = (i*37)%2001 - 1000
			}

			path := encodeToFile(t, FLACEncoder{}, testBuffer(tt.channels, 44100, tt.depth, data...), "s.flac")

			stream, err := flac.Open(path)
			if err != nil {
				t.Fatalf("flac.Open() error = %v", err)
			}
			defer stream.Close()

			if int(stream.Info.NChannels) != tt.channels || int(stream.Info.BitsPerSample) != tt.depth {
				t.Errorf("stream info = %+v", stream.Info)
			}
			if stream.Info.NSamples != uint64(tt.frames) {
				t.Errorf("NSamples = %d, want %d", stream.Info.NSamples, tt.frames)
			}

			var got []int
			for {
				fr, err := stream.ParseNext()
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("ParseNext() error = %v", err)
				}
				for i := 0; i < int(fr.BlockSize); i++ {
					for c := 0; c < tt.channels; c++ {
						got = append(got, int(fr.Subframes[c].Samples[i]))
					}
				}
			}

			if !reflect.DeepEqual(got, data) {
				t.Errorf("decoded %d samples, want %d identical samples", len(got), len(data))
			}
		})
	}
}

func TestFLACEncoder_TooManyChannels(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "s.flac")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}
	defer f.Close()

	err = FLACEncoder{}.Encode(f, testBuffer(4, 44100, 16, 1, 2, 3, 4))
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("Encode() error = %v, want ErrUnsupportedChannels", err)
	}
}
