// SPDX-License-Identifier: EPL-2.0

package modpbx_test

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/ik5/modpbx"
	"github.com/ik5/modpbx/engine"
	"github.com/ik5/modpbx/export"
	"github.com/ik5/modpbx/internal/enginetest"
)

func song() enginetest.Song {
	return enginetest.Song{
		Channels:    4,
		Instruments: 2,
		Duration:    2.5,
		Samples: []engine.Sample{
			enginetest.NewSample("bass", 8363, 1, 2, 3),
			enginetest.NewSample("lead", 8363, 4, 5, 6),
		},
		Voices: []enginetest.Voice{
			{Channel: 0, Instrument: 0, Waveform: enginetest.Sine(5, 0.5)},
			{Channel: 1, Instrument: 1, Waveform: enginetest.Sine(7, 0.25)},
		},
	}
}

func allClosed(t *testing.T, eng *enginetest.Engine) {
	t.Helper()
	for i, s := range eng.Sessions() {
		if !s.Closed {
			t.Errorf("session %d was not closed", i)
		}
	}
}

func TestModule_Probe(t *testing.T) {
	t.Parallel()

	eng := enginetest.New(song())
	m := modpbx.New(eng)

	got := m.Probe(enginetest.Module())
	want := modpbx.SongInfo{ChannelCount: 4, InstrumentCount: 2, DurationSeconds: 2.5}
	if got != want {
		t.Errorf("Probe() = %+v, want %+v", got, want)
	}
	allClosed(t, eng)
}

func TestModule_ProbeMalformed(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	m := &modpbx.Module{
		Engine: enginetest.New(song()),
		Logger: log.New(&logs, "", 0),
	}

	for _, data := range [][]byte{nil, {}, []byte("not a module")} {
		if got := m.Probe(data); got != (modpbx.SongInfo{}) {
			t.Errorf("Probe(%q) = %+v, want zero value", data, got)
		}
	}
	if !strings.Contains(logs.String(), "probe:") {
		t.Errorf("log = %q, want probe failures", logs.String())
	}
}

func TestModule_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params modpbx.RenderParams
		outLen int
		want   uint32
	}{
		{
			name:   "song ends before buffer",
			params: modpbx.RenderParams{SampleRate: 100, SampleWidth: modpbx.Narrow, Stereo: true},
			outLen: 10 * 100 * 4,
			want:   1000, // 250 frames
		},
		{
			name:   "buffer ends before song",
			params: modpbx.RenderParams{SampleRate: 100, SampleWidth: modpbx.Wide},
			outLen: 1 * 100 * 4,
			want:   400,
		},
		{
			name:   "buffer below one quantum",
			params: modpbx.RenderParams{SampleRate: 100, SampleWidth: modpbx.Wide, Stereo: true},
			outLen: 799,
			want:   0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng := enginetest.New(song())
			out := make([]byte, tt.outLen)

			got := modpbx.New(eng).Render(out, enginetest.Module(), tt.params)
			if got != tt.want {
				t.Errorf("Render() = %d, want %d", got, tt.want)
			}
			if int(got)%tt.params.FrameBytes() != 0 {
				t.Errorf("Render() = %d, not a multiple of %d", got, tt.params.FrameBytes())
			}
			allClosed(t, eng)
		})
	}
}

func TestModule_RenderFailures(t *testing.T) {
	t.Parallel()

	m := modpbx.New(enginetest.New(song()))
	out := make([]byte, 4000)

	if got := m.Render(out, []byte("garbage"), modpbx.RenderParams{SampleRate: 100}); got != 0 {
		t.Errorf("Render(garbage) = %d, want 0", got)
	}
	if got := m.Render(out, enginetest.Module(), modpbx.RenderParams{SampleRate: 0}); got != 0 {
		t.Errorf("Render(rate 0) = %d, want 0", got)
	}
	if got := m.Render(out, enginetest.Module(), modpbx.RenderParams{SampleRate: 100, SampleWidth: 7}); got != 0 {
		t.Errorf("Render(width 7) = %d, want 0", got)
	}
}

func TestModule_RenderDeterministic(t *testing.T) {
	t.Parallel()

	m := modpbx.New(enginetest.New(song()))
	p := modpbx.RenderParams{SampleRate: 200, SampleWidth: modpbx.Narrow, Stereo: true}

	a := make([]byte, 2*200*4)
	b := make([]byte, len(a))
	na := m.Render(a, enginetest.Module(), p)
	nb := m.Render(b, enginetest.Module(), p)

	if na != nb || !bytes.Equal(a[:na], b[:nb]) {
		t.Error("two renders with identical input differ")
	}
}

func TestModule_RenderSolo(t *testing.T) {
	t.Parallel()

	m := modpbx.New(enginetest.New(song()))
	p := modpbx.RenderParams{
		SampleRate:  100,
		SampleWidth: modpbx.Narrow,
		Channel:     modpbx.Solo(3), // silent channel
		Instrument:  modpbx.All,
	}

	out := make([]byte, 2*100*2)
	n := m.Render(out, enginetest.Module(), p)
	if n != uint32(len(out)) {
		t.Fatalf("Render() = %d, want %d", n, len(out))
	}
	if !bytes.Equal(out, make([]byte, len(out))) {
		t.Error("solo of a silent channel produced sound")
	}
}

func TestModule_Concurrent(t *testing.T) {
	t.Parallel()

	eng := enginetest.New(song())
	m := modpbx.New(eng)
	p := modpbx.RenderParams{SampleRate: 100, SampleWidth: modpbx.Wide, Stereo: true}

	var wg sync.WaitGroup
	results := make([]uint32, 8)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = m.Render(make([]byte, 3*100*8), enginetest.Module(), p)
		}()
	}
	wg.Wait()

	for i, n := range results {
		if n != 2000 {
			t.Errorf("render %d = %d, want 2000", i, n)
		}
	}
	allClosed(t, eng)
}

func TestModule_ProbeAndExport(t *testing.T) {
	t.Parallel()

	eng := enginetest.New(song())
	m := modpbx.New(eng)
	stem := filepath.Join(t.TempDir(), "song")

	got := m.ProbeAndExport(enginetest.Module(), stem, modpbx.WAV)
	if want := m.Probe(enginetest.Module()); got != want {
		t.Errorf("ProbeAndExport() = %+v, want %+v", got, want)
	}

	for _, name := range []string{"song_sample_0001.wav", "song_sample_0002.wav"} {
		if _, err := os.Stat(filepath.Join(filepath.Dir(stem), name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	allClosed(t, eng)
}

func TestModule_ProbeAndExportFailuresKeepInfo(t *testing.T) {
	t.Parallel()

	s := song()
	s.FailSamples = map[int]bool{0: true, 1: true}
	m := modpbx.New(enginetest.New(s))
	want := m.Probe(enginetest.Module())

	tests := []struct {
		name   string
		stem   string
		format modpbx.ExportFormat
	}{
		{"unreadable samples", filepath.Join(t.TempDir(), "x"), modpbx.FLAC},
		{"missing directory", filepath.Join(t.TempDir(), "nope", "x"), modpbx.AIFF},
		{"unknown format", filepath.Join(t.TempDir(), "x"), modpbx.ExportFormat("mod")},
		{"empty stem", "", modpbx.WAV},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := m.ProbeAndExport(enginetest.Module(), tt.stem, tt.format); got != want {
				t.Errorf("ProbeAndExport() = %+v, want %+v", got, want)
			}
		})
	}

	if got := m.ProbeAndExport([]byte("junk"), t.TempDir(), modpbx.WAV); got != (modpbx.SongInfo{}) {
		t.Errorf("ProbeAndExport(junk) = %+v, want zero value", got)
	}
}

func TestModule_ProbeAndExportWithoutSampleData(t *testing.T) {
	t.Parallel()

	s := song()
	s.NoSamples = true

	var logs bytes.Buffer
	m := &modpbx.Module{Engine: enginetest.New(s), Logger: log.New(&logs, "", 0)}

	dir := t.TempDir()
	got := m.ProbeAndExport(enginetest.Module(), filepath.Join(dir, "song"), modpbx.WAV)
	if want := m.Probe(enginetest.Module()); got != want {
		t.Errorf("ProbeAndExport() = %+v, want %+v", got, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("%d files written without sample data", len(entries))
	}
	if !strings.Contains(logs.String(), export.ErrNoSampleData.Error()) {
		t.Errorf("log = %q, want the missing sample data reported", logs.String())
	}
}
