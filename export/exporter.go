// SPDX-License-Identifier: EPL-2.0

package export

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/modpbx/engine"
)

// Report is the outcome of one export run.
type Report struct {
	Written []string     // paths written, in slot order
	Skipped []int        // 1-based slots without audio data
	Failed  []*SlotError // slots that could not be written
}

// Err joins every slot failure, or returns nil.
func (r Report) Err() error {
	errs := make([]error, len(r.Failed))
	for i, e := range r.Failed {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Exporter writes every sample slot of a session to its own file.
type Exporter struct {
	Registry *Registry
	Logger   *log.Logger
}

// NewExporter creates an Exporter with the default encoders.
func NewExporter(logger *log.Logger) *Exporter {
	return &Exporter{Registry: DefaultRegistry(), Logger: logger}
}

func (x *Exporter) logger() *log.Logger {
	if x.Logger != nil {
		return x.Logger
	}
	return log.New(io.Discard, "", 0)
}

// Export writes each sample slot of s to "<stem>_sample_NNNN.<ext>".
//
// Export is best effort: a slot that fails is logged and recorded in the
// report, and the remaining slots are still attempted. The returned error
// is reserved for problems that stop the whole run (unknown format, bad
// stem, session without sample data).
func (x *Exporter) Export(s engine.Session, stem string, format Format) (Report, error) {
	var report Report

	enc, ok := x.Registry.Get(format)
	if !ok {
		return report, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err := validateStem(stem); err != nil {
		return report, err
	}

	bank, ok := s.Samples()
	if !ok {
		return report, ErrNoSampleData
	}

	logger := x.logger()
	total := s.NumSamples()

	for i := 0; i < total; i++ {
		slot := i + 1

		path, err := SamplePath(stem, slot, format.Extension())
		if err != nil {
			report.Failed = append(report.Failed, &SlotError{Slot: slot, Err: err})
			continue
		}

		sample, err := bank.Sample(i)
		if err == nil {
			err = writeSample(path, enc, sample)
		}

		switch {
		case errors.Is(err, ErrEmptySample):
			report.Skipped = append(report.Skipped, slot)
		case err != nil:
			logger.Printf("export: sample %d/%d: %v", slot, total, err)
			report.Failed = append(report.Failed, &SlotError{Slot: slot, Path: path, Err: err})
		default:
			report.Written = append(report.Written, path)
		}
	}

	logger.Printf("export: %d written, %d empty, %d failed of %d slots",
		len(report.Written), len(report.Skipped), len(report.Failed), total)

	return report, nil
}

// writeSample encodes sample into a new file at path.
func writeSample(path string, enc Encoder, sample engine.Sample) error {
	if _, _, err := prepare(sample.Buffer); err != nil {
		return err
	}
	return WriteFile(path, enc, sample.Buffer)
}

// WriteFile encodes buf into a new file at path. A partially written file
// is removed.
func WriteFile(path string, enc Encoder, buf *goaudio.IntBuffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return enc.Encode(f, buf)
}
