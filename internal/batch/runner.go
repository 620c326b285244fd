// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/ik5/modpbx/engine"
	"github.com/ik5/modpbx/export"
	"github.com/ik5/modpbx/internal/config"
	"github.com/ik5/modpbx/pcm"
	"github.com/ik5/modpbx/render"
)

// FileResult is the outcome of processing one input file.
type FileResult struct {
	Path    string
	Info    render.SongInfo
	Skipped error // non-nil when the song was not rendered
	Written []string
	Silent  int // jobs that produced only silence
	Failed  []error
	Samples *export.Report
}

// Summary collects the results of a Run.
type Summary struct {
	Files []FileResult
}

// Err joins every failure of the run, or returns nil.
func (s Summary) Err() error {
	var errs []error
	for _, f := range s.Files {
		errs = append(errs, f.Failed...)
		if f.Samples != nil {
			errs = append(errs, f.Samples.Err())
		}
	}
	return errors.Join(errs...)
}

// Written returns the number of files written by the run.
func (s Summary) Written() int {
	n := 0
	for _, f := range s.Files {
		n += len(f.Written)
	}
	return n
}

// Runner renders input files according to a configuration.
type Runner struct {
	Engine engine.Engine
	Config *config.Config
	Logger *log.Logger

	// Progress receives the progress bar when Config.Progress is set.
	// nil draws on os.Stderr.
	Progress io.Writer

	Registry *export.Registry
}

// NewRunner creates a Runner with the default encoders.
func NewRunner(eng engine.Engine, cfg *config.Config, logger *log.Logger) *Runner {
	return &Runner{
		Engine:   eng,
		Config:   cfg,
		Logger:   logger,
		Registry: export.DefaultRegistry(),
	}
}

func (r *Runner) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.New(io.Discard, "", 0)
}

func (r *Runner) workers() int {
	if r.Config.Workers > 0 {
		return r.Config.Workers
	}
	return runtime.NumCPU()
}

// Run processes every file under inputs. Missing inputs are logged and
// recorded; the returned error is reserved for an invalid configuration
// or a cancelled context.
func (r *Runner) Run(ctx context.Context, inputs []string) (Summary, error) {
	var summary Summary

	if err := r.Config.Validate(); err != nil {
		return summary, err
	}

	logger := r.logger()

	for _, input := range inputs {
		files, err := CollectFiles(input, r.Config.Recursive)
		if err != nil {
			logger.Printf("%s: %v, no file(s) will be processed", input, err)
			summary.Files = append(summary.Files, FileResult{Path: input, Failed: []error{err}})
			continue
		}

		for _, path := range files {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			summary.Files = append(summary.Files, r.ProcessFile(ctx, path))
		}
	}

	return summary, ctx.Err()
}

// ProcessFile renders every job of a single song.
func (r *Runner) ProcessFile(ctx context.Context, path string) FileResult {
	res := FileResult{Path: path}
	logger := r.logger()

	data, err := os.ReadFile(path)
	if err != nil {
		res.Failed = append(res.Failed, err)
		return res
	}

	logger.Printf("processing %s", path)

	renderer := &render.Renderer{Engine: r.Engine, Logger: logger}
	info, err := renderer.Probe(data)
	if err != nil {
		res.Skipped = err
		logger.Printf("%s: %v, skipping", path, err)
		return res
	}
	res.Info = info

	switch {
	case info.ChannelCount == 0 || info.InstrumentCount == 0:
		res.Skipped = fmt.Errorf("%w: no channels or instruments", ErrEmptySong)
	case info.DurationSeconds == 0:
		res.Skipped = fmt.Errorf("%w: no duration", ErrEmptySong)
	}
	if res.Skipped != nil {
		logger.Printf("%s: %v, skipping", path, res.Skipped)
		return res
	}

	format := r.Config.ExportFormat()
	enc, ok := r.Registry.Get(format)
	if !ok {
		res.Failed = append(res.Failed, fmt.Errorf("%q: %w", format, export.ErrUnknownFormat))
		return res
	}

	outDir := r.Config.Output
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	stem := Stem(path)

	jobs := Plan(info, r.Config)
	bar := r.progressBar(len(jobs), stem)

	outcomes := make([]jobOutcome, len(jobs))
	runPool(ctx, r.workers(), len(jobs), func(i int) {
		out := filepath.Join(outDir, jobs[i].FileName(stem, format.Extension()))
		outcomes[i] = r.renderJob(renderer, data, info, jobs[i], out, enc)
		if bar != nil {
			bar.Add(1)
		}
	})
	if bar != nil {
		bar.Finish()
	}

	for i, o := range outcomes {
		switch {
		case o.err != nil:
			logger.Printf("%s: %s: %v", path, jobs[i], o.err)
			res.Failed = append(res.Failed, fmt.Errorf("%s: %w", o.path, o.err))
		case o.silent:
			res.Silent++
		case o.path != "":
			res.Written = append(res.Written, o.path)
		}
	}

	if r.Config.ExportSamples {
		res.Samples = r.exportSamples(data, filepath.Join(outDir, stem), format)
	}

	logger.Printf("%s: %d written, %d silent, %d failed", path, len(res.Written), res.Silent, len(res.Failed))
	return res
}

type jobOutcome struct {
	path   string
	silent bool
	err    error
}

func (r *Runner) renderJob(renderer *render.Renderer, data []byte, info render.SongInfo, job Job, path string, enc export.Encoder) jobOutcome {
	p := render.Params{
		SampleRate:       r.Config.SampleRate,
		SampleWidth:      r.Config.SampleWidth(),
		Channel:          job.Channel,
		Instrument:       job.Instrument,
		StereoSeparation: r.Config.StereoSeparation,
		Stereo:           job.Stereo,
	}

	out := make([]byte, BufferSize(info.DurationSeconds, p))
	n, err := renderer.Render(out, data, p)
	if err != nil {
		return jobOutcome{err: err}
	}
	out = out[:n]

	if pcm.IsSilent(out) {
		return jobOutcome{silent: true}
	}

	buf, err := pcm.ToIntBuffer(out, p.SampleWidth.Bytes(), p.Channels(), int(p.SampleRate))
	if err != nil {
		return jobOutcome{err: err}
	}
	if err := export.WriteFile(path, enc, buf); err != nil {
		return jobOutcome{err: err}
	}
	return jobOutcome{path: path}
}

func (r *Runner) exportSamples(data []byte, stem string, format export.Format) *export.Report {
	logger := r.logger()

	s, err := r.Engine.Open(data, engine.ExportOptions(logger))
	if err != nil {
		logger.Printf("%s: samples: %v", stem, err)
		return nil
	}
	defer s.Close()

	x := &export.Exporter{Registry: r.Registry, Logger: logger}
	report, err := x.Export(s, stem, format)
	if err != nil {
		logger.Printf("%s: samples: %v", stem, err)
		return nil
	}
	return &report
}

func (r *Runner) progressBar(total int, stem string) *progressbar.ProgressBar {
	if !r.Config.Progress || total == 0 {
		return nil
	}

	w := r.Progress
	if w == nil {
		w = os.Stderr
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(stem),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// runPool calls fn for every index in [0, n) on at most workers
// goroutines. It stops handing out work once ctx is done.
func runPool(ctx context.Context, workers, n int, fn func(i int)) {
	if workers > n {
		workers = n
	}

	next := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				fn(i)
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case next <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(next)
	wg.Wait()
}
