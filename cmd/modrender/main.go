// SPDX-License-Identifier: EPL-2.0

// Command modrender renders tracker modules to one audio file per
// instrument (or per instrument and channel).
//
//	modrender [flags] <file or directory>...
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ik5/modpbx/internal/batch"
	"github.com/ik5/modpbx/internal/config"
	"github.com/ik5/modpbx/openmpt"
)

var (
	configPath = flag.String("config", defaultConfigPath(), "Path to configuration file")
	saveConfig = flag.Bool("save-config", false, "Write the effective configuration to -config and exit")

	output        = flag.String("o", "", "Output directory (default: next to each input)")
	recursive     = flag.Bool("r", false, "Descend into subdirectories")
	full          = flag.Bool("full", false, "Also render the whole song as a stereo mix")
	channels      = flag.Bool("channels", false, "Render every instrument on every channel separately")
	sampleRate    = flag.Uint64("rate", 48000, "Output sample rate in Hz (8000-192000)")
	stereo        = flag.Bool("stereo", false, "Stereo output for instrument renders")
	format        = flag.String("format", "int16", "Sample format: int16 or float")
	container     = flag.String("container", "flac", "Output container: wav, flac or aiff")
	separation    = flag.Int("separation", -1, "Stereo separation in percent (default: engine default)")
	workers       = flag.Int("j", 0, "Parallel renders (default: one per CPU)")
	progress      = flag.Bool("progress", true, "Show a progress bar")
	exportSamples = flag.Bool("samples", false, "Also export every sample slot")
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "modrender.yaml"
	}
	return filepath.Join(dir, "modrender", "config.yaml")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <file or directory>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "modrender: ", log.LstdFlags)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if err := applyFlags(cfg); err != nil {
		logger.Fatalf("Invalid flag: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	if *saveConfig {
		if err := os.MkdirAll(filepath.Dir(*configPath), 0755); err != nil {
			logger.Fatalf("Failed to create config directory: %v", err)
		}
		if err := config.SaveConfig(*configPath, cfg); err != nil {
			logger.Fatalf("Failed to save config: %v", err)
		}
		logger.Printf("Configuration written to %s", *configPath)
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if !openmpt.Available() {
		logger.Fatal("built without libopenmpt; rebuild with -tags openmpt")
	}

	if cfg.Output != "" {
		if err := os.MkdirAll(cfg.Output, 0755); err != nil {
			logger.Fatalf("Failed to create output directory: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := batch.NewRunner(openmpt.Engine{}, cfg, logger)
	summary, err := runner.Run(ctx, flag.Args())
	if err != nil {
		logger.Fatalf("Render aborted: %v", err)
	}

	logger.Printf("%d files written from %d inputs", summary.Written(), len(summary.Files))
	if err := summary.Err(); err != nil {
		logger.Printf("Finished with errors:\n%v", err)
		os.Exit(1)
	}
}

// toSampleRate narrows a -rate value, rejecting values that do not fit
// into 32 bits instead of wrapping them.
func toSampleRate(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("rate %d: %w", v, config.ErrInvalid)
	}
	return uint32(v), nil
}

// applyFlags overrides cfg with every flag given on the command line.
func applyFlags(cfg *config.Config) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = *output
		case "r":
			cfg.Recursive = *recursive
		case "full":
			cfg.Full = *full
		case "channels":
			cfg.Channels = *channels
		case "rate":
			var rate uint32
			if rate, err = toSampleRate(*sampleRate); err == nil {
				cfg.SampleRate = rate
			}
		case "stereo":
			cfg.Stereo = *stereo
		case "format":
			cfg.Format = *format
		case "container":
			cfg.Container = *container
		case "separation":
			if *separation < 0 {
				cfg.StereoSeparation = nil
				return
			}
			sep := int32(*separation)
			cfg.StereoSeparation = &sep
		case "j":
			cfg.Workers = *workers
		case "progress":
			cfg.Progress = *progress
		case "samples":
			cfg.ExportSamples = *exportSamples
		}
	})
	return err
}
