// SPDX-License-Identifier: EPL-2.0

// Package config loads and saves the modrender configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/modpbx/export"
	"github.com/ik5/modpbx/render"
)

const (
	MinSampleRate = 8000
	MaxSampleRate = 192000

	MaxStereoSeparation = 200
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the batch renderer configuration.
type Config struct {
	// Output directory; empty writes next to each input file
	Output string `yaml:"output,omitempty"`

	// Recursive descends into subdirectories of input directories
	Recursive bool `yaml:"recursive"`

	// Full also renders every song as one stereo mix, next to the
	// per-instrument renders
	Full bool `yaml:"full"`

	// Channels additionally splits each instrument render per channel
	Channels bool `yaml:"channels"`

	SampleRate uint32 `yaml:"sample_rate"`
	Stereo     bool   `yaml:"stereo"`

	// Format is the sample format: int16 or float
	Format string `yaml:"format"`

	// Container is the output file type: wav, flac or aiff
	Container string `yaml:"container"`

	// StereoSeparation in percent; nil keeps the engine default
	StereoSeparation *int32 `yaml:"stereo_separation,omitempty"`

	// Workers bounds parallel renders; 0 uses one per CPU
	Workers int `yaml:"workers"`

	Progress      bool `yaml:"progress"`
	ExportSamples bool `yaml:"export_samples"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		SampleRate: 48000,
		Format:     render.Narrow.String(),
		Container:  string(export.FLAC),
		Progress:   true,
	}
}

// LoadConfig loads configuration from file. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	if c.SampleRate < MinSampleRate || c.SampleRate > MaxSampleRate {
		return fmt.Errorf("%w: sample_rate %d outside %d..%d",
			ErrInvalid, c.SampleRate, MinSampleRate, MaxSampleRate)
	}
	if _, err := render.ParseSampleWidth(c.Format); err != nil {
		return fmt.Errorf("%w: format: %w", ErrInvalid, err)
	}
	if _, err := export.ParseFormat(c.Container); err != nil {
		return fmt.Errorf("%w: container: %w", ErrInvalid, err)
	}
	if sep := c.StereoSeparation; sep != nil && (*sep < 0 || *sep > MaxStereoSeparation) {
		return fmt.Errorf("%w: stereo_separation %d outside 0..%d", ErrInvalid, *sep, MaxStereoSeparation)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}
	return nil
}

// SampleWidth returns the parsed Format. Call Validate first.
func (c *Config) SampleWidth() render.SampleWidth {
	w, _ := render.ParseSampleWidth(c.Format)
	return w
}

// ExportFormat returns the parsed Container. Call Validate first.
func (c *Config) ExportFormat() export.Format {
	f, _ := export.ParseFormat(c.Container)
	return f
}
