// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/prepareclips/pkg/adapters/ffmpegencoder"
	"github.com/user/prepareclips/pkg/orchestrator"
	"github.com/user/prepareclips/pkg/ports"
)

// Config represents the full configuration for prepareclips.
type Config struct {
	Destination string `yaml:"destination"`
	FrameRate   int    `yaml:"framerate"`
	FFmpegPath  string `yaml:"ffmpeg_path"`
	Pattern     string `yaml:"pattern"`
	LogLevel    string `yaml:"log_level"` // debug, info, warn, error or quiet

	Encoder EncoderConfig `yaml:"encoder"`
	Padding PaddingConfig `yaml:"padding"`
}

// EncoderConfig holds the fixed ffmpeg output options.
type EncoderConfig struct {
	Codec   string `yaml:"codec"`
	Profile string `yaml:"profile"`
	CRF     int    `yaml:"crf"`
	PixFmt  string `yaml:"pix_fmt"`
	Filter  string `yaml:"filter"`
}

// PaddingConfig controls the padding clip.
type PaddingConfig struct {
	Enabled   bool `yaml:"enabled"`
	Frames    int  `yaml:"frames"`
	FrameRate int  `yaml:"framerate"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	enc := ffmpegencoder.DefaultSettings()
	return Config{
		Destination: "clips",
		FrameRate:   20,
		Pattern:     "*.png",
		LogLevel:    ports.LevelInfo.String(),
		Encoder: EncoderConfig{
			Codec:   enc.Codec,
			Profile: enc.Profile,
			CRF:     enc.CRF,
			PixFmt:  enc.PixFmt,
			Filter:  enc.Filter,
		},
		Padding: PaddingConfig{
			Enabled:   true,
			Frames:    orchestrator.DefaultPadFrames,
			FrameRate: 1,
		},
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.FrameRate < 1:
		return fmt.Errorf("%w: framerate must be at least 1, got %d", ErrInvalid, c.FrameRate)
	case c.Pattern == "":
		return fmt.Errorf("%w: pattern must not be empty", ErrInvalid)
	case c.Destination == "":
		return fmt.Errorf("%w: destination must not be empty", ErrInvalid)
	case ports.ParseLogLevel(c.LogLevel).String() != c.LogLevel:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
	case c.Encoder.Codec == "":
		return fmt.Errorf("%w: encoder codec must not be empty", ErrInvalid)
	case c.Encoder.CRF < 0 || c.Encoder.CRF > 51:
		return fmt.Errorf("%w: encoder crf must be within 0-51, got %d", ErrInvalid, c.Encoder.CRF)
	case c.Padding.Frames < 1 || c.Padding.Frames > orchestrator.MaxPadFrames:
		return fmt.Errorf("%w: padding frames must be within 1-%d, got %d", ErrInvalid, orchestrator.MaxPadFrames, c.Padding.Frames)
	case c.Padding.FrameRate < 1:
		return fmt.Errorf("%w: padding framerate must be at least 1, got %d", ErrInvalid, c.Padding.FrameRate)
	}
	return nil
}

// EncoderSettings converts the encoder section to ffmpegencoder.Settings.
func (c Config) EncoderSettings() ffmpegencoder.Settings {
	return ffmpegencoder.Settings{
		Codec:   c.Encoder.Codec,
		Profile: c.Encoder.Profile,
		CRF:     c.Encoder.CRF,
		PixFmt:  c.Encoder.PixFmt,
		Filter:  c.Encoder.Filter,
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config for source.
func (c Config) ToOrchestratorConfig(source string) orchestrator.Config {
	return orchestrator.Config{
		Source:       source,
		Destination:  c.Destination,
		FrameRate:    c.FrameRate,
		Pattern:      c.Pattern,
		SkipPadClip:  !c.Padding.Enabled,
		PadFrames:    c.Padding.Frames,
		PadFrameRate: c.Padding.FrameRate,
	}
}
