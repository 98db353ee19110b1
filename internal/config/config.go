// Package config loads linedemo settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvWidth    = "GGLINE_WIDTH"
	EnvHeight   = "GGLINE_HEIGHT"
	EnvOutput   = "GGLINE_OUTPUT"
	EnvFormat   = "GGLINE_FORMAT"
	EnvLive     = "GGLINE_LIVE"
	EnvLogLevel = "GGLINE_LOG_LEVEL"
)

// Output formats.
const (
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// DefaultEnvFile is read by Load when no file is named and it exists.
const DefaultEnvFile = ".env"

// ErrInvalid is returned for malformed or out-of-range values.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the demo settings. Width and height are in points, which
// map 1:1 to pixels in PNG output.
type Config struct {
	Width    int
	Height   int
	Output   string
	Format   string
	Live     bool
	LogLevel slog.Level
}

// Default returns the settings for a 375x667 (iPhone 8) PNG.
func Default() Config {
	return Config{
		Width:    375,
		Height:   667,
		Output:   "lines.png",
		Format:   FormatPNG,
		LogLevel: slog.LevelInfo,
	}
}

// Load reads envFile into the process environment, without overriding
// variables that are already set, and then builds a Config from the
// environment. An empty envFile means DefaultEnvFile if it exists.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		if _, err := os.Stat(DefaultEnvFile); err == nil {
			envFile = DefaultEnvFile
		}
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from Default and the variables found by lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()

	if v, ok := lookup(EnvWidth); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvWidth, v)
		}
		c.Width = n
	}
	if v, ok := lookup(EnvHeight); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvHeight, v)
		}
		c.Height = n
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		c.Output = v
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		c.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLive); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvLive, v)
		}
		c.Live = b
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		if err := c.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalid, EnvLogLevel, v)
		}
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks sizes and format.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	}
	switch c.Format {
	case FormatPNG, FormatPDF:
	default:
		return fmt.Errorf("%w: format %q, want %q or %q", ErrInvalid, c.Format, FormatPNG, FormatPDF)
	}
	if !c.Live && c.Output == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalid)
	}
	return nil
}
