// Package config loads the optional JSON settings file. Every field is a
// pointer so a partial file only overrides what it names; the Get methods
// supply defaults for the rest.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"lsbstego/internal/flip"
	"lsbstego/internal/imageio"
)

const (
	DefaultOutputPrefix = "1_"
	maxFileSize         = 1 * 1024 * 1024 // 1MB
)

// Config holds output and reflection preferences.
type Config struct {
	OutputDir    *string `json:"output_dir,omitempty"`
	OutputPrefix *string `json:"output_prefix,omitempty"`
	OutputFormat *string `json:"output_format,omitempty"` // png, bmp or tiff
	FlipMode     *string `json:"flip_mode,omitempty"`     // mirror or copy
}

// Empty returns a Config with every field unset.
func Empty() *Config {
	return &Config{}
}

// Load reads a Config from a .json file no larger than 1MB.
// Unknown fields are rejected so typos surface instead of silently defaulting.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Empty()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OutputFormat != nil {
		if _, err := imageio.ParseFormat(*c.OutputFormat); err != nil {
			return err
		}
	}
	if c.FlipMode != nil {
		if _, err := flip.ParseMode(*c.FlipMode); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) GetOutputDir() string {
	if c.OutputDir == nil {
		return ""
	}
	return *c.OutputDir
}

func (c *Config) GetOutputPrefix() string {
	if c.OutputPrefix == nil {
		return DefaultOutputPrefix
	}
	return *c.OutputPrefix
}

// GetOutputFormat falls back to PNG when unset or unparsable.
func (c *Config) GetOutputFormat() imageio.Format {
	if c.OutputFormat == nil {
		return imageio.PNG
	}
	f, err := imageio.ParseFormat(*c.OutputFormat)
	if err != nil {
		return imageio.PNG
	}
	return f
}

func (c *Config) GetFlipMode() flip.Mode {
	if c.FlipMode == nil {
		return flip.Mirror
	}
	m, err := flip.ParseMode(*c.FlipMode)
	if err != nil {
		return flip.Mirror
	}
	return m
}
