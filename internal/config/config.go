// Package config handles atlaspack configuration loading and management.
package config

import "github.com/acolley/splore/pkg/atlas"

// Config holds all packer settings.
type Config struct {
	Atlas   AtlasConfig   `yaml:"atlas"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// AtlasConfig holds packing settings.
type AtlasConfig struct {
	MaxWidth      int  `yaml:"max_width"`
	MaxHeight     int  `yaml:"max_height"`
	BorderPadding int  `yaml:"border_padding"`
	Trim          bool `yaml:"trim"`
	AllowRotation bool `yaml:"allow_rotation"`
	// MagentaKey turns magenta pixels transparent before packing, for
	// source art that marks transparency with the classic color key.
	MagentaKey bool `yaml:"magenta_key"`
}

// OutputConfig holds output path settings.
type OutputConfig struct {
	// Path is the output base path; the packer writes <Path>.png and
	// <Path>.json. Usually given per run with -o.
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Atlas: AtlasConfig{
			MaxWidth:      1024,
			MaxHeight:     1024,
			BorderPadding: 0,
			Trim:          false,
			AllowRotation: false,
			MagentaKey:    false,
		},
		Output: OutputConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// PackerConfig converts the atlas section to the packer's own config
// type.
func (c *Config) PackerConfig() atlas.Config {
	return atlas.Config{
		MaxWidth:      c.Atlas.MaxWidth,
		MaxHeight:     c.Atlas.MaxHeight,
		BorderPadding: c.Atlas.BorderPadding,
		Trim:          c.Atlas.Trim,
		AllowRotation: c.Atlas.AllowRotation,
	}
}
