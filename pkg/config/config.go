package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"volray/internal/codec"
	"volray/internal/util"
	"volray/pkg/graphics"
)

// Config represents the main configuration
type Config struct {
	Log     LogConfig     `yaml:"log" json:"log" toml:"log"`
	Preview PreviewConfig `yaml:"preview" json:"preview" toml:"preview"`

	// Target is the render target token ("color" or "density"). It is applied
	// after the render section is loaded because the render section never
	// carries a target.
	Target string                       `yaml:"target" json:"target" toml:"target"`
	Render graphics.ConfigurationSchema `yaml:"render" json:"render" toml:"render"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level" json:"level" toml:"level"` // debug, info, warn, error
	File  string `yaml:"file" json:"file" toml:"file"`    // optional, also log to this file
}

// PreviewConfig contains preview image configuration
type PreviewConfig struct {
	Width   int    `yaml:"width" json:"width" toml:"width"`
	Height  int    `yaml:"height" json:"height" toml:"height"`
	Workers int    `yaml:"workers" json:"workers" toml:"workers"` // 0 means one per CPU
	Output  string `yaml:"output" json:"output" toml:"output"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Preview: PreviewConfig{
			Width:   320,
			Height:  240,
			Workers: runtime.NumCPU(),
			Output:  "preview.png",
		},
		Target: graphics.DefaultRenderTarget.String(),
		Render: graphics.DefaultConfigurationSchema(),
	}
}

// LoadConfig loads the configuration from a file. The format follows the
// file extension (.yaml, .yml, .json, .toml). On error the defaults are
// returned alongside it.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	format, err := codec.FormatFromPath(filePath)
	if err != nil {
		return config, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := codec.Unmarshal(data, config, format); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	format, err := codec.FormatFromPath(filePath)
	if err != nil {
		return err
	}

	data, err := codec.Marshal(config, format)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := util.CreateDirIfNotExist(filepath.Dir(filePath)); err != nil {
		return err
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks the values the loader cannot express through types
func (c *Config) Validate() error {
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		return fmt.Errorf("invalid preview size %dx%d", c.Preview.Width, c.Preview.Height)
	}
	if c.Preview.Workers < 0 {
		return fmt.Errorf("invalid worker count %d", c.Preview.Workers)
	}
	if _, err := c.RenderTarget(); err != nil {
		return err
	}
	return nil
}

// RenderTarget parses the target token; an empty token selects the default
func (c *Config) RenderTarget() (graphics.RenderTarget, error) {
	if c.Target == "" {
		return graphics.DefaultRenderTarget, nil
	}
	target, err := graphics.ParseRenderTarget(c.Target)
	if err != nil {
		return graphics.DefaultRenderTarget, fmt.Errorf("invalid target: %w", err)
	}
	return target, nil
}

// RenderConfiguration rebuilds the frame snapshot from the persisted render
// section and the target token
func (c *Config) RenderConfiguration() (graphics.RenderConfiguration, error) {
	target, err := c.RenderTarget()
	if err != nil {
		return graphics.DefaultRenderConfiguration(), err
	}
	return c.Render.Restore(target), nil
}

// SetRenderConfiguration stores rc, splitting off its target as a token
func (c *Config) SetRenderConfiguration(rc graphics.RenderConfiguration) error {
	target, err := rc.Target()
	if err != nil {
		return err
	}
	c.Render = rc.Schema()
	c.Target = target.String()
	return nil
}
