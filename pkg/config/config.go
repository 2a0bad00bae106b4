// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/user/watermark/pkg/session"
)

// Config holds tool settings. Watermark styles are never stored here.
type Config struct {
	// Font file (TrueType). Empty selects the built-in Go Bold.
	FontPath string `yaml:"font_path"`

	// Export
	JPEGQuality int `yaml:"jpeg_quality" validate:"min=1,max=100"`

	// Preview
	PreviewDir     string `yaml:"preview_dir" validate:"required"`
	PreviewHistory bool   `yaml:"preview_history"`

	// Logging
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error quiet"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		JPEGQuality: session.DefaultConfig().JPEGQuality,
		PreviewDir:  "./preview",
		LogLevel:    "info",
	}
}

var validate = validator.New()

// Validate checks field ranges.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// LoadFromFile loads configuration from a YAML file over Defaults and
// validates the result.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ToSessionConfig converts Config to session.Config.
func (c Config) ToSessionConfig() session.Config {
	return session.Config{
		JPEGQuality: c.JPEGQuality,
	}
}
