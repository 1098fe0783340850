// Package config loads runtime settings for the report tool. Settings come
// from built-in defaults, an optional YAML file, an optional .env file and
// PHISHREPORT_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix namespaces environment overrides. Sections are separated by
	// a double underscore: PHISHREPORT_REPORT__OUTPUT_PATH.
	EnvPrefix = "PHISHREPORT_"

	// EnvConfigFile names an explicit YAML config file.
	EnvConfigFile = EnvPrefix + "CONFIG"

	// DefaultConfigFile is read from the working directory when present.
	DefaultConfigFile = ".phishreport.yaml"

	dotEnvFile = ".env"
)

// Config is the root configuration.
type Config struct {
	Report ReportConfig `koanf:"report" yaml:"report"`
	Log    LogConfig    `koanf:"log" yaml:"log"`
}

// ReportConfig controls the written workbook.
type ReportConfig struct {
	OutputPath string `koanf:"output_path" yaml:"output_path" validate:"required,endswith=.xlsx"`
	SheetName  string `koanf:"sheet_name" yaml:"sheet_name" validate:"required,max=31"`
	Summary    bool   `koanf:"summary" yaml:"summary"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `koanf:"format" yaml:"format" validate:"required,oneof=console json"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			OutputPath: "output.xlsx",
			SheetName:  "Sheet1",
			Summary:    true,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load resolves the config file location and loads the configuration.
func Load() (*Config, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	path := os.Getenv(EnvConfigFile)
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	return LoadConfig(path)
}

// LoadConfig loads defaults, overlays the YAML file at configPath when it is
// non-empty, applies environment overrides and validates the result.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvironmentOverrides overlays PHISHREPORT_* variables onto c.
func (c *Config) applyEnvironmentOverrides() error {
	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return fmt.Errorf("failed to load environment overrides: %w", err)
	}

	if err := k.Unmarshal("", c); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// loadDotEnv exports variables from path without overriding ones already set.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
