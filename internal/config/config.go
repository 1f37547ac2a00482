// Package config resolves process defaults for the unitconv tools.
//
// Precedence, lowest first: built-in defaults, an optional YAML file, then
// UNITCONV_* environment variables. Command-line flags are applied on top by
// each tool after Load returns.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"unitconv-core/units"
)

// EnvConfigPath names the variable consulted when no --config is given.
const EnvConfigPath = "UNITCONV_CONFIG"

type Config struct {
	LogLevel  string `yaml:"log_level" env:"UNITCONV_LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"UNITCONV_LOG_FORMAT"` // json | console
	Output    string `yaml:"output" env:"UNITCONV_OUTPUT"`         // text | json | jsonl | yaml
	Threads   int    `yaml:"threads" env:"UNITCONV_THREADS"`       // 0 = all CPUs
	Buffer    int    `yaml:"buffer" env:"UNITCONV_BUFFER"`         // channel capacity per worker
	Domain    string `yaml:"domain" env:"UNITCONV_DOMAIN"`         // initial TUI tab
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  "error",
		LogFormat: "console",
		Output:    "text",
		Threads:   0,
		Buffer:    4,
		Domain:    string(units.Length),
	}
}

// Load builds a Config from defaults, the YAML file at path (or at
// $UNITCONV_CONFIG when path is empty), and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML document at path onto cfg. Keys absent from
// the file keep their current values.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ParseEnv overlays environment variables onto target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects values no tool can act on.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	switch c.Output {
	case "text", "json", "jsonl", "yaml":
	default:
		return fmt.Errorf("invalid output %q", c.Output)
	}
	if c.Threads < 0 {
		return errors.New("threads must be ≥ 0")
	}
	if c.Buffer < 0 {
		return errors.New("buffer must be ≥ 0")
	}
	if _, err := units.ParseDomain(c.Domain); err != nil {
		return err
	}
	return nil
}
