// config.go — TOML configuration for the fruitbowl CLI.
//
// Package config loads the fruitbowl CLI configuration from TOML.
//
// Example fruitbowl.toml:
//
//	[result]
//	severity = true
//	default_severity = "ERROR"
//
//	[hash]
//	retain = false
//	terminator = ""
//
//	[log]
//	level = "info"
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/xgx-io/fruitbowl"
	"github.com/xgx-io/fruitbowl/internal/logging"
)

// Config is the decoded configuration file.
type Config struct {
	Result ResultConfig `toml:"result"`
	Hash   HashConfig   `toml:"hash"`
	Log    LogConfig    `toml:"log"`
}

// ResultConfig selects the severity variant of Result output.
type ResultConfig struct {
	// Severity controls whether severities are shown by the CLI.
	Severity        bool   `toml:"severity"`
	DefaultSeverity string `toml:"default_severity"`
}

// HashConfig selects the retention variant and the default terminator.
type HashConfig struct {
	Retain bool `toml:"retain"`
	// Terminator is a single byte, or empty to disable.
	Terminator string `toml:"terminator"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Result: ResultConfig{Severity: true, DefaultSeverity: "ERROR"},
		Hash:   HashConfig{},
		Log:    LogConfig{Level: "info"},
	}
}

// Load decodes path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that TOML types cannot express.
func (c Config) Validate() error {
	if _, err := c.Severity(); err != nil {
		return fmt.Errorf("[result].default_severity: %w", err)
	}
	if _, _, err := c.Terminator(); err != nil {
		return fmt.Errorf("[hash].terminator: %w", err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("[log].level: %w", err)
	}
	return nil
}

// Severity parses Result.DefaultSeverity; empty means SeverityInfo.
func (c Config) Severity() (fruitbowl.Severity, error) {
	if strings.TrimSpace(c.Result.DefaultSeverity) == "" {
		return fruitbowl.SeverityInfo, nil
	}
	return fruitbowl.ParseSeverity(c.Result.DefaultSeverity)
}

// Terminator returns the configured terminator byte and whether one is set.
func (c Config) Terminator() (byte, bool, error) {
	return ParseTerminator(c.Hash.Terminator)
}

// ParseTerminator accepts "", a single byte, or the escapes `\0`, `\n`, `\t`.
func ParseTerminator(s string) (byte, bool, error) {
	switch s {
	case "":
		return 0, false, nil
	case `\0`:
		return 0, true, nil
	case `\n`:
		return '\n', true, nil
	case `\t`:
		return '\t', true, nil
	}
	if len(s) != 1 {
		return 0, false, fmt.Errorf("terminator %q must be a single byte", s)
	}
	return s[0], true, nil
}
