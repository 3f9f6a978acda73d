// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/numspect/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete numspect configuration.
type Config struct {
	// Output controls how reports are rendered
	Output OutputConfig `toml:"output" json:"output"`

	// Unicode controls the codepoint conversion commands
	Unicode UnicodeConfig `toml:"unicode" json:"unicode"`
}

// OutputConfig contains report rendering configuration.
type OutputConfig struct {
	// Bits is the default bit-width override applied when no --bits flag is
	// given. 0 means automatic width selection.
	Bits int `toml:"bits" json:"bits"`
	// Color controls colored output: "auto", "always" or "never".
	// "auto" follows TTY detection and the NO_COLOR convention.
	Color string `toml:"color" json:"color"`
	// JSON makes machine-readable output the default for all commands.
	JSON bool `toml:"json" json:"json"`
}

// UnicodeConfig contains configuration for the l2cp/cp2l commands.
type UnicodeConfig struct {
	// Names enables the "nam:" line carrying the official Unicode
	// character name.
	Names bool `toml:"names" json:"names"`
}

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Bits:  0,
			Color: "auto",
			JSON:  false,
		},
		Unicode: UnicodeConfig{
			Names: true,
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

var (
	global     *Config
	globalOnce sync.Once
)

// Global returns the process-wide configuration, loading it on first use.
// Load failures fall back to defaults; a converter must keep working with
// a broken config file.
func Global() *Config {
	globalOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		global = cfg
	})
	return global
}

// Dir returns the numspect configuration directory (~/.numspect).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".numspect"), nil
}

// Load reads the configuration from the default locations, applying
// environment overrides on top. Missing files are not an error.
func Load() (*Config, error) {
	cfg := Default()

	dir, err := Dir()
	if err != nil {
		return cfg, err
	}

	tomlPath := filepath.Join(dir, "config.toml")
	jsonPath := filepath.Join(dir, "config.json")

	switch {
	case fileExists(tomlPath):
		if err := loadInto(cfg, tomlPath); err != nil {
			return Default(), err
		}
	case fileExists(jsonPath):
		if err := loadInto(cfg, jsonPath); err != nil {
			return Default(), err
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// LoadFrom reads the configuration from an explicit path (TOML or JSON by
// extension). Environment overrides are not applied; used by tests and the
// --config escape hatch.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if err := loadInto(cfg, path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
		return nil
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyEnv applies NUMSPECT_* environment overrides.
func applyEnv(cfg *Config) {
	if v := os.Getenv("NUMSPECT_BITS"); v != "" {
		if bits, err := strconv.Atoi(v); err == nil {
			cfg.Output.Bits = bits
		}
	}
	if v := os.Getenv("NUMSPECT_COLOR"); v != "" {
		cfg.Output.Color = strings.ToLower(v)
	}
	if v := os.Getenv("NUMSPECT_JSON"); v != "" {
		cfg.Output.JSON = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("NUMSPECT_NAMES"); v != "" {
		cfg.Unicode.Names = v == "1" || strings.EqualFold(v, "true")
	}
}

// =============================================================================
// VALIDATION AND PERSISTENCE
// =============================================================================

// Validate checks the configuration and normalizes field values.
func (c *Config) Validate() error {
	if c.Output.Bits < 0 || c.Output.Bits > 64 {
		return fmt.Errorf("output.bits must be in 0..64, got %d", c.Output.Bits)
	}
	c.Output.Color = strings.ToLower(c.Output.Color)
	switch c.Output.Color {
	case "", "auto":
		c.Output.Color = "auto"
	case "always", "never":
	default:
		return fmt.Errorf("output.color must be auto, always or never, got %q", c.Output.Color)
	}
	return nil
}

// Save writes the configuration as TOML to ~/.numspect/config.toml.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return c.SaveTo(filepath.Join(dir, "config.toml"))
}

// SaveTo writes the configuration as TOML to an explicit path.
func (c *Config) SaveTo(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0644)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
