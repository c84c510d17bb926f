// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for ffind.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.ffind/config.toml
//   - ~/.ffind/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete ffind configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Index configuration (traversal rules)
	Index IndexConfig `toml:"index" json:"index"`

	// Cache configuration (on-disk index cache)
	Cache CacheConfig `toml:"cache" json:"cache"`

	// Search configuration (matcher tiers)
	Search SearchConfig `toml:"search" json:"search"`
}

// IndexConfig controls directory traversal.
type IndexConfig struct {
	// ExcludeDirs are directory names skipped entirely (with their subtrees).
	ExcludeDirs []string `toml:"exclude_dirs" json:"exclude_dirs"`
	// ExcludeFiles are file names never indexed. Matching is by exact name,
	// never by extension or size.
	ExcludeFiles []string `toml:"exclude_files" json:"exclude_files"`
	// MaxDepth is the maximum directory depth below a root (root itself is depth 0).
	MaxDepth int `toml:"max_depth" json:"max_depth"`
	// Workers bounds the walker's parallel fan-out across the whole walk.
	Workers int `toml:"workers" json:"workers"`
	// FanOutThreshold is the minimum number of sibling directories before the
	// walker dispatches them to the worker pool instead of recursing inline.
	FanOutThreshold int `toml:"fan_out_threshold" json:"fan_out_threshold"`
}

// CacheConfig controls the on-disk index cache.
type CacheConfig struct {
	// Enabled turns the cache on or off.
	Enabled bool `toml:"enabled" json:"enabled"`
	// Dir is the cache directory. Empty means ~/.ffind.
	Dir string `toml:"dir" json:"dir"`
	// TTLHours is how long a cached index stays valid, in hours.
	TTLHours int `toml:"ttl_hours" json:"ttl_hours"`
}

// TTL returns the cache time-to-live as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// SearchConfig controls the tiered matcher.
type SearchConfig struct {
	// MaxResults caps every result set.
	MaxResults int `toml:"max_results" json:"max_results"`
	// MaxCandidates caps the pre-filtered candidate set fed to the fuzzy scorer.
	MaxCandidates int `toml:"max_candidates" json:"max_candidates"`
	// FuzzyCutoff is the minimum partial-ratio score (0-100) kept by the fuzzy tier.
	FuzzyCutoff int `toml:"fuzzy_cutoff" json:"fuzzy_cutoff"`
	// PollTimeoutMS bounds how long the UI waits for a fresh result set, in milliseconds.
	PollTimeoutMS int `toml:"poll_timeout_ms" json:"poll_timeout_ms"`
}

// PollTimeout returns the result poll timeout as a duration.
func (c SearchConfig) PollTimeout() time.Duration {
	return time.Duration(c.PollTimeoutMS) * time.Millisecond
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		Index: IndexConfig{
			ExcludeDirs: []string{
				".git", "node_modules", "__pycache__", "venv", ".venv", ".env",
				"$Recycle.Bin", "System Volume Information", "Windows.old",
			},
			ExcludeFiles: []string{
				".gitignore", ".DS_Store", "Thumbs.db", "desktop.ini",
			},
			MaxDepth:        10,
			Workers:         defaultWorkers(),
			FanOutThreshold: 4,
		},
		Cache: CacheConfig{
			Enabled:  true,
			Dir:      "",
			TTLHours: 24,
		},
		Search: SearchConfig{
			MaxResults:    1000,
			MaxCandidates: 10000,
			FuzzyCutoff:   65,
			PollTimeoutMS: 100,
		},
	}
}

// defaultWorkers leaves one CPU for the interactive loop.
func defaultWorkers() int {
	n := runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}
	return n
}

// =============================================================================
// PATHS
// =============================================================================

// HomeDir returns the ffind home directory (~/.ffind), creating it if needed.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".ffind")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return dir, nil
}

// ConfigPathTOML returns the TOML config file path.
func ConfigPathTOML() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the JSON config file path.
func ConfigPathJSON() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load loads the configuration.
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	// Try TOML first
	if tomlPath, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finish(cfg)
		}
	}

	// Try JSON as fallback
	if jsonPath, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finish(cfg)
		}
	}

	return finish(cfg)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}
	return finish(cfg)
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// finish applies env overrides and validation in the order Load guarantees.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - FFIND_MAX_DEPTH: overrides index.max_depth
//   - FFIND_WORKERS: overrides index.workers
//   - FFIND_NO_CACHE: set to "1" or "true" to disable the cache
//   - FFIND_CACHE_DIR: overrides cache.dir
//   - FFIND_CACHE_TTL_HOURS: overrides cache.ttl_hours
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("FFIND_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Index.MaxDepth = n
		}
	}
	if v := os.Getenv("FFIND_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Index.Workers = n
		}
	}
	if v := os.Getenv("FFIND_NO_CACHE"); v == "1" || strings.EqualFold(v, "true") {
		c.Cache.Enabled = false
	}
	if v := os.Getenv("FFIND_CACHE_DIR"); v != "" {
		c.Cache.Dir = v
	}
	if v := os.Getenv("FFIND_CACHE_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Cache.TTLHours = n
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values that would break the engine.
func (c *Config) Validate() error {
	var errs []string

	if c.Index.MaxDepth < 0 {
		errs = append(errs, "index.max_depth must be >= 0")
	}
	if c.Index.Workers < 1 {
		errs = append(errs, "index.workers must be >= 1")
	}
	if c.Index.FanOutThreshold < 1 {
		errs = append(errs, "index.fan_out_threshold must be >= 1")
	}
	if c.Cache.TTLHours < 1 {
		errs = append(errs, "cache.ttl_hours must be >= 1")
	}
	if c.Search.MaxResults < 1 {
		errs = append(errs, "search.max_results must be >= 1")
	}
	if c.Search.MaxCandidates < c.Search.MaxResults {
		errs = append(errs, "search.max_candidates must be >= search.max_results")
	}
	if c.Search.FuzzyCutoff < 0 || c.Search.FuzzyCutoff > 100 {
		errs = append(errs, "search.fuzzy_cutoff must be in [0, 100]")
	}
	if c.Search.PollTimeoutMS < 1 {
		errs = append(errs, "search.poll_timeout_ms must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// CacheDir resolves the configured cache directory, defaulting to ~/.ffind.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		if err := os.MkdirAll(c.Cache.Dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create cache dir %s: %w", c.Cache.Dir, err)
		}
		return c.Cache.Dir, nil
	}
	return HomeDir()
}
