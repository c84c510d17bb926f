// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Index.MaxDepth != 10 {
		t.Errorf("expected max depth 10, got %d", cfg.Index.MaxDepth)
	}
	if cfg.Index.Workers < 1 {
		t.Errorf("expected at least 1 worker, got %d", cfg.Index.Workers)
	}
	if cfg.Cache.TTL() != 24*time.Hour {
		t.Errorf("expected 24h TTL, got %v", cfg.Cache.TTL())
	}
	if cfg.Search.MaxResults != 1000 {
		t.Errorf("expected result cap 1000, got %d", cfg.Search.MaxResults)
	}
	if cfg.Search.PollTimeout() != 100*time.Millisecond {
		t.Errorf("expected 100ms poll timeout, got %v", cfg.Search.PollTimeout())
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[index]
max_depth = 3
workers = 2
fan_out_threshold = 4
exclude_dirs = [".git"]
exclude_files = []

[cache]
enabled = false
ttl_hours = 1

[search]
max_results = 50
max_candidates = 500
fuzzy_cutoff = 80
poll_timeout_ms = 10
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Index.MaxDepth != 3 {
		t.Errorf("expected max depth 3, got %d", cfg.Index.MaxDepth)
	}
	if cfg.Cache.Enabled {
		t.Error("cache should be disabled")
	}
	if cfg.Search.FuzzyCutoff != 80 {
		t.Errorf("expected cutoff 80, got %d", cfg.Search.FuzzyCutoff)
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"index":{"max_depth":5,"workers":1,"fan_out_threshold":2,"exclude_dirs":[],"exclude_files":[]},"cache":{"enabled":true,"ttl_hours":2},"search":{"max_results":10,"max_candidates":100,"fuzzy_cutoff":65,"poll_timeout_ms":100}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Index.MaxDepth != 5 {
		t.Errorf("expected max depth 5, got %d", cfg.Index.MaxDepth)
	}
	if cfg.Cache.TTL() != 2*time.Hour {
		t.Errorf("expected 2h TTL, got %v", cfg.Cache.TTL())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FFIND_MAX_DEPTH", "7")
	t.Setenv("FFIND_NO_CACHE", "true")
	t.Setenv("FFIND_CACHE_TTL_HOURS", "48")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Index.MaxDepth != 7 {
		t.Errorf("expected max depth 7, got %d", cfg.Index.MaxDepth)
	}
	if cfg.Cache.Enabled {
		t.Error("cache should be disabled via FFIND_NO_CACHE")
	}
	if cfg.Cache.TTLHours != 48 {
		t.Errorf("expected TTL 48h, got %d", cfg.Cache.TTLHours)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative depth", func(c *Config) { c.Index.MaxDepth = -1 }},
		{"zero workers", func(c *Config) { c.Index.Workers = 0 }},
		{"zero ttl", func(c *Config) { c.Cache.TTLHours = 0 }},
		{"zero results", func(c *Config) { c.Search.MaxResults = 0 }},
		{"candidates below results", func(c *Config) { c.Search.MaxCandidates = 10 }},
		{"cutoff out of range", func(c *Config) { c.Search.FuzzyCutoff = 101 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
