// ffind - a fast fuzzy file finder for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/ffind/internal/cache"
	"github.com/jeranaias/ffind/internal/cli"
	"github.com/jeranaias/ffind/internal/config"
	"github.com/jeranaias/ffind/internal/engine"
	"github.com/jeranaias/ffind/internal/roots"
	"github.com/jeranaias/ffind/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		return err
	}
	if opts.ShowVersion {
		fmt.Printf("ffind %s (%s)\n", Version, GitCommit)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyOverrides(cfg, opts)

	setupLogging()

	// The cache is optional end to end: failure to open it means the finder
	// runs uncached, never that it fails.
	var c *cache.Cache
	if cfg.Cache.Enabled && !opts.NoCache {
		if dir, err := cfg.CacheDir(); err == nil {
			if c, err = cache.Open(dir, cfg.Cache.TTL()); err != nil {
				log.Printf("cache unavailable: %v", err)
				c = nil
			}
		}
	}
	if opts.ClearCache && c != nil {
		if err := c.ClearAll(); err != nil {
			log.Printf("failed to clear cache: %v", err)
		}
	}

	scanRoots, err := roots.Enumerate(opts.Path, opts.AllRoots)
	if err != nil {
		return err
	}

	eng := engine.New(cfg, c)
	defer eng.Close()

	final, err := tea.NewProgram(ui.New(eng, scanRoots), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("ui error: %w", err)
	}

	if m, ok := final.(ui.Model); ok && m.Opened != "" {
		fmt.Printf("Selected: %s\n", m.Opened)
	}
	return nil
}

// applyOverrides layers command-line options over the loaded config.
func applyOverrides(cfg *config.Config, opts *cli.Options) {
	if opts.MaxDepth >= 0 {
		cfg.Index.MaxDepth = opts.MaxDepth
	}
	if opts.Workers > 0 {
		cfg.Index.Workers = opts.Workers
	}
}

// setupLogging sends the standard logger to ~/.ffind/ffind.log so log lines
// never tear the interactive view. Falls back to discarding on error.
func setupLogging() {
	dir, err := config.HomeDir()
	if err != nil {
		log.SetOutput(os.Stderr)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "ffind.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("ffind ")
}
