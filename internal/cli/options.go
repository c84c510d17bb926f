// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options are the command-line options of one ffind invocation.
type Options struct {
	// Path to search in (empty: current directory).
	Path string
	// AllRoots scans every fixed/removable volume instead of one path.
	AllRoots bool
	// MaxDepth overrides the configured depth bound when >= 0 (-1: use config).
	MaxDepth int
	// Workers overrides the configured worker count when > 0.
	Workers int
	// NoCache disables the on-disk index cache for this run.
	NoCache bool
	// ClearCache wipes the cache before indexing.
	ClearCache bool
	// ShowVersion prints version information and exits.
	ShowVersion bool
}

// Usage is the help text printed for -h/--help.
const Usage = `ffind - fast fuzzy file finder

Usage: ffind [options]

Options:
  -p, --path PATH       Path to search in (default: current directory)
  -a, --all-roots       Search all fixed/removable volumes
  -d, --max-depth N     Maximum directory depth to search
  -w, --workers N       Number of walker workers
  -n, --no-cache        Disable file index caching
  -c, --clear-cache     Clear the cache before starting
  -v, --version         Show version information
  -h, --help            Show this help
`

// Parse maps raw arguments onto Options. An unknown or malformed numeric
// value is an error; unknown flags are tolerated.
func Parse(raw []string) (*Options, error) {
	args := NewArgParser(raw)

	if args.BoolFlag("h", "help") {
		return nil, fmt.Errorf("%s", Usage)
	}

	opts := &Options{
		MaxDepth:    -1,
		Path:        args.Flag("p", "path"),
		AllRoots:    args.BoolFlag("a", "all-roots"),
		NoCache:     args.BoolFlag("n", "no-cache"),
		ClearCache:  args.BoolFlag("c", "clear-cache"),
		ShowVersion: args.BoolFlag("v", "version"),
	}

	// A bare positional is treated as the search path.
	if opts.Path == "" {
		opts.Path = args.Positional(0)
	}

	if v := args.Flag("d", "max-depth"); v != "" {
		n, err := args.FlagInt("d", "max-depth")
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid --max-depth %q", v)
		}
		opts.MaxDepth = n
	}
	if v := args.Flag("w", "workers"); v != "" {
		n, err := args.FlagInt("w", "workers")
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid --workers %q", v)
		}
		opts.Workers = n
	}

	return opts, nil
}
