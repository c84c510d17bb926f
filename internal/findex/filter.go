// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package findex

import (
	"github.com/jeranaias/ffind/internal/config"
)

// =============================================================================
// PATH FILTER
// =============================================================================

// Filter decides which directory and file entries a walk skips. It is pure
// policy over immutable configuration: safe to call from any number of walker
// workers without synchronization.
type Filter struct {
	excludeDirs  map[string]struct{}
	excludeFiles map[string]struct{}
	maxDepth     int
}

// NewFilter builds a filter from the index configuration.
func NewFilter(cfg config.IndexConfig) *Filter {
	f := &Filter{
		excludeDirs:  make(map[string]struct{}, len(cfg.ExcludeDirs)),
		excludeFiles: make(map[string]struct{}, len(cfg.ExcludeFiles)),
		maxDepth:     cfg.MaxDepth,
	}
	for _, d := range cfg.ExcludeDirs {
		f.excludeDirs[d] = struct{}{}
	}
	for _, name := range cfg.ExcludeFiles {
		f.excludeFiles[name] = struct{}{}
	}
	return f
}

// SkipDir reports whether a directory named name at the given depth should be
// skipped along with its entire subtree. depth is the directory's own depth
// below the root (direct children of the root are at depth 1).
func (f *Filter) SkipDir(name string, depth int) bool {
	if depth > f.maxDepth {
		return true
	}
	_, excluded := f.excludeDirs[name]
	return excluded
}

// SkipFile reports whether a file named name should be left out of the index.
// Only the name is consulted; extension and size are never considered.
func (f *Filter) SkipFile(name string) bool {
	_, excluded := f.excludeFiles[name]
	return excluded
}

// MaxDepth returns the configured depth bound.
func (f *Filter) MaxDepth() int {
	return f.maxDepth
}
