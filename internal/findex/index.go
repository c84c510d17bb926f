// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package findex

import (
	"path/filepath"
	"strings"
)

// =============================================================================
// FILE ENTRY
// =============================================================================

// Entry is one indexed file: its absolute path and the precomputed lowercase
// basename the matcher compares against. Entries are immutable once created.
type Entry struct {
	Path string
	Base string
}

// NewEntry creates an entry for path, computing the lowercase basename.
func NewEntry(path string) Entry {
	return Entry{
		Path: path,
		Base: strings.ToLower(filepath.Base(path)),
	}
}

// =============================================================================
// INDEX SNAPSHOT
// =============================================================================

// Index is an immutable snapshot of one indexing pass: entries in discovery
// order plus an O(1) path -> lowercase-basename lookup. Safe for concurrent
// readers without locking; never mutated after construction.
type Index struct {
	entries []Entry
	bases   map[string]string
}

// NewIndex builds a snapshot from entries. The entry slice is owned by the
// index after this call.
func NewIndex(entries []Entry) *Index {
	bases := make(map[string]string, len(entries))
	for _, e := range entries {
		bases[e.Path] = e.Base
	}
	return &Index{entries: entries, bases: bases}
}

// NewIndexFromPaths builds a snapshot from raw paths, computing basenames.
// Used when rehydrating a cached index whose basename map is missing entries.
func NewIndexFromPaths(paths []string) *Index {
	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, NewEntry(p))
	}
	return NewIndex(entries)
}

// Len returns the number of indexed files.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// Entries returns the entry slice in discovery order.
// Callers must treat it as read-only.
func (ix *Index) Entries() []Entry {
	if ix == nil {
		return nil
	}
	return ix.entries
}

// Base returns the cached lowercase basename for path. Falls back to
// computing it for paths not in the snapshot.
func (ix *Index) Base(path string) string {
	if ix != nil {
		if b, ok := ix.bases[path]; ok {
			return b
		}
	}
	return strings.ToLower(filepath.Base(path))
}

// Paths returns all indexed paths in discovery order.
func (ix *Index) Paths() []string {
	if ix == nil {
		return nil
	}
	paths := make([]string, len(ix.entries))
	for i, e := range ix.entries {
		paths[i] = e.Path
	}
	return paths
}
