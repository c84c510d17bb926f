// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package findex

import (
	"testing"

	"github.com/jeranaias/ffind/internal/config"
)

func testFilter(maxDepth int) *Filter {
	return NewFilter(config.IndexConfig{
		ExcludeDirs:  []string{".git", "node_modules"},
		ExcludeFiles: []string{".DS_Store", "Thumbs.db"},
		MaxDepth:     maxDepth,
	})
}

func TestSkipDirByName(t *testing.T) {
	f := testFilter(10)

	if !f.SkipDir(".git", 1) {
		t.Error(".git should be skipped at any depth")
	}
	if !f.SkipDir("node_modules", 5) {
		t.Error("node_modules should be skipped")
	}
	if f.SkipDir("src", 1) {
		t.Error("src should not be skipped")
	}
}

func TestSkipDirByDepth(t *testing.T) {
	f := testFilter(2)

	if f.SkipDir("src", 2) {
		t.Error("depth 2 should be within a bound of 2")
	}
	if !f.SkipDir("src", 3) {
		t.Error("depth 3 should exceed a bound of 2")
	}
}

func TestSkipFileByNameOnly(t *testing.T) {
	f := testFilter(10)

	if !f.SkipFile(".DS_Store") {
		t.Error(".DS_Store should be skipped")
	}
	// Extension and size are never considered.
	if f.SkipFile("huge-archive.zip") {
		t.Error("files are only skipped by exact name")
	}
	if f.SkipFile("main.go") {
		t.Error("main.go should not be skipped")
	}
}

func TestFilterConcurrentUse(t *testing.T) {
	f := testFilter(10)

	// Pure policy over immutable config: hammer it from many goroutines.
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 1000; j++ {
				f.SkipDir(".git", j%20)
				f.SkipFile("main.go")
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
