// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package findex

import (
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/semaphore"
)

// =============================================================================
// PROGRESS REPORTING
// =============================================================================

// Progress is emitted exactly once per top-level root when that root's
// subtree finishes, carrying the number of files discovered under it.
type Progress struct {
	Root  string
	Files int
}

// =============================================================================
// DIRECTORY WALKER
// =============================================================================

// Walker enumerates files under one or more roots, applying a Filter and
// fanning out across sibling directories with a single bounded worker pool
// shared by the whole walk. A Walker is safe for use by one walk at a time.
//
// A walk has no cancellation: once started it runs to completion, bounded by
// the skip-on-error handling below. Directories that cannot be read yield
// empty subtrees silently and never abort sibling traversal.
type Walker struct {
	filter *Filter
	sem    *semaphore.Weighted
	fanOut int
}

// NewWalker builds a walker whose total parallelism is bounded by workers.
// Sibling directories are dispatched to the pool only when there are more
// than fanOut of them; small sibling sets recurse inline, since dispatch
// overhead would dominate.
func NewWalker(filter *Filter, workers, fanOut int) *Walker {
	if workers < 1 {
		workers = 1
	}
	if fanOut < 1 {
		fanOut = 1
	}
	return &Walker{
		filter: filter,
		sem:    semaphore.NewWeighted(int64(workers)),
		fanOut: fanOut,
	}
}

// Walk enumerates all files under root that pass the filter, up to the
// filter's depth bound. Discovery order across parallel subtree tasks is
// task-completion order, not filesystem order.
func (w *Walker) Walk(root string) []Entry {
	c := &collector{}
	w.walkDir(root, 0, c)
	return c.take()
}

// WalkAll walks every root concurrently and returns the combined snapshot.
// Roots are isolated from each other: a failure under one root never affects
// the others. If progress is non-nil, one Progress value is sent per root as
// it completes; the walker owns the send side and closes the channel when
// every root has finished. Sends never block: give the channel capacity for
// one emission per root or risk dropped emissions.
func (w *Walker) WalkAll(roots []string, progress chan<- Progress) *Index {
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		all []Entry
	)

	for _, root := range roots {
		wg.Add(1)
		go func(root string) {
			defer wg.Done()
			entries := w.Walk(root)

			mu.Lock()
			all = append(all, entries...)
			mu.Unlock()

			if progress != nil {
				select {
				case progress <- Progress{Root: root, Files: len(entries)}:
				default:
				}
			}
		}(root)
	}

	wg.Wait()
	if progress != nil {
		close(progress)
	}
	return NewIndex(all)
}

// walkDir reads dir once, partitions entries into files and subdirectories in
// a single pass, then recurses. depth is dir's own depth below the root.
func (w *Walker) walkDir(dir string, depth int, c *collector) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		// Permission denied or transient I/O error: silent partial result.
		return
	}

	var files []Entry
	var subdirs []string
	for _, de := range dirents {
		name := de.Name()
		if de.IsDir() {
			if !w.filter.SkipDir(name, depth+1) {
				subdirs = append(subdirs, filepath.Join(dir, name))
			}
			continue
		}
		if !w.filter.SkipFile(name) {
			files = append(files, NewEntry(filepath.Join(dir, name)))
		}
	}
	if len(files) > 0 {
		c.add(files)
	}

	if len(subdirs) <= w.fanOut {
		for _, sub := range subdirs {
			w.walkDir(sub, depth+1, c)
		}
		return
	}

	// Enough siblings to amortize dispatch. TryAcquire keeps the pool bound
	// global across the whole walk without nested-pool deadlock: when no slot
	// is free the subtree is walked inline on the current worker instead.
	var wg sync.WaitGroup
	for _, sub := range subdirs {
		if w.sem.TryAcquire(1) {
			wg.Add(1)
			go func(sub string) {
				defer wg.Done()
				defer w.sem.Release(1)
				w.walkDir(sub, depth+1, c)
			}(sub)
		} else {
			w.walkDir(sub, depth+1, c)
		}
	}
	wg.Wait()
}

// =============================================================================
// COLLECTOR
// =============================================================================

// collector accumulates entry batches from concurrent subtree tasks.
type collector struct {
	mu      sync.Mutex
	entries []Entry
}

func (c *collector) add(batch []Entry) {
	c.mu.Lock()
	c.entries = append(c.entries, batch...)
	c.mu.Unlock()
}

func (c *collector) take() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries
}
