// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine ties the walker, the index cache, and the search
// coordinator together into the finder's indexing-and-search core.
package engine

import (
	"log"
	"time"

	"github.com/jeranaias/ffind/internal/cache"
	"github.com/jeranaias/ffind/internal/config"
	"github.com/jeranaias/ffind/internal/findex"
	"github.com/jeranaias/ffind/internal/search"
)

// shutdownTimeout bounds how long Close waits for the search worker.
const shutdownTimeout = 500 * time.Millisecond

// =============================================================================
// ENGINE
// =============================================================================

// Engine owns one index snapshot and the coordinator answering queries
// against it. Build replaces the snapshot wholesale; queries in flight keep
// the snapshot they started with.
type Engine struct {
	cfg    *config.Config
	walker *findex.Walker
	cache  *cache.Cache // nil when caching is disabled
	coord  *search.Coordinator
}

// Stats summarizes one completed indexing pass.
type Stats struct {
	Files   int
	Roots   int
	Elapsed time.Duration
}

// New assembles an engine. c may be nil to run without an index cache.
func New(cfg *config.Config, c *cache.Cache) *Engine {
	filter := findex.NewFilter(cfg.Index)
	return &Engine{
		cfg:    cfg,
		walker: findex.NewWalker(filter, cfg.Index.Workers, cfg.Index.FanOutThreshold),
		cache:  c,
		coord:  search.NewCoordinator(search.NewMatcher(cfg.Search), nil),
	}
}

// =============================================================================
// INDEXING
// =============================================================================

// Build indexes the given roots and publishes the resulting snapshot to the
// coordinator. With a single root and a cache available it tries the cache
// first and saves a fresh walk's result afterwards; multi-root scans are
// never cached (volume sets change between runs). If progress is non-nil it
// receives one emission per root and is closed when indexing completes, on
// cache hits as well as fresh walks.
func (e *Engine) Build(roots []string, progress chan<- findex.Progress) Stats {
	start := time.Now()

	if len(roots) == 1 && e.cache != nil {
		if ix, ok := e.cache.Load(roots[0]); ok {
			log.Printf("index: cache hit for %s (%d files)", roots[0], ix.Len())
			if progress != nil {
				select {
				case progress <- findex.Progress{Root: roots[0], Files: ix.Len()}:
				default:
				}
				close(progress)
			}
			e.coord.SetIndex(ix)
			return Stats{Files: ix.Len(), Roots: 1, Elapsed: time.Since(start)}
		}
	}

	ix := e.walker.WalkAll(roots, progress)

	if len(roots) == 1 && e.cache != nil {
		e.cache.Save(roots[0], ix)
	}

	e.coord.SetIndex(ix)
	return Stats{Files: ix.Len(), Roots: len(roots), Elapsed: time.Since(start)}
}

// =============================================================================
// QUERIES
// =============================================================================

// Submit hands the current query text to the search worker. Never blocks.
func (e *Engine) Submit(query string) string {
	return e.coord.Submit(query)
}

// Poll waits up to the configured poll timeout for the latest result.
func (e *Engine) Poll() (search.Result, bool) {
	return e.coord.Poll(e.cfg.Search.PollTimeout())
}

// Close shuts the search worker down and releases the cache. Best-effort: a
// worker that misses the shutdown window is abandoned.
func (e *Engine) Close() {
	if !e.coord.Close(shutdownTimeout) {
		log.Printf("search: worker did not stop within %v, abandoning", shutdownTimeout)
	}
	if e.cache != nil {
		e.cache.Close()
	}
}
