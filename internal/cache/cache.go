// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cache persists completed file indexes between runs so an unchanged
// tree can be rehydrated without re-walking it.
//
// Every failure mode degrades to a cache miss or a no-op: a missing, expired,
// corrupt, or unreadable record is simply "no cache", and a failed save means
// "no cache available for the next run". Nothing here ever surfaces an error
// to the indexing path.
package cache

import (
	"bytes"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/gzip"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/ffind/internal/findex"
)

// =============================================================================
// INDEX CACHE
// =============================================================================

// Cache is a time-boxed on-disk store of index snapshots.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
}

// Open opens (or creates) the cache database under dir. Records older than
// ttl are treated as absent by Load.
func Open(dir string, ttl time.Duration) (*Cache, error) {
	db, err := sql.Open("sqlite", filepath.Join(dir, "index_cache.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}

	return &Cache{db: db, ttl: ttl}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load returns the cached snapshot for root, or (nil, false) when no valid
// record exists. Expired and undecodable records count as absent; expired
// rows are pruned opportunistically.
func (c *Cache) Load(root string) (*findex.Index, bool) {
	if c == nil {
		return nil, false
	}
	key := rootKey(root)

	var createdAt int64
	var blob []byte
	err := c.db.QueryRow(
		"SELECT created_at, payload FROM index_cache WHERE root_hash = ?", key,
	).Scan(&createdAt, &blob)
	if err != nil {
		return nil, false
	}

	if time.Since(time.Unix(createdAt, 0)) >= c.ttl {
		c.db.Exec("DELETE FROM index_cache WHERE root_hash = ?", key)
		return nil, false
	}

	ix, err := decodePayload(blob)
	if err != nil {
		// Corruption is a miss, never an error.
		c.db.Exec("DELETE FROM index_cache WHERE root_hash = ?", key)
		return nil, false
	}
	return ix, true
}

// Save stores a snapshot for root, replacing any previous record. Save is
// best-effort: a failure is logged and otherwise ignored, degrading to "no
// cache on the next run".
func (c *Cache) Save(root string, ix *findex.Index) {
	if c == nil || ix == nil {
		return
	}

	blob, err := encodePayload(ix)
	if err != nil {
		log.Printf("cache: failed to encode index for %s: %v", root, err)
		return
	}

	_, err = c.db.Exec(`
		INSERT INTO index_cache (root_hash, root_path, created_at, file_count, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(root_hash) DO UPDATE SET
			root_path  = excluded.root_path,
			created_at = excluded.created_at,
			file_count = excluded.file_count,
			payload    = excluded.payload
	`, rootKey(root), normalizeRoot(root), time.Now().Unix(), ix.Len(), blob)
	if err != nil {
		log.Printf("cache: failed to save index for %s: %v", root, err)
	}
}

// ClearAll removes every cached record.
func (c *Cache) ClearAll() error {
	if c == nil {
		return nil
	}
	_, err := c.db.Exec("DELETE FROM index_cache")
	return err
}

// =============================================================================
// KEY DERIVATION
// =============================================================================

// normalizeRoot canonicalizes a root path so the same tree always maps to the
// same cache slot regardless of how the path was spelled.
func normalizeRoot(root string) string {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return filepath.Clean(root)
}

// rootKey derives the stable one-way cache key for a root.
func rootKey(root string) string {
	sum := sha256.Sum256([]byte(normalizeRoot(root)))
	return hex.EncodeToString(sum[:])
}

// =============================================================================
// PAYLOAD CODEC
// =============================================================================

// payload is the serialized form of a snapshot: the path list in discovery
// order plus the precomputed basename map.
type payload struct {
	Paths []string          `json:"paths"`
	Bases map[string]string `json:"bases"`
}

func encodePayload(ix *findex.Index) ([]byte, error) {
	entries := ix.Entries()
	p := payload{
		Paths: make([]string, len(entries)),
		Bases: make(map[string]string, len(entries)),
	}
	for i, e := range entries {
		p.Paths[i] = e.Path
		p.Bases[e.Path] = e.Base
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if err := json.NewEncoder(zw).Encode(p); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodePayload(blob []byte) (*findex.Index, error) {
	zr, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var p payload
	if err := json.NewDecoder(zr).Decode(&p); err != nil && err != io.EOF {
		return nil, err
	}

	entries := make([]findex.Entry, 0, len(p.Paths))
	for _, path := range p.Paths {
		if base, ok := p.Bases[path]; ok {
			entries = append(entries, findex.Entry{Path: path, Base: base})
			continue
		}
		entries = append(entries, findex.NewEntry(path))
	}
	return findex.NewIndex(entries), nil
}
