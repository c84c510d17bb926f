// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cache

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/ffind/internal/findex"
)

func openTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	c, err := Open(t.TempDir(), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func testIndex(paths ...string) *findex.Index {
	entries := make([]findex.Entry, len(paths))
	for i, p := range paths {
		entries[i] = findex.NewEntry(p)
	}
	return findex.NewIndex(entries)
}

func TestRoundTrip(t *testing.T) {
	c := openTestCache(t, time.Hour)

	saved := testIndex("/r/a.txt", "/r/sub/B.txt", "/r/sub/deep/c.go")
	c.Save("/r", saved)

	loaded, ok := c.Load("/r")
	require.True(t, ok, "freshly saved record should load")

	got := loaded.Paths()
	want := saved.Paths()
	sort.Strings(got)
	sort.Strings(want)
	assert.Equal(t, want, got)

	// The basename map survives the trip too.
	assert.Equal(t, "b.txt", loaded.Base("/r/sub/B.txt"))
}

func TestMissOnUnknownRoot(t *testing.T) {
	c := openTestCache(t, time.Hour)

	_, ok := c.Load("/never-saved")
	assert.False(t, ok)
}

func TestExpiredRecordIsAbsent(t *testing.T) {
	c := openTestCache(t, time.Hour)
	c.Save("/r", testIndex("/r/a.txt"))

	// Age the record past the TTL directly in the store.
	past := time.Now().Add(-2 * time.Hour).Unix()
	_, err := c.db.Exec("UPDATE index_cache SET created_at = ?", past)
	require.NoError(t, err)

	_, ok := c.Load("/r")
	assert.False(t, ok, "expired record must behave like no record")
}

func TestCorruptPayloadIsAMiss(t *testing.T) {
	c := openTestCache(t, time.Hour)
	c.Save("/r", testIndex("/r/a.txt"))

	_, err := c.db.Exec("UPDATE index_cache SET payload = ?", []byte("not gzip"))
	require.NoError(t, err)

	_, ok := c.Load("/r")
	assert.False(t, ok, "corruption must be treated as a miss, not an error")
}

func TestDistinctRootsNeverCollide(t *testing.T) {
	c := openTestCache(t, time.Hour)
	c.Save("/first", testIndex("/first/a.txt"))
	c.Save("/second", testIndex("/second/b.txt", "/second/c.txt"))

	one, ok := c.Load("/first")
	require.True(t, ok)
	two, ok := c.Load("/second")
	require.True(t, ok)

	assert.Equal(t, 1, one.Len())
	assert.Equal(t, 2, two.Len())
}

func TestSameRootSpelledDifferently(t *testing.T) {
	c := openTestCache(t, time.Hour)
	c.Save("/r/sub/..", testIndex("/r/a.txt"))

	// Normalization maps both spellings to the same slot.
	_, ok := c.Load("/r")
	assert.True(t, ok)
}

func TestSaveOverwritesPreviousRecord(t *testing.T) {
	c := openTestCache(t, time.Hour)
	c.Save("/r", testIndex("/r/old.txt"))
	c.Save("/r", testIndex("/r/new1.txt", "/r/new2.txt"))

	loaded, ok := c.Load("/r")
	require.True(t, ok)
	assert.Equal(t, 2, loaded.Len())
}

func TestClearAll(t *testing.T) {
	c := openTestCache(t, time.Hour)
	c.Save("/r1", testIndex("/r1/a.txt"))
	c.Save("/r2", testIndex("/r2/b.txt"))

	require.NoError(t, c.ClearAll())

	_, ok := c.Load("/r1")
	assert.False(t, ok)
	_, ok = c.Load("/r2")
	assert.False(t, ok)
}

func TestNilCacheIsInert(t *testing.T) {
	var c *Cache

	_, ok := c.Load("/r")
	assert.False(t, ok)
	c.Save("/r", testIndex("/r/a.txt")) // must not panic
	assert.NoError(t, c.ClearAll())
	assert.NoError(t, c.Close())
}
