// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoordinator(t *testing.T, paths ...string) *Coordinator {
	t.Helper()
	c := NewCoordinator(testMatcher(), indexOf(paths...))
	t.Cleanup(func() { c.Close(time.Second) })
	return c
}

// pollLast drains results until the coordinator goes quiet, returning the
// last result seen. A single timeout window covers match latency; two quiet
// windows in a row mean nothing further is coming.
func pollLast(c *Coordinator) (Result, bool) {
	var last Result
	var got bool
	misses := 0
	for misses < 2 {
		r, ok := c.Poll(200 * time.Millisecond)
		if !ok {
			misses++
			continue
		}
		last, got = r, true
		misses = 0
	}
	return last, got
}

func TestSubmitAndPoll(t *testing.T) {
	c := newTestCoordinator(t, "/r/alpha.txt", "/r/beta.txt")

	id := c.Submit("alpha")
	r, ok := pollLast(c)
	require.True(t, ok)
	assert.Equal(t, id, r.ID)
	assert.Equal(t, "alpha", r.Query)
	assert.Equal(t, []string{"/r/alpha.txt"}, resultPaths(r.Entries))
}

func TestLatestQueryWins(t *testing.T) {
	c := newTestCoordinator(t, "/r/one.txt", "/r/two.txt", "/r/three.txt")

	// Rapid-fire submissions; only the last is guaranteed a result.
	c.Submit("one")
	c.Submit("two")
	last := c.Submit("three")

	r, ok := pollLast(c)
	require.True(t, ok)
	assert.Equal(t, "three", r.Query)
	assert.Equal(t, last, r.ID)
	assert.Equal(t, []string{"/r/three.txt"}, resultPaths(r.Entries))
}

func TestPollTimesOutWithNoSubmission(t *testing.T) {
	c := newTestCoordinator(t, "/r/a.txt")

	start := time.Now()
	_, ok := c.Poll(50 * time.Millisecond)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestPollKeepsOnlyLatestResult(t *testing.T) {
	c := newTestCoordinator(t, "/r/one.txt", "/r/two.txt")

	c.Submit("one")
	// Let the first result land unconsumed, then supersede it.
	time.Sleep(100 * time.Millisecond)
	c.Submit("two")

	r, ok := pollLast(c)
	require.True(t, ok)
	assert.Equal(t, "two", r.Query)
}

func TestSetIndexSwapsSnapshot(t *testing.T) {
	c := newTestCoordinator(t, "/old/report.txt")

	c.Submit("report")
	r, ok := pollLast(c)
	require.True(t, ok)
	assert.Equal(t, []string{"/old/report.txt"}, resultPaths(r.Entries))

	c.SetIndex(indexOf("/new/report.txt", "/new/other.txt"))
	c.Submit("report")
	r, ok = pollLast(c)
	require.True(t, ok)
	assert.Equal(t, []string{"/new/report.txt"}, resultPaths(r.Entries))
}

func TestEmptyQuerySubmission(t *testing.T) {
	c := newTestCoordinator(t, "/r/a.txt", "/r/b.txt")

	c.Submit("longgone")
	c.Submit("")
	r, ok := pollLast(c)
	require.True(t, ok)
	assert.Equal(t, "", r.Query)
	assert.Equal(t, []string{"/r/a.txt", "/r/b.txt"}, resultPaths(r.Entries))
}

func TestNilIndexBeforeFirstSet(t *testing.T) {
	c := NewCoordinator(testMatcher(), nil)
	defer c.Close(time.Second)

	c.Submit("anything")
	r, ok := pollLast(c)
	require.True(t, ok)
	assert.Empty(t, r.Entries)
}

func TestCloseIsBounded(t *testing.T) {
	c := NewCoordinator(testMatcher(), indexOf("/r/a.txt"))

	start := time.Now()
	ok := c.Close(500 * time.Millisecond)
	assert.True(t, ok)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestCloseIsIdempotent(t *testing.T) {
	c := NewCoordinator(testMatcher(), indexOf("/r/a.txt"))

	assert.True(t, c.Close(time.Second))
	assert.True(t, c.Close(time.Second))
}
