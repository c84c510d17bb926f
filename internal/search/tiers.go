// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"sort"
	"strings"

	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/jeranaias/ffind/internal/config"
	"github.com/jeranaias/ffind/internal/findex"
)

// Tier boundaries, by lowercased query length in runes.
const (
	shortQueryMax = 2 // direct substring tier
	mediumQueryMax = 4 // pre-filter + substring tier; longer queries get fuzzy scoring
)

// =============================================================================
// MATCHER
// =============================================================================

// Matcher ranks index entries against a query, capped at MaxResults. It is
// pure and total over its inputs: an empty index yields an empty result,
// never an error.
type Matcher struct {
	maxResults    int
	maxCandidates int
	cutoff        int
}

// NewMatcher builds a matcher from the search configuration.
func NewMatcher(cfg config.SearchConfig) *Matcher {
	return &Matcher{
		maxResults:    cfg.MaxResults,
		maxCandidates: cfg.MaxCandidates,
		cutoff:        cfg.FuzzyCutoff,
	}
}

// Match returns the ranked, capped entries for query. Queries are compared
// case-insensitively against each entry's cached lowercase basename.
//
// Tier selection by query length:
//   - empty: head of the index in insertion order, no scoring
//   - 1-2 chars: substring test, insertion order
//   - 3-4 chars: character-containment pre-filter, then substring test
//   - longer: same pre-filter to shrink the candidate set, then partial-ratio
//     scoring with a cutoff, sorted descending by score
func (m *Matcher) Match(query string, ix *findex.Index) []findex.Entry {
	entries := ix.Entries()
	q := strings.ToLower(query)

	switch n := len([]rune(q)); {
	case n == 0:
		return capped(entries, m.maxResults)
	case n <= shortQueryMax:
		return m.substringTier(q, entries)
	case n <= mediumQueryMax:
		return m.substringTier(q, preFilter(q, entries, 0))
	default:
		return m.fuzzyTier(q, preFilter(q, entries, m.maxCandidates))
	}
}

// substringTier keeps entries whose basename contains q, in index order.
func (m *Matcher) substringTier(q string, entries []findex.Entry) []findex.Entry {
	var out []findex.Entry
	for _, e := range entries {
		if strings.Contains(e.Base, q) {
			out = append(out, e)
			if len(out) == m.maxResults {
				break
			}
		}
	}
	return out
}

// fuzzyTier scores each candidate basename against q with a partial-ratio
// similarity metric, keeps scores at or above the cutoff, and sorts
// descending. The sort is stable, so equal scores keep the order candidates
// were presented in (original index order).
func (m *Matcher) fuzzyTier(q string, candidates []findex.Entry) []findex.Entry {
	type scored struct {
		entry findex.Entry
		score int
	}

	var kept []scored
	for _, e := range candidates {
		score := fuzzywuzzy.PartialRatio(q, e.Base)
		if score >= m.cutoff {
			kept = append(kept, scored{entry: e, score: score})
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	if len(kept) > m.maxResults {
		kept = kept[:m.maxResults]
	}
	out := make([]findex.Entry, len(kept))
	for i, s := range kept {
		out[i] = s.entry
	}
	return out
}

// =============================================================================
// PRE-FILTER
// =============================================================================

// preFilter keeps entries whose basename contains every character of q. The
// check is presence-only: order- and multiplicity-insensitive, so it can
// admit false positives that the substring or score pass then rejects. That
// makes it strictly a candidate-set reducer, never the source of truth, but
// it can never exclude a true substring match. limit > 0 truncates the
// survivor set arbitrarily once reached.
func preFilter(q string, entries []findex.Entry, limit int) []findex.Entry {
	var out []findex.Entry
	for _, e := range entries {
		if containsAllChars(e.Base, q) {
			out = append(out, e)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

func containsAllChars(base, q string) bool {
	for _, r := range q {
		if !strings.ContainsRune(base, r) {
			return false
		}
	}
	return true
}

func capped(entries []findex.Entry, n int) []findex.Entry {
	if len(entries) > n {
		entries = entries[:n]
	}
	// Copy so callers never alias the snapshot's backing array.
	out := make([]findex.Entry, len(entries))
	copy(out, entries)
	return out
}
