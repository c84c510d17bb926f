// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package search answers rapidly-changing interactive queries against an
// immutable file-index snapshot.
//
// The Matcher is pure: it picks one of three strategies by query length so
// the common short-query case stays cheap enough to feel instantaneous, and
// reserves fuzzy scoring for queries long enough that pre-filtering pays off.
//
// The Coordinator owns a single background worker and a one-deep pending
// slot with overwrite semantics: a burst of keystrokes never queues stale
// work, and the worker is never more than one query behind real input.
package search
