// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cache

// Schema defines the index cache table. One row per distinct root, keyed by
// a stable hash of the normalized root path so distinct roots never collide
// and repeated runs against the same root reuse the same slot.
const Schema = `
CREATE TABLE IF NOT EXISTS index_cache (
	root_hash  TEXT PRIMARY KEY,
	root_path  TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	file_count INTEGER NOT NULL,
	payload    BLOB NOT NULL
);
`
