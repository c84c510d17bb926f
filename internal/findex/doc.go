// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package findex builds in-memory file-name indexes by walking directory
// trees. A completed walk produces an immutable Index snapshot: a list of
// entries in discovery order plus a path -> lowercase-basename map used by
// the matcher. Snapshots are never mutated; a re-index replaces the whole
// snapshot.
package findex
