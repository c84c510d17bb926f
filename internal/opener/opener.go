// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package opener hands a selected path to the platform's "open with default
// application" handler. The finder itself never interprets file contents.
package opener

// Open launches the platform handler for path without waiting for it.
func Open(path string) error {
	return openPath(path)
}
