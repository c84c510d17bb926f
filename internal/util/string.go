// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small display helpers shared by the UI.
package util

import (
	"github.com/mattn/go-runewidth"
)

// TruncateWidth truncates a string to a maximum display width, accounting
// for double-width characters (CJK) that take 2 columns. If the string is
// truncated, "..." is appended within the budget.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// TruncatePathLeft truncates a path from the left, keeping the tail visible,
// which is the informative end of a deep path. The cut is marked with "...".
func TruncatePathLeft(path string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(path) <= maxWidth {
		return path
	}
	if maxWidth <= 3 {
		return runewidth.TruncateLeft(path, runewidth.StringWidth(path)-maxWidth, "")
	}
	return runewidth.TruncateLeft(path, runewidth.StringWidth(path)-maxWidth+3, "...")
}
