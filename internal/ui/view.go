// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/ffind/internal/util"
)

// View renders the finder.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("ffind - fuzzy file finder"))
	b.WriteString("\n")

	if m.indexing {
		b.WriteString(fmt.Sprintf("%s Indexing files...\n", m.spin.View()))
		if m.progressLn != "" {
			b.WriteString(m.theme.Progress.Render(m.progressLn))
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString(m.theme.Progress.Render(m.formatStats()))
	b.WriteString("\n")
	b.WriteString(m.theme.Prompt.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.theme.Count.Render(fmt.Sprintf("Found %d matches", len(m.results))))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(m.theme.Warning.Render("No matches found."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderPage())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// formatStats renders the one-line indexing summary shown once the walk is done.
func (m Model) formatStats() string {
	elapsed := m.stats.Elapsed.Round(10 * time.Millisecond)
	rate := 0
	if secs := m.stats.Elapsed.Seconds(); secs > 0 {
		rate = int(float64(m.stats.Files) / secs)
	}
	return fmt.Sprintf("Indexed %d files across %d location(s) in %v (%d/sec)",
		m.stats.Files, m.stats.Roots, elapsed, rate)
}

// renderPage renders the visible slice of results with the selection marker.
func (m Model) renderPage() string {
	var b strings.Builder

	end := m.pageStart + m.pageSize()
	if end > len(m.results) {
		end = len(m.results)
	}

	// Leave room for the marker, a space, and the gap before the directory.
	nameWidth := m.width / 2
	if nameWidth < 20 {
		nameWidth = 20
	}

	for i := m.pageStart; i < end; i++ {
		entry := m.results[i]
		name := util.TruncateWidth(filepath.Base(entry.Path), nameWidth)
		dir := util.TruncatePathLeft(filepath.Dir(entry.Path), m.width-nameWidth-4)

		if i == m.selected {
			b.WriteString(m.theme.Selected.Render("> " + name))
		} else {
			b.WriteString(m.theme.Entry.Render("  " + name))
		}
		b.WriteString(" ")
		b.WriteString(m.theme.Dir.Render("(" + dir + ")"))
		b.WriteString("\n")
	}

	if len(m.results) > m.pageSize() {
		page := m.pageStart/m.pageSize() + 1
		pages := (len(m.results) + m.pageSize() - 1) / m.pageSize()
		b.WriteString(m.theme.Page.Render(
			fmt.Sprintf("Page %d/%d - PgUp/PgDn to navigate", page, pages)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderFooter renders the controls line.
func (m Model) renderFooter() string {
	key := m.theme.HelpKey.Render
	sep := m.theme.Help.Render
	return sep("Controls: ") +
		key("up/down") + sep(" navigate  ") +
		key("enter") + sep(" open  ") +
		key("esc") + sep(" quit")
}
