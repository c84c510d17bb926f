// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/ffind/internal/opener"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.indexing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progressMsg:
		m.rootsDone++
		m.filesSoFar += msg.progress.Files
		// Update the visible line at most once per second; the final count
		// is rendered from indexDoneMsg regardless.
		if m.progLimiter.Allow() {
			m.progressLn = m.formatProgress()
		}
		return m, waitProgressCmd(m.progressCh)

	case progressClosedMsg:
		return m, nil

	case indexDoneMsg:
		m.indexing = false
		m.stats = msg.stats
		// Seed the view with the current (possibly empty) query.
		m.engine.Submit(m.input.Value())
		return m, nil

	case resultMsg:
		m.results = msg.result.Entries
		m.lastQuery = msg.result.Query
		m.haveResult = true
		if m.selected >= len(m.results) {
			m.selected = 0
			m.pageStart = 0
		}
		return m, pollResultCmd(m.engine)

	case pollMissMsg:
		// Nothing new inside the poll window: keep the previous result.
		return m, pollResultCmd(m.engine)
	}

	return m, nil
}

// handleKey routes navigation keys and forwards everything else to the input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {

	case "esc", "ctrl+c":
		return m, tea.Quit

	case "up":
		if m.selected > 0 {
			m.selected--
			if m.selected < m.pageStart {
				m.pageStart -= m.pageSize()
				if m.pageStart < 0 {
					m.pageStart = 0
				}
			}
		}
		return m, nil

	case "down":
		if m.selected < len(m.results)-1 {
			m.selected++
			if m.selected >= m.pageStart+m.pageSize() {
				m.pageStart += m.pageSize()
			}
		}
		return m, nil

	case "pgup":
		m.pageStart -= m.pageSize()
		if m.pageStart < 0 {
			m.pageStart = 0
		}
		m.selected = m.pageStart
		return m, nil

	case "pgdown":
		if m.pageStart+m.pageSize() < len(m.results) {
			m.pageStart += m.pageSize()
		}
		m.selected = m.pageStart
		return m, nil

	case "enter":
		if m.selected >= 0 && m.selected < len(m.results) {
			path := m.results[m.selected].Path
			m.Opened = path
			if err := opener.Open(path); err != nil {
				m.Opened = fmt.Sprintf("%s (open failed: %v)", path, err)
			}
			return m, tea.Quit
		}
		return m, nil
	}

	// Everything else edits the query.
	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.engine.Submit(m.input.Value())
		m.selected = 0
		m.pageStart = 0
	}
	return m, cmd
}

// formatProgress renders the throttled indexing status line.
func (m Model) formatProgress() string {
	elapsed := time.Since(m.indexStart)
	rate := 0
	if secs := elapsed.Seconds(); secs > 0 {
		rate = int(float64(m.filesSoFar) / secs)
	}
	return fmt.Sprintf("Indexed %d files (%d/sec) - %d/%d locations scanned...",
		m.filesSoFar, rate, m.rootsDone, len(m.roots))
}
