// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/ffind/internal/engine"
	"github.com/jeranaias/ffind/internal/findex"
	"github.com/jeranaias/ffind/internal/search"
)

// =============================================================================
// MESSAGES
// =============================================================================

// indexDoneMsg signals that indexing finished and queries can be answered.
type indexDoneMsg struct {
	stats engine.Stats
}

// progressMsg carries one per-root completion emission from the walker.
type progressMsg struct {
	progress findex.Progress
}

// progressClosedMsg signals that the walker closed the progress channel.
type progressClosedMsg struct{}

// resultMsg carries the latest completed match from the coordinator.
type resultMsg struct {
	result search.Result
}

// pollMissMsg signals that no new result arrived within the poll timeout;
// the view keeps showing the previous result.
type pollMissMsg struct{}

// =============================================================================
// COMMANDS
// =============================================================================

// buildIndexCmd runs the (blocking, uncancellable) indexing pass off the UI
// loop and reports completion.
func buildIndexCmd(e *engine.Engine, roots []string, progress chan findex.Progress) tea.Cmd {
	return func() tea.Msg {
		stats := e.Build(roots, progress)
		return indexDoneMsg{stats: stats}
	}
}

// waitProgressCmd receives one progress emission; callers re-issue it until
// the channel closes.
func waitProgressCmd(progress <-chan findex.Progress) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-progress
		if !ok {
			return progressClosedMsg{}
		}
		return progressMsg{progress: p}
	}
}

// pollResultCmd waits (boundedly) for the latest result; the poll timeout
// inside Engine.Poll keeps the UI loop from ever hanging on the coordinator.
func pollResultCmd(e *engine.Engine) tea.Cmd {
	return func() tea.Msg {
		r, ok := e.Poll()
		if !ok {
			return pollMissMsg{}
		}
		return resultMsg{result: r}
	}
}
