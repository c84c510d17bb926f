// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui implements the interactive finder view: a query input line over
// a paged list of matching paths, refreshed live as the user types.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"

	"github.com/jeranaias/ffind/internal/engine"
	"github.com/jeranaias/ffind/internal/findex"
)

// chromeLines is the number of non-list lines the view draws (title, stats,
// query, count, blank separators, page indicator, controls footer).
const chromeLines = 9

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the finder.
type Model struct {
	theme  Theme
	engine *engine.Engine

	// Roots to index, decided before the program starts.
	roots []string

	// Dimensions
	width  int
	height int

	// Indexing state
	indexing    bool
	progressCh  chan findex.Progress
	rootsDone   int
	filesSoFar  int
	indexStart  time.Time
	progLimiter *rate.Limiter
	progressLn  string
	stats       engine.Stats

	// Search state
	input      textinput.Model
	spin       spinner.Model
	results    []findex.Entry
	lastQuery  string
	selected   int
	pageStart  int
	haveResult bool

	// Selection carried out on quit (empty: none).
	Opened string
}

// New builds the finder model for the given engine and roots.
func New(e *engine.Engine, roots []string) Model {
	input := textinput.New()
	input.Prompt = "Search: "
	input.Placeholder = "type to filter"
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Line

	return Model{
		theme:       NewTheme(),
		engine:      e,
		roots:       roots,
		indexing:    true,
		progressCh:  make(chan findex.Progress, len(roots)),
		indexStart:  time.Now(),
		progLimiter: rate.NewLimiter(rate.Every(time.Second), 1),
		input:       input,
		spin:        sp,
	}
}

// Init kicks off indexing, progress consumption, and result polling.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		buildIndexCmd(m.engine, m.roots, m.progressCh),
		waitProgressCmd(m.progressCh),
		pollResultCmd(m.engine),
	)
}

// pageSize derives the result-list page height from the terminal height.
func (m Model) pageSize() int {
	n := m.height - chromeLines
	if n < 1 {
		n = 10
	}
	return n
}
