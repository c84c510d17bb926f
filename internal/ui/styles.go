// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME
// =============================================================================

// Theme holds the styled components of the finder view.
type Theme struct {
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Count    lipgloss.Style
	Selected lipgloss.Style
	Entry    lipgloss.Style
	Dir      lipgloss.Style
	Progress lipgloss.Style
	Page     lipgloss.Style
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	Warning  lipgloss.Style
}

// NewTheme builds the default theme using adaptive colors, so the view stays
// readable on both light and dark terminals.
func NewTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"}).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "40"}),
		Count: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "245"}),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "231", Dark: "231"}).
			Background(lipgloss.AdaptiveColor{Light: "25", Dark: "25"}).
			Bold(true),
		Entry: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"}),
		Dir: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "26", Dark: "33"}),
		Progress: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "30", Dark: "44"}),
		Page: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "245"}),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "241"}),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "179"}),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "203"}),
	}
}
