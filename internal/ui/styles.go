package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/oshokin/stopwatch/internal/config"
)

// styles groups the lipgloss styles of the widget.
type styles struct {
	title   lipgloss.Style
	clock   lipgloss.Style
	paused  lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	alert   lipgloss.Style
	status  lipgloss.Style
}

func newStyles(theme config.ThemeConfig) styles {
	accent := lipgloss.Color(theme.Accent)
	muted := lipgloss.Color(theme.Muted)

	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		clock:   lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		paused:  lipgloss.NewStyle().Bold(true).Foreground(muted).Padding(0, 1),
		section: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1),
		label:   lipgloss.NewStyle().Bold(true),
		muted:   lipgloss.NewStyle().Foreground(muted),
		alert:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Alert)),
		status:  lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}
