package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oshokin/stopwatch/internal/domain/timer"
)

// minSectionWidth keeps both sections readable on narrow terminals.
const minSectionWidth = 28

// View renders the stopwatch section, the countdown section and the help footer.
func (m Model) View() string {
	width := m.sectionWidth()

	sections := []string{
		m.styles.title.Render("Stopwatch / Timer"),
		m.styles.section.Width(width).Render(m.renderStopwatch()),
		m.styles.section.Width(width).Render(m.renderCountdown()),
	}

	if m.status != "" {
		sections = append(sections, m.styles.status.Render(m.status))
	}

	sections = append(sections, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStopwatch() string {
	clockStyle := m.styles.paused
	if m.widget.Running() {
		clockStyle = m.styles.clock
	}

	mode := m.widget.Mode()
	state := "paused"

	if m.widget.Running() {
		state = "running"
	}

	lines := []string{
		clockStyle.Render(m.widget.Display()),
		m.styles.muted.Render(fmt.Sprintf("%s · %s", mode.Kind(), state)),
	}

	if laps := m.widget.Laps(); len(laps) > 0 {
		lines = append(lines, "", m.styles.label.Render("Laps:"))
		lines = append(lines, renderLaps(laps)...)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderCountdown() string {
	lines := []string{
		m.styles.label.Render("Countdown Timer"),
		m.input.View(),
	}

	if mode := m.widget.Mode(); mode.Kind() == timer.KindCountdown {
		lines = append(lines, m.styles.muted.Render("target "+timer.Format(mode.Target())))
	}

	if alert := m.widget.Alert(); alert != "" {
		lines = append(lines, m.styles.alert.Render(alert))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderHelp() string {
	if m.input.Focused() {
		return m.help.View(inputKeyMap{keyMap: m.keys})
	}

	return m.help.View(m.keys.withRunning(m.widget.Running()))
}

func (m Model) sectionWidth() int {
	if m.width == 0 {
		return minSectionWidth
	}

	return max(minSectionWidth, min(m.width-4, 48))
}

// renderLaps numbers laps from the most recent one.
func renderLaps(laps []int) []string {
	lines := make([]string, 0, len(laps))
	for i, seconds := range laps {
		lines = append(lines, fmt.Sprintf("%2d. %s", i+1, timer.Format(seconds)))
	}

	return lines
}
