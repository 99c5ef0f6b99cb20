package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oshokin/stopwatch/internal/chime"
	"github.com/oshokin/stopwatch/internal/config"
	"github.com/oshokin/stopwatch/internal/domain/timer"
	"github.com/oshokin/stopwatch/internal/logger"
	"github.com/oshokin/stopwatch/internal/scheduler"
)

// countdownCharLimit bounds the countdown field; larger values overflow anyway.
const countdownCharLimit = 9

// tickMsg carries one scheduler tick into the bubbletea loop.
type tickMsg scheduler.Tick

// chimeDoneMsg reports the end of the completion chime.
type chimeDoneMsg struct {
	err error
}

// Options configures a Model.
type Options struct {
	// Theme holds widget colors.
	Theme config.ThemeConfig
	// CountdownDefault pre-fills the countdown field.
	CountdownDefault string
	// Player plays the completion chime. Nil means silence.
	Player chime.Player
}

// Model is the bubbletea model of the widget.
type Model struct {
	// ctx carries the logger and bounds the ticker and chime.
	ctx context.Context
	// widget holds all timer state.
	widget *timer.Widget
	// ticker is kept running iff the widget is running.
	ticker *scheduler.Ticker
	// player plays the completion chime.
	player chime.Player

	keys   keyMap
	help   help.Model
	input  textinput.Model
	styles styles

	// status is a transient line under the widget.
	status string
	width  int
}

// New creates the widget model. The caller owns ticker and closes it on teardown.
func New(ctx context.Context, ticker *scheduler.Ticker, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "Enter seconds"
	input.CharLimit = countdownCharLimit
	input.Width = countdownCharLimit + 1
	input.Prompt = "⏱ "
	input.SetValue(opts.CountdownDefault)

	widget := timer.New()
	widget.SetCountdownInput(opts.CountdownDefault)

	player := opts.Player
	if player == nil {
		player = chime.Nop{}
	}

	theme := opts.Theme
	if theme == (config.ThemeConfig{}) {
		theme = config.DefaultTheme()
	}

	return Model{
		ctx:    logger.WithName(ctx, "widget"),
		widget: widget,
		ticker: ticker,
		player: player,
		keys:   newKeyMap(),
		help:   help.New(),
		input:  input,
		styles: newStyles(theme),
	}
}

// Widget exposes the underlying state machine.
func (m Model) Widget() *timer.Widget {
	return m.widget
}

// Init starts listening for ticks.
func (m Model) Init() tea.Cmd {
	return waitForTick(m.ticker.C())
}

// Update applies one message to the widget.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

		return m, nil
	case tickMsg:
		return m.updateTick(scheduler.Tick(msg))
	case chimeDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			logger.WarnKV(m.ctx, "Completion chime failed", "error", msg.err)
		}

		return m, nil
	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateInput(msg)
		}

		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateTick(tick scheduler.Tick) (tea.Model, tea.Cmd) {
	wait := waitForTick(m.ticker.C())

	if !m.ticker.Current(tick) {
		logger.DebugKV(m.ctx, "Dropped stale tick", "generation", tick.Generation)

		return m, wait
	}

	result := m.widget.Tick()
	if !result.Finished {
		return m, wait
	}

	m.sync()
	m.status = ""

	logger.InfoKV(m.ctx, "Countdown finished", "target", m.widget.Mode().Target())

	return m, tea.Batch(wait, playChime(m.ctx, m.player))
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.StartPause):
		running := m.widget.StartPause()
		m.sync()
		m.status = ""

		logger.DebugKV(m.ctx, "Toggled", "running", running, "mode", m.widget.Mode().Kind().String())
	case key.Matches(msg, m.keys.Reset):
		m.widget.Reset()
		m.sync()
		m.status = ""

		logger.Debugf(m.ctx, "Reset")
	case key.Matches(msg, m.keys.Lap):
		seconds := m.widget.Lap()

		logger.DebugKV(m.ctx, "Lap recorded", "seconds", seconds, "laps", len(m.widget.Laps()))
	case key.Matches(msg, m.keys.Focus):
		m.status = ""

		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Submit):
		m.submitCountdown()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		m.submitCountdown()
		if m.status == "" {
			m.input.Blur()
		}

		return m, nil
	case key.Matches(msg, m.keys.Blur):
		m.input.Blur()

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.widget.SetCountdownInput(m.input.Value())

	return m, cmd
}

// submitCountdown starts a countdown or explains why the input was rejected.
// A rejected input leaves the widget untouched.
func (m *Model) submitCountdown() {
	if err := m.widget.SubmitCountdown(); err != nil {
		m.status = "Enter a positive whole number of seconds."

		logger.DebugKV(m.ctx, "Countdown rejected", "input", m.widget.CountdownInput(), "error", err)

		return
	}

	m.status = ""
	m.sync()

	logger.InfoKV(m.ctx, "Countdown started", "seconds", m.widget.Seconds())
}

// sync starts or stops the ticker to match the widget running flag.
func (m *Model) sync() {
	if _, err := m.ticker.Sync(m.ctx, m.widget.Running()); err != nil {
		logger.ErrorKV(m.ctx, "Tick scheduler unavailable", "error", err)
		m.status = "Tick scheduler unavailable."
	}
}

// waitForTick turns the next tick on ch into a message. A closed channel
// ends the wait without a message.
func waitForTick(ch <-chan scheduler.Tick) tea.Cmd {
	return func() tea.Msg {
		tick, ok := <-ch
		if !ok {
			return nil
		}

		return tickMsg(tick)
	}
}

func playChime(ctx context.Context, player chime.Player) tea.Cmd {
	return func() tea.Msg {
		return chimeDoneMsg{err: player.Play(ctx)}
	}
}
