package ui

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/stopwatch/internal/domain/timer"
	"github.com/oshokin/stopwatch/internal/scheduler"
)

// countingPlayer records how many times the chime was played.
type countingPlayer struct {
	plays atomic.Int32
}

func (c *countingPlayer) Play(context.Context) error {
	c.plays.Add(1)

	return nil
}

func newTestModel(t *testing.T, opts Options) (Model, *scheduler.Ticker) {
	t.Helper()

	// A long interval keeps real ticks out of the tests; ticks are injected.
	ticker := scheduler.New(time.Hour)
	t.Cleanup(func() { _ = ticker.Close() })

	return New(context.Background(), ticker, opts), ticker
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)

	updated, ok := next.(Model)
	require.True(t, ok)

	return updated, cmd
}

func tick(t *testing.T, m Model, ticker *scheduler.Ticker) (Model, tea.Cmd) {
	t.Helper()

	return apply(t, m, tickMsg(scheduler.Tick{Generation: ticker.Generation(), At: time.Now()}))
}

// TestStartPauseDrivesScheduler verifies that the ticker runs iff the widget runs.
func TestStartPauseDrivesScheduler(t *testing.T) {
	t.Parallel()

	m, ticker := newTestModel(t, Options{})
	require.False(t, ticker.Running())

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.True(t, m.Widget().Running())
	require.True(t, ticker.Running())

	for range 3 {
		m, _ = tick(t, m, ticker)
	}

	require.Equal(t, 3, m.Widget().Seconds())
	require.Contains(t, m.View(), "00:03")
	require.Contains(t, m.View(), "pause")

	stale := ticker.Generation()

	m, _ = apply(t, m, runeKey("s"))
	require.False(t, m.Widget().Running())
	require.False(t, ticker.Running())

	// A tick from the previous run is dropped.
	m, cmd := apply(t, m, tickMsg(scheduler.Tick{Generation: stale}))
	require.NotNil(t, cmd)
	require.Equal(t, 3, m.Widget().Seconds())
	require.Contains(t, m.View(), "start")
}

// TestLapsAndReset checks the lap list visibility and reset.
func TestLapsAndReset(t *testing.T) {
	t.Parallel()

	m, ticker := newTestModel(t, Options{})
	require.NotContains(t, m.View(), "Laps:")

	m, _ = apply(t, m, runeKey(" "))
	m, _ = tick(t, m, ticker)
	m, _ = apply(t, m, runeKey("l"))
	m, _ = tick(t, m, ticker)
	m, _ = apply(t, m, runeKey("l"))

	require.Equal(t, []int{2, 1}, m.Widget().Laps())

	view := m.View()
	require.Contains(t, view, "Laps:")
	require.Contains(t, view, "1. 00:02")
	require.Contains(t, view, "2. 00:01")

	m, _ = apply(t, m, runeKey("r"))
	require.False(t, ticker.Running())
	require.Equal(t, 0, m.Widget().Seconds())
	require.NotContains(t, m.View(), "Laps:")
}

// TestCountdownFlow types a countdown, runs it to zero and checks the alert and chime.
func TestCountdownFlow(t *testing.T) {
	t.Parallel()

	player := new(countingPlayer)
	m, ticker := newTestModel(t, Options{Player: player})

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = apply(t, m, runeKey("2"))
	require.Equal(t, "2", m.Widget().CountdownInput())

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Widget().Running())
	require.True(t, m.Widget().CountdownActive())
	require.True(t, ticker.Running())
	require.Contains(t, m.View(), "00:02")

	m, _ = tick(t, m, ticker)
	m, cmd := tick(t, m, ticker)

	require.False(t, m.Widget().Running())
	require.False(t, ticker.Running())
	require.Equal(t, timer.FinishedAlert, m.Widget().Alert())
	require.Contains(t, m.View(), timer.FinishedAlert)

	// The batch contains the chime command.
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)

	for _, c := range batch {
		if c == nil {
			continue
		}

		go c()
	}

	require.Eventually(t, func() bool { return player.plays.Load() == 1 }, time.Second, 5*time.Millisecond)
}

// TestCountdownRejected ensures invalid input only sets a status line.
func TestCountdownRejected(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"0", "-3", "abc"} {
		m, ticker := newTestModel(t, Options{})

		m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
		m, _ = apply(t, m, runeKey(input))
		m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		require.False(t, m.Widget().Running(), "input=%q", input)
		require.False(t, ticker.Running())
		require.Equal(t, 0, m.Widget().Seconds())
		require.Empty(t, m.Widget().Alert())
		require.Contains(t, m.View(), "positive whole number")
	}
}

// TestResetDuringCountdownHasNoAlert checks that reset never raises the alert.
func TestResetDuringCountdownHasNoAlert(t *testing.T) {
	t.Parallel()

	m, ticker := newTestModel(t, Options{CountdownDefault: "5"})

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(t, m, ticker)
	m, _ = apply(t, m, runeKey("r"))

	require.Empty(t, m.Widget().Alert())
	require.NotContains(t, m.View(), timer.FinishedAlert)
	require.False(t, ticker.Running())
}

// TestQuit verifies both quit keys.
func TestQuit(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, Options{})

	_, cmd := apply(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	_, cmd = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

// TestHelpToggle checks that ? expands the help footer.
func TestHelpToggle(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, Options{})
	require.NotContains(t, m.View(), "more")

	m, _ = apply(t, m, runeKey("?"))
	require.Contains(t, m.View(), "start countdown")
}

// TestWaitForTickClosedChannel ensures a closed ticker ends the wait quietly.
func TestWaitForTickClosedChannel(t *testing.T) {
	t.Parallel()

	ch := make(chan scheduler.Tick)
	close(ch)

	require.Nil(t, waitForTick(ch)())
}
