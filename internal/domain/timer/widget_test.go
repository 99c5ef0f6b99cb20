package timer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tickN(w *Widget, n int) {
	for range n {
		w.Tick()
	}
}

// TestStopwatchCountsTicks verifies that N ticks add N seconds and pausing stops counting.
func TestStopwatchCountsTicks(t *testing.T) {
	t.Parallel()

	w := New()
	require.False(t, w.Running())
	require.Equal(t, "00:00", w.Display())

	require.True(t, w.StartPause())
	tickN(w, 75)
	require.Equal(t, 75, w.Seconds())
	require.Equal(t, "01:15", w.Display())

	require.False(t, w.StartPause())

	result := w.Tick()
	require.False(t, result.Applied)
	require.Equal(t, 75, w.Seconds())
}

// TestResetClearsCounterAndLaps checks reset from running and paused states.
func TestResetClearsCounterAndLaps(t *testing.T) {
	t.Parallel()

	w := New()
	w.StartPause()
	tickN(w, 3)
	w.Lap()
	w.Lap()

	w.Reset()
	require.False(t, w.Running())
	require.Equal(t, 0, w.Seconds())
	require.Empty(t, w.Laps())

	// Paused reset is also fine.
	w.Reset()
	require.Equal(t, 0, w.Seconds())
}

// TestLapRecordsMostRecentFirst ensures laps are prepended and duplicates are kept.
func TestLapRecordsMostRecentFirst(t *testing.T) {
	t.Parallel()

	w := New()
	require.Equal(t, 0, w.Lap())

	w.StartPause()
	tickN(w, 2)
	w.Lap()
	w.Lap()
	tickN(w, 3)
	w.StartPause()
	require.Equal(t, 5, w.Lap())

	require.Equal(t, []int{5, 2, 2, 0}, w.Laps())

	// Returned slice is a copy.
	laps := w.Laps()
	laps[0] = 99
	require.Equal(t, 5, w.Laps()[0])
}

// TestCountdownFinishes verifies the full countdown flow and the completion alert.
func TestCountdownFinishes(t *testing.T) {
	t.Parallel()

	w := New()
	w.SetCountdownInput("5")
	require.NoError(t, w.SubmitCountdown())
	require.True(t, w.Running())
	require.True(t, w.CountdownActive())
	require.Equal(t, 5, w.Seconds())
	require.Empty(t, w.Alert())

	var last TickResult
	for range 5 {
		last = w.Tick()
	}

	require.True(t, last.Finished)
	require.False(t, w.Running())
	require.Equal(t, FinishedAlert, w.Alert())
	require.Equal(t, 0, w.Seconds())

	// No further ticks apply after completion.
	require.False(t, w.Tick().Applied)
	require.Equal(t, 0, w.Seconds())
}

// TestCountdownRejectsInvalidInput checks that bad input leaves state untouched.
func TestCountdownRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"0", "-3", "abc", "", "  ", "2.5", "99999999999999999999"} {
		w := New()
		w.StartPause()
		tickN(w, 4)

		before := w.Snapshot()

		w.SetCountdownInput(input)
		err := w.SubmitCountdown()
		require.ErrorIs(t, err, ErrInvalidCountdown, "input=%q", input)

		after := w.Snapshot()
		require.Equal(t, before.Running, after.Running)
		require.Equal(t, before.Mode, after.Mode)
		require.Equal(t, before.Alert, after.Alert)
	}
}

// TestCountdownAcceptsPaddedInput verifies that surrounding whitespace is tolerated.
func TestCountdownAcceptsPaddedInput(t *testing.T) {
	t.Parallel()

	w := New()
	w.SetCountdownInput(" 12 ")
	require.NoError(t, w.SubmitCountdown())
	require.Equal(t, Countdown(12, 12), w.Mode())
}

// TestResetDuringCountdownDoesNotAlert ensures only a countdown reaching zero raises the alert.
func TestResetDuringCountdownDoesNotAlert(t *testing.T) {
	t.Parallel()

	w := New()
	w.SetCountdownInput("3")
	require.NoError(t, w.SubmitCountdown())
	tickN(w, 1)

	w.Reset()
	require.Empty(t, w.Alert())
	require.False(t, w.CountdownActive())
	require.Equal(t, 0, w.Seconds())

	// Starting afterwards runs the stopwatch, not the old countdown.
	w.StartPause()
	tickN(w, 2)
	require.Equal(t, 2, w.Seconds())
	require.Empty(t, w.Alert())
}

// TestResetKeepsExistingAlert verifies that reset leaves a previous alert in place.
func TestResetKeepsExistingAlert(t *testing.T) {
	t.Parallel()

	w := New()
	w.SetCountdownInput("1")
	require.NoError(t, w.SubmitCountdown())
	tickN(w, 1)
	require.Equal(t, FinishedAlert, w.Alert())

	w.Reset()
	require.Equal(t, FinishedAlert, w.Alert())
}

// TestNewCountdownClearsAlert checks that restarting a countdown clears the previous alert.
func TestNewCountdownClearsAlert(t *testing.T) {
	t.Parallel()

	w := New()
	w.SetCountdownInput("1")
	require.NoError(t, w.SubmitCountdown())
	tickN(w, 1)
	require.Equal(t, FinishedAlert, w.Alert())

	w.SetCountdownInput("2")
	require.NoError(t, w.SubmitCountdown())
	require.Empty(t, w.Alert())
	require.Equal(t, 2, w.Seconds())
}

// TestStartAfterFinishedCountdown verifies that a finished countdown restarts as a stopwatch.
func TestStartAfterFinishedCountdown(t *testing.T) {
	t.Parallel()

	w := New()
	w.SetCountdownInput("1")
	require.NoError(t, w.SubmitCountdown())
	tickN(w, 1)

	require.True(t, w.StartPause())
	require.Equal(t, KindStopwatch, w.Mode().Kind())

	tickN(w, 3)
	require.Equal(t, 3, w.Seconds())
	require.Equal(t, FinishedAlert, w.Alert())
}

// TestPauseResumeCountdown checks that a paused countdown keeps its remaining time.
func TestPauseResumeCountdown(t *testing.T) {
	t.Parallel()

	w := New()
	w.SetCountdownInput("10")
	require.NoError(t, w.SubmitCountdown())
	tickN(w, 4)

	require.False(t, w.StartPause())
	tickN(w, 4)
	require.Equal(t, 6, w.Seconds())

	require.True(t, w.StartPause())
	require.Equal(t, KindCountdown, w.Mode().Kind())
	tickN(w, 1)
	require.Equal(t, 5, w.Seconds())
}

// TestLapDuringCountdown documents that laps are allowed while counting down.
func TestLapDuringCountdown(t *testing.T) {
	t.Parallel()

	w := New()
	w.SetCountdownInput("9")
	require.NoError(t, w.SubmitCountdown())
	tickN(w, 2)

	require.Equal(t, 7, w.Lap())
	require.Equal(t, []int{7}, w.Laps())
}

// TestSnapshotIsDetached ensures Snapshot does not share the lap slice.
func TestSnapshotIsDetached(t *testing.T) {
	t.Parallel()

	w := New()
	w.Lap()
	w.SetCountdownInput("abc")

	s := w.Snapshot()
	require.Equal(t, "abc", s.CountdownInput)
	s.Laps[0] = 42

	require.Equal(t, []int{0}, w.Laps())
}
