package timer

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// FinishedAlert is shown once a countdown reaches zero.
const FinishedAlert = "⏰ Countdown Finished!"

// ErrInvalidCountdown is returned when the countdown input is not a positive
// whole number of seconds. The widget state is left untouched.
var ErrInvalidCountdown = errors.New("countdown must be a positive whole number of seconds")

// Widget holds the state of one stopwatch/countdown widget.
// It is not safe for concurrent use: hosts call it from a single goroutine.
type Widget struct {
	// mode is the active controller with its own counter.
	mode Mode
	// running is true while the tick scheduler should be active.
	running bool
	// laps are recorded counters, most recent first.
	laps []int
	// countdownInput is the raw text typed into the countdown field.
	countdownInput string
	// alert is empty or FinishedAlert.
	alert string
}

// State is a read-only copy of the widget used for rendering and logging.
type State struct {
	// Mode is the active controller.
	Mode Mode
	// Running mirrors the widget running flag.
	Running bool
	// Laps are recorded counters, most recent first.
	Laps []int
	// CountdownInput is the raw countdown field contents.
	CountdownInput string
	// Alert is the completion notice or empty.
	Alert string
}

// TickResult describes what a single tick did.
type TickResult struct {
	// Applied is false when the widget was paused and the tick was ignored.
	Applied bool
	// Seconds is the counter after the tick.
	Seconds int
	// Finished is true when a countdown reached zero on this tick.
	Finished bool
}

// New creates a paused stopwatch at 00:00.
func New() *Widget {
	return &Widget{
		mode: Stopwatch(0),
	}
}

// Snapshot returns a copy of the current state.
func (w *Widget) Snapshot() State {
	return State{
		Mode:           w.mode,
		Running:        w.running,
		Laps:           slices.Clone(w.laps),
		CountdownInput: w.countdownInput,
		Alert:          w.alert,
	}
}

// Mode returns the active controller.
func (w *Widget) Mode() Mode {
	return w.mode
}

// Seconds returns the counter of the active controller.
func (w *Widget) Seconds() int {
	return w.mode.Seconds()
}

// Display returns the active counter formatted as MM:SS.
func (w *Widget) Display() string {
	return Format(w.mode.Seconds())
}

// Running reports whether the widget is ticking.
func (w *Widget) Running() bool {
	return w.running
}

// Laps returns a copy of the recorded laps, most recent first.
func (w *Widget) Laps() []int {
	return slices.Clone(w.laps)
}

// CountdownInput returns the raw countdown field contents.
func (w *Widget) CountdownInput() string {
	return w.countdownInput
}

// CountdownActive reports whether a countdown is the active controller.
func (w *Widget) CountdownActive() bool {
	return w.mode.Kind() == KindCountdown
}

// Alert returns the completion notice or an empty string.
func (w *Widget) Alert() string {
	return w.alert
}

// StartPause toggles the running flag and returns the new value.
// A countdown that already reached zero cannot resume, so starting in that
// state switches back to a fresh stopwatch.
func (w *Widget) StartPause() bool {
	if !w.running && w.mode.Finished() {
		w.mode = Stopwatch(0)
	}

	w.running = !w.running

	return w.running
}

// Reset stops the widget, returns to a stopwatch at zero and clears laps.
// The alert is kept: a reset is not a countdown reaching zero.
func (w *Widget) Reset() {
	w.running = false
	w.mode = Stopwatch(0)
	w.laps = nil
}

// Lap records the current counter in front of the lap list and returns it.
func (w *Widget) Lap() int {
	seconds := w.mode.Seconds()
	w.laps = slices.Insert(w.laps, 0, seconds)

	return seconds
}

// SetCountdownInput stores the raw countdown text without validating it.
func (w *Widget) SetCountdownInput(input string) {
	w.countdownInput = input
}

// SubmitCountdown starts a countdown from the stored input.
// On invalid input nothing changes and ErrInvalidCountdown is returned.
func (w *Widget) SubmitCountdown() error {
	seconds, err := ParseCountdown(w.countdownInput)
	if err != nil {
		return err
	}

	w.mode = Countdown(seconds, seconds)
	w.running = true
	w.alert = ""

	return nil
}

// Tick applies one scheduler tick. Paused widgets ignore ticks.
// When a countdown reaches zero the widget stops and raises the alert.
func (w *Widget) Tick() TickResult {
	if !w.running {
		return TickResult{Seconds: w.mode.Seconds()}
	}

	next, finished := Step(w.mode)
	w.mode = next

	if finished {
		w.running = false
		w.alert = FinishedAlert
	}

	return TickResult{
		Applied:  true,
		Seconds:  next.Seconds(),
		Finished: finished,
	}
}

// ParseCountdown validates countdown input: a base-10 integer greater than
// zero, surrounding whitespace allowed.
func ParseCountdown(input string) (int, error) {
	seconds, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCountdown, input)
	}

	return seconds, nil
}
