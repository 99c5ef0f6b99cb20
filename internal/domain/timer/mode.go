package timer

// Kind tells which controller a Mode belongs to.
type Kind int

const (
	// KindStopwatch counts up from zero without an upper bound.
	KindStopwatch Kind = iota
	// KindCountdown counts down from a target to zero.
	KindCountdown
)

// String returns a short lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStopwatch:
		return "stopwatch"
	case KindCountdown:
		return "countdown"
	default:
		return "unknown"
	}
}

// Mode is the active controller together with its own counter.
// The zero value is a stopwatch at 00:00.
type Mode struct {
	kind Kind
	// elapsed is the stopwatch counter.
	elapsed int
	// remaining is the countdown counter.
	remaining int
	// target is the duration the countdown was started with.
	target int
}

// Stopwatch returns a stopwatch mode that has accumulated elapsed seconds.
func Stopwatch(elapsed int) Mode {
	return Mode{
		kind:    KindStopwatch,
		elapsed: max(elapsed, 0),
	}
}

// Countdown returns a countdown mode with remaining seconds out of target.
func Countdown(remaining, target int) Mode {
	return Mode{
		kind:      KindCountdown,
		remaining: max(remaining, 0),
		target:    max(target, 0),
	}
}

// Kind returns the controller the mode belongs to.
func (m Mode) Kind() Kind {
	return m.kind
}

// Seconds returns the counter of the active controller.
func (m Mode) Seconds() int {
	if m.kind == KindCountdown {
		return m.remaining
	}

	return m.elapsed
}

// Target returns the countdown target, or zero for a stopwatch.
func (m Mode) Target() int {
	if m.kind == KindCountdown {
		return m.target
	}

	return 0
}

// Finished reports whether a countdown has reached zero.
// It is always false for a stopwatch.
func (m Mode) Finished() bool {
	return m.kind == KindCountdown && m.remaining == 0
}

// Step applies one tick to the mode and reports whether the countdown
// reached zero on this tick. A countdown never goes below zero.
func Step(m Mode) (Mode, bool) {
	switch m.kind {
	case KindCountdown:
		if m.remaining == 0 {
			return m, false
		}

		m.remaining--

		return m, m.remaining == 0
	default:
		m.elapsed++

		return m, false
	}
}
