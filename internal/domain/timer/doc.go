// Package timer contains the state machine behind the stopwatch widget.
//
// A Widget composes two independent controllers under one Mode: a stopwatch
// counting up and a countdown counting down to zero. All transitions,
// including the per-second Tick, are plain methods on the Widget so hosts
// only need to call them from a single goroutine and re-render afterwards.
package timer
