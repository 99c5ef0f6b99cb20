// Package scheduler provides the periodic tick source of the widget.
//
// A Ticker delivers a tick once per interval while started. Each start
// opens a new generation; receivers compare the generation carried by a
// Tick with Ticker.Generation and drop stale ones, so a tick that raced a
// Stop is never applied.
package scheduler
