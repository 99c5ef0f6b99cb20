// Package ui renders the timer widget in the terminal with bubbletea.
//
// The Model owns a timer.Widget and keeps a scheduler.Ticker in step with
// the widget running flag after every update. Ticks arrive as messages on
// the bubbletea loop, so all widget mutations stay on one goroutine.
package ui
