// Package instance finds other running copies of the stopwatch binary so
// the CLI can warn about, or refuse, a second widget.
package instance
