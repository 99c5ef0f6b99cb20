// Package version exposes build metadata for the stopwatch binary.
//
// Version, Commit and BuildTime are injected via -ldflags at build time.
package version
