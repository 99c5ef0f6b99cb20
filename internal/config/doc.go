// Package config defines the stopwatch settings and provides helpers to
// load, validate and save them in YAML format.
//
// A missing file at the default location is not an error: defaults apply.
package config
