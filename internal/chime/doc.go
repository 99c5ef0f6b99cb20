// Package chime plays the sound that marks a finished countdown.
//
// The Speaker player synthesizes a short bell with gopxl/beep and plays it
// on the default audio device. Hosts without audio fall back to the
// terminal bell through Fallback.
package chime
