// Package headless runs a countdown without the interactive widget,
// printing the remaining time once per tick and the alert at zero.
package headless
