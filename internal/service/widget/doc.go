// Package widget runs the interactive terminal widget: it loads settings,
// routes logs to a file, checks for other instances and drives the
// bubbletea program until the user quits or the context is canceled.
package widget
