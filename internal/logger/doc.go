// Package logger wraps zap for the stopwatch binaries:
//   - a global sugared logger with a console encoder,
//   - a file sink for the interactive widget, which owns the terminal,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and leveled helpers (Infof, WarnKV, ...).
package logger
