package widget

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oshokin/stopwatch/internal/chime"
	"github.com/oshokin/stopwatch/internal/config"
	"github.com/oshokin/stopwatch/internal/instance"
	"github.com/oshokin/stopwatch/internal/logger"
	"github.com/oshokin/stopwatch/internal/scheduler"
	"github.com/oshokin/stopwatch/internal/ui"
)

// Options controls the interactive widget.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// LogLevel overrides the configured log level when set.
	LogLevel string
	// Countdown overrides the pre-filled countdown input when set.
	Countdown string
	// Exclusive refuses to start next to another instance, on top of the config flag.
	Exclusive bool
	// NoChime disables the completion chime.
	NoChime bool
	// Input and Output replace the terminal; used by tests.
	Input  io.Reader
	Output io.Writer
}

// errBadLogLevel is returned for an unknown --log-level value.
var errBadLogLevel = errors.New("unknown log level")

// Run shows the widget and blocks until it is closed.
func Run(ctx context.Context, opts *Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	applyOverrides(cfg, opts)

	level, ok := logger.ParseLogLevel(cfg.LogLevel)
	if !ok {
		return fmt.Errorf("%w: %q", errBadLogLevel, cfg.LogLevel)
	}

	// The terminal belongs to the widget, so logs go to a file.
	fileLogger, closeLog, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}

	defer func() {
		_ = closeLog()
	}()

	logger.SetLevel(level)

	ctx = logger.WithName(logger.ToContext(ctx, fileLogger), "stopwatch")

	if err = checkInstances(ctx, instance.NewProbe(), cfg.Exclusive); err != nil {
		return err
	}

	player := chime.New(cfg.Chime, os.Stderr, func(err error) {
		logger.WarnKV(ctx, "Audio chime unavailable, using terminal bell", "error", err)
	})

	defer func() {
		if c, ok := player.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	// Released on every exit path so no tick outlives the widget.
	ticker := scheduler.New(scheduler.DefaultInterval)
	defer ticker.Close()

	model := ui.New(ctx, ticker, ui.Options{
		Theme:            cfg.Theme,
		CountdownDefault: cfg.CountdownDefault,
		Player:           player,
	})

	programOptions := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOptions = append(programOptions, tea.WithInput(opts.Input), tea.WithoutSignalHandler())
	} else {
		programOptions = append(programOptions, tea.WithAltScreen())
	}

	if opts.Output != nil {
		programOptions = append(programOptions, tea.WithOutput(opts.Output))
	}

	logger.InfoKV(ctx, "Widget started", "config", opts.ConfigPath, "chime", cfg.Chime.Enabled)

	final, err := tea.NewProgram(model, programOptions...).Run()
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return fmt.Errorf("run widget: %w", err)
	}

	if m, ok := final.(ui.Model); ok {
		w := m.Widget()
		logger.InfoKV(ctx, "Widget closed", "display", w.Display(), "laps", len(w.Laps()))
	}

	return nil
}

// applyOverrides folds command line options into the loaded settings.
func applyOverrides(cfg *config.Config, opts *Options) {
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if opts.Countdown != "" {
		cfg.CountdownDefault = opts.Countdown
	}

	if opts.Exclusive {
		cfg.Exclusive = true
	}

	if opts.NoChime {
		cfg.Chime.Enabled = false
	}
}

// checkInstances warns about other running instances or, when exclusive,
// refuses to start. In exclusive mode an unreadable process table is an error.
func checkInstances(ctx context.Context, probe *instance.Probe, exclusive bool) error {
	name := instance.SelfName()

	if exclusive {
		if err := probe.Ensure(name); err != nil {
			return fmt.Errorf("check instances: %w", err)
		}

		return nil
	}

	pids, err := probe.Others(name)
	if err != nil {
		logger.WarnKV(ctx, "Cannot inspect running processes", "error", err)

		return nil
	}

	if len(pids) > 0 {
		logger.WarnKV(ctx, "Another stopwatch is running", "pids", pids)
	}

	return nil
}
