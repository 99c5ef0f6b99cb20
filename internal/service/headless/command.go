package headless

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oshokin/stopwatch/internal/chime"
	"github.com/oshokin/stopwatch/internal/config"
	"github.com/oshokin/stopwatch/internal/domain/timer"
	"github.com/oshokin/stopwatch/internal/logger"
	"github.com/oshokin/stopwatch/internal/scheduler"
)

// Options controls a headless countdown.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Seconds is the raw countdown input, validated like the widget field.
	Seconds string
	// NoChime disables the completion chime.
	NoChime bool
	// Out receives the countdown lines. Defaults to stdout.
	Out io.Writer
	// Interval overrides the tick period; used by tests.
	Interval time.Duration
}

// Run counts down from opts.Seconds and returns when zero is reached or ctx is canceled.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "countdown")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	widget := timer.New()
	widget.SetCountdownInput(opts.Seconds)

	if err = widget.SubmitCountdown(); err != nil {
		return err
	}

	if opts.NoChime {
		cfg.Chime.Enabled = false
	}

	player := chime.New(cfg.Chime, out, func(err error) {
		logger.WarnKV(ctx, "Audio chime unavailable, using terminal bell", "error", err)
	})

	defer func() {
		if c, ok := player.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	ticker := scheduler.New(opts.Interval)
	defer ticker.Close()

	if _, err = ticker.Sync(ctx, widget.Running()); err != nil {
		return fmt.Errorf("start ticker: %w", err)
	}

	logger.InfoKV(ctx, "Countdown started", "seconds", widget.Seconds())

	if _, err = fmt.Fprintln(out, widget.Display()); err != nil {
		return fmt.Errorf("write countdown: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			logger.InfoKV(ctx, "Countdown interrupted", "remaining", widget.Display())

			return nil
		case tick, ok := <-ticker.C():
			if !ok {
				return nil
			}

			if !ticker.Current(tick) {
				continue
			}

			result := widget.Tick()

			if _, err = fmt.Fprintln(out, timer.Format(result.Seconds)); err != nil {
				return fmt.Errorf("write countdown: %w", err)
			}

			if !result.Finished {
				continue
			}

			ticker.Stop()

			if _, err = fmt.Fprintln(out, widget.Alert()); err != nil {
				return fmt.Errorf("write countdown: %w", err)
			}

			logger.Info(ctx, "Countdown finished")

			if err = player.Play(ctx); err != nil {
				logger.WarnKV(ctx, "Completion chime failed", "error", err)
			}

			return nil
		}
	}
}
