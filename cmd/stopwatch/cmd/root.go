package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/stopwatch/internal/config"
	"github.com/oshokin/stopwatch/internal/service/widget"
	"github.com/oshokin/stopwatch/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel overrides the configured log level.
	logLevel string
	// countdown pre-fills the countdown field.
	countdown string
	// exclusive refuses to start next to another instance.
	exclusive bool
	// noChime disables the completion sound.
	noChime bool

	// rootCmd runs the interactive widget.
	rootCmd = &cobra.Command{
		Use:   "stopwatch",
		Short: "Terminal stopwatch with laps and a countdown timer.",
		Long: `Shows a stopwatch that can be started, paused, reset and lapped, plus a
countdown timer that rings a chime when it reaches zero.

Keys: space start/pause, r reset, l lap, tab edit countdown, enter start countdown,
? help, q quit. Logs are written to the file configured in the settings.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return widget.Run(ctx, &widget.Options{
				ConfigPath: configPath,
				LogLevel:   logLevel,
				Countdown:  countdown,
				Exclusive:  exclusive,
				NoChime:    noChime,
			})
		},
	}
)

// Execute runs the stopwatch CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&noChime, "no-chime", false, "do not play the completion chime")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&countdown, "countdown", "", "pre-fill the countdown field with seconds")
	rootCmd.Flags().BoolVar(&exclusive, "exclusive", false, "refuse to start when another stopwatch is running")

	rootCmd.AddCommand(countdownCmd, formatCmd)
}
