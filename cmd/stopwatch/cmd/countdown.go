package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/stopwatch/internal/service/headless"
)

// countdownCmd runs a countdown without the interactive widget.
var countdownCmd = &cobra.Command{
	Use:   "countdown <seconds>",
	Short: "Count down in the plain terminal and ring at zero.",
	Long: `Counts down from the given number of seconds, printing MM:SS once per second,
then prints the completion alert and plays the chime. Useful in scripts and over SSH.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		return headless.Run(ctx, &headless.Options{
			ConfigPath: configPath,
			Seconds:    args[0],
			NoChime:    noChime,
			Out:        cmd.OutOrStdout(),
		})
	},
}
