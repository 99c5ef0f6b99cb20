package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oshokin/stopwatch/internal/domain/timer"
)

// formatCmd prints seconds the way the widget displays them.
var formatCmd = &cobra.Command{
	Use:   "format <seconds>...",
	Short: "Print seconds as MM:SS.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			seconds, err := strconv.Atoi(arg)
			if err != nil || seconds < 0 {
				return fmt.Errorf("format %q: seconds must be a non-negative integer", arg)
			}

			if _, err = fmt.Fprintln(cmd.OutOrStdout(), timer.Format(seconds)); err != nil {
				return err
			}
		}

		return nil
	},
}
