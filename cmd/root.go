package cmd

import (
	"github.com/jsphweid/midichord/constants"
	"github.com/jsphweid/midichord/logging"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var logLevel string
	rootCmd := &cobra.Command{
		Use:   "midichord",
		Short: "MIDI timelines, durations and triads",
		Long: `midichord reads Standard MIDI Files and reports note timelines,
total duration and the major/minor triads struck at the same instant.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "trace|debug|info|warn|error")

	rootCmd.AddCommand(
		newReportCmd(),
		newDurationCmd(),
		newChordsCmd(),
		newBatchCmd(),
		newInspectCmd(),
		newServeCmd(),
		newSampleCmd(),
	)
	return rootCmd
}

func Execute() {
	cobra.CheckErr(NewRootCmd().Execute())
}
