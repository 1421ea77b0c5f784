package cmd

import (
	"fmt"

	"github.com/jsphweid/midichord/duration"
	"github.com/jsphweid/midichord/midi"
	"github.com/jsphweid/midichord/util"
	"github.com/spf13/cobra"
)

func newDurationCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "duration <midi>",
		Short: "Prints the length in seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := midi.ReadMidiFile(args[0])
			if err != nil {
				return err
			}
			perTrack := duration.PerTrack(f)
			out := cmd.OutOrStdout()
			if verbose {
				for i, d := range perTrack {
					fmt.Fprintf(out, "track %d: %.3f\n", i, d)
				}
			}
			fmt.Fprintf(out, "%.3f\n", util.Max(perTrack))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print each track")
	return cmd
}
