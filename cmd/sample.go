package cmd

import (
	"github.com/jsphweid/midichord/logging"
	"github.com/jsphweid/midichord/sample"
	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample [out]",
		Short: "Writes a small demo MIDI file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := "sample.mid"
			if len(args) == 1 {
				out = args[0]
			}
			if err := sample.WriteFile(out, sample.Demo()); err != nil {
				return err
			}
			logging.Log.Info().Str("out", out).Msg("sample written")
			return nil
		},
	}
}
