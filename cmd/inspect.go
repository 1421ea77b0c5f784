package cmd

import (
	"fmt"

	"github.com/jsphweid/midichord/model"
	"github.com/jsphweid/midichord/util"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <summary.dat>",
		Short: "Inspects a batch summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := util.ReadBinary[model.Summary](args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "run: %s\n", summary.RunID)
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}
