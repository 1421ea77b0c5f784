package cmd

import (
	"fmt"

	"github.com/jsphweid/midichord/constants"
	"github.com/jsphweid/midichord/logging"
	"github.com/jsphweid/midichord/midi"
	"github.com/jsphweid/midichord/report"
	"github.com/jsphweid/midichord/timeline"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func parseScope(s string) (timeline.Scope, error) {
	switch s {
	case "global":
		return timeline.Global, nil
	case "track":
		return timeline.PerTrack, nil
	}
	return 0, errors.Errorf("unknown scope %q (want global or track)", s)
}

func newReportCmd() *cobra.Command {
	var scope string
	cmd := &cobra.Command{
		Use:   "report [midi] [out]",
		Short: "Writes a note listing",
		Long: fmt.Sprintf(`Writes every sounding note-on, per track, with its time and 24 fps frame.
Defaults to reading %q and writing %q.`, constants.DefaultMidiPath, constants.DefaultReportPath),
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := constants.DefaultMidiPath, constants.DefaultReportPath
			if len(args) > 0 {
				in = args[0]
			}
			if len(args) > 1 {
				out = args[1]
			}
			s, err := parseScope(scope)
			if err != nil {
				return err
			}

			f, err := midi.ReadMidiFile(in)
			if err != nil {
				return err
			}
			if err := report.WriteFile(out, f, report.Options{Scope: s}); err != nil {
				return err
			}
			logging.Log.Info().Str("in", in).Str("out", out).Str("scope", s.String()).Msg("report written")
			return nil
		},
	}
	cmd.Flags().StringVar(&scope, "scope", "global", "clock scope: global (one clock across tracks) or track")
	return cmd
}
