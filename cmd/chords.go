package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/jsphweid/midichord/analysis"
	"github.com/jsphweid/midichord/bucket"
	"github.com/jsphweid/midichord/chord"
	"github.com/jsphweid/midichord/constants"
	"github.com/jsphweid/midichord/midi"
	"github.com/jsphweid/midichord/report"
	"github.com/spf13/cobra"
)

type keyingFlags struct {
	keying    string
	tolerance float64
	minNotes  int
}

func (k *keyingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&k.keying, "keying", "exact", "how simultaneous notes are grouped: exact, tick or tolerance")
	cmd.Flags().Float64Var(&k.tolerance, "tolerance", 0, "seconds within which notes group under --keying tolerance")
	cmd.Flags().IntVar(&k.minNotes, "min-notes", constants.MinChordNotes, "note-ons needed before a group is classified")
}

func (k *keyingFlags) options() (analysis.Options, error) {
	keying, err := bucket.ParseKeying(k.keying, k.tolerance)
	if err != nil {
		return analysis.Options{}, err
	}
	return analysis.Options{Keying: keying, MinNotes: k.minNotes}, nil
}

func newChordsCmd() *cobra.Command {
	var asJSON bool
	var kf keyingFlags
	cmd := &cobra.Command{
		Use:   "chords <midi>",
		Short: "Lists major and minor triads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := kf.options()
			if err != nil {
				return err
			}
			f, err := midi.ReadMidiFile(args[0])
			if err != nil {
				return err
			}
			chords := analysis.Analyze(f, opts).Chords

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(chords)
			}
			for _, c := range chords {
				fmt.Fprintf(out, "%.3f\t%s %s\t%s\n", c.Time, report.NoteName(c.Root), c.Quality, chord.CreateChordKey(c.Pitches))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	kf.register(cmd)
	return cmd
}
