package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strconv"
	"text/tabwriter"

	"github.com/jsphweid/midichord/analysis"
	"github.com/jsphweid/midichord/constants"
	"github.com/jsphweid/midichord/file"
	"github.com/jsphweid/midichord/logging"
	"github.com/jsphweid/midichord/model"
	"github.com/jsphweid/midichord/util"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	var workers int
	var outDir string
	var kf keyingFlags
	cmd := &cobra.Command{
		Use:   "batch <dir> [max]",
		Short: "Analyses every MIDI file under a directory",
		Long: `Analyses every .mid/.midi file under a directory and saves the results
as a summary file that "inspect" can read back.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var maxNum int
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return err
				}
				maxNum = n
			}
			opts, err := kf.options()
			if err != nil {
				return err
			}
			summary, path, err := runBatch(cmd.Context(), args[0], maxNum, outDir, workers, opts)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), summary)
			fmt.Fprintf(cmd.OutOrStdout(), "summary: %s\n", path)
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "files analysed at once")
	cmd.Flags().StringVarP(&outDir, "out", "o", constants.GetOutDir(), "directory for the summary file")
	kf.register(cmd)
	return cmd
}

func runBatch(ctx context.Context, dir string, maxNum int, outDir string, workers int, opts analysis.Options) (model.Summary, string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	paths, err := file.GatherAllMidiPaths(dir, maxNum)
	if err != nil {
		return model.Summary{}, "", err
	}
	logging.Log.Info().Int("files", len(paths)).Str("dir", dir).Msg("gathered midi files")

	summary, err := analysis.Batch(ctx, file.CreateFileNumMap(paths), opts, workers)
	if err != nil {
		return summary, "", err
	}
	path := filepath.Join(outDir, "summary-"+summary.RunID+".dat")
	if err := util.CreateBinary(path, summary); err != nil {
		return summary, "", err
	}
	return summary, path, nil
}

func printSummary(w io.Writer, s model.Summary) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tFILE\tTRACKS\tSECONDS\tCHORDS")
	for _, num := range util.SortedKeys(s.Files) {
		if a, ok := s.Analyses[num]; ok {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%.3f\t%d\n", num, s.Files[num], a.NumTracks, a.Duration, len(a.Chords))
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t-\t-\t%s\n", num, s.Files[num], s.Failed[num])
	}
	tw.Flush()
}
