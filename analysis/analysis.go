package analysis

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/midichord/bucket"
	"github.com/jsphweid/midichord/chord"
	"github.com/jsphweid/midichord/constants"
	"github.com/jsphweid/midichord/duration"
	"github.com/jsphweid/midichord/logging"
	"github.com/jsphweid/midichord/midi"
	"github.com/jsphweid/midichord/model"
	"github.com/jsphweid/midichord/util"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Keying   bucket.Keying
	MinNotes int
}

func DefaultOptions() Options {
	return Options{MinNotes: constants.MinChordNotes}
}

func Analyze(f *model.MidiFile, opts Options) model.Analysis {
	chords := chord.GetChords(f, chord.WithKeying(opts.Keying), chord.WithMinNotes(opts.MinNotes))
	if chords == nil {
		chords = []model.Chord{}
	}
	perTrack := duration.PerTrack(f)
	return model.Analysis{
		Path:           f.Path,
		TicksPerBeat:   f.TicksPerBeat,
		NumTracks:      len(f.Tracks),
		Duration:       util.Max(perTrack),
		TrackDurations: perTrack,
		Chords:         chords,
	}
}

func AnalyzePath(path string, opts Options) (model.Analysis, error) {
	f, err := midi.ReadMidiFile(path)
	if err != nil {
		return model.Analysis{}, err
	}
	return Analyze(f, opts), nil
}

// AnalyzeReader analyses an SMF stream; name is only recorded as the path.
func AnalyzeReader(r io.Reader, name string, opts Options) (model.Analysis, error) {
	f, err := midi.Read(r)
	if err != nil {
		return model.Analysis{}, err
	}
	f.Path = name
	return Analyze(f, opts), nil
}

// Batch analyses files with at most workers running at once. A file that
// fails is recorded in Summary.Failed; only cancelling ctx aborts the batch.
func Batch(ctx context.Context, files model.FileNumToMidiPath, opts Options, workers int) (model.Summary, error) {
	summary := model.Summary{
		RunID:    uuid.New().String(),
		Files:    files,
		Analyses: make(map[model.FileNum]model.Analysis),
		Failed:   make(map[model.FileNum]string),
	}
	log := logging.Log.With().Str("run", summary.RunID).Logger()
	start := time.Now()

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	keys := util.SortedKeys(files)
	for i, num := range keys {
		i, num := i, num
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := files[num]
			log.Debug().Msgf("Processing %v of %v midi files", i+1, len(keys))
			a, err := AnalyzePath(path, opts)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("skipping")
				summary.Failed[num] = err.Error()
				return nil
			}
			summary.Analyses[num] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary, err
	}

	log.Info().
		Int("files", len(files)).
		Int("failed", len(summary.Failed)).
		Dur("took", time.Since(start)).
		Msg("batch done")
	return summary, nil
}
