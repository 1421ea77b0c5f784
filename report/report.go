package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jsphweid/midichord/constants"
	"github.com/jsphweid/midichord/model"
	"github.com/jsphweid/midichord/timeline"
	"github.com/pkg/errors"
)

type Options struct {
	// Global (the default) keeps one clock running across tracks, so later
	// tracks are stamped after earlier ones end.
	Scope timeline.Scope
}

func DefaultOptions() Options {
	return Options{Scope: timeline.Global}
}

func NoteName(pitch uint8) string {
	return constants.NoteNames[pitch%12]
}

// Frame is the 24 fps film frame a timestamp falls in.
func Frame(seconds float64) int64 {
	return int64(math.Floor(seconds * constants.FramesPerSecond))
}

func FormatNote(e model.Event, seconds float64) string {
	return fmt.Sprintf("Note %d (%s)| velocity %d | ticks: %d | time: %.2f seconds | frame: %d",
		e.Pitch, NoteName(e.Pitch), e.Velocity, e.DeltaTicks, seconds, Frame(seconds))
}

// Write lists every sounding note-on of every track. Tempo changes and other
// events move the clock but are not listed.
func Write(w io.Writer, f *model.MidiFile, opts Options) error {
	bw := bufio.NewWriter(w)
	s := timeline.Start()
	for i, t := range f.Tracks {
		fmt.Fprintf(bw, "Track %d: %s\n", i, t.Name)
		if opts.Scope == timeline.PerTrack {
			s = timeline.Start()
		}
		s = timeline.Walk(f.TicksPerBeat, i, t.Events, s, func(st timeline.Stamped) {
			if st.Event.Sounding() {
				fmt.Fprintln(bw, FormatNote(st.Event, st.Seconds))
			}
		})
	}
	return errors.Wrap(bw.Flush(), "writing report")
}

func WriteFile(path string, f *model.MidiFile, opts Options) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating report")
	}
	if err := Write(out, f, opts); err != nil {
		out.Close()
		return err
	}
	return errors.Wrap(out.Close(), "closing report")
}
