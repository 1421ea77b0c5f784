package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/midichord/bucket"
	"github.com/jsphweid/midichord/constants"
	"github.com/jsphweid/midichord/logging"
	"github.com/jsphweid/midichord/model"
	"github.com/jsphweid/midichord/timeline"
)

// CreateChordKey renders notes as a sorted dash separated string, e.g. "60-64-67".
// notes is not modified.
func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// Normalize reduces pitches to pitch classes and sorts them. Duplicates stay.
func Normalize(pitches []uint8) []uint8 {
	res := make([]uint8, len(pitches))
	for i, p := range pitches {
		res[i] = p % 12
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}

func intervalsFrom(root uint8, classes []uint8) []int {
	res := make([]int, len(classes))
	for i, c := range classes {
		res[i] = ((int(c)-int(root))%12 + 12) % 12
	}
	sort.Ints(res)
	return res
}

func startsWith(intervals []int, shape [3]int) bool {
	if len(intervals) < 3 {
		return false
	}
	return intervals[0] == shape[0] && intervals[1] == shape[1] && intervals[2] == shape[2]
}

var (
	majorShape = [3]int{0, 4, 7}
	minorShape = [3]int{0, 3, 7}
)

// Classify tries each pitch class in turn as the root and reports the first
// whose three lowest intervals form a major or minor triad.
func Classify(pitches []uint8) (q model.Quality, root uint8, ok bool) {
	classes := Normalize(pitches)
	for _, candidate := range classes {
		intervals := intervalsFrom(candidate, classes)
		switch {
		case startsWith(intervals, majorShape):
			return model.Major, candidate, true
		case startsWith(intervals, minorShape):
			return model.Minor, candidate, true
		}
	}
	return q, 0, false
}

type options struct {
	keying   bucket.Keying
	minNotes int
}

type Option func(*options)

func WithKeying(k bucket.Keying) Option {
	return func(o *options) {
		o.keying = k
	}
}

// WithMinNotes sets how many note-on events a bucket needs before it is
// classified. Duplicated pitches count.
func WithMinNotes(n int) Option {
	return func(o *options) {
		o.minNotes = n
	}
}

// CollectNoteOns walks every track in file order on one shared clock and
// buckets sounding note-ons.
func CollectNoteOns(f *model.MidiFile, k bucket.Keying) *bucket.NoteBucket {
	b := bucket.New(k)
	timeline.WalkFile(f, timeline.Global, func(s timeline.Stamped) {
		if s.Event.Sounding() {
			b.Add(s.Seconds, s.Ticks, s.Event.Pitch)
		}
	})
	return b
}

func GetChords(f *model.MidiFile, opts ...Option) []model.Chord {
	o := options{minNotes: constants.MinChordNotes}
	for _, opt := range opts {
		opt(&o)
	}

	b := CollectNoteOns(f, o.keying)
	var chords []model.Chord
	for _, e := range b.Entries() {
		if len(e.Pitches) < o.minNotes {
			continue
		}
		q, root, ok := Classify(e.Pitches)
		if !ok {
			logging.Log.Debug().
				Str("key", b.Key(e)).
				Str("notes", CreateChordKey(e.Pitches)).
				Msg("no triad shape")
			continue
		}
		chords = append(chords, model.Chord{
			Time:    e.Time,
			Ticks:   e.Ticks,
			Quality: q,
			Root:    root,
			Pitches: e.Pitches,
		})
	}
	return chords
}
