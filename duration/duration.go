package duration

import (
	"github.com/jsphweid/midichord/model"
	"github.com/jsphweid/midichord/timeline"
	"github.com/jsphweid/midichord/util"
)

// PerTrack returns how long each track runs when walked on its own, starting
// at 120 BPM. Tempo changes never leak from one track into another.
func PerTrack(f *model.MidiFile) []float64 {
	states := timeline.WalkFile(f, timeline.PerTrack, nil)
	res := make([]float64, len(states))
	for i, s := range states {
		res[i] = s.Seconds
	}
	return res
}

// Total is the length of the longest track, 0 for a file without events.
func Total(f *model.MidiFile) float64 {
	return util.Max(PerTrack(f))
}
