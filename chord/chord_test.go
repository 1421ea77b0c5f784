package chord

import (
	"fmt"
	"testing"

	"github.com/jsphweid/midichord/bucket"
	"github.com/jsphweid/midichord/model"
	"github.com/stretchr/testify/assert"
)

func singleTrack(events ...model.Event) *model.MidiFile {
	return &model.MidiFile{
		TicksPerBeat: 480,
		Tracks:       []model.Track{{Events: events}},
	}
}

func together(pitches ...uint8) []model.Event {
	var res []model.Event
	for _, p := range pitches {
		res = append(res, model.NoteOnEvent(0, p, 100))
	}
	return res
}

func TestCreateChordKeyDoesNotMutate(t *testing.T) {
	notes := []uint8{67, 60, 64}
	assert := assert.New(t)
	assert.Equal("60-64-67", CreateChordKey(notes))
	assert.Equal([]uint8{67, 60, 64}, notes)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		pitches []uint8
		ok      bool
		quality model.Quality
		root    uint8
	}{
		{[]uint8{60, 64, 67}, true, model.Major, 0},
		{[]uint8{60, 63, 67}, true, model.Minor, 0},
		{[]uint8{64, 67, 72}, true, model.Major, 0},
		{[]uint8{57, 60, 64}, true, model.Minor, 9},
		{[]uint8{60, 64, 67, 71}, true, model.Major, 0},
		{[]uint8{67, 71, 74}, true, model.Major, 7},
		{[]uint8{60, 61, 62}, false, 0, 0},
		{[]uint8{60, 63, 66}, false, 0, 0},
		{[]uint8{60, 64, 68}, false, 0, 0},
		{[]uint8{60, 67}, false, 0, 0},
		{nil, false, 0, 0},
		// pitch classes 0,0,4,7: no rotation has 0,4,7 as its three lowest intervals
		{[]uint8{60, 60, 64, 67}, false, 0, 0},
	}

	for _, c := range cases {
		name := fmt.Sprintf("classify %v", c.pitches)
		t.Run(name, func(t *testing.T) {
			q, root, ok := Classify(c.pitches)
			assert := assert.New(t)
			assert.Equal(c.ok, ok)
			if c.ok {
				assert.Equal(c.quality, q)
				assert.Equal(c.root, root)
			}
		})
	}
}

func TestMajorTriad(t *testing.T) {
	chords := GetChords(singleTrack(together(60, 64, 67)...))

	assert := assert.New(t)
	assert.Len(chords, 1)
	assert.Equal(model.Major, chords[0].Quality)
	assert.Equal(model.Notes{60, 64, 67}, chords[0].Pitches)
	assert.Equal(0.0, chords[0].Time)
}

func TestMinorTriad(t *testing.T) {
	chords := GetChords(singleTrack(together(60, 63, 67)...))

	assert := assert.New(t)
	assert.Len(chords, 1)
	assert.Equal(model.Minor, chords[0].Quality)
	assert.Equal(model.Notes{60, 63, 67}, chords[0].Pitches)
}

func TestClusterProducesNoChord(t *testing.T) {
	assert.Empty(t, GetChords(singleTrack(together(60, 61, 62)...)))
}

func TestDuplicatePitchCountsButDoesNotClassify(t *testing.T) {
	b := CollectNoteOns(singleTrack(together(60, 60, 64, 67)...), bucket.Keying{})
	assert := assert.New(t)
	assert.Equal(1, b.Len())
	assert.Equal(model.Notes{60, 60, 64, 67}, b.Entries()[0].Pitches)
	assert.Empty(GetChords(singleTrack(together(60, 60, 64, 67)...)))
}

func TestDuplicateMakesUpThreshold(t *testing.T) {
	// three events, two distinct pitches: big enough to classify, but no triad
	b := CollectNoteOns(singleTrack(together(60, 60, 67)...), bucket.Keying{})
	assert := assert.New(t)
	assert.Equal(model.Notes{60, 60, 67}, b.Entries()[0].Pitches)
	assert.Empty(GetChords(singleTrack(together(60, 60, 67)...)))
}

func TestTooFewNotes(t *testing.T) {
	assert.Empty(t, GetChords(singleTrack(together(60, 64)...)))
}

func TestSilentNoteOnIgnored(t *testing.T) {
	f := singleTrack(
		model.NoteOnEvent(0, 60, 100),
		model.NoteOnEvent(0, 64, 0),
		model.NoteOnEvent(0, 67, 100),
	)
	assert.Empty(t, GetChords(f))
}

// tinyOffsetFile puts a third note 1 tick after the first two, with a tick
// lasting about 3e-11 seconds.
func tinyOffsetFile() *model.MidiFile {
	return &model.MidiFile{
		TicksPerBeat: 0x7FFF,
		Tracks: []model.Track{{Events: []model.Event{
			model.NoteOnEvent(0, 60, 100),
			model.NoteOnEvent(0, 64, 100),
			model.TempoEvent(0, 1),
			model.NoteOnEvent(1, 67, 100),
		}}},
	}
}

func TestTinyOffsetsAreNotMerged(t *testing.T) {
	f := tinyOffsetFile()
	b := CollectNoteOns(f, bucket.Keying{})

	assert := assert.New(t)
	assert.Equal(2, b.Len())
	assert.Empty(GetChords(f))
	assert.Empty(GetChords(f, WithKeying(bucket.Keying{Mode: bucket.Tick})))
}

func TestToleranceMergesTinyOffsets(t *testing.T) {
	chords := GetChords(tinyOffsetFile(), WithKeying(bucket.Keying{Mode: bucket.Tolerance, Epsilon: 1e-6}))

	assert := assert.New(t)
	assert.Len(chords, 1)
	assert.Equal(model.Major, chords[0].Quality)
	assert.Equal(model.Notes{60, 64, 67}, chords[0].Pitches)
	assert.Equal(0.0, chords[0].Time)
}

func TestClockRunsOnAcrossTracks(t *testing.T) {
	f := &model.MidiFile{
		TicksPerBeat: 480,
		Tracks: []model.Track{
			{Events: append([]model.Event{model.OtherEvent(480)}, together(60, 64, 67)...)},
			{Events: append([]model.Event{model.OtherEvent(480)}, together(57, 60, 64)...)},
		},
	}
	chords := GetChords(f)

	assert := assert.New(t)
	assert.Len(chords, 2)
	assert.Equal(0.5, chords[0].Time)
	assert.Equal(model.Major, chords[0].Quality)
	// the second track starts where the first ended, not at zero
	assert.Equal(1.0, chords[1].Time)
	assert.Equal(int64(960), chords[1].Ticks)
	assert.Equal(model.Minor, chords[1].Quality)
	assert.Equal(uint8(9), chords[1].Root)
}

func TestChordsInDiscoveryOrder(t *testing.T) {
	events := together(60, 63, 67)
	events = append(events, model.NoteOnEvent(480, 65, 100), model.NoteOnEvent(0, 69, 100), model.NoteOnEvent(0, 72, 100))
	chords := GetChords(singleTrack(events...))

	assert := assert.New(t)
	assert.Len(chords, 2)
	assert.Equal(model.Minor, chords[0].Quality)
	assert.Equal(model.Major, chords[1].Quality)
	assert.Equal(uint8(5), chords[1].Root)
}

func TestWithMinNotes(t *testing.T) {
	f := singleTrack(together(60, 64, 67)...)
	assert.Empty(t, GetChords(f, WithMinNotes(4)))
}

func TestEmptyFile(t *testing.T) {
	assert.Empty(t, GetChords(&model.MidiFile{TicksPerBeat: 480}))
}
