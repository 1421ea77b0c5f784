package sample

import (
	"io"

	"github.com/jsphweid/midichord/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func tempoMessage(microsPerBeat int64) smf.Message {
	return smf.Message{0xFF, 0x51, 0x03, byte(microsPerBeat >> 16), byte(microsPerBeat >> 8), byte(microsPerBeat)}
}

// Create turns a model file back into an SMF. Other events are written as
// note-offs, which read back as Other. Every track gets an end-of-track event.
func Create(f *model.MidiFile) (*smf.SMF, error) {
	if f.TicksPerBeat <= 0 || f.TicksPerBeat > 0x7FFF {
		return nil, errors.Errorf("ticks per beat %d cannot be written", f.TicksPerBeat)
	}
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(f.TicksPerBeat)

	for i, track := range f.Tracks {
		var newTrack smf.Track
		if track.Name != "" {
			newTrack.Add(0, smf.MetaTrackSequenceName(track.Name))
		}
		for j, evt := range track.Events {
			if evt.DeltaTicks < 0 || evt.DeltaTicks > 0x0FFFFFFF {
				return nil, errors.Errorf("track %d event %d: delta %d cannot be written", i, j, evt.DeltaTicks)
			}
			delta := uint32(evt.DeltaTicks)
			switch evt.Kind {
			case model.NoteOn:
				newTrack.Add(delta, midi.NoteOn(evt.Channel, evt.Pitch, evt.Velocity))
			case model.TempoChange:
				if evt.MicrosPerBeat <= 0 || evt.MicrosPerBeat > 0xFFFFFF {
					return nil, errors.Errorf("track %d event %d: tempo %d cannot be written", i, j, evt.MicrosPerBeat)
				}
				newTrack.Add(delta, tempoMessage(evt.MicrosPerBeat))
			default:
				newTrack.Add(delta, midi.NoteOff(evt.Channel, evt.Pitch))
			}
		}
		newTrack.Close(0)
		if err := res.Add(newTrack); err != nil {
			return nil, errors.Wrapf(err, "adding track %d", i)
		}
	}
	return res, nil
}

func Write(w io.Writer, f *model.MidiFile) error {
	s, err := Create(f)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return errors.Wrap(err, "writing smf")
}

func WriteFile(path string, f *model.MidiFile) error {
	s, err := Create(f)
	if err != nil {
		return err
	}
	return errors.Wrapf(s.WriteFile(path), "writing %s", path)
}

func notes(delta int64, velocity uint8, pitches ...uint8) []model.Event {
	var res []model.Event
	for i, p := range pitches {
		if i > 0 {
			delta = 0
		}
		res = append(res, model.NoteOnEvent(delta, p, velocity))
	}
	return res
}

// Demo is a small two track file: a conductor track that speeds up from 120
// to 160 BPM after two bars, and a piano track playing C, Am, a cluster, F and G.
func Demo() *model.MidiFile {
	var piano []model.Event
	progression := [][]uint8{
		{60, 64, 67},
		{57, 60, 64},
		{60, 61, 62},
		{53, 57, 60},
		{55, 59, 62},
	}
	for _, c := range progression {
		piano = append(piano, notes(0, 96, c...)...)
		// velocity 0 releases
		piano = append(piano, notes(480, 0, c...)...)
	}

	return &model.MidiFile{
		TicksPerBeat: 480,
		Tracks: []model.Track{
			{Name: "Conductor", Events: []model.Event{
				model.TempoEvent(0, model.DefaultTempo),
				model.TempoEvent(3840, 375000),
			}},
			{Name: "Piano", Events: piano},
		},
	}
}
