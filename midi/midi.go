package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/jsphweid/midichord/logging"
	"github.com/jsphweid/midichord/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var (
	ErrFileNotFound   = errors.New("midi file not found")
	ErrUnreadableFile = errors.New("unreadable midi file")
	ErrMalformedEvent = errors.New("malformed midi event")
)

// MalformedEventError points at the offending event. Track and Index are -1
// when the problem is in the header.
type MalformedEventError struct {
	Track  int
	Index  int
	Reason string
}

func (e *MalformedEventError) Error() string {
	if e.Track < 0 {
		return fmt.Sprintf("%v: %s", ErrMalformedEvent, e.Reason)
	}
	return fmt.Sprintf("%v: track %d event %d: %s", ErrMalformedEvent, e.Track, e.Index, e.Reason)
}

func (e *MalformedEventError) Is(target error) bool {
	return target == ErrMalformedEvent
}

func ReadMidiFile(path string) (*model.MidiFile, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrFileNotFound, path)
		}
		return nil, errors.Wrapf(ErrUnreadableFile, "%s: %v", path, err)
	}

	res, err := Read(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	res.Path = path
	logging.Log.Debug().
		Str("path", path).
		Int("tracks", len(res.Tracks)).
		Int64("ticks_per_beat", res.TicksPerBeat).
		Msg("read midi file")
	return res, nil
}

func Read(r io.Reader) (res *model.MidiFile, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			res = nil
			e = errors.Wrapf(ErrUnreadableFile, "parser panic: %v", rec)
		}
	}()

	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrapf(ErrUnreadableFile, "%v", err)
	}
	return Convert(s)
}

// Convert maps a parsed SMF onto the model and validates it.
func Convert(s *smf.SMF) (*model.MidiFile, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, errors.Wrapf(ErrUnreadableFile, "unsupported time format %v", s.TimeFormat)
	}

	res := &model.MidiFile{TicksPerBeat: int64(ticks)}
	for _, track := range s.Tracks {
		t := model.Track{Events: make([]model.Event, 0, len(track))}
		for _, evt := range track {
			var name string
			if t.Name == "" && evt.Message.GetMetaTrackName(&name) {
				t.Name = decodeText(name)
			}
			t.Events = append(t.Events, convertEvent(evt))
		}
		res.Tracks = append(res.Tracks, t)
	}

	if err := Validate(res); err != nil {
		return nil, err
	}
	return res, nil
}

func convertEvent(evt smf.Event) model.Event {
	res := model.Event{Kind: model.Other, DeltaTicks: int64(evt.Delta)}
	var channel, key, velocity uint8
	switch {
	case evt.Message.GetNoteOn(&channel, &key, &velocity):
		res.Kind = model.NoteOn
		res.Channel = channel
		res.Pitch = key
		res.Velocity = velocity
	case evt.Message.Is(smf.MetaTempoMsg):
		res.Kind = model.TempoChange
		res.MicrosPerBeat = tempoMicros(evt.Message)
	}
	return res
}

// tempoMicros reads the 24 bit microseconds-per-beat payload of a set_tempo
// meta event (FF 51 03 tt tt tt).
func tempoMicros(msg smf.Message) int64 {
	raw := []byte(msg)
	if len(raw) >= 6 {
		d := raw[len(raw)-3:]
		return int64(d[0])<<16 | int64(d[1])<<8 | int64(d[2])
	}
	var bpm float64
	if msg.GetMetaTempo(&bpm) && bpm > 0 {
		return int64(60_000_000/bpm + 0.5)
	}
	return 0
}

// decodeText returns s unchanged if it is UTF-8, otherwise treats it as
// Windows-1252, which is what most older sequencers wrote.
func decodeText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	res, _, err := transform.String(charmap.Windows1252.NewDecoder(), s)
	if err != nil {
		return s
	}
	return res
}

func Validate(f *model.MidiFile) error {
	if f.TicksPerBeat <= 0 {
		return &MalformedEventError{Track: -1, Index: -1, Reason: fmt.Sprintf("ticks per beat %d is not positive", f.TicksPerBeat)}
	}
	for i, t := range f.Tracks {
		for j, e := range t.Events {
			if reason := checkEvent(e); reason != "" {
				return &MalformedEventError{Track: i, Index: j, Reason: reason}
			}
		}
	}
	return nil
}

func checkEvent(e model.Event) string {
	if e.DeltaTicks < 0 {
		return fmt.Sprintf("negative delta %d", e.DeltaTicks)
	}
	switch e.Kind {
	case model.TempoChange:
		if e.MicrosPerBeat <= 0 {
			return fmt.Sprintf("tempo %d is not positive", e.MicrosPerBeat)
		}
	case model.NoteOn:
		if e.Pitch > 127 {
			return fmt.Sprintf("pitch %d out of range", e.Pitch)
		}
		if e.Velocity > 127 {
			return fmt.Sprintf("velocity %d out of range", e.Velocity)
		}
	}
	return ""
}
