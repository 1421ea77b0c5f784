package model

// DefaultTempo is the tempo in effect before any set_tempo event, in
// microseconds per beat (120 BPM).
const DefaultTempo int64 = 500000

type EventKind uint8

const (
	Other EventKind = iota
	NoteOn
	TempoChange
)

func (k EventKind) String() string {
	switch k {
	case NoteOn:
		return "NoteOn"
	case TempoChange:
		return "TempoChange"
	default:
		return "Other"
	}
}

// Event is a single track event. DeltaTicks counts ticks since the previous
// event in the same track. Pitch, Velocity and Channel are only meaningful for
// NoteOn, MicrosPerBeat only for TempoChange.
type Event struct {
	Kind          EventKind
	DeltaTicks    int64
	Channel       uint8
	Pitch         uint8
	Velocity      uint8
	MicrosPerBeat int64
}

// Sounding reports whether the event starts a note. A note-on with velocity 0
// is a note-off by convention.
func (e Event) Sounding() bool {
	return e.Kind == NoteOn && e.Velocity > 0
}

type Track struct {
	Name   string
	Events []Event
}

type MidiFile struct {
	Path         string
	TicksPerBeat int64
	Tracks       []Track
}

func NoteOnEvent(delta int64, pitch, velocity uint8) Event {
	return Event{Kind: NoteOn, DeltaTicks: delta, Pitch: pitch, Velocity: velocity}
}

func TempoEvent(delta int64, microsPerBeat int64) Event {
	return Event{Kind: TempoChange, DeltaTicks: delta, MicrosPerBeat: microsPerBeat}
}

func OtherEvent(delta int64) Event {
	return Event{Kind: Other, DeltaTicks: delta}
}
