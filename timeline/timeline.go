package timeline

import (
	"github.com/jsphweid/midichord/model"
)

// TicksToSeconds converts a tick delta to seconds at the given tempo.
// Arithmetic is done in float64 so large tick counts can't overflow.
func TicksToSeconds(deltaTicks, microsPerBeat, ticksPerBeat int64) float64 {
	micros := float64(deltaTicks) * float64(microsPerBeat) / float64(ticksPerBeat)
	return micros / 1_000_000
}

// State is what a walk carries from one event to the next.
type State struct {
	Tempo   int64
	Seconds float64
	Ticks   int64
}

func Start() State {
	return State{Tempo: model.DefaultTempo}
}

// Step advances s past e. The delta is measured under the tempo in effect
// before e; a tempo change only applies to later deltas.
func Step(s State, e model.Event, ticksPerBeat int64) State {
	delta := e.DeltaTicks
	if delta < 0 {
		delta = 0
	}
	s.Seconds += TicksToSeconds(delta, s.Tempo, ticksPerBeat)
	s.Ticks += delta
	if e.Kind == model.TempoChange && e.MicrosPerBeat > 0 {
		s.Tempo = e.MicrosPerBeat
	}
	return s
}

type Stamped struct {
	Track   int
	Index   int
	Event   model.Event
	Seconds float64
	Ticks   int64
}

// Walk folds one track's events starting from s, calling fn (if non-nil) with
// each event's absolute position. It returns the state after the last event.
func Walk(ticksPerBeat int64, track int, events []model.Event, s State, fn func(Stamped)) State {
	for i, e := range events {
		s = Step(s, e, ticksPerBeat)
		if fn != nil {
			fn(Stamped{Track: track, Index: i, Event: e, Seconds: s.Seconds, Ticks: s.Ticks})
		}
	}
	return s
}

// Scope decides whether tempo and clock restart for every track.
type Scope uint8

const (
	// PerTrack walks each track from a fresh State.
	PerTrack Scope = iota
	// Global threads one State through all tracks in file order.
	Global
)

func (s Scope) String() string {
	if s == Global {
		return "global"
	}
	return "track"
}

// WalkFile walks every track of f and returns the state each track walk ended
// in. Under Global scope that is the cumulative state after that track.
func WalkFile(f *model.MidiFile, scope Scope, fn func(Stamped)) []State {
	res := make([]State, 0, len(f.Tracks))
	s := Start()
	for i, t := range f.Tracks {
		if scope == PerTrack {
			s = Start()
		}
		s = Walk(f.TicksPerBeat, i, t.Events, s, fn)
		res = append(res, s)
	}
	return res
}
