package bucket

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsphweid/midichord/model"
	"github.com/pkg/errors"
)

type Mode uint8

const (
	// ExactTime groups note-ons whose float timestamps are identical.
	ExactTime Mode = iota
	// Tolerance groups note-ons within Epsilon seconds of a bucket's first note.
	Tolerance
	// Tick groups note-ons by absolute tick count.
	Tick
)

type Keying struct {
	Mode    Mode
	Epsilon float64
}

func (k Keying) String() string {
	switch k.Mode {
	case Tolerance:
		return fmt.Sprintf("tolerance=%g", k.Epsilon)
	case Tick:
		return "tick"
	}
	return "exact"
}

// ParseKeying understands "exact", "tick" and "tolerance" (with epsilon taken
// from the second argument).
func ParseKeying(name string, epsilon float64) (Keying, error) {
	switch strings.ToLower(name) {
	case "", "exact":
		return Keying{Mode: ExactTime}, nil
	case "tick":
		return Keying{Mode: Tick}, nil
	case "tolerance":
		if epsilon < 0 || math.IsNaN(epsilon) {
			return Keying{}, errors.Errorf("tolerance must be non-negative, got %v", epsilon)
		}
		return Keying{Mode: Tolerance, Epsilon: epsilon}, nil
	}
	return Keying{}, errors.Errorf("unknown keying %q", name)
}

type Entry struct {
	Time    float64
	Ticks   int64
	Pitches model.Notes
}

// NoteBucket collects simultaneous note-on pitches. Entries stay in the order
// their key was first seen and keep every pitch, duplicates included.
type NoteBucket struct {
	keying  Keying
	entries []*Entry
	exact   map[float64]*Entry
	ticks   map[int64]*Entry
}

func New(k Keying) *NoteBucket {
	return &NoteBucket{
		keying: k,
		exact:  make(map[float64]*Entry),
		ticks:  make(map[int64]*Entry),
	}
}

func (b *NoteBucket) Add(seconds float64, ticks int64, pitch uint8) {
	e := b.find(seconds, ticks)
	if e == nil {
		e = &Entry{Time: seconds, Ticks: ticks}
		b.entries = append(b.entries, e)
		switch b.keying.Mode {
		case Tick:
			b.ticks[ticks] = e
		case ExactTime:
			b.exact[seconds] = e
		}
	}
	e.Pitches = append(e.Pitches, pitch)
}

func (b *NoteBucket) find(seconds float64, ticks int64) *Entry {
	switch b.keying.Mode {
	case Tick:
		return b.ticks[ticks]
	case Tolerance:
		for _, e := range b.entries {
			if math.Abs(e.Time-seconds) <= b.keying.Epsilon {
				return e
			}
		}
		return nil
	}
	return b.exact[seconds]
}

func (b *NoteBucket) Len() int {
	return len(b.entries)
}

func (b *NoteBucket) Entries() []Entry {
	res := make([]Entry, len(b.entries))
	for i, e := range b.entries {
		res[i] = *e
	}
	return res
}

// Key renders an entry's key the way it is compared: ticks or seconds.
func (b *NoteBucket) Key(e Entry) string {
	if b.keying.Mode == Tick {
		return strconv.FormatInt(e.Ticks, 10)
	}
	return strconv.FormatFloat(e.Time, 'g', -1, 64)
}
