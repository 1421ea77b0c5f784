package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Notes is a list of raw MIDI pitches. It marshals as a JSON array of numbers
// rather than the base64 string encoding/json uses for byte slices.
type Notes []uint8

func (n Notes) MarshalJSON() ([]byte, error) {
	ints := make([]int, len(n))
	for i, v := range n {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}

func (n *Notes) UnmarshalJSON(b []byte) error {
	var ints []int
	if err := json.Unmarshal(b, &ints); err != nil {
		return err
	}
	res := make(Notes, len(ints))
	for i, v := range ints {
		if v < 0 || v > 127 {
			return fmt.Errorf("pitch %d out of range", v)
		}
		res[i] = uint8(v)
	}
	*n = res
	return nil
}

type Quality uint8

const (
	Major Quality = iota
	Minor
)

func (q Quality) String() string {
	switch q {
	case Major:
		return "Major"
	case Minor:
		return "Minor"
	}
	return fmt.Sprintf("Quality(%d)", uint8(q))
}

func (q Quality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

func (q *Quality) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "major":
		*q = Major
	case "minor":
		*q = Minor
	default:
		return fmt.Errorf("unknown chord quality %q", string(b))
	}
	return nil
}

// Chord is a classified group of simultaneous note-ons. Pitches holds the raw
// pitches in the order they were seen, duplicates included.
type Chord struct {
	Time    float64 `json:"time"`
	Ticks   int64   `json:"ticks"`
	Quality Quality `json:"quality"`
	// NOTE: pitch class of the rotation that matched, not necessarily the bass
	Root    uint8 `json:"root"`
	Pitches Notes `json:"pitches"`
}
