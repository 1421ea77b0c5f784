package model

type FileNum = uint32
type FileNumToMidiPath = map[FileNum]string

type Analysis struct {
	Path           string    `json:"path"`
	TicksPerBeat   int64     `json:"ticks_per_beat"`
	NumTracks      int       `json:"num_tracks"`
	Duration       float64   `json:"duration"`
	TrackDurations []float64 `json:"track_durations"`
	Chords         []Chord   `json:"chords"`
}

// Summary is what a batch run persists. Failed maps a file number to the
// error message that stopped its analysis.
type Summary struct {
	RunID    string
	Files    FileNumToMidiPath
	Analyses map[FileNum]Analysis
	Failed   map[FileNum]string
}
