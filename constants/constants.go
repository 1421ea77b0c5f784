package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

func GetAddr() string {
	addr := os.Getenv("ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// Default input and output of the report command.
const DefaultMidiPath = "Fur Elise.mid"
const DefaultReportPath = "parsed_MIDI.txt"

// film frame rate used for the report's frame column
const FramesPerSecond = 24

const MinChordNotes = 3

// upper bound for POST /analyze bodies
const MaxUploadSize = 16 * 1024 * 1024

var NoteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
