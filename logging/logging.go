package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var Log = New(os.Stderr, "info")

// New builds a console logger. Unknown levels fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func Setup(level string) {
	Log = New(os.Stderr, level)
}

func Silence() {
	Log = zerolog.Nop()
}
