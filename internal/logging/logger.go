package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Level zerolog.Level

const InfoLevel = Level(zerolog.InfoLevel)

func (l Level) toZerolog() zerolog.Level {
	return zerolog.Level(l)
}

// Setup installs the global logger. Logs go to stderr so they never mix
// with the search output and progress ticker on stdout. Debug level gets a
// console writer for readability.
func Setup(level Level) {
	zerolog.SetGlobalLevel(level.toZerolog())
	var writer io.Writer
	switch level.toZerolog() {
	case zerolog.DebugLevel, zerolog.TraceLevel:
		writer = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
			w.TimeFormat = time.RFC3339
		})
	default:
		writer = os.Stderr
	}
	log.Logger = zerolog.
		New(writer).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config string to a level, falling back to info on
// anything unrecognized.
func ParseLevel(lvl string) Level {
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(lvl))
	if err != nil || parsedLevel == zerolog.NoLevel {
		return InfoLevel
	}
	return Level(parsedLevel)
}
