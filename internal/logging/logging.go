// Package logging configures zerolog output for racerd.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var root = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Setup sets the global level and output format. Format "auto" picks
// console output when stderr is a terminal and JSON otherwise.
func Setup(level, format string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var out io.Writer = os.Stderr
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
	case "console":
		out = consoleWriter()
	default:
		if term.IsTerminal(int(os.Stderr.Fd())) {
			out = consoleWriter()
		}
	}
	root = zerolog.New(out).With().Timestamp().Logger()
}

// Component returns a logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	return root.With().Str("component", name).Logger()
}

func consoleWriter() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
}
