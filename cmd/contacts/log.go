package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a human readable logger. The report goes to stdout, so
// the log should go somewhere else.
func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(lvl).With().
		Timestamp().
		Str("app", "contacts").
		Logger()
}
