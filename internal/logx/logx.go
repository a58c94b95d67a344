// Package logx sets up the process logger: zerolog with a console writer on
// stderr. Level comes from --quiet or HEADLOOP_LOG_LEVEL.
package logx

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds a logger writing human-readable lines to w.
func New(w io.Writer, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if env := strings.ToLower(os.Getenv("HEADLOOP_LOG_LEVEL")); env != "" {
		if l, err := zerolog.ParseLevel(env); err == nil {
			level = l
		}
	}
	if quiet {
		level = zerolog.ErrorLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
