package cli

import (
	"os"

	"github.com/rs/zerolog"
)

// newLogger builds the diagnostic logger for the CLI. Output goes to
// stderr so merged documents on stdout stay clean. Verbose lowers the
// level from warn to debug.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
