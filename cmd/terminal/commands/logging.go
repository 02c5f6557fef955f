package commands

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// NewLogger builds the CLI logger. Verbose enables debug level, which also
// turns on request and response logging in the HTTP client.
func NewLogger(format string, verbose bool, out io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	if strings.EqualFold(format, LogFormatJSON) {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal(out),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
