// Package logger provides the zerolog-backed logger shared across lvlinalg.
//
// The default logger writes human-readable console output to stdout at debug
// level. Under `go test` it is replaced by a no-op logger so that numeric
// test output stays clean; tests that want log assertions install their own
// logger via Set.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()
	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput redirects the logger output to w, keeping the current context.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set replaces the package logger wholesale.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable turns all logging off.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the current zerolog.Logger instance.
func Logger() zerolog.Logger {
	return logger
}
