// Package logger provides a configurable logger shared across graphyc
// components.
//
// The root logger uses github.com/rs/zerolog with a console writer on
// stderr, keeping stdout free for command output. Under `go test` the
// logger is a no-op so solver debug output does not pollute test logs.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// SetLevel changes the minimum level of the global logger. The CLI calls
// this with DebugLevel when --verbose is set.
func SetLevel(level zerolog.Level) {
	logger = logger.Level(level)
}

// Disable disables logging.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns a sublogger for a component.
func Logger() zerolog.Logger {
	return logger
}
