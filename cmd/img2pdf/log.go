package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Verbose enables debug-level messages,
// quiet restricts output to errors; verbose wins when both are set.
func newLogger(w io.Writer, verbose, quiet bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case verbose:
		level = log.DebugLevel
	case quiet:
		level = log.ErrorLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
