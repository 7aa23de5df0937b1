// Package logging builds the diagnostic logger for the CLI.
//
// Diagnostics are separate from command output: they go to stderr, are
// silent unless --debug is set, and never carry user-facing results.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w with the level picked from debug.
// Timestamps are omitted; for a short-lived CLI process they add noise
// without ordering value.
func New(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "taskly",
		ReportTimestamp: false,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
