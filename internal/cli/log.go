// Package cli wires the targetnets commands: the root run over both
// configured sets, plus edges, render, cache, and completion.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Log level aliases so callers outside this package do not need to
// import charmbracelet/log directly.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
	LogError = log.ErrorLevel
)

// newLogger builds the CLI logger with consistent formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
		Prefix:          appName,
	})
}
