// Package logging builds the console logger.
package logging

import (
	"os"

	"github.com/charmbracelet/log"

	"tasktrack/internal/config"
)

// New returns a leveled console logger configured from cfg. Output goes to
// stderr so the command results on stdout stay clean.
func New(cfg *config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           parseLevel(cfg.LogLevel),
		Formatter:       parseFormat(cfg.LogFormat),
		ReportTimestamp: cfg.LogTimestamps,
		Prefix:          "tasktrack",
	})
}

// parseLevel maps a config level word to a log level, defaulting to warn so
// normal runs print only command output.
func parseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

func parseFormat(s string) log.Formatter {
	switch s {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
