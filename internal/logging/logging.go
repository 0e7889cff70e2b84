// Package logging builds the structured logger shared by every command.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pixelshooter/internal/config"
)

// New returns a logger writing to w with the given prefix. The level comes
// from PIXELSHOOTER_LOG_LEVEL and defaults to info; unknown levels fall
// back to info.
func New(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(strings.ToLower(config.GetEnv("PIXELSHOOTER_LOG_LEVEL", "info")))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
