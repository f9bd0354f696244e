package shared

import (
	"io"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a charmbracelet logger writing to w.
func SetupLogger(w io.Writer, level log.Level, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
		Level:           level,
	})
}

// ParseLevel parses a level name, treating an empty name as info.
func ParseLevel(name string) (log.Level, error) {
	if name == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(name)
}
