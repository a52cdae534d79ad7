package internal

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the diagnostic logger. Output goes to w (stderr in the
// CLI) so it never mixes with the passphrase on stdout.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: false,
		Prefix:          "passclip",
	})
}
