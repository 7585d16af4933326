package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ParseBoolString interprets yes/no style flag values, falling back to
// fallback on anything unrecognized.
func ParseBoolString(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true", "1", "on":
		return true
	case "no", "n", "false", "0", "off":
		return false
	default:
		return fallback
	}
}

// LogFatal prints an error message in red and exits with status 1.
func LogFatal(msg string, err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn prints a warning message in yellow.
func LogWarn(msg string) {
	color.New(color.FgYellow).Fprintln(os.Stderr, msg)
}

// StderrLogger writes leveled log lines to stderr. Debug lines are
// suppressed unless Verbose is set.
type StderrLogger struct {
	Verbose bool
}

// Debugf logs a debug-level message when verbose mode is on.
func (l *StderrLogger) Debugf(format string, args ...any) {
	if l.Verbose {
		fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...)
	}
}

// Infof logs an info-level message.
func (l *StderrLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Warnf logs a warning-level message.
func (l *StderrLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, format+"\n", args...)
}

// NopLogger discards everything. Useful in tests and in MCP mode, where
// stderr chatter would pollute the transport.
type NopLogger struct{}

// Debugf discards the message.
func (*NopLogger) Debugf(string, ...any) {}

// Infof discards the message.
func (*NopLogger) Infof(string, ...any) {}

// Warnf discards the message.
func (*NopLogger) Warnf(string, ...any) {}
