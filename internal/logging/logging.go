// Package logging configures the logrus logger shared by the CLI and library
// packages.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Format selects the log encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// New builds a logger writing to out. Unknown levels fall back to warn so
// diagnostics stay off the user's terminal unless asked for.
func New(level string, format Format, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(ParseLevel(level))

	switch format {
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if out == nil {
		out = os.Stderr
	}
	logger.SetOutput(out)
	return logger
}

// ParseLevel maps a config string onto a logrus level.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}

// Discard returns a logger that drops everything. Library packages use it
// when the caller does not provide one.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
