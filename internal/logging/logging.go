// Package logging configures the logrus logger used by the csvpeek command.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// GetLevel maps a --log-level value to a logrus level. The empty string means
// error, so a default run prints nothing but failures.
func GetLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "warn":
		return logrus.WarnLevel, nil
	case "", "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.ErrorLevel, fmt.Errorf("invalid log level: %v", level)
	}
}

// GetFormatter maps a --log-format value to a logrus formatter.
func GetFormatter(format string) (logrus.Formatter, error) {
	switch format {
	case "", "text":
		return &logrus.TextFormatter{DisableTimestamp: true, DisableQuote: true}, nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	case "json-pretty":
		return &logrus.JSONFormatter{PrettyPrint: true}, nil
	default:
		return nil, fmt.Errorf("invalid log format: %v", format)
	}
}

// New returns a logger writing to w at the given level and format.
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}
	fmtr, err := GetFormatter(format)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(fmtr)
	return l, nil
}
