// Package logging builds the logrus loggers used across datepick.
//
// The interactive TUI owns the terminal, so nothing is written to stdout or
// stderr unless a log file is configured.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Level string
	File  string
	// Out is used when File is empty. Nil discards.
	Out io.Writer
	JSON bool
}

// New returns a configured logger and a closer for any opened file.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	l := logrus.New()
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	l.SetLevel(level)
	if opts.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	var closer io.Closer = nopCloser{}
	switch {
	case strings.TrimSpace(opts.File) != "":
		path := filepath.Clean(opts.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, errors.Wrapf(err, "create log dir for %s", path)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open log file %s", path)
		}
		l.SetOutput(f)
		closer = f
	case opts.Out != nil:
		l.SetOutput(opts.Out)
	default:
		l.SetOutput(io.Discard)
	}
	return l, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// ParseLevel accepts logrus level names; empty means info.
func ParseLevel(s string) (logrus.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return 0, errors.Wrap(err, "log level")
	}
	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
