// Package logging builds the logrus loggers used across filenav.
// The terminal is owned by the UI, so logs only ever go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const defaultLevel = "info"

var osOpenFile = os.OpenFile
var osMkdirAll = os.MkdirAll

// Config selects where and how verbosely to log.
// An empty File disables logging.
type Config struct {
	File  string
	Level string
	JSON  bool
}

// New returns a logger configured from cfg and a func that releases the log file.
func New(cfg Config) (*logrus.Logger, func() error, error) {
	logger := logrus.New()

	levelStr := cfg.Level
	if levelStr == "" {
		levelStr = defaultLevel
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger.SetLevel(level)

	if cfg.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	if cfg.File == "" {
		logger.SetOutput(io.Discard)
		return logger, func() error { return nil }, nil
	}

	if err = osMkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	file, err := osOpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger.SetOutput(file)
	return logger, file.Close, nil
}

// Discard returns an entry that drops everything.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

// Component tags entries from one part of the program.
func Component(logger *logrus.Logger, name string) *logrus.Entry {
	return logger.WithField("component", name)
}
