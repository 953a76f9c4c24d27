// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package logging builds the loggers used by the command line tools.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Name  string
	Level logging.Level
	// Directory receives a rotated JSON log file named after the logger.
	// No file is written if it is empty.
	Directory string
	// Quiet mutes the console output.
	Quiet bool

	MaxSize  int // megabytes
	MaxFiles int
	MaxAge   int // days
}

func NewConfig(name string) Config {
	return Config{
		Name:     name,
		Level:    logging.Info,
		MaxSize:  8,
		MaxFiles: 4,
		MaxAge:   7,
	}
}

// New returns a logger writing colored text to stderr and, if configured,
// JSON to a rotating file. Callers must Stop the logger to flush the file.
func New(c Config) (logging.Logger, error) {
	var consoleWriter io.WriteCloser = os.Stderr
	if c.Quiet {
		consoleWriter = discardWriteCloser{io.Discard}
	}
	consoleCore := logging.NewWrappedCore(c.Level, consoleWriter, logging.Colors.ConsoleEncoder())
	consoleCore.WriterDisabled = c.Quiet
	cores := []logging.WrappedCore{consoleCore}

	if c.Directory != "" {
		if err := os.MkdirAll(c.Directory, 0o750); err != nil {
			return nil, err
		}
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(c.Directory, c.Name+".log"),
			MaxSize:    c.MaxSize,
			MaxAge:     c.MaxAge,
			MaxBackups: c.MaxFiles,
		}
		cores = append(cores, logging.NewWrappedCore(c.Level, rw, logging.JSON.FileEncoder()))
	}
	return logging.NewLogger(logging.Plain.WrapPrefix(c.Name), cores...), nil
}

// ParseLevel accepts avalanchego level names such as "info" or "verbo".
func ParseLevel(s string) (logging.Level, error) {
	return logging.ToLevel(s)
}

var _ zapcore.WriteSyncer = discardWriteCloser{}

type discardWriteCloser struct {
	io.Writer
}

func (discardWriteCloser) Sync() error { return nil }

func (discardWriteCloser) Close() error { return nil }
