// Copyright (C) 2019-2024 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

// Package logging is the leveled logger used across abitool. Log lines carry
// the file, line and function of their call site.
//
// Log to the base logger:
//
//	logging.Base().Infof("loaded %d contracts", n)
//
// or to a logger of your own:
//
//	log := logging.NewLogger()
//	log.SetOutput(w)
//	log.With("selector", "3e1e52bd").Warn("selector collision")
package logging

import (
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level refers to the log logging level
type Level uint32

const (
	// Panic is the highest level of severity.
	Panic Level = iota
	// Fatal entries are logged right before the process exits.
	Fatal
	// Error is used for errors that should definitely be noted.
	Error
	// Warn is used for non-critical entries that deserve eyes.
	Warn
	// Info is used for general operational entries.
	Info
	// Debug is usually only enabled when debugging. Very verbose logging.
	Debug
)

const (
	textTimestampFormat = "2006-01-02T15:04:05.000000 -0700"
	jsonTimestampFormat = "2006-01-02T15:04:05.000000Z07:00"
)

var (
	baseLogger Logger
	once       sync.Once
)

// Init needs to be called to ensure our logging has been initialized
func Init() {
	once.Do(func() {
		// By default, log to stderr (logrus's default), only warnings and above.
		baseLogger = NewLogger()
		baseLogger.SetLevel(Warn)
	})
}

func init() {
	Init()
}

// Fields maps logrus fields
type Fields = logrus.Fields

// Logger is the interface for loggers.
type Logger interface {
	Debug(...interface{})
	Debugf(string, ...interface{})

	Info(...interface{})
	Infof(string, ...interface{})

	Warn(...interface{})
	Warnf(string, ...interface{})

	Error(...interface{})
	Errorf(string, ...interface{})

	// With returns a logger that adds one key-value to every entry
	With(key string, value interface{}) Logger

	// WithFields returns a logger that adds fields to every entry
	WithFields(Fields) Logger

	SetLevel(Level)
	GetLevel() Level
	IsLevelEnabled(level Level) bool

	// SetOutput sets the output target
	SetOutput(io.Writer)

	// SetJSONFormatter switches to JSON lines
	SetJSONFormatter()
}

type logger struct {
	entry *logrus.Entry
}

// Base returns the default Logger, logging warnings and above to stderr.
func Base() Logger {
	return baseLogger
}

// NewLogger returns a new Logger logging info and above to stderr.
func NewLogger() Logger {
	l := logrus.New()
	if tf, ok := l.Formatter.(*logrus.TextFormatter); ok {
		tf.TimestampFormat = textTimestampFormat
	}
	return logger{logrus.NewEntry(l)}
}

func (l logger) With(key string, value interface{}) Logger {
	return logger{l.entry.WithField(key, value)}
}

func (l logger) WithFields(fields Fields) Logger {
	return logger{l.entry.WithFields(fields)}
}

func (l logger) Debug(args ...interface{}) {
	l.source().Debug(args...)
}

func (l logger) Debugf(format string, args ...interface{}) {
	l.source().Debugf(format, args...)
}

func (l logger) Info(args ...interface{}) {
	l.source().Info(args...)
}

func (l logger) Infof(format string, args ...interface{}) {
	l.source().Infof(format, args...)
}

func (l logger) Warn(args ...interface{}) {
	l.source().Warn(args...)
}

func (l logger) Warnf(format string, args ...interface{}) {
	l.source().Warnf(format, args...)
}

func (l logger) Error(args ...interface{}) {
	l.source().Error(args...)
}

func (l logger) Errorf(format string, args ...interface{}) {
	l.source().Errorf(format, args...)
}

func (l logger) SetLevel(lvl Level) {
	l.entry.Logger.SetLevel(logrus.Level(lvl))
}

func (l logger) GetLevel() Level {
	return Level(l.entry.Logger.GetLevel())
}

func (l logger) IsLevelEnabled(level Level) bool {
	return l.entry.Logger.IsLevelEnabled(logrus.Level(level))
}

func (l logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

func (l logger) SetJSONFormatter() {
	l.entry.Logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: jsonTimestampFormat})
}

// source adds the file, line and function of the caller of a logging method.
func (l logger) source() *logrus.Entry {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return l.entry
	}
	event := l.entry.WithFields(logrus.Fields{
		"file": file[strings.LastIndex(file, "/")+1:],
		"line": line,
	})
	if function := runtime.FuncForPC(pc); function != nil {
		event = event.WithField("function", function.Name())
	}
	return event
}
