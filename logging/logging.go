// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package logging connects loggo to the unit log, so that charm code can
// log with a loggo.Logger and have its messages written by juju-log.
package logging

import (
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/juju/gocharm/backend"
)

// WriterName is the name under which the juju-log writer is registered.
const WriterName = "juju-log"

// logger reports failures of the juju-log writer itself; it writes to
// stderr, which the agent also captures.
var logger = loggo.GetLogger("gocharm.logging")

// NewWriter returns a loggo.Writer that sends entries to the unit log
// through the backend. Failing to write an entry is reported locally and
// otherwise ignored.
func NewWriter(b backend.Backend) loggo.Writer {
	return &jujuLogWriter{backend: b}
}

type jujuLogWriter struct {
	backend backend.Backend
}

// Write is part of the loggo.Writer interface.
func (w *jujuLogWriter) Write(entry loggo.Entry) {
	if err := w.backend.Log(Level(entry.Level), entry.Message); err != nil {
		logger.Warningf("cannot write %s message to unit log: %v", entry.Level, err)
	}
}

// Level returns the juju-log level used for a loggo level. juju-log only
// knows four levels, so TRACE is sent as DEBUG and CRITICAL as ERROR.
func Level(level loggo.Level) backend.LogLevel {
	switch {
	case level <= loggo.DEBUG:
		return backend.LevelDebug
	case level == loggo.INFO:
		return backend.LevelInfo
	case level == loggo.WARNING:
		return backend.LevelWarning
	default:
		return backend.LevelError
	}
}

// NewContext returns a loggo context at DEBUG level whose only writer is
// the juju-log writer for the backend.
func NewContext(b backend.Backend) (*loggo.Context, error) {
	ctx := loggo.NewContext(loggo.DEBUG)
	if err := ctx.AddWriter(WriterName, NewWriter(b)); err != nil {
		return nil, errors.Trace(err)
	}
	return ctx, nil
}
