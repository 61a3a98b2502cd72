// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package dispatch

import (
	"github.com/juju/clock"
	"github.com/juju/errors"

	"github.com/juju/gocharm/backend"
	"github.com/juju/gocharm/core/action"
	"github.com/juju/gocharm/core/hooks"
	"github.com/juju/gocharm/core/status"
	"github.com/juju/gocharm/model"
)

// logger is here to stop the desire of creating a package level logger.
// Don't do this, instead use the one passed in Config.
type logger interface{}

var _ logger = struct{}{}

// Logger represents the methods used by Execute to report its own
// progress. Messages meant for the unit log go through the charm logger.
type Logger interface {
	Debugf(string, ...interface{})
	Warningf(string, ...interface{})
}

// EventHandler handles a hook. The status it returns becomes the unit's
// status once the hook completes.
type EventHandler[C any] func(*model.Model[C], hooks.Event) (status.Info, error)

// ActionHandler handles an action. The action is decoded into A, which
// should hold one pointer field per action the charm defines, tagged with
// the action name; only the field for the running action is set.
//
// A Result reporting failure is not an error: the failure and any partial
// values are reported to the user and the invocation still succeeds.
type ActionHandler[C, A any] func(*model.Model[C], A) (action.Result, error)

// Config defines a single charm invocation.
type Config[C, A any] struct {
	Backend       backend.Backend
	EventHandler  EventHandler[C]
	ActionHandler ActionHandler[C, A]
	Logger        Logger
	Clock         clock.Clock

	// Environ returns the environment logged to the unit log at the
	// start of every invocation. It defaults to os.Environ.
	Environ func() []string
}

// Validate returns an error if config cannot drive an invocation.
func (config Config[C, A]) Validate() error {
	if config.Backend == nil {
		return errors.NotValidf("nil Backend")
	}
	if config.EventHandler == nil {
		return errors.NotValidf("nil EventHandler")
	}
	if config.ActionHandler == nil {
		return errors.NotValidf("nil ActionHandler")
	}
	if config.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	if config.Clock == nil {
		return errors.NotValidf("nil Clock")
	}
	return nil
}
