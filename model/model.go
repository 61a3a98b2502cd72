// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package model provides the view of the unit that a charm's handlers work
// with. State read from the agent is fetched on first use and then held for
// the rest of the invocation: a Model is a snapshot, and writes made through
// it are not visible in its reads until the next invocation.
package model

import (
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/juju/gocharm/backend"
	"github.com/juju/gocharm/core/network"
	"github.com/juju/gocharm/core/status"
	"github.com/juju/gocharm/internal/decode"
	"github.com/juju/gocharm/internal/lazy"
	"github.com/juju/gocharm/logging"
)

// ErrRestrictedContext indicates a method is not available for the kind of
// invocation the model was created for.
var ErrRestrictedContext = errors.NotImplementedf("not implemented for restricted context")

// InvocationKind says whether a charm is running for a hook or an action.
type InvocationKind string

const (
	HookInvocation   InvocationKind = "hook"
	ActionInvocation InvocationKind = "action"
)

// CharmLoggerName is the name of the logger returned by Model.Logger.
const CharmLoggerName = "charm"

// Model is the unit state seen by a handler, with the charm's configuration
// decoded into C.
type Model[C any] struct {
	backend backend.Backend
	kind    InvocationKind
	logger  loggo.Logger

	config *lazy.Value[C]
	leader *lazy.Value[bool]
	ports  *lazy.Value[[]network.PortRange]
	state  *UnitState
	unit   *Unit
}

// New returns a Model for one invocation of the charm.
func New[C any](b backend.Backend, kind InvocationKind) (*Model[C], error) {
	if b == nil {
		return nil, errors.NotValidf("nil Backend")
	}
	if kind != HookInvocation && kind != ActionInvocation {
		return nil, errors.NotValidf("invocation kind %q", kind)
	}
	logContext, err := logging.NewContext(b)
	if err != nil {
		return nil, errors.Trace(err)
	}
	m := &Model[C]{
		backend: b,
		kind:    kind,
		logger:  logContext.GetLogger(CharmLoggerName),
		leader:  lazy.New(b.IsLeader),
		ports:   lazy.New(b.OpenedPorts),
		state:   newUnitState(b),
		unit:    &Unit{backend: b},
	}
	m.config = lazy.New(m.readConfig)
	return m, nil
}

func (m *Model[C]) readConfig() (C, error) {
	var config C
	settings, err := m.backend.Config()
	if err != nil {
		return config, errors.Annotate(err, "reading charm config")
	}
	if _, err := decode.Into(settings, &config); err != nil {
		return config, errors.Annotate(err, "decoding charm config")
	}
	return config, nil
}

// Kind returns whether the model was created for a hook or an action.
func (m *Model[C]) Kind() InvocationKind {
	return m.kind
}

// Config returns the charm's configuration.
func (m *Model[C]) Config() (C, error) {
	return m.config.Get()
}

// IsLeader returns whether the unit is the application leader.
func (m *Model[C]) IsLeader() (bool, error) {
	return m.leader.Get()
}

// Leader returns the operations reserved for the application leader, and
// true, if the unit is the leader. It returns false if it is not.
func (m *Model[C]) Leader() (*LeaderTools, bool, error) {
	leader, err := m.IsLeader()
	if err != nil {
		return nil, false, errors.Trace(err)
	}
	if !leader {
		return nil, false, nil
	}
	return &LeaderTools{backend: m.backend}, true, nil
}

// Ports returns the port ranges the unit had opened when first called.
func (m *Model[C]) Ports() ([]network.PortRange, error) {
	return m.ports.Get()
}

// OpenPort opens a port range on the given endpoints, or all endpoints if
// none are given.
func (m *Model[C]) OpenPort(portRange network.PortRange, endpoints ...string) error {
	if err := portRange.Validate(); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(m.backend.OpenPort(portRange, endpoints))
}

// ClosePort closes a port range on the given endpoints, or all endpoints
// if none are given.
func (m *Model[C]) ClosePort(portRange network.PortRange, endpoints ...string) error {
	if err := portRange.Validate(); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(m.backend.ClosePort(portRange, endpoints))
}

// State returns the unit's persisted key/value state.
func (m *Model[C]) State() *UnitState {
	return m.state
}

// Unit returns the local unit.
func (m *Model[C]) Unit() *Unit {
	return m.unit
}

// SetStatus sets the unit's status while the handler runs. The status a
// hook handler returns replaces it when the handler completes.
func (m *Model[C]) SetStatus(info status.Info) error {
	if err := info.Validate(); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(m.backend.SetStatus(info))
}

// Logger returns a logger whose messages are written to the unit log.
func (m *Model[C]) Logger() loggo.Logger {
	return m.logger
}

// Reboot requests that the machine hosting the unit is rebooted when the
// hook completes, or immediately if now is true. It is only available to
// hook handlers.
func (m *Model[C]) Reboot(now bool) error {
	if m.kind != HookInvocation {
		return errors.Trace(ErrRestrictedContext)
	}
	return errors.Trace(m.backend.Reboot(now))
}

// ActionLog records a progress message for the running action. It is only
// available to action handlers.
func (m *Model[C]) ActionLog(message string) error {
	if m.kind != ActionInvocation {
		return errors.Trace(ErrRestrictedContext)
	}
	return errors.Trace(m.backend.ActionLog(message))
}
