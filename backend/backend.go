// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package backend defines the capabilities a charm needs from the agent
// that invokes it. The dispatcher and model depend only on the Backend
// interface, so tests can substitute their own implementation.
package backend

import (
	"github.com/juju/gocharm/core/network"
	"github.com/juju/gocharm/core/status"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/backend_mock.go github.com/juju/gocharm/backend Backend

// LogLevel is a level accepted by juju-log.
type LogLevel string

const (
	LevelDebug   LogLevel = "DEBUG"
	LevelInfo    LogLevel = "INFO"
	LevelWarning LogLevel = "WARNING"
	LevelError   LogLevel = "ERROR"
)

// String returns the level as passed to juju-log.
func (l LogLevel) String() string {
	return string(l)
}

// Backend is the set of operations the agent exposes to a charm through
// the environment and hook tools. Every operation blocks until the agent
// has responded.
type Backend interface {
	// HookName returns the name of the hook being run, or "" if the
	// charm was not invoked for a hook.
	HookName() string

	// ActionName returns the name of the action being run, or "" if the
	// charm was not invoked for an action.
	ActionName() string

	// UnitName returns the name of the unit the charm runs for.
	UnitName() string

	// Log writes a message to the unit's log at the given level.
	Log(level LogLevel, message string) error

	// Config returns the charm's configuration, including unset keys.
	Config() (map[string]interface{}, error)

	// SetStatus sets the unit's workload status.
	SetStatus(info status.Info) error

	// SetApplicationStatus sets the application's workload status. Only
	// the leader may call it.
	SetApplicationStatus(info status.Info) error

	// IsLeader returns whether the unit is the application leader.
	IsLeader() (bool, error)

	// LeaderSettings returns the settings shared by the leader with all
	// units of the application.
	LeaderSettings() (map[string]string, error)

	// SetLeaderSetting writes a leader setting. Only the leader may call it.
	SetLeaderSetting(key, value string) error

	// OpenedPorts returns the port ranges opened by the unit.
	OpenedPorts() ([]network.PortRange, error)

	// OpenPort opens a port range, on the given endpoints or on all
	// endpoints if none are given.
	OpenPort(portRange network.PortRange, endpoints []string) error

	// ClosePort closes a port range, on the given endpoints or on all
	// endpoints if none are given.
	ClosePort(portRange network.PortRange, endpoints []string) error

	// UnitState returns the unit's persisted key/value state.
	UnitState() (map[string]string, error)

	// SetUnitState persists a key/value pair in the unit's state.
	SetUnitState(key, value string) error

	// DeleteUnitState removes a key from the unit's state.
	DeleteUnitState(key string) error

	// RelationIDs returns the ids of the relations established on an
	// endpoint.
	RelationIDs(endpoint string) ([]string, error)

	// RelationUnits returns the remote units taking part in a relation.
	RelationUnits(relationID string) ([]string, error)

	// RelationData returns the settings of a unit in a relation, or of its
	// application's databag if app is true.
	RelationData(relationID, unit string, app bool) (map[string]string, error)

	// SetRelationData updates the local unit's settings in a relation, or
	// its application's databag if app is true.
	SetRelationData(relationID string, app bool, settings map[string]string) error

	// ResourcePath returns the local path of a charm resource, fetching it
	// if necessary.
	ResourcePath(name string) (string, error)

	// SetApplicationVersion sets the workload version shown for the unit.
	SetApplicationVersion(version string) error

	// Reboot requests a reboot of the machine hosting the unit, after the
	// hook completes, or immediately if now is true.
	Reboot(now bool) error

	// ActionParams returns the parameters of the running action.
	ActionParams() (map[string]interface{}, error)

	// ActionLog records a progress message for the running action.
	ActionLog(message string) error

	// SetActionResult records action results, given as "key=value"
	// arguments with dotted keys.
	SetActionResult(args []string) error

	// SetActionFail marks the running action as failed.
	SetActionFail(message string) error
}
