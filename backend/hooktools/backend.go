// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package hooktools implements the charm Backend by running the hook tools
// the agent places on the PATH of a hook or action.
package hooktools

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	"github.com/juju/schema"

	"github.com/juju/gocharm/backend"
	"github.com/juju/gocharm/core/network"
	"github.com/juju/gocharm/core/status"
)

var logger = loggo.GetLogger("gocharm.backend.hooktools")

// Config holds the dependencies of a Backend.
type Config struct {
	// Environment holds the invocation details read from the process
	// environment.
	Environment Environment

	// Runner runs the hook tools.
	Runner Runner
}

// Validate returns an error if the config cannot be used to create a
// Backend.
func (config Config) Validate() error {
	if config.Runner == nil {
		return errors.NotValidf("nil Runner")
	}
	return errors.Trace(config.Environment.Validate())
}

// Backend implements backend.Backend with hook tools.
type Backend struct {
	env    Environment
	runner Runner
}

var _ backend.Backend = (*Backend)(nil)

// New returns a Backend using the given config.
func New(config Config) (*Backend, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &Backend{
		env:    config.Environment,
		runner: config.Runner,
	}, nil
}

// NewFromOS returns a Backend for the current process, which was invoked by
// the agent.
func NewFromOS() (*Backend, error) {
	env, err := EnvironmentFromOS()
	if err != nil {
		return nil, errors.Trace(err)
	}
	return New(Config{
		Environment: env,
		Runner:      NewExecRunner(),
	})
}

// Environment returns the invocation details the Backend was created with.
func (b *Backend) Environment() Environment {
	return b.env
}

// HookName is part of the backend.Backend interface.
func (b *Backend) HookName() string {
	return b.env.HookName
}

// ActionName is part of the backend.Backend interface.
func (b *Backend) ActionName() string {
	return b.env.ActionName
}

// UnitName is part of the backend.Backend interface.
func (b *Backend) UnitName() string {
	return b.env.UnitName
}

// Log is part of the backend.Backend interface.
func (b *Backend) Log(level backend.LogLevel, message string) error {
	return b.run("juju-log", "--log-level", level.String(), message)
}

// Config is part of the backend.Backend interface.
func (b *Backend) Config() (map[string]interface{}, error) {
	settings, err := b.getMap("config-get", "--format", "json", "--all")
	if err != nil {
		return nil, errors.Trace(err)
	}
	return settings, nil
}

// SetStatus is part of the backend.Backend interface.
func (b *Backend) SetStatus(info status.Info) error {
	if err := info.Validate(); err != nil {
		return errors.Trace(err)
	}
	return b.run("status-set", info.Status.String(), info.Message)
}

// SetApplicationStatus is part of the backend.Backend interface.
func (b *Backend) SetApplicationStatus(info status.Info) error {
	if err := info.Validate(); err != nil {
		return errors.Trace(err)
	}
	return b.run("status-set", "--application", info.Status.String(), info.Message)
}

// IsLeader is part of the backend.Backend interface.
func (b *Backend) IsLeader() (bool, error) {
	leader, err := b.getJSON(schema.Bool(), "is-leader", "--format", "json")
	if err != nil {
		return false, errors.Annotate(err, "leadership status unknown")
	}
	if leader == nil {
		return false, errors.New("leadership status unknown: no output from is-leader")
	}
	return leader.(bool), nil
}

// LeaderSettings is part of the backend.Backend interface.
func (b *Backend) LeaderSettings() (map[string]string, error) {
	settings, err := b.getStringMap("leader-get", "--format", "json")
	return settings, errors.Trace(err)
}

// SetLeaderSetting is part of the backend.Backend interface.
func (b *Backend) SetLeaderSetting(key, value string) error {
	return b.run("leader-set", key+"="+value)
}

// OpenedPorts is part of the backend.Backend interface.
func (b *Backend) OpenedPorts() ([]network.PortRange, error) {
	raw, err := b.getStringList("opened-ports", "--format", "json")
	if err != nil {
		return nil, errors.Trace(err)
	}
	ports := make([]network.PortRange, len(raw))
	for i, s := range raw {
		if ports[i], err = network.ParsePortRange(s); err != nil {
			return nil, errors.Annotate(err, "reading opened ports")
		}
	}
	return ports, nil
}

// OpenPort is part of the backend.Backend interface.
func (b *Backend) OpenPort(portRange network.PortRange, endpoints []string) error {
	return b.run("open-port", portArgs(portRange, endpoints)...)
}

// ClosePort is part of the backend.Backend interface.
func (b *Backend) ClosePort(portRange network.PortRange, endpoints []string) error {
	return b.run("close-port", portArgs(portRange, endpoints)...)
}

func portArgs(portRange network.PortRange, endpoints []string) []string {
	var args []string
	if len(endpoints) > 0 {
		args = append(args, "--endpoints", strings.Join(endpoints, ","))
	}
	return append(args, portRange.String())
}

// UnitState is part of the backend.Backend interface.
func (b *Backend) UnitState() (map[string]string, error) {
	state, err := b.getStringMap("state-get", "--format", "json")
	return state, errors.Trace(err)
}

// SetUnitState is part of the backend.Backend interface.
func (b *Backend) SetUnitState(key, value string) error {
	return b.run("state-set", key+"="+value)
}

// DeleteUnitState is part of the backend.Backend interface.
func (b *Backend) DeleteUnitState(key string) error {
	return b.run("state-delete", key)
}

// RelationIDs is part of the backend.Backend interface.
func (b *Backend) RelationIDs(endpoint string) ([]string, error) {
	ids, err := b.getStringList("relation-ids", "--format", "json", endpoint)
	return ids, errors.Trace(err)
}

// RelationUnits is part of the backend.Backend interface.
func (b *Backend) RelationUnits(relationID string) ([]string, error) {
	units, err := b.getStringList("relation-list", "--format", "json", "-r", relationID)
	return units, errors.Trace(err)
}

// RelationData is part of the backend.Backend interface.
func (b *Backend) RelationData(relationID, unit string, app bool) (map[string]string, error) {
	args := []string{"--format", "json"}
	if app {
		args = append(args, "--app")
	}
	args = append(args, "-r", relationID, "-", unit)
	data, err := b.getStringMap("relation-get", args...)
	return data, errors.Trace(err)
}

// SetRelationData is part of the backend.Backend interface. An empty value
// removes its key from the relation settings.
func (b *Backend) SetRelationData(relationID string, app bool, settings map[string]string) error {
	if len(settings) == 0 {
		return nil
	}
	args := []string{"-r", relationID}
	if app {
		args = append(args, "--app")
	}
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, k+"="+settings[k])
	}
	return b.run("relation-set", args...)
}

// ResourcePath is part of the backend.Backend interface.
func (b *Backend) ResourcePath(name string) (string, error) {
	out, err := b.output("resource-get", name)
	if err != nil {
		return "", errors.Trace(err)
	}
	return strings.TrimSpace(string(out)), nil
}

// SetApplicationVersion is part of the backend.Backend interface.
func (b *Backend) SetApplicationVersion(version string) error {
	return b.run("application-version-set", version)
}

// Reboot is part of the backend.Backend interface.
func (b *Backend) Reboot(now bool) error {
	if now {
		return b.run("juju-reboot", "--now")
	}
	return b.run("juju-reboot")
}

// ActionParams is part of the backend.Backend interface.
func (b *Backend) ActionParams() (map[string]interface{}, error) {
	params, err := b.getMap("action-get", "--format", "json")
	if err != nil {
		return nil, errors.Trace(err)
	}
	return params, nil
}

// ActionLog is part of the backend.Backend interface.
func (b *Backend) ActionLog(message string) error {
	return b.run("action-log", message)
}

// SetActionResult is part of the backend.Backend interface.
func (b *Backend) SetActionResult(args []string) error {
	if len(args) == 0 {
		return nil
	}
	return b.run("action-set", args...)
}

// SetActionFail is part of the backend.Backend interface.
func (b *Backend) SetActionFail(message string) error {
	return b.run("action-fail", message)
}

func (b *Backend) run(name string, args ...string) error {
	_, err := b.output(name, args...)
	return errors.Trace(err)
}

func (b *Backend) output(name string, args ...string) ([]byte, error) {
	out, err := b.runner.Run(name, args...)
	if err != nil {
		return nil, errors.Annotatef(err, "running %s", name)
	}
	return out, nil
}

// getJSON runs a hook tool whose output is JSON, and returns the output
// coerced by checker. Empty or null output yields nil.
func (b *Backend) getJSON(checker schema.Checker, name string, args ...string) (interface{}, error) {
	out, err := b.output(name, args...)
	if err != nil {
		return nil, errors.Trace(err)
	}
	var raw interface{}
	if out = bytes.TrimSpace(out); len(out) > 0 {
		if err := json.Unmarshal(out, &raw); err != nil {
			return nil, errors.Annotatef(err, "parsing %s output", name)
		}
	}
	if raw == nil {
		return nil, nil
	}
	coerced, err := checker.Coerce(raw, []string{name})
	if err != nil {
		return nil, errors.Annotatef(err, "checking %s output", name)
	}
	return coerced, nil
}

func (b *Backend) getMap(name string, args ...string) (map[string]interface{}, error) {
	raw, err := b.getJSON(schema.StringMap(schema.Any()), name, args...)
	if err != nil || raw == nil {
		return map[string]interface{}{}, errors.Trace(err)
	}
	return raw.(map[string]interface{}), nil
}

func (b *Backend) getStringMap(name string, args ...string) (map[string]string, error) {
	raw, err := b.getJSON(schema.StringMap(schema.String()), name, args...)
	if err != nil {
		return nil, errors.Trace(err)
	}
	result := make(map[string]string)
	if raw == nil {
		return result, nil
	}
	for k, v := range raw.(map[string]interface{}) {
		result[k] = v.(string)
	}
	return result, nil
}

func (b *Backend) getStringList(name string, args ...string) ([]string, error) {
	raw, err := b.getJSON(schema.List(schema.String()), name, args...)
	if err != nil || raw == nil {
		return nil, errors.Trace(err)
	}
	items := raw.([]interface{})
	result := make([]string, len(items))
	for i, v := range items {
		result[i] = v.(string)
	}
	return result, nil
}
