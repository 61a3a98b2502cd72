// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hooktools

import (
	"os"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/names/v5"
)

// Environment variables set by the agent when it runs a charm.
const (
	EnvHookName     = "JUJU_HOOK_NAME"
	EnvActionName   = "JUJU_ACTION_NAME"
	EnvDispatchPath = "JUJU_DISPATCH_PATH"
	EnvUnitName     = "JUJU_UNIT_NAME"
	EnvModelName    = "JUJU_MODEL_NAME"
	EnvRelation     = "JUJU_RELATION"
	EnvRelationID   = "JUJU_RELATION_ID"
	EnvRemoteUnit   = "JUJU_REMOTE_UNIT"
	EnvWorkloadName = "JUJU_WORKLOAD_NAME"
	EnvCharmDir     = "JUJU_CHARM_DIR"
	dispatchHooks   = "hooks/"
	dispatchActions = "actions/"
)

// Environment holds the invocation details the agent passes to a charm
// through environment variables.
type Environment struct {
	HookName     string
	ActionName   string
	DispatchPath string
	UnitName     string
	ModelName    string
	Relation     string
	RelationID   string
	RemoteUnit   string
	WorkloadName string
	CharmDir     string
}

// EnvironmentFromOS reads the Environment from the process environment.
func EnvironmentFromOS() (Environment, error) {
	return NewEnvironment(os.Getenv)
}

// NewEnvironment reads the Environment using getenv. When the agent only
// sets JUJU_DISPATCH_PATH, the hook or action name is taken from it.
func NewEnvironment(getenv func(string) string) (Environment, error) {
	env := Environment{
		HookName:     getenv(EnvHookName),
		ActionName:   getenv(EnvActionName),
		DispatchPath: getenv(EnvDispatchPath),
		UnitName:     getenv(EnvUnitName),
		ModelName:    getenv(EnvModelName),
		Relation:     getenv(EnvRelation),
		RelationID:   getenv(EnvRelationID),
		RemoteUnit:   getenv(EnvRemoteUnit),
		WorkloadName: getenv(EnvWorkloadName),
		CharmDir:     getenv(EnvCharmDir),
	}
	if env.HookName == "" && env.ActionName == "" {
		if name, ok := strings.CutPrefix(env.DispatchPath, dispatchHooks); ok {
			env.HookName = name
		} else if name, ok := strings.CutPrefix(env.DispatchPath, dispatchActions); ok {
			env.ActionName = name
		}
	}
	if err := env.Validate(); err != nil {
		return Environment{}, errors.Trace(err)
	}
	return env, nil
}

// Validate returns an error if the environment is inconsistent.
func (env Environment) Validate() error {
	if env.UnitName != "" && !names.IsValidUnit(env.UnitName) {
		return errors.NotValidf("%s %q", EnvUnitName, env.UnitName)
	}
	if env.RemoteUnit != "" && !names.IsValidUnit(env.RemoteUnit) {
		return errors.NotValidf("%s %q", EnvRemoteUnit, env.RemoteUnit)
	}
	if env.HookName != "" && env.ActionName != "" {
		return errors.NotValidf("both %s %q and %s %q", EnvHookName, env.HookName, EnvActionName, env.ActionName)
	}
	return nil
}
