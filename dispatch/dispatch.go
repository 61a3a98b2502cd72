// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package dispatch runs a charm's handlers for the hook or action the agent
// invoked the charm for, and reports their outcome back to the agent.
package dispatch

import (
	"os"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/juju/gocharm/core/action"
	"github.com/juju/gocharm/core/hooks"
	"github.com/juju/gocharm/internal/decode"
	"github.com/juju/gocharm/logging"
	"github.com/juju/gocharm/model"
)

// Execute runs the handler for the current invocation. When the backend
// reports neither a hook nor an action there is nothing to run, and Execute
// returns nil.
//
// Every failure is returned to the caller, which should exit non-zero so
// the agent marks the hook or action as failed. Nothing is retried.
func Execute[C, A any](config Config[C, A]) error {
	if err := config.Validate(); err != nil {
		return errors.Trace(err)
	}
	logContext, err := logging.NewContext(config.Backend)
	if err != nil {
		return errors.Trace(err)
	}
	charmLogger := logContext.GetLogger(model.CharmLoggerName)

	environ := config.Environ
	if environ == nil {
		environ = os.Environ
	}
	for _, kv := range environ() {
		key, value, _ := strings.Cut(kv, "=")
		charmLogger.Debugf("%s: %s", key, value)
	}

	if hookName := config.Backend.HookName(); hookName != "" {
		return errors.Trace(runHook(config, charmLogger, hookName))
	}
	if actionName := config.Backend.ActionName(); actionName != "" {
		return errors.Trace(runAction(config, charmLogger, actionName))
	}
	config.Logger.Debugf("no hook or action to run")
	return nil
}

func runHook[C, A any](config Config[C, A], charmLogger loggo.Logger, hookName string) error {
	event, err := hooks.Classify(hookName)
	if err != nil {
		return errors.Trace(err)
	}
	charmLogger.Infof("running handlers for %s hook", event)

	m, err := model.New[C](config.Backend, model.HookInvocation)
	if err != nil {
		return errors.Trace(err)
	}
	start := config.Clock.Now()
	info, err := config.EventHandler(m, event)
	config.Logger.Debugf("%s hook handler ran for %v", event, config.Clock.Now().Sub(start))
	if err != nil {
		return errors.Annotatef(err, "running %s hook", event)
	}
	if err := info.Validate(); err != nil {
		return errors.Annotatef(err, "%s hook handler result", event)
	}
	return errors.Annotate(config.Backend.SetStatus(info), "setting unit status")
}

func runAction[C, A any](config Config[C, A], charmLogger loggo.Logger, actionName string) error {
	charmLogger.Debugf("running handler for %s action", actionName)

	params, err := config.Backend.ActionParams()
	if err != nil {
		return errors.Annotatef(err, "reading %s action parameters", actionName)
	}
	act, err := decodeAction[A](config.Logger, actionName, params)
	if err != nil {
		return errors.Trace(err)
	}

	m, err := model.New[C](config.Backend, model.ActionInvocation)
	if err != nil {
		return errors.Trace(err)
	}
	start := config.Clock.Now()
	result, err := config.ActionHandler(m, act)
	config.Logger.Debugf("%s action handler ran for %v", actionName, config.Clock.Now().Sub(start))
	if err != nil {
		return errors.Annotatef(err, "running %s action", actionName)
	}
	return errors.Trace(reportResult(config, actionName, result))
}

// decodeAction decodes the parameters of the named action into the field
// of A tagged with that name.
func decodeAction[A any](logger Logger, actionName string, params map[string]interface{}) (A, error) {
	var act A
	if params == nil {
		params = map[string]interface{}{}
	}
	unused, err := decode.Into(map[string]interface{}{actionName: params}, &act)
	if err != nil {
		return act, errors.Annotatef(err, "decoding %s action parameters", actionName)
	}
	for _, key := range unused {
		if key == actionName {
			return act, errors.NotFoundf("action %q", actionName)
		}
		logger.Warningf("ignoring unknown %s action parameter %q", actionName, strings.TrimPrefix(key, actionName+"."))
	}
	return act, nil
}

func reportResult[C, A any](config Config[C, A], actionName string, result action.Result) error {
	tokens, err := action.Flatten(result.Values())
	if err != nil {
		return errors.Annotatef(err, "%s action results", actionName)
	}
	if message, failed := result.Failed(); failed {
		config.Logger.Debugf("%s action failed: %s", actionName, message)
		if err := config.Backend.SetActionFail(message); err != nil {
			return errors.Annotatef(err, "failing %s action", actionName)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return errors.Annotatef(config.Backend.SetActionResult(tokens), "setting %s action results", actionName)
}
