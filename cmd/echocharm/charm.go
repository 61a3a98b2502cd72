// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package main

import (
	"fmt"
	"strconv"

	"github.com/juju/errors"

	"github.com/juju/gocharm/core/action"
	"github.com/juju/gocharm/core/hooks"
	"github.com/juju/gocharm/core/network"
	"github.com/juju/gocharm/core/status"
	"github.com/juju/gocharm/model"
)

// charmConfig mirrors the options in config.yaml.
type charmConfig struct {
	Port     int    `json:"port"`
	Greeting string `json:"greeting"`
}

type echoParams struct {
	StringWithDefault string `json:"string-with-default"`
	Fail              bool   `json:"fail"`
}

// charmActions mirrors actions.yaml.
type charmActions struct {
	EchoParams *echoParams `json:"echo-params"`
	Greet      *struct{}   `json:"greet"`
}

const portStateKey = "port"

func handleEvent(m *model.Model[charmConfig], event hooks.Event) (status.Info, error) {
	switch event.Kind() {
	case hooks.Install:
		if err := m.SetStatus(status.NewMaintenance("installing")); err != nil {
			return status.Info{}, errors.Trace(err)
		}
	case hooks.ConfigChanged, hooks.UpgradeCharm:
		if err := syncPort(m); err != nil {
			return status.Info{}, errors.Trace(err)
		}
	case hooks.LeaderElected:
		leader, ok, err := m.Leader()
		if err != nil {
			return status.Info{}, errors.Trace(err)
		}
		if ok {
			if err := leader.SetApplicationStatus(status.NewActive("")); err != nil {
				return status.Info{}, errors.Trace(err)
			}
		}
	case hooks.Stop:
		return status.NewMaintenance("stopping"), nil
	}

	config, err := m.Config()
	if err != nil {
		return status.Info{}, errors.Trace(err)
	}
	if config.Port == 0 {
		return status.NewBlocked("port not configured"), nil
	}
	return status.NewActive(fmt.Sprintf("listening on %d/tcp", config.Port)), nil
}

// syncPort opens the configured port and closes the one opened for the
// previous configuration, if any.
func syncPort(m *model.Model[charmConfig]) error {
	config, err := m.Config()
	if err != nil {
		return errors.Trace(err)
	}
	previous, ok, err := m.State().Value(portStateKey)
	if err != nil {
		return errors.Trace(err)
	}
	wanted := strconv.Itoa(config.Port)
	if ok && previous == wanted {
		return nil
	}
	if ok {
		pr, err := network.ParsePortRange(previous + "/tcp")
		if err != nil {
			return errors.Trace(err)
		}
		m.Logger().Infof("closing port %s", pr)
		if err := m.ClosePort(pr); err != nil {
			return errors.Trace(err)
		}
	}
	if config.Port == 0 {
		return errors.Trace(m.State().Delete(portStateKey))
	}
	pr, err := network.NewPortRange(config.Port, config.Port, "tcp")
	if err != nil {
		return errors.Trace(err)
	}
	m.Logger().Infof("opening port %s", pr)
	if err := m.OpenPort(pr); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(m.State().Set(portStateKey, wanted))
}

func handleAction(m *model.Model[charmConfig], actions charmActions) (action.Result, error) {
	switch {
	case actions.EchoParams != nil:
		return echo(m, *actions.EchoParams)
	case actions.Greet != nil:
		config, err := m.Config()
		if err != nil {
			return action.Result{}, errors.Trace(err)
		}
		return action.Success(action.Values{
			action.MustParseKey("greeting"): action.String(config.Greeting),
			action.MustParseKey("unit"):     action.String(m.Unit().Name()),
		}), nil
	}
	return action.Result{}, errors.NotImplementedf("action")
}

func echo(m *model.Model[charmConfig], params echoParams) (action.Result, error) {
	if err := m.ActionLog("echoing parameters"); err != nil {
		return action.Result{}, errors.Trace(err)
	}
	values := action.Values{
		action.MustParseKey("params"): action.Nested{
			action.MustParseKey("string-with-default"): action.String(params.StringWithDefault),
			action.MustParseKey("fail"):                action.String(strconv.FormatBool(params.Fail)),
		},
	}
	if params.Fail {
		return action.Failure("requested failure", values), nil
	}
	return action.Success(values), nil
}
