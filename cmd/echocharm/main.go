// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// echocharm is a small charm built on gocharm. Installed as the charm's
// dispatch binary, it keeps a port open as configured and echoes action
// parameters back as results.
package main

import (
	"fmt"
	"os"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/juju/gocharm/backend/hooktools"
	"github.com/juju/gocharm/dispatch"
)

var logger = loggo.GetLogger("echocharm")

func main() {
	os.Exit(Main())
}

// Main runs the charm for the invocation described by the process
// environment, and returns the process exit code.
func Main() int {
	b, err := hooktools.NewFromOS()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	err = dispatch.Execute(dispatch.Config[charmConfig, charmActions]{
		Backend:       b,
		EventHandler:  handleEvent,
		ActionHandler: handleAction,
		Logger:        logger,
		Clock:         clock.WallClock,
	})
	if err != nil {
		logger.Errorf("%s", errors.ErrorStack(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
