// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hooktools

import (
	"os/exec"
	"strings"

	"github.com/juju/errors"
	"github.com/kballard/go-shellquote"
)

// Runner runs a hook tool and returns its standard output.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
}

// NewExecRunner returns a Runner which executes hook tools found on the
// PATH set up by the agent.
func NewExecRunner() Runner {
	return execRunner{}
}

type execRunner struct{}

// Run is part of the Runner interface.
func (execRunner) Run(name string, args ...string) ([]byte, error) {
	logger.Tracef("running %s", shellquote.Join(append([]string{name}, args...)...))
	out, err := exec.Command(name, args...).Output()
	if err == nil {
		return out, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if stderr := strings.TrimSpace(string(exitErr.Stderr)); stderr != "" {
			return nil, errors.Errorf("%v: %s", err, stderr)
		}
	}
	return nil, errors.Trace(err)
}
