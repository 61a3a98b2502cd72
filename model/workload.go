// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package model

import (
	"path/filepath"

	"github.com/canonical/pebble/client"
	"github.com/juju/errors"
)

// PebbleSocketDir holds a directory per workload container, each with the
// socket of the pebble instance running in that container.
var PebbleSocketDir = "/charm/containers"

// Workload returns a pebble client for the named workload container, as
// announced by a pebble-ready hook. The client does not connect until it
// is used.
func (m *Model[C]) Workload(name string) (*client.Client, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return nil, errors.NotValidf("workload name %q", name)
	}
	c, err := client.New(&client.Config{
		Socket: filepath.Join(PebbleSocketDir, name, "pebble.socket"),
	})
	return c, errors.Annotatef(err, "creating pebble client for %q", name)
}
