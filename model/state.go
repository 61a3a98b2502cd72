// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package model

import (
	"maps"

	"github.com/juju/errors"

	"github.com/juju/gocharm/backend"
	"github.com/juju/gocharm/internal/lazy"
)

// UnitState gives access to the key/value state the agent persists for the
// unit across invocations.
//
// Reads come from a copy fetched on first use. Set and Delete are written
// through to the agent immediately, but are not reflected in reads until
// the next invocation.
type UnitState struct {
	backend backend.Backend
	values  *lazy.Value[map[string]string]
}

func newUnitState(b backend.Backend) *UnitState {
	return &UnitState{
		backend: b,
		values:  lazy.New(b.UnitState),
	}
}

// Get returns all of the unit's state.
func (s *UnitState) Get() (map[string]string, error) {
	values, err := s.values.Get()
	if err != nil {
		return nil, errors.Annotate(err, "reading unit state")
	}
	return maps.Clone(values), nil
}

// Value returns the value stored under key, and whether it was present.
func (s *UnitState) Value(key string) (string, bool, error) {
	values, err := s.values.Get()
	if err != nil {
		return "", false, errors.Annotate(err, "reading unit state")
	}
	value, ok := values[key]
	return value, ok, nil
}

// Set stores value under key.
func (s *UnitState) Set(key, value string) error {
	if key == "" {
		return errors.NotValidf("empty unit state key")
	}
	return errors.Annotatef(s.backend.SetUnitState(key, value), "setting unit state %q", key)
}

// Delete removes key from the unit's state.
func (s *UnitState) Delete(key string) error {
	if key == "" {
		return errors.NotValidf("empty unit state key")
	}
	return errors.Annotatef(s.backend.DeleteUnitState(key), "deleting unit state %q", key)
}
