// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package model

import (
	"github.com/juju/errors"

	"github.com/juju/gocharm/backend"
)

// Relation is one relation established on an endpoint of the charm.
// Relation data is not cached; every read asks the agent.
type Relation struct {
	backend  backend.Backend
	id       string
	endpoint string
}

// Relations returns the relations established on the named endpoint.
func (m *Model[C]) Relations(endpoint string) ([]*Relation, error) {
	ids, err := m.backend.RelationIDs(endpoint)
	if err != nil {
		return nil, errors.Annotatef(err, "listing relations for endpoint %q", endpoint)
	}
	relations := make([]*Relation, len(ids))
	for i, id := range ids {
		relations[i] = &Relation{
			backend:  m.backend,
			id:       id,
			endpoint: endpoint,
		}
	}
	return relations, nil
}

// ID returns the relation id, such as "db:3".
func (r *Relation) ID() string {
	return r.id
}

// Endpoint returns the name of the local endpoint of the relation.
func (r *Relation) Endpoint() string {
	return r.endpoint
}

// Units returns the remote units taking part in the relation.
func (r *Relation) Units() ([]string, error) {
	units, err := r.backend.RelationUnits(r.id)
	return units, errors.Annotatef(err, "listing units of relation %q", r.id)
}

// UnitData returns the settings a unit has published in the relation.
func (r *Relation) UnitData(unit string) (map[string]string, error) {
	data, err := r.backend.RelationData(r.id, unit, false)
	return data, errors.Annotatef(err, "reading %s data for relation %q", unit, r.id)
}

// ApplicationData returns the databag of the application the given unit
// belongs to. Pass a remote unit to read the remote application's data, or
// the local unit to read this application's.
func (r *Relation) ApplicationData(unit string) (map[string]string, error) {
	data, err := r.backend.RelationData(r.id, unit, true)
	return data, errors.Annotatef(err, "reading application data of %s for relation %q", unit, r.id)
}

// SetUnitData updates the local unit's settings in the relation. A key
// with an empty value is removed.
func (r *Relation) SetUnitData(settings map[string]string) error {
	return errors.Annotatef(r.backend.SetRelationData(r.id, false, settings), "setting unit data for relation %q", r.id)
}
