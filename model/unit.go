// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package model

import (
	"github.com/juju/errors"
	"github.com/juju/names/v5"

	"github.com/juju/gocharm/backend"
)

// Unit is the unit the charm is running for.
type Unit struct {
	backend backend.Backend
}

// Name returns the unit's name, such as "wordpress/0".
func (u *Unit) Name() string {
	return u.backend.UnitName()
}

// Tag returns the unit's tag.
func (u *Unit) Tag() (names.UnitTag, error) {
	name := u.Name()
	if !names.IsValidUnit(name) {
		return names.UnitTag{}, errors.NotValidf("unit name %q", name)
	}
	return names.NewUnitTag(name), nil
}

// Application returns the name of the unit's application.
func (u *Unit) Application() (string, error) {
	app, err := names.UnitApplication(u.Name())
	return app, errors.Trace(err)
}

// ResourcePath returns the local path of the named charm resource.
func (u *Unit) ResourcePath(name string) (string, error) {
	path, err := u.backend.ResourcePath(name)
	return path, errors.Annotatef(err, "getting resource %q", name)
}

// SetWorkloadVersion sets the version of the workload shown in status.
func (u *Unit) SetWorkloadVersion(version string) error {
	return errors.Annotate(u.backend.SetApplicationVersion(version), "setting workload version")
}
