// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package model

import (
	"github.com/juju/errors"

	"github.com/juju/gocharm/backend"
	"github.com/juju/gocharm/core/status"
)

// LeaderTools holds the operations only the application leader may
// perform. It is only available from Model.Leader, on the leader unit.
type LeaderTools struct {
	backend backend.Backend
}

// SetApplicationStatus sets the status of the application as a whole.
func (l *LeaderTools) SetApplicationStatus(info status.Info) error {
	if err := info.Validate(); err != nil {
		return errors.Trace(err)
	}
	return errors.Annotate(l.backend.SetApplicationStatus(info), "setting application status")
}

// Settings returns the settings the leader shares with all units of the
// application.
func (l *LeaderTools) Settings() (map[string]string, error) {
	settings, err := l.backend.LeaderSettings()
	return settings, errors.Annotate(err, "reading leader settings")
}

// Set writes a setting shared with all units of the application.
func (l *LeaderTools) Set(key, value string) error {
	if key == "" {
		return errors.NotValidf("empty leader setting key")
	}
	return errors.Annotatef(l.backend.SetLeaderSetting(key, value), "setting leader setting %q", key)
}

// SetApplicationData updates this application's databag in a relation.
func (l *LeaderTools) SetApplicationData(relation *Relation, settings map[string]string) error {
	return errors.Annotatef(
		l.backend.SetRelationData(relation.ID(), true, settings),
		"setting application data for relation %q", relation.ID(),
	)
}
