// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package status

import (
	"github.com/juju/errors"
)

// Status is the workload status of a unit or application, as set by the
// charm.
type Status string

// String returns a string representation of the Status.
func (s Status) String() string {
	return string(s)
}

const (
	// Active is set when the workload is ready to provide its service.
	Active Status = "active"

	// Blocked is set when the workload needs manual intervention to make
	// progress, such as a missing relation or invalid configuration.
	Blocked Status = "blocked"

	// Maintenance is set while the charm is doing work that prevents the
	// workload from providing its service, such as installing packages.
	Maintenance Status = "maintenance"

	// Waiting is set when the workload is waiting on something outside of
	// the charm's control, such as a related application.
	Waiting Status = "waiting"
)

// Error is deliberately absent: the agent sets it when a hook fails, and a
// charm can never set it directly.

// KnownStatus returns true if the status is one a charm may set.
func (s Status) KnownStatus() bool {
	switch s {
	case Active, Blocked, Maintenance, Waiting:
		return true
	}
	return false
}

// Info holds a Status and the message explaining it.
type Info struct {
	Status  Status
	Message string
}

// NewActive returns an active status with the given message.
func NewActive(message string) Info {
	return Info{Status: Active, Message: message}
}

// NewBlocked returns a blocked status with the given message.
func NewBlocked(message string) Info {
	return Info{Status: Blocked, Message: message}
}

// NewMaintenance returns a maintenance status with the given message.
func NewMaintenance(message string) Info {
	return Info{Status: Maintenance, Message: message}
}

// NewWaiting returns a waiting status with the given message.
func NewWaiting(message string) Info {
	return Info{Status: Waiting, Message: message}
}

// Validate returns an error if the status cannot be set by a charm.
func (i Info) Validate() error {
	if !i.Status.KnownStatus() {
		return errors.NotValidf("status %q", i.Status)
	}
	return nil
}
