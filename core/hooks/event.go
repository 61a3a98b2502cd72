// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hooks

import (
	"strings"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
)

// Event is the hook a charm was invoked for. Parameterized hooks carry the
// endpoint, storage or workload name that was prefixed to the hook name.
type Event struct {
	kind Kind
	name string
}

// NewEvent returns the Event for a hook kind that carries no name.
func NewEvent(kind Kind) (Event, error) {
	if !unitHookNames.Contains(string(kind)) {
		return Event{}, errors.NotValidf("unit hook kind %q", kind)
	}
	return Event{kind: kind}, nil
}

// NewNamedEvent returns the Event for a relation, storage or workload hook
// kind, associated with the given name.
func NewNamedEvent(kind Kind, name string) (Event, error) {
	if !kind.IsParameterized() {
		return Event{}, errors.NotValidf("parameterized hook kind %q", kind)
	}
	if name == "" {
		return Event{}, errors.NotValidf("empty name for %q hook", kind)
	}
	return Event{kind: kind, name: name}, nil
}

// Kind returns the kind of hook.
func (e Event) Kind() Kind {
	return e.kind
}

// Name returns the relation endpoint, storage or workload name associated
// with the hook. It is empty for unit hooks.
func (e Event) Name() string {
	return e.name
}

// String returns the hook name the event was classified from.
func (e Event) String() string {
	if e.name == "" {
		return string(e.kind)
	}
	return e.name + "-" + string(e.kind)
}

var unitHookNames = func() set.Strings {
	names := set.NewStrings()
	for _, kind := range unitHooks {
		names.Add(string(kind))
	}
	return names
}()

// Classify returns the Event for the given hook name.
//
// Hook names are first matched exactly against the unit hooks, and then
// against the parameterized hook suffixes in a fixed order; the prefix
// stripped from a suffix match becomes the event's name. A hook name that
// matches neither cannot be handled, and indicates the charm declares
// hooks this package does not know about.
func Classify(hookName string) (Event, error) {
	if hookName == "" {
		return Event{}, errors.NotValidf("empty hook name")
	}
	if unitHookNames.Contains(hookName) {
		return Event{kind: Kind(hookName)}, nil
	}
	for _, kind := range parameterizedHooks {
		name, ok := strings.CutSuffix(hookName, "-"+string(kind))
		if !ok || name == "" {
			continue
		}
		return Event{kind: kind, name: name}, nil
	}
	return Event{}, errors.NotValidf("hook %q", hookName)
}
