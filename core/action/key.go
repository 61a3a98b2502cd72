// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package action holds the typed results a charm returns from an action,
// and their encoding into the dotted key=value form accepted by action-set.
package action

import (
	"regexp"
	"strings"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
)

// reservedKeys are set by the agent itself from the output of the action.
var reservedKeys = set.NewStrings("stdout", "stdout-encoding", "stderr", "stderr-encoding")

var keySegmentRE = regexp.MustCompile(`^[a-z]([a-z0-9-]*[a-z])?$`)

// Key is a validated action result key. Dots separate the segments of a
// key, each of which must start and end with a lowercase letter and may
// contain lowercase letters, digits and hyphens in between.
type Key struct {
	value string
}

// ParseKey returns the Key for raw, or an error describing why it
// cannot be used as a result key.
func ParseKey(raw string) (Key, error) {
	if reservedKeys.Contains(raw) {
		return Key{}, errors.NotValidf("reserved result key %q", raw)
	}
	if raw == "" {
		return Key{}, errors.NotValidf("empty result key")
	}
	for _, segment := range strings.Split(raw, ".") {
		if !keySegmentRE.MatchString(segment) {
			return Key{}, errors.NotValidf(
				"result key %q (segment %q must start and end with a lowercase letter and contain only lowercase letters, digits and hyphens)",
				raw, segment,
			)
		}
	}
	return Key{value: raw}, nil
}

// MustParseKey is like ParseKey but panics if raw is not a valid key.
func MustParseKey(raw string) Key {
	k, err := ParseKey(raw)
	if err != nil {
		panic(err)
	}
	return k
}

// String returns the key as it was parsed.
func (k Key) String() string {
	return k.value
}
