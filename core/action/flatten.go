// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package action

import (
	"fmt"
	"sort"

	"github.com/juju/errors"
)

// Flatten returns the values as "path=value" arguments for action-set, where
// path joins the keys leading to each scalar with dots. The arguments are
// sorted by path. An error is returned for a key that does not parse, such
// as the zero Key. An error is also returned if two values share a path, or
// if a scalar's path is a prefix of another path; both can happen when a
// dotted key overlaps a nested one.
//
// action-set cannot express an empty map, so an empty Nested value yields
// no arguments and is indistinguishable from an absent one.
func Flatten(values Values) ([]string, error) {
	flat := make(map[string]string)
	if err := flatten("", values, flat); err != nil {
		return nil, errors.Trace(err)
	}
	paths := make([]string, 0, len(flat))
	for path := range flat {
		for i, r := range path {
			if r != '.' {
				continue
			}
			if _, ok := flat[path[:i]]; ok {
				return nil, errors.NotValidf("result key %q overlaps %q", path, path[:i])
			}
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	args := make([]string, len(paths))
	for i, path := range paths {
		args[i] = fmt.Sprintf("%s=%s", path, flat[path])
	}
	return args, nil
}

func flatten(prefix string, values map[Key]Value, into map[string]string) error {
	for key, value := range values {
		if _, err := ParseKey(key.String()); err != nil {
			return errors.Trace(err)
		}
		path := key.String()
		if prefix != "" {
			path = prefix + "." + path
		}
		switch v := value.(type) {
		case String:
			if _, ok := into[path]; ok {
				return errors.NotValidf("duplicate result key %q", path)
			}
			into[path] = string(v)
		case Nested:
			if err := flatten(path, v, into); err != nil {
				return err
			}
		default:
			return errors.NotValidf("result value %T for %q", value, path)
		}
	}
	return nil
}
