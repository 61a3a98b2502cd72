// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package lazy provides a compute-once value for state that is fetched on
// first use and then held for the rest of a hook or action invocation.
package lazy

import (
	"github.com/juju/errors"
)

// ErrReentrant is returned by Get when called from within its own fill
// function.
const ErrReentrant = errors.ConstError("lazy value read while being computed")

// Value holds the result of a fill function, which is called at most once.
// The zero Value is not usable; use New.
//
// Value is not safe for concurrent use.
type Value[T any] struct {
	fill    func() (T, error)
	filling bool
	done    bool
	value   T
	err     error
}

// New returns a Value that is computed by fill on first use.
func New[T any](fill func() (T, error)) *Value[T] {
	return &Value[T]{fill: fill}
}

// Get returns the value, calling fill if this is the first call. Both the
// value and any error from fill are kept, so a failed fill is not retried.
func (v *Value[T]) Get() (T, error) {
	if v.done {
		return v.value, v.err
	}
	if v.filling {
		var zero T
		return zero, ErrReentrant
	}
	v.filling = true
	value, err := v.fill()
	v.filling = false

	v.value, v.err, v.done = value, err, true
	v.fill = nil
	return v.value, v.err
}

// Filled reports whether the value has been computed.
func (v *Value[T]) Filled() bool {
	return v.done
}
