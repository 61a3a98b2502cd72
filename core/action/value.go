// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package action

// Value is a single action result value: either a String or a Nested
// set of further values.
type Value interface {
	isValue()
}

// String is a scalar result value.
type String string

func (String) isValue() {}

// Nested is a result value holding further keyed values.
type Nested map[Key]Value

func (Nested) isValue() {}

// Values holds the keyed results of an action.
type Values map[Key]Value

// Result is the outcome of an action: either success with a set of values,
// or failure with a message and any values produced before it failed.
type Result struct {
	values  Values
	failed  bool
	message string
}

// Success returns a successful result holding the given values.
func Success(values Values) Result {
	return Result{values: values}
}

// Failure returns a failed result with the given message. Partial results
// are still reported to the user.
func Failure(message string, partial Values) Result {
	return Result{
		values:  partial,
		failed:  true,
		message: message,
	}
}

// Values returns the result values, which are partial if the action failed.
func (r Result) Values() Values {
	return r.values
}

// Failed returns the failure message, and whether the action failed.
func (r Result) Failed() (string, bool) {
	return r.message, r.failed
}
