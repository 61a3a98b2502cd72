// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package decode fills charm-defined Go types from the loosely typed values
// returned by hook tools.
package decode

import (
	"math"
	"reflect"

	"github.com/juju/errors"
	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag naming the key a field is decoded from, so
// that types shared with encoding/json need no extra tags.
const TagName = "json"

// Into decodes input into target, which must be a non-nil pointer. It
// returns the keys of input that no field of target consumed; keys of
// nested values are joined to their parent with dots.
func Into(input interface{}, target interface{}) ([]string, error) {
	var metadata mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    TagName,
		Metadata:   &metadata,
		Result:     target,
		DecodeHook: mapstructure.DecodeHookFuncKind(integralFloats),
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err := decoder.Decode(input); err != nil {
		return nil, errors.Trace(err)
	}
	return metadata.Unused, nil
}

// integralFloats refuses to truncate a JSON number with a fractional part
// into an integer field.
func integralFloats(from, to reflect.Kind, data interface{}) (interface{}, error) {
	if from != reflect.Float32 && from != reflect.Float64 {
		return data, nil
	}
	switch to {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return nil, errors.NotValidf("non-integer %v for %s", data, to)
	}
	return data, nil
}
