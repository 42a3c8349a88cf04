package signature

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
)

// Value is a JSON value as seen by the canonicalizer. The set of
// implementations is closed: [Null], [Bool], [Number], [String], [Array],
// [Object] and the absent marker [Undefined].
type Value interface {
	appendCanonical(dst []byte, wire bool) []byte
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number with JavaScript (IEEE-754 double) semantics.
type Number float64

// String is a JSON string.
type String string

// Array is an ordered JSON array.
type Array []Value

// Object is a JSON object. Key order never affects the canonical form.
type Object map[string]Value

type undefined struct{}

// Undefined marks a value that was never set. Object members holding it are
// dropped from the canonical form.
var Undefined Value = undefined{}

// Clone returns a shallow copy of o. Nested values are immutable from the
// signer's point of view, so a shallow copy is enough to keep the caller's map
// untouched.
func (o Object) Clone() Object {
	out := make(Object, len(o)+4)
	for k, v := range o {
		out[k] = v
	}
	return out
}

// FromAny converts decoded JSON (as produced by encoding/json into any) and
// plain Go scalars into a [Value].
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
				return Number(f), nil
			}
			return nil, fmt.Errorf("signature: invalid number %q: %w", t, err)
		}
		return Number(f), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(t), nil
	case int:
		return Number(t), nil
	case int8:
		return Number(t), nil
	case int16:
		return Number(t), nil
	case int32:
		return Number(t), nil
	case int64:
		return Number(t), nil
	case uint:
		return Number(t), nil
	case uint8:
		return Number(t), nil
	case uint16:
		return Number(t), nil
	case uint32:
		return Number(t), nil
	case uint64:
		return Number(t), nil
	case []any:
		arr := make(Array, len(t))
		for i, item := range t {
			converted, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr[i] = converted
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(t))
		for k, item := range t {
			converted, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			obj[k] = converted
		}
		return obj, nil
	case []string:
		arr := make(Array, len(t))
		for i, item := range t {
			arr[i] = String(item)
		}
		return arr, nil
	case map[string]string:
		obj := make(Object, len(t))
		for k, item := range t {
			obj[k] = String(item)
		}
		return obj, nil
	}
	return nil, fmt.Errorf("signature: unsupported type %s", reflect.TypeOf(v))
}

// FromJSON decodes a single JSON document into a [Value]. Numbers keep their
// full textual precision until they are converted to [Number].
func FromJSON(raw []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("signature: multiple JSON documents")
	}
	return FromAny(payload)
}

// FromStruct marshals v with encoding/json and converts the result into an
// [Object]. Fields dropped by `omitempty` are absent from the result.
func FromStruct(v any) (Object, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("signature: marshal body: %w", err)
	}
	value, err := FromJSON(raw)
	if err != nil {
		return nil, err
	}
	switch t := value.(type) {
	case Object:
		return t, nil
	case Null:
		return Object{}, nil
	}
	return nil, fmt.Errorf("signature: body must be a JSON object, got %T", value)
}

// IsFinite reports whether n is neither NaN nor an infinity.
func (n Number) IsFinite() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
