package tms

import (
	"bytes"
	"encoding/json"
)

// Nullable is a field that can be left out, set to a value, or explicitly
// cleared with null. Use it with the `omitzero` JSON option.
type Nullable[T any] struct {
	value T
	set   bool
	valid bool
}

// NewNullable returns a Nullable holding v.
func NewNullable[T any](v T) Nullable[T] {
	return Nullable[T]{value: v, set: true, valid: true}
}

// Null returns a Nullable that encodes as JSON null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{set: true}
}

// Get returns the value and whether one is held.
func (n Nullable[T]) Get() (T, bool) {
	return n.value, n.valid
}

// IsNull reports whether the field was explicitly set to null.
func (n Nullable[T]) IsNull() bool {
	return n.set && !n.valid
}

// IsZero reports whether the field was left out.
func (n Nullable[T]) IsZero() bool {
	return !n.set
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		n.value, n.valid = zero, false
		return nil
	}
	if err := json.Unmarshal(b, &n.value); err != nil {
		return err
	}
	n.valid = true
	return nil
}
