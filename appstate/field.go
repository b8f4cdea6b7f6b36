package appstate

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type fieldState uint8

const (
	fieldUndefined fieldState = iota
	fieldNull
	fieldSet
)

// Field is a tri-state value: undefined (the zero value), null, or set.
//
// State slots that the reducer clears in different ways (null, "", or by
// dropping the key) are Fields so each outcome stays observable. Undefined
// fields are omitted when marshalled with `omitzero`; null fields marshal as
// JSON null.
type Field[T any] struct {
	state fieldState
	v     T
}

// Of returns a set Field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{state: fieldSet, v: v}
}

// Null returns a Field explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{state: fieldNull}
}

// Undefined returns an absent Field. It equals the zero value.
func Undefined[T any]() Field[T] {
	return Field[T]{}
}

func (f Field[T]) IsUndefined() bool { return f.state == fieldUndefined }
func (f Field[T]) IsNull() bool      { return f.state == fieldNull }
func (f Field[T]) IsSet() bool       { return f.state == fieldSet }

// IsZero reports whether the field is undefined. encoding/json (omitzero)
// and yaml.v3 (omitempty) use it to drop the key.
func (f Field[T]) IsZero() bool { return f.IsUndefined() }

// Get returns the value and whether it is set.
func (f Field[T]) Get() (T, bool) {
	return f.v, f.state == fieldSet
}

// OrElse returns the value if set, otherwise def.
func (f Field[T]) OrElse(def T) T {
	if f.state == fieldSet {
		return f.v
	}
	return def
}

// String renders the field for display: the value, "null" or "undefined".
func (f Field[T]) String() string {
	switch f.state {
	case fieldSet:
		return fmt.Sprint(f.v)
	case fieldNull:
		return "null"
	default:
		return "undefined"
	}
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != fieldSet {
		return []byte("null"), nil
	}
	return json.Marshal(f.v)
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*f = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Of(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Field[T]) MarshalYAML() (any, error) {
	if f.state != fieldSet {
		return nil, nil
	}
	return f.v, nil
}
