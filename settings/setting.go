// SPDX-License-Identifier: LGPL-3.0-or-later

package settings

import "encoding/json"

type state uint8

const (
	stateNotSet state = iota
	stateReset
	stateSet
)

// Setting is a tri-state value for partial updates. It distinguishes
// "leave unchanged" (NotSet), "restore the service default" (Reset) and
// "apply this value" (Set). The zero value is NotSet.
type Setting[T any] struct {
	value T
	state state
}

// Set returns a Setting carrying an explicit value.
func Set[T any](v T) Setting[T] {
	return Setting[T]{value: v, state: stateSet}
}

// Reset returns a Setting instructing the service to restore its default.
func Reset[T any]() Setting[T] {
	return Setting[T]{state: stateReset}
}

// NotSet returns a Setting carrying no instruction. Equivalent to the
// zero value, provided for readability at call sites.
func NotSet[T any]() Setting[T] {
	return Setting[T]{}
}

// Get returns the value and whether the setting is in the Set state.
func (s Setting[T]) Get() (T, bool) {
	return s.value, s.state == stateSet
}

// IsSet reports whether the setting carries an explicit value.
func (s Setting[T]) IsSet() bool { return s.state == stateSet }

// IsReset reports whether the setting requests a restore-to-default.
func (s Setting[T]) IsReset() bool { return s.state == stateReset }

// IsNotSet reports whether the setting carries no instruction.
func (s Setting[T]) IsNotSet() bool { return s.state == stateNotSet }

// IsZero reports whether the setting is NotSet. Fields of type Setting
// must be tagged `json:"...,omitzero"` so a NotSet field is omitted from
// the encoded document; without the tag NotSet and Reset both encode as
// null and become indistinguishable on the wire.
func (s Setting[T]) IsZero() bool { return s.state == stateNotSet }

// OrReset returns Set(v) if the setting is Reset, the setting unchanged
// otherwise.
func (s Setting[T]) OrReset(v T) Setting[T] {
	if s.state == stateReset {
		return Set(v)
	}
	return s
}

// MarshalJSON encodes Set as the underlying value and Reset as null.
// NotSet also encodes as null; the omitzero gate keeps it off the wire.
func (s Setting[T]) MarshalJSON() ([]byte, error) {
	if s.state == stateSet {
		return json.Marshal(s.value)
	}
	return []byte("null"), nil
}

// UnmarshalJSON decodes null as Reset and any value as Set. An absent
// key never reaches this method, so the field keeps its zero value and
// decodes as NotSet.
func (s *Setting[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Setting[T]{state: stateReset}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Setting[T]{value: v, state: stateSet}
	return nil
}

// String implements fmt.Stringer for log output.
func (s Setting[T]) String() string {
	switch s.state {
	case stateSet:
		b, err := json.Marshal(s.value)
		if err != nil {
			return "Set(?)"
		}
		return "Set(" + string(b) + ")"
	case stateReset:
		return "Reset"
	default:
		return "NotSet"
	}
}
