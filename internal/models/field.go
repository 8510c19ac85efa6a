package models

import "strings"

// ValueState describes whether a record field carries a usable value.
type ValueState int

const (
	// StateAbsent means the key is not declared (or declared empty).
	StateAbsent ValueState = iota
	// StateNotApplicable means the key is declared as N/A.
	StateNotApplicable
	// StatePresent means the key carries a concrete value.
	StatePresent
)

// String returns the string representation of ValueState
func (s ValueState) String() string {
	switch s {
	case StatePresent:
		return "present"
	case StateNotApplicable:
		return "n/a"
	default:
		return "absent"
	}
}

// FieldValue is an optional record value: present(value), not applicable, or absent.
type FieldValue struct {
	State ValueState
	Value string
}

// ParseFieldValue classifies a raw value. Empty strings are absent and
// "N/A" in any letter case is not applicable.
func ParseFieldValue(raw string) FieldValue {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return FieldValue{State: StateAbsent}
	case strings.EqualFold(raw, NotApplicable):
		return FieldValue{State: StateNotApplicable, Value: raw}
	default:
		return FieldValue{State: StatePresent, Value: raw}
	}
}

// IsPresent returns true if the value is concrete.
func (v FieldValue) IsPresent() bool {
	return v.State == StatePresent
}
