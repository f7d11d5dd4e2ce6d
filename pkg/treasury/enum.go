package treasury

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrUnrecognizedEnumValue = errors.New("unrecognized enum value")
)

// UnrecognizedEnumError is returned by Known when a value is not one of the
// named constants of its enumeration.
type UnrecognizedEnumError struct {
	Type  string
	Value string
}

// Error implements the error interface.
func (e *UnrecognizedEnumError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrUnrecognizedEnumValue.Error(), e.Type, e.Value)
}

// Unwrap returns ErrUnrecognizedEnumValue.
func (e *UnrecognizedEnumError) Unwrap() error {
	return ErrUnrecognizedEnumValue
}

// EnumValue is the total classification of an open enum value: either one of
// the named constants (Known) or an unrecognized wire string kept verbatim.
type EnumValue[E ~string] struct {
	Value E
	Known bool
}

// IsUnrecognized reports whether the value is not a named constant.
func (v EnumValue[E]) IsUnrecognized() bool {
	return !v.Known
}

// EnumSet is the closed set of named constants of one open enumeration.
type EnumSet[E ~string] struct {
	name   string
	values []E
	index  map[E]struct{}
}

// NewEnumSet registers the named constants of an enumeration.
func NewEnumSet[E ~string](name string, values ...E) *EnumSet[E] {
	index := make(map[E]struct{}, len(values))
	for _, v := range values {
		index[v] = struct{}{}
	}

	return &EnumSet[E]{
		name:   name,
		values: values,
		index:  index,
	}
}

// Name returns the enumeration type name used in errors.
func (s *EnumSet[E]) Name() string {
	return s.name
}

// Contains reports whether v is a named constant.
func (s *EnumSet[E]) Contains(v E) bool {
	_, ok := s.index[v]

	return ok
}

// Classify maps any value to an EnumValue. It never fails.
func (s *EnumSet[E]) Classify(v E) EnumValue[E] {
	return EnumValue[E]{Value: v, Known: s.Contains(v)}
}

// Known returns v when it is a named constant and an UnrecognizedEnumError otherwise.
func (s *EnumSet[E]) Known(v E) (E, error) {
	if !s.Contains(v) {
		return v, &UnrecognizedEnumError{Type: s.name, Value: string(v)}
	}

	return v, nil
}

// Values returns the named constants in declaration order.
func (s *EnumSet[E]) Values() []E {
	out := make([]E, len(s.values))
	copy(out, s.values)

	return out
}
