package treasury

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrFieldRequired = errors.New("field is required but missing or invalid")
	ErrFieldInvalid  = errors.New("field could not be decoded")
)

var jsonNull = []byte("null")

type fieldState uint8

const (
	fieldMissing fieldState = iota
	fieldValue
	fieldNull
	fieldRaw
)

// FieldError reports an accessor failure on a Field, naming the field.
type FieldError struct {
	Name string
	Raw  json.RawMessage
	err  error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.Raw) > 0 {
		return fmt.Sprintf("%s: %s (raw value: %s)", e.Name, e.err.Error(), string(e.Raw))
	}

	return fmt.Sprintf("%s: %s", e.Name, e.err.Error())
}

// Unwrap returns ErrFieldRequired or ErrFieldInvalid.
func (e *FieldError) Unwrap() error {
	return e.err
}

// Field wraps a decoded payload value and records whether its key was
// missing, present (possibly as an explicit null), or present but not
// decodable as T. The zero value is a missing field.
//
// Struct fields of type Field must be tagged `json:"name,omitzero"` so that
// a missing field is left out of encoded payloads.
type Field[T any] struct {
	value T
	raw   json.RawMessage
	state fieldState
}

// F returns a present field holding v.
func F[T any](v T) Field[T] {
	return Field[T]{value: v, state: fieldValue}
}

// FieldOf is an alias for F.
func FieldOf[T any](v T) Field[T] {
	return F(v)
}

// Null returns a present field whose payload value is an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{state: fieldNull}
}

// RawField returns a field holding a wire value that is re-emitted verbatim.
func RawField[T any](raw json.RawMessage) Field[T] {
	return Field[T]{raw: bytes.Clone(raw), state: fieldRaw}
}

// IsMissing reports whether the key was absent from the payload.
func (f Field[T]) IsMissing() bool {
	return f.state == fieldMissing
}

// IsPresent reports whether the key was present, including explicit null and raw values.
func (f Field[T]) IsPresent() bool {
	return f.state != fieldMissing
}

// IsNull reports whether the key was present with an explicit null.
func (f Field[T]) IsNull() bool {
	return f.state == fieldNull
}

// IsRaw reports whether the key was present but not decodable as T.
func (f Field[T]) IsRaw() bool {
	return f.state == fieldRaw
}

// Valid reports whether the field holds a decoded non-null value.
func (f Field[T]) Valid() bool {
	return f.state == fieldValue
}

// Raw returns the undecodable wire value, or nil.
func (f Field[T]) Raw() json.RawMessage {
	return f.raw
}

// GetRequired returns the wrapped value or a FieldError naming the field.
func (f Field[T]) GetRequired(name string) (T, error) {
	var zero T

	switch f.state {
	case fieldValue:
		return f.value, nil
	case fieldRaw:
		return zero, &FieldError{Name: name, Raw: f.raw, err: ErrFieldRequired}
	default:
		return zero, &FieldError{Name: name, err: ErrFieldRequired}
	}
}

// GetNullable returns a pointer to the wrapped value, or nil when the field is
// missing or null. It fails only for a raw field.
func (f Field[T]) GetNullable(name string) (*T, error) {
	switch f.state {
	case fieldValue:
		v := f.value

		return &v, nil
	case fieldRaw:
		return nil, &FieldError{Name: name, Raw: f.raw, err: ErrFieldInvalid}
	default:
		return nil, nil //nolint:nilnil // absence is not an error
	}
}

// GetNullableLenient is GetNullable that maps a raw field to nil.
func (f Field[T]) GetNullableLenient() *T {
	if f.state != fieldValue {
		return nil
	}

	v := f.value

	return &v
}

// Or returns the wrapped value, or def when the field holds no value.
func (f Field[T]) Or(def T) T {
	if f.state == fieldValue {
		return f.value
	}

	return def
}

// IsZero reports whether the field is missing; encoding/json uses it for omitzero.
func (f Field[T]) IsZero() bool {
	return f.state == fieldMissing
}

// MarshalJSON implements json.Marshaler.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	switch f.state {
	case fieldValue:
		data, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("encoding field value: %w", err)
		}

		return data, nil
	case fieldRaw:
		return f.raw, nil
	default:
		return jsonNull, nil
	}
}

// UnmarshalJSON implements json.Unmarshaler. A value that does not decode as T
// is kept as raw bytes instead of failing the enclosing payload.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*f = Null[T]()

		return nil
	}

	var v T

	err := json.Unmarshal(data, &v)
	if err != nil {
		*f = RawField[T](data)

		return nil
	}

	*f = F(v)

	return nil
}

// MarshalYAML implements yaml.Marshaler for CLI output.
func (f Field[T]) MarshalYAML() (interface{}, error) {
	switch f.state {
	case fieldValue:
		return f.value, nil
	case fieldRaw:
		return string(f.raw), nil
	default:
		return nil, nil
	}
}

// String renders the field for debugging.
func (f Field[T]) String() string {
	switch f.state {
	case fieldValue:
		return fmt.Sprintf("%v", f.value)
	case fieldNull:
		return "null"
	case fieldRaw:
		return "raw(" + string(f.raw) + ")"
	default:
		return "missing"
	}
}
