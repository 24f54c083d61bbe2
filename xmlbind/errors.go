package xmlbind

import (
	"errors"
	"fmt"

	"extension-binder/schema"
)

var (
	// ErrSchemaViolation is matched by every error reporting a document or
	// value that does not conform to the mapped schema.
	ErrSchemaViolation = errors.New("schema violation")
	// ErrUnknownClass is returned for a type that was never registered.
	ErrUnknownClass = errors.New("unknown class")
	// ErrNilInstance is returned when there is nothing to marshal or unmarshal.
	ErrNilInstance = errors.New("nil instance")
)

// Resolution errors, returned by Registry.Mapping and friends.
type (
	MappingConflictError = schema.MappingConflictError
	CyclicTypeError      = schema.CyclicTypeError
	UnsupportedTypeError = schema.UnsupportedTypeError
	InvalidNameError     = schema.InvalidNameError
	NilCarrierError      = schema.NilCarrierError
)

// MissingRequiredValueError reports a required, non-nillable element whose
// property has no value at marshal time.
type MissingRequiredValueError struct {
	Type    string
	Element string
}

func (e *MissingRequiredValueError) Error() string {
	return fmt.Sprintf("%s: required element %q has no value", e.Type, e.Element)
}

// Is matches ErrSchemaViolation.
func (e *MissingRequiredValueError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// MissingRequiredElementError reports a required element absent from the
// document at unmarshal time.
type MissingRequiredElementError struct {
	Type    string
	Element string
}

func (e *MissingRequiredElementError) Error() string {
	return fmt.Sprintf("%s: required element %q is missing", e.Type, e.Element)
}

// Is matches ErrSchemaViolation.
func (e *MissingRequiredElementError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// NonNillableNullError reports a null on an element that is not nillable:
// an explicit null value on write, or a nil marker on read.
type NonNillableNullError struct {
	Type    string
	Element string
}

func (e *NonNillableNullError) Error() string {
	return fmt.Sprintf("%s: element %q is not nillable", e.Type, e.Element)
}

// Is matches ErrSchemaViolation.
func (e *NonNillableNullError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// NilContentError reports an element that carries a nil marker together with
// text or child elements.
type NilContentError struct {
	Type    string
	Element string
}

func (e *NilContentError) Error() string {
	return fmt.Sprintf("%s: element %q is marked nil but has content", e.Type, e.Element)
}

// Is matches ErrSchemaViolation.
func (e *NilContentError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// ReflectionAccessError reports a field accessor or constructor that failed.
type ReflectionAccessError struct {
	Type     string
	Property string
	Err      error
}

func (e *ReflectionAccessError) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("%s: %v", e.Type, e.Err)
	}

	return fmt.Sprintf("%s.%s: %v", e.Type, e.Property, e.Err)
}

func (e *ReflectionAccessError) Unwrap() error {
	return e.Err
}

// MarshalError wraps any failure of Marshal with the element path it
// occurred at.
type MarshalError struct {
	Type string
	Path string
	Err  error
}

func (e *MarshalError) Error() string {
	return fmt.Sprintf("marshal %s at %s: %v", e.Type, e.Path, e.Err)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError wraps any failure of Unmarshal with the element path it
// occurred at.
type UnmarshalError struct {
	Type string
	Path string
	Err  error
}

func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("unmarshal %s at %s: %v", e.Type, e.Path, e.Err)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}
