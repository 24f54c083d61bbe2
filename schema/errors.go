package schema

import (
	"fmt"
	"strings"
)

// MappingConflictError reports two properties of one type resolving to the
// same element name.
type MappingConflictError struct {
	Type    string
	Element string
	First   string
	Second  string
}

func (e *MappingConflictError) Error() string {
	return fmt.Sprintf("mapping conflict in %s: properties %q and %q both map to element %q",
		e.Type, e.First, e.Second, e.Element)
}

// CyclicTypeError reports an anonymous type resolution that revisits a type
// already on the resolution stack. Path lists the stack from the outermost
// type down to the revisited one.
type CyclicTypeError struct {
	Path []string
}

func (e *CyclicTypeError) Error() string {
	return "cyclic type: " + strings.Join(e.Path, " -> ")
}

// UnsupportedTypeError reports a mapped property whose value type has neither
// a built-in schema type nor a struct shape.
type UnsupportedTypeError struct {
	Type     string
	Property string
	GoType   string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s.%s: value type %s has no schema mapping", e.Type, e.Property, e.GoType)
}

// InvalidNameError reports an element name that is not an XML NCName.
type InvalidNameError struct {
	Type     string
	Property string
	Element  string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s.%s: %q is not a valid element name", e.Type, e.Property, e.Element)
}

// NilCarrierError reports a nillable element whose property cannot hold nil.
type NilCarrierError struct {
	Type     string
	Property string
	GoType   string
}

func (e *NilCarrierError) Error() string {
	return fmt.Sprintf("%s.%s: nillable element needs a pointer value type, got %s",
		e.Type, e.Property, e.GoType)
}
