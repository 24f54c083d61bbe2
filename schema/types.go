package schema

import (
	"strconv"

	"extension-binder/primitive"
)

// Namespaces used on the wire and in emitted schema documents.
const (
	XSDNamespace = primitive.XSDNamespace
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

	XSDPrefix = "xs"
	XSIPrefix = "xsi"
)

// NamedType is a reference to an externally named schema type.
type NamedType struct {
	Space string // namespace URI
	Local string // local name, e.g. "decimal"
}

// String returns the prefixed form used in schema documents, e.g. "xs:decimal".
func (n NamedType) String() string {
	if n.Space == XSDNamespace {
		return XSDPrefix + ":" + n.Local
	}

	return n.Local
}

// TypeRef points an element at its value type. Exactly one of Named and
// Anonymous is set.
type TypeRef struct {
	Named     *NamedType
	Anonymous *ComplexType
}

// IsAnonymous reports whether the element carries an inline complex type.
func (r TypeRef) IsAnonymous() bool {
	return r.Anonymous != nil
}

// String returns the named type reference or "(anonymous)".
func (r TypeRef) String() string {
	switch {
	case r.Named != nil:
		return r.Named.String()
	case r.Anonymous != nil:
		return "(anonymous)"
	default:
		return "(none)"
	}
}

// Element is a local element declaration inside a complex type sequence.
type Element struct {
	// Name is unique within the owning ComplexType (case-sensitive).
	Name string
	// MinOccurs is 1 for required elements and 0 otherwise.
	MinOccurs int
	// Nillable allows the element to be present with an xsi:nil marker.
	Nillable bool
	// Type is the element's value type.
	Type TypeRef
}

// Required reports whether the element must occur.
func (e *Element) Required() bool {
	return e.MinOccurs > 0
}

// String returns a compact single-line form, handy in diagnostics.
func (e *Element) String() string {
	s := e.Name + " " + e.Type.String() + " minOccurs=" + strconv.Itoa(e.MinOccurs)
	if e.Nillable {
		s += " nillable"
	}

	return s
}

// ComplexType is an ordered sequence of local elements.
// An empty Name marks an anonymous type scoped to a single element.
type ComplexType struct {
	Name     string
	Elements []*Element
}

// IsAnonymous reports whether the type has no external name.
func (c *ComplexType) IsAnonymous() bool {
	return c.Name == ""
}

// Element returns the element with the given name.
func (c *ComplexType) Element(name string) (*Element, bool) {
	for _, e := range c.Elements {
		if e.Name == name {
			return e, true
		}
	}

	return nil, false
}

// Clone returns a deep copy. Anonymous types nested in the copy are new
// instances; named type references are shared since they are immutable.
func (c *ComplexType) Clone() *ComplexType {
	if c == nil {
		return nil
	}

	out := &ComplexType{
		Name:     c.Name,
		Elements: make([]*Element, len(c.Elements)),
	}

	for i, e := range c.Elements {
		cp := *e
		cp.Type.Anonymous = e.Type.Anonymous.Clone()
		out.Elements[i] = &cp
	}

	return out
}
