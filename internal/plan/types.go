package plan

import (
	"extension-binder/binding"
	"extension-binder/internal/analyze"
	"extension-binder/schema"
)

// ClassMapping is the resolved schema mapping of one bound class.
// It is immutable once returned by the Resolver.
type ClassMapping struct {
	// Class is the binding the mapping was resolved from.
	Class *binding.Class
	// Properties are the mapped properties in element order.
	Properties []analyze.PropertyDescriptor
	// Type is the complex type descriptor. Top-level mappings carry the type
	// name; mappings nested under an element are anonymous.
	Type *schema.ComplexType
	// Slots pair every element of Type with the field it reads and writes.
	Slots []Slot
}

// Slot is the runtime view of one element.
type Slot struct {
	// Element points into the owning ClassMapping's Type.Elements.
	Element *schema.Element
	// Property is the descriptor the element was resolved from.
	Property analyze.PropertyDescriptor
	// Field is the class field behind the property.
	Field *binding.Field
	// Nested is the mapping of the element's anonymous type, if any.
	// Nested.Type is the same instance as Element.Type.Anonymous.
	Nested *ClassMapping
}

// Root returns the document element name of the mapped class.
func (m *ClassMapping) Root() string {
	return m.Class.RootName()
}

// Describe returns a deep copy of the complex type for schema writers.
func (m *ClassMapping) Describe() *schema.ComplexType {
	return m.Type.Clone()
}

// anonymousCopy returns a deep copy of m whose complex type is anonymous.
// Every anonymous type in the copy is a new instance, so the copy can be
// owned by exactly one element.
func (m *ClassMapping) anonymousCopy() *ClassMapping {
	out := &ClassMapping{
		Class:      m.Class,
		Properties: m.Properties,
		Type: &schema.ComplexType{
			Elements: make([]*schema.Element, len(m.Type.Elements)),
		},
		Slots: make([]Slot, len(m.Slots)),
	}

	for i, slot := range m.Slots {
		el := *slot.Element

		if slot.Nested != nil {
			slot.Nested = slot.Nested.anonymousCopy()
			el.Type.Anonymous = slot.Nested.Type
		}

		slot.Element = &el
		out.Type.Elements[i] = &el
		out.Slots[i] = slot
	}

	return out
}
