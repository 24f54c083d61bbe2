package analyze

import (
	"strings"
)

// TypePath builds a readable path string through nested elements.
// Examples:
//   - "purchaseOrder" for a document root
//   - "purchaseOrder.shipTo" for a nested element
//   - "purchaseOrder.shipTo.zip" for an element within it
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Len returns the number of path segments.
func (p *TypePath) Len() int {
	return len(p.parts)
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeStringer provides methods for creating readable type strings.
type TypeStringer struct{}

// NewTypeStringer creates a new TypeStringer.
func NewTypeStringer() *TypeStringer {
	return &TypeStringer{}
}

// TypeString returns the Go spelling of a TypeInfo with named types qualified
// by their package alias, e.g. "*decimal.Decimal" or "[]store.Item".
func (s *TypeStringer) TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindBasic:
		return t.GoType.String()

	case TypeKindStruct, TypeKindAlias, TypeKindExternal:
		if t.IsNamed() {
			return t.ID.Short()
		}
		if t.Kind == TypeKindAlias {
			return s.TypeString(t.Underlying)
		}
		if t.Kind == TypeKindStruct {
			return "struct{...}"
		}
		return t.GoType.String()

	case TypeKindPointer:
		if t.ElemType != nil {
			return "*" + s.TypeString(t.ElemType)
		}
		return "*<unknown>"

	case TypeKindSlice:
		if t.ElemType != nil {
			return "[]" + s.TypeString(t.ElemType)
		}
		return "[]<unknown>"

	default:
		if t.GoType == nil {
			return t.Kind.String()
		}
		return t.GoType.String()
	}
}
