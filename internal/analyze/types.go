package analyze

import (
	"go/types"
	"reflect"

	"extension-binder/binding"
	"extension-binder/internal/common"
	"extension-binder/primitive"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID = binding.TypeID

// PropertyDescriptor is one mapped field of a bound type.
type PropertyDescriptor struct {
	// SourceName is the Go field name.
	SourceName string
	// ValueType is the field's value type.
	ValueType binding.Type
	// Extension is the field's metadata.
	Extension binding.Extension
	// Index is the position of the field in the class field list.
	Index int
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindAlias              // named type wrapping another
	TypeKindExternal           // external/opaque type (e.g., time.Time)
	TypeKindMap                // map type
	TypeKindInterface          // interface type
	TypeKindFunc               // func, chan and unsafe.Pointer
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	case TypeKindMap:
		return "map"
	case TypeKindInterface:
		return "interface"
	case TypeKindFunc:
		return "func"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID             // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind           // Kind of type
	Primitive  primitive.KindEnum // Schema primitive the type binds to, if any
	Underlying *TypeInfo          // For named types, the underlying type
	ElemType   *TypeInfo          // For pointers, slices and arrays, the element type
	Fields     []FieldInfo        // For structs, the list of fields
	GoType     types.Type         // The original go/types.Type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// XMLSkipped reports whether the field is tagged xml:"-".
func (f *FieldInfo) XMLSkipped() bool {
	return f.Tag.Get("xml") == "-"
}

// Transient reports whether the field can never take part in a mapping.
func (f *FieldInfo) Transient() bool {
	return !f.Exported || f.XMLSkipped() || (f.Type != nil && f.Type.Kind == TypeKindFunc)
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
