package binding

import (
	"errors"
	"reflect"

	"extension-binder/internal/common"
	"extension-binder/primitive"
)

var (
	ErrTypeMismatch = errors.New("value does not match binding type")
	ErrNilObject    = errors.New("nil object")
	ErrNoAccessor   = errors.New("field has no accessor")
	ErrNotStruct    = errors.New("type is not a struct")
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "extension-binder/store"
	Name    string // e.g., "USPrice"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the package alias qualified name, e.g. "store.USPrice".
func (t TypeID) Short() string {
	if alias := common.PkgAlias(t.PkgPath); alias != "" {
		return alias + "." + t.Name
	}

	return t.Name
}

// IDOf returns the identity of a reflected type. Pointers are dereferenced;
// unnamed types use their type literal as name.
func IDOf(t reflect.Type) TypeID {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Name() == "" {
		return TypeID{Name: t.String()}
	}

	return TypeID{PkgPath: t.PkgPath(), Name: t.Name()}
}

// Kind classifies a value type for schema binding.
type Kind int

const (
	KindUnsupported Kind = iota
	KindPrimitive        // has a built-in schema type
	KindStruct           // bound to an anonymous complex type
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindPrimitive:
		return "primitive"
	case KindStruct:
		return "struct"
	default:
		return common.UnknownStr
	}
}

// Type is the semantic handle of a field's value type.
type Type struct {
	// ID identifies the value type with pointers stripped.
	ID TypeID
	// Kind tells the type binder how to map the value.
	Kind Kind
	// Primitive is set for KindPrimitive.
	Primitive primitive.KindEnum
	// Pointer is true when the field holds *T and can therefore carry nil.
	Pointer bool
	// Class returns the binding of a KindStruct value type. It is a function so
	// that self-referencing types can be declared.
	Class func() *Class
	// GoType is the Go spelling of the field type, used in messages.
	GoType string
}

// Extension is the schema metadata attached to a mapped field.
type Extension struct {
	// Name overrides the element name. Empty means derived from the field name.
	Name string `yaml:"name,omitempty"`
	// Nillable allows an explicit nil marker on the element.
	Nillable bool `yaml:"nillable,omitempty"`
	// Required makes the element mandatory (minOccurs=1).
	Required bool `yaml:"required,omitempty"`
}

// Getter reads a field value from a pointer to its owning struct.
type Getter func(obj any) (any, error)

// Setter writes a field value into a pointer to its owning struct.
// A nil value resets the field to its zero value.
type Setter func(obj any, value any) error

// Field is one field of a bound struct type.
type Field struct {
	// Name is the Go field name.
	Name string
	// Type is the field's value type.
	Type Type
	// Transient marks fields that never take part in a mapping: unexported
	// fields, fields tagged xml:"-", and func/chan values.
	Transient bool
	// Extension is nil for fields that are not mapped.
	Extension *Extension
	Get       Getter
	Set       Setter
}

// Mapped reports whether the field carries extension metadata and can be mapped.
func (f *Field) Mapped() bool {
	return f.Extension != nil && !f.Transient
}

// Class is the explicit binding of one struct type.
type Class struct {
	ID TypeID
	// Root overrides the document element name used when the type is
	// marshalled at top level.
	Root   string
	Fields []Field
	// New returns a pointer to a new zero value of the type.
	New func() any
}

// Field returns the field with the given Go name.
func (c *Class) Field(name string) (*Field, bool) {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return &c.Fields[i], true
		}
	}

	return nil, false
}

// RootName returns the document element name: Root if set, otherwise the type
// name with its first letter lower-cased.
func (c *Class) RootName() string {
	if c.Root != "" {
		return c.Root
	}

	return common.LowerFirst(c.ID.Name)
}

type null struct{}

func (null) String() string { return "null" }

// Null is returned by a getter to report an explicit null value, as opposed
// to nil which means the value is absent.
var Null any = null{}

// IsNull reports whether v is the Null marker.
func IsNull(v any) bool {
	_, ok := v.(null)
	return ok
}

// IsNil reports whether v is nil or a nil pointer.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
