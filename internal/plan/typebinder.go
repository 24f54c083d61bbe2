package plan

import (
	"extension-binder/binding"
	"extension-binder/internal/analyze"
	"extension-binder/primitive"
	"extension-binder/schema"
)

// namedTypes holds one descriptor per primitive kind. Descriptors are never
// modified, so elements share them.
var namedTypes = func() [primitive.KindTotal]*schema.NamedType {
	var table [primitive.KindTotal]*schema.NamedType
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		table[k] = &schema.NamedType{Space: schema.XSDNamespace, Local: k.XSDType()}
	}

	return table
}()

// NamedType returns the built-in schema type of a primitive kind.
func NamedType(k primitive.KindEnum) (*schema.NamedType, bool) {
	if !k.IsValid() {
		return nil, false
	}

	return namedTypes[k], true
}

// bind sets the type of el from the property's value type. For struct values
// it returns the nested mapping whose anonymous type was attached to el.
func (r *Resolver) bind(typeName string, p analyze.PropertyDescriptor, el *schema.Element) (*ClassMapping, error) {
	vt := p.ValueType

	switch vt.Kind {
	case binding.KindPrimitive:
		named, ok := NamedType(vt.Primitive)
		if !ok {
			break
		}

		el.Type = schema.TypeRef{Named: named}

		return nil, nil

	case binding.KindStruct:
		if vt.Class == nil {
			break
		}

		nested, err := r.nested(vt.Class())
		if err != nil {
			return nil, err
		}

		el.Type = schema.TypeRef{Anonymous: nested.Type}

		return nested, nil
	}

	return nil, &schema.UnsupportedTypeError{Type: typeName, Property: p.SourceName, GoType: vt.GoType}
}

// nested returns a fresh anonymous mapping of c: a copy of the cached mapping
// when there is one, a new resolution otherwise. The class must not already
// be under resolution in either case.
func (r *Resolver) nested(c *binding.Class) (*ClassMapping, error) {
	if c == nil {
		return nil, binding.ErrNilObject
	}

	if r.lookup != nil {
		if cached, ok := r.lookup(c.ID); ok {
			if err := r.push(c.ID); err != nil {
				return nil, err
			}
			r.pop()

			return cached.anonymousCopy(), nil
		}
	}

	return r.resolve(c)
}
