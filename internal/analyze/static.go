package analyze

import (
	"fmt"

	"extension-binder/binding"
)

// StaticClass builds the binding of a struct type from the static type graph.
// The result describes fields and extension metadata only: it carries no
// accessors and no constructor, so it can be resolved and rendered but not
// used to marshal values.
func StaticClass(g *TypeGraph, id TypeID, cfg *binding.Config) (*binding.Class, error) {
	info, err := g.Struct(id)
	if err != nil {
		return nil, err
	}

	b := &staticBuilder{
		config:   cfg,
		stringer: NewTypeStringer(),
		classes:  make(map[*TypeInfo]*binding.Class),
	}

	return b.class(info), nil
}

type staticBuilder struct {
	config   *binding.Config
	stringer *TypeStringer
	classes  map[*TypeInfo]*binding.Class // handles recursive types
}

func (b *staticBuilder) class(info *TypeInfo) *binding.Class {
	if cached, ok := b.classes[info]; ok {
		return cached
	}

	c := &binding.Class{ID: info.ID}
	b.classes[info] = c

	tc, _ := b.config.Lookup(c.ID)
	if tc != nil {
		c.Root = tc.Root
	}

	for i := range info.Fields {
		fi := &info.Fields[i]

		f := binding.Field{
			Name:      fi.Name,
			Type:      b.fieldType(fi.Type),
			Transient: fi.Transient(),
		}

		if ext, ok := tc.Extension(fi.Name); ok {
			f.Extension = ext
		}

		c.Fields = append(c.Fields, f)
	}

	return c
}

func (b *staticBuilder) fieldType(t *TypeInfo) binding.Type {
	typ := binding.Type{GoType: b.stringer.TypeString(t)}

	base := t
	if base.Kind == TypeKindPointer {
		typ.Pointer = true
		base = base.ElemType
	}

	typ.ID = typeID(base, b.stringer)

	if base.Primitive != 0 {
		typ.Kind = binding.KindPrimitive
		typ.Primitive = base.Primitive

		return typ
	}

	if base.Kind == TypeKindStruct {
		nested := b.class(base)
		typ.Kind = binding.KindStruct
		typ.Class = func() *binding.Class { return nested }
	}

	return typ
}

// typeID names unnamed types by their spelling, matching binding.IDOf.
func typeID(t *TypeInfo, s *TypeStringer) TypeID {
	if t.IsNamed() {
		return t.ID
	}

	if t.GoType != nil {
		return TypeID{Name: t.GoType.String()}
	}

	return TypeID{Name: s.TypeString(t)}
}

// FieldNames returns the names of the fields of a struct type, used for
// suggestions when a configured field does not exist.
func (g *TypeGraph) FieldNames(id TypeID) ([]string, error) {
	info, err := g.Struct(id)
	if err != nil {
		return nil, fmt.Errorf("field names: %w", err)
	}

	names := make([]string, 0, len(info.Fields))
	for _, f := range info.Fields {
		names = append(names, f.Name)
	}

	return names, nil
}
