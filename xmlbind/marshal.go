package xmlbind

import (
	"fmt"
	"reflect"

	"github.com/beevik/etree"

	"extension-binder/binding"
	"extension-binder/internal/analyze"
	"extension-binder/primitive"
	"extension-binder/schema"
)

// nilAttr is the qualified name of the nil marker attribute.
const nilAttr = schema.XSIPrefix + ":nil"

// Marshal converts v into a detached element tree following m. v is a pointer
// to the mapped struct or the struct itself; it is only read. On error no
// tree is returned.
func Marshal(v any, m *ClassMapping) (*etree.Element, error) {
	if m == nil {
		return nil, fmt.Errorf("marshal: %w", ErrUnknownClass)
	}

	obj, err := instance(v)
	if err != nil {
		return nil, &MarshalError{Type: m.Class.ID.Short(), Path: m.Root(), Err: err}
	}

	w := &writer{}

	root := etree.NewElement(m.Root())
	if err := w.writeFields(obj, m, root, analyze.NewTypePath(m.Root())); err != nil {
		return nil, err
	}

	if w.usedNil {
		root.CreateAttr("xmlns:"+schema.XSIPrefix, schema.XSINamespace)
	}

	return root, nil
}

// instance returns a pointer to the struct held by v. Struct values are
// copied into a new variable so that accessors can address them.
func instance(v any) (any, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, ErrNilInstance
	}

	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, ErrNilInstance
		}

		return v, nil
	}

	p := reflect.New(rv.Type())
	p.Elem().Set(rv)

	return p.Interface(), nil
}

type writer struct {
	usedNil bool
}

func (w *writer) writeFields(obj any, m *ClassMapping, parent *etree.Element, path *analyze.TypePath) error {
	typeName := m.Class.ID.Short()

	for i := range m.Slots {
		slot := &m.Slots[i]
		el := slot.Element
		elPath := path.Field(el.Name)

		fail := func(err error) error {
			return &MarshalError{Type: typeName, Path: elPath.String(), Err: err}
		}

		if slot.Field.Get == nil {
			return fail(&ReflectionAccessError{Type: typeName, Property: slot.Field.Name, Err: binding.ErrNoAccessor})
		}

		v, err := slot.Field.Get(obj)
		if err != nil {
			return fail(&ReflectionAccessError{Type: typeName, Property: slot.Field.Name, Err: err})
		}

		if err := checkWrite(typeName, el, v); err != nil {
			return fail(err)
		}

		if binding.IsNull(v) || binding.IsNil(v) {
			if el.Nillable {
				child := parent.CreateElement(el.Name)
				child.CreateAttr(nilAttr, "true")
				w.usedNil = true
			}

			continue
		}

		child := parent.CreateElement(el.Name)

		if slot.Nested != nil {
			if err := w.writeFields(v, slot.Nested, child, elPath); err != nil {
				return err
			}

			continue
		}

		text, err := primitive.Format(slot.Property.ValueType.Primitive, v)
		if err != nil {
			return fail(err)
		}

		child.SetText(text)
	}

	return nil
}
