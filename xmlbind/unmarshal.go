package xmlbind

import (
	"fmt"

	"github.com/beevik/etree"

	"extension-binder/binding"
	"extension-binder/internal/analyze"
	"extension-binder/primitive"
)

// Unmarshal builds a new instance of m's class from el and returns a pointer
// to it. Children are matched by local name, the first match wins, and
// elements without a mapping are ignored. On error the partially built
// instance is discarded.
func Unmarshal(el *etree.Element, m *ClassMapping) (any, error) {
	if m == nil {
		return nil, fmt.Errorf("unmarshal: %w", ErrUnknownClass)
	}

	typeName := m.Class.ID.Short()

	if el == nil {
		return nil, &UnmarshalError{Type: typeName, Path: m.Root(), Err: ErrNilInstance}
	}

	if el.Tag != m.Root() {
		return nil, &UnmarshalError{
			Type: typeName,
			Path: el.Tag,
			Err:  fmt.Errorf("%w: root element %q, expected %q", ErrSchemaViolation, el.Tag, m.Root()),
		}
	}

	path := analyze.NewTypePath(m.Root())

	obj, err := newInstance(m)
	if err != nil {
		return nil, &UnmarshalError{Type: typeName, Path: path.String(), Err: err}
	}

	if err := readFields(obj, m, el, path); err != nil {
		return nil, err
	}

	return obj, nil
}

func newInstance(m *ClassMapping) (any, error) {
	if m.Class.New == nil {
		return nil, &ReflectionAccessError{Type: m.Class.ID.Short(), Err: binding.ErrNoAccessor}
	}

	return m.Class.New(), nil
}

func readFields(obj any, m *ClassMapping, parent *etree.Element, path *analyze.TypePath) error {
	typeName := m.Class.ID.Short()

	for i := range m.Slots {
		slot := &m.Slots[i]
		el := slot.Element
		elPath := path.Field(el.Name)

		fail := func(err error) error {
			return &UnmarshalError{Type: typeName, Path: elPath.String(), Err: err}
		}

		child := findChild(parent, el.Name)
		if err := checkRead(typeName, el, child); err != nil {
			return fail(err)
		}

		if child == nil {
			continue
		}

		if slot.Field.Set == nil {
			return fail(&ReflectionAccessError{Type: typeName, Property: slot.Field.Name, Err: binding.ErrNoAccessor})
		}

		var value any

		switch {
		case isNilMarked(child):
			value = nil

		case slot.Nested != nil:
			nested, err := newInstance(slot.Nested)
			if err != nil {
				return fail(err)
			}

			if err := readFields(nested, slot.Nested, child, elPath); err != nil {
				return err
			}

			value = nested

		default:
			parsed, err := primitive.Parse(slot.Property.ValueType.Primitive, child.Text())
			if err != nil {
				return fail(fmt.Errorf("%w: %w", ErrSchemaViolation, err))
			}

			value = parsed
		}

		if err := slot.Field.Set(obj, value); err != nil {
			return fail(&ReflectionAccessError{Type: typeName, Property: slot.Field.Name, Err: err})
		}
	}

	return nil
}

// findChild returns the first child element with the given local name.
func findChild(parent *etree.Element, name string) *etree.Element {
	for _, c := range parent.ChildElements() {
		if c.Tag == name {
			return c
		}
	}

	return nil
}
