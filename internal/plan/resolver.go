package plan

import (
	"extension-binder/binding"
	"extension-binder/internal/analyze"
	"extension-binder/internal/common"
	"extension-binder/internal/diagnostic"
	"extension-binder/schema"
)

// Lookup returns an already resolved mapping of a class, if any.
type Lookup func(id binding.TypeID) (*ClassMapping, bool)

// Resolver turns bound classes into ClassMappings. A Resolver is not safe for
// concurrent use; create one per resolution.
type Resolver struct {
	lookup Lookup
	diags  diagnostic.Diagnostics
	stack  []binding.TypeID // classes under resolution, outermost first
}

// NewResolver creates a Resolver. lookup may be nil; when set, nested classes
// that are already resolved are copied instead of resolved again.
func NewResolver(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Diagnostics returns what introspection reported for every class visited.
func (r *Resolver) Diagnostics() diagnostic.Diagnostics {
	return r.diags
}

// Resolve builds the mapping of c. The top-level complex type is named after
// the class. On error nothing is returned.
func (r *Resolver) Resolve(c *binding.Class) (*ClassMapping, error) {
	if c == nil {
		return nil, binding.ErrNilObject
	}

	if root := c.RootName(); !common.IsNCName(root) {
		return nil, &schema.InvalidNameError{Type: c.ID.Short(), Element: root}
	}

	m, err := r.resolve(c)
	if err != nil {
		return nil, err
	}

	m.Type.Name = c.ID.Name

	return m, nil
}

// resolve builds an anonymous mapping of c, with c pushed on the stack.
func (r *Resolver) resolve(c *binding.Class) (*ClassMapping, error) {
	if err := r.push(c.ID); err != nil {
		return nil, err
	}
	defer r.pop()

	props, diags := analyze.Introspect(c)
	r.diags.Merge(diags)

	elements, err := ResolveElements(c.ID.Short(), props)
	if err != nil {
		return nil, err
	}

	m := &ClassMapping{
		Class:      c,
		Properties: props,
		Type:       &schema.ComplexType{Elements: elements},
		Slots:      make([]Slot, len(props)),
	}

	for i, p := range props {
		nested, err := r.bind(c.ID.Short(), p, elements[i])
		if err != nil {
			return nil, err
		}

		m.Slots[i] = Slot{
			Element:  elements[i],
			Property: p,
			Field:    &c.Fields[p.Index],
			Nested:   nested,
		}
	}

	return m, nil
}

func (r *Resolver) push(id binding.TypeID) error {
	for i, onStack := range r.stack {
		if onStack != id {
			continue
		}

		path := make([]string, 0, len(r.stack)-i+1)
		for _, s := range r.stack[i:] {
			path = append(path, s.Short())
		}

		return &schema.CyclicTypeError{Path: append(path, id.Short())}
	}

	r.stack = append(r.stack, id)

	return nil
}

func (r *Resolver) pop() {
	r.stack = r.stack[:len(r.stack)-1]
}

// ResolveElements derives the element declarations of a property sequence.
// The returned elements have no type yet. It depends on nothing but its
// arguments.
func ResolveElements(typeName string, props []analyze.PropertyDescriptor) ([]*schema.Element, error) {
	elements := make([]*schema.Element, 0, len(props))
	owners := make(map[string]string, len(props)) // element name -> property

	for _, p := range props {
		name := p.Extension.Name
		if name == "" {
			name = common.LowerFirst(p.SourceName)
		}

		if !common.IsNCName(name) {
			return nil, &schema.InvalidNameError{Type: typeName, Property: p.SourceName, Element: name}
		}

		if first, ok := owners[name]; ok {
			return nil, &schema.MappingConflictError{
				Type:    typeName,
				Element: name,
				First:   first,
				Second:  p.SourceName,
			}
		}

		owners[name] = p.SourceName

		if p.Extension.Nillable && !p.ValueType.Pointer {
			return nil, &schema.NilCarrierError{Type: typeName, Property: p.SourceName, GoType: p.ValueType.GoType}
		}

		el := &schema.Element{
			Name:     name,
			Nillable: p.Extension.Nillable,
		}
		if p.Extension.Required {
			el.MinOccurs = 1
		}

		elements = append(elements, el)
	}

	return elements, nil
}
