package binding

// Config lists the extension metadata of every configured type. It replaces
// field decorations: a field is mapped only when its type's TypeConfig names it.
type Config struct {
	Types []TypeConfig `yaml:"types"`
}

// TypeConfig configures the mapped fields of one struct type.
type TypeConfig struct {
	// Type is the type identifier: "pkg/path.Name", "alias.Name" or "Name".
	Type string `yaml:"type"`
	// Root overrides the document element name of the type.
	Root string `yaml:"root,omitempty"`
	// Fields lists the mapped fields in declaration order.
	Fields []FieldConfig `yaml:"fields"`
}

// FieldConfig attaches extension metadata to one Go field.
type FieldConfig struct {
	Field     string `yaml:"field"`
	Extension `yaml:",inline"`
}

// Lookup finds the configuration of a type. Matching tries the full identifier
// first, then the package alias form, then the bare type name.
func (c *Config) Lookup(id TypeID) (*TypeConfig, bool) {
	if c == nil {
		return nil, false
	}

	for _, key := range []string{id.String(), id.Short(), id.Name} {
		for i := range c.Types {
			if c.Types[i].Type == key {
				return &c.Types[i], true
			}
		}
	}

	return nil, false
}

// Extension returns the metadata configured for a field.
func (t *TypeConfig) Extension(field string) (*Extension, bool) {
	if t == nil {
		return nil, false
	}

	for i := range t.Fields {
		if t.Fields[i].Field == field {
			ext := t.Fields[i].Extension
			return &ext, true
		}
	}

	return nil, false
}
