package analyze

import (
	"fmt"

	"extension-binder/binding"
	"extension-binder/internal/diagnostic"
)

// Diagnostic codes reported by Introspect.
const (
	CodeTransientConfigured = "transient_field_configured"
	CodeNoMappedFields      = "no_mapped_fields"
	CodeUnmappedField       = "unmapped_field"
)

// Introspect returns the mapped properties of c in field declaration order.
// Transient fields and fields without extension metadata are skipped; a
// transient field that was configured anyway is reported as a warning.
func Introspect(c *binding.Class) ([]PropertyDescriptor, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics
	if c == nil {
		return nil, diags
	}

	typeName := c.ID.Short()
	props := make([]PropertyDescriptor, 0, len(c.Fields))

	for i := range c.Fields {
		f := &c.Fields[i]

		switch {
		case f.Transient && f.Extension != nil:
			diags.AddWarning(CodeTransientConfigured,
				fmt.Sprintf("field %s is transient and cannot be mapped", f.Name),
				typeName, f.Name)

			continue

		case f.Transient:
			continue

		case f.Extension == nil:
			diags.AddInfo(CodeUnmappedField, "field has no extension metadata", typeName, f.Name)

			continue
		}

		props = append(props, PropertyDescriptor{
			SourceName: f.Name,
			ValueType:  f.Type,
			Extension:  *f.Extension,
			Index:      i,
		})
	}

	if len(props) == 0 {
		diags.AddWarning(CodeNoMappedFields, "type has no mapped fields", typeName, "")
	}

	return props, diags
}
