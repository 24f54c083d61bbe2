// Package xmlbind marshals Go structs to XML element trees and back, driven
// by a schema mapping resolved from extension metadata.
//
// Only fields named in the extension configuration take part in the mapping.
// Each maps to a local element of the type's complex type: the element name
// is the configured name or the field name with its first letter lower-cased,
// required elements have minOccurs=1, and nillable elements accept an
// xsi:nil="true" marker. Struct-valued fields map to anonymous complex types.
//
//	cfg := &binding.Config{Types: []binding.TypeConfig{{
//		Type: "store.USPrice",
//		Fields: []binding.FieldConfig{
//			{Field: "Price", Extension: binding.Extension{Name: "itemprice", Required: true}},
//		},
//	}}}
//
//	reg := xmlbind.NewRegistry(xmlbind.WithConfig(cfg))
//	data, err := reg.Encode(&store.USPrice{Price: &price})
//	...
//	back, err := xmlbind.Decode[store.USPrice](reg, data)
//
// Mappings are resolved once per type and cached by the Registry;
// Marshal and Unmarshal never resolve and hold no locks.
package xmlbind
