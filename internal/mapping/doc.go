// Package mapping provides the YAML extension file: parsing, defaults,
// serialization and validation.
//
// The extension file replaces field decorations. It lists, per struct type,
// the fields that take part in the XML mapping together with their element
// name, nillability and cardinality.
//
// # Schema Overview
//
//	version: "1"
//	types:
//	  - type: store.USPrice        # "pkg/path.Name", "alias.Name" or "Name"
//	    root: usPrice              # document element name, optional
//	    fields:
//	      - field: Price           # Go field name
//	        name: itemprice        # element name, defaults to lower-first field name
//	        nillable: true         # allow xsi:nil="true"
//	        required: true         # minOccurs=1
//	      - field: Currency
//
// Fields are mapped in struct declaration order, not in file order.
//
// # Validation
//
// Validate checks what can be decided from the file alone: duplicate types,
// duplicate fields and element names, and invalid names. ValidateAgainst
// additionally checks the file against a loaded type graph and suggests
// close matches for unknown types and fields.
package mapping
