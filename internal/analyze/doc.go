// Package analyze turns bound struct types into property descriptors.
//
// Introspect walks a binding.Class and returns the ordered, non-transient
// fields that carry extension metadata. The loader uses
// golang.org/x/tools/go/packages with go/types to build a static type graph,
// from which StaticClass derives accessor-free bindings for tooling.
//
// Key types:
//   - PropertyDescriptor: one mapped field with its value type and metadata
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/external)
//   - FieldInfo: describes field name, type, tags, and embedding
package analyze
