// Package plan resolves bound types into schema mappings.
//
// Resolution pipeline, per class:
//  1. Introspect the class → ordered property descriptors
//  2. Resolve element names, cardinality and nillability; reject conflicts
//  3. Bind every element to a built-in schema type or to a fresh anonymous
//     complex type resolved recursively, tracking an explicit stack of
//     classes under resolution to reject cycles
//
// The result is a ClassMapping: the complex type descriptor plus, per element,
// the runtime slot used by the marshaller and unmarshaller.
package plan
