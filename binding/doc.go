// Package binding declares, per Go type, which fields take part in the XML
// mapping and how to read and write them.
//
// A Class is the explicit, statically built field list of one struct type:
// every Field carries its Go name, a value Type handle, optional Extension
// metadata, and Get/Set accessors. Classes are built once, either by Reflect
// from a Config, by code emitted by the extension-binder gen command, or by
// hand.
//
// # Value exchange
//
// Accessors operate on a pointer to the owning struct. Primitive values cross
// the boundary as the canonical Go type of their primitive.KindEnum, nested
// struct values as a pointer to the struct. A nil value means "no value";
// a getter may return Null to report an explicit null instead.
package binding
