// Package xsd renders resolved mappings as an XML Schema document.
//
// Every mapping contributes a global element named after its document root
// and a named complex type. Nested struct types are written inline as
// anonymous complex types.
//
// Local elements are unqualified. With a target namespace the global elements
// belong to it, so an instance document validates only when its root element
// is qualified. Marshal writes unqualified documents; add the namespace to the
// root element before validating against such a schema.
package xsd
