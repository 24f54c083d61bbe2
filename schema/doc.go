// Package schema holds the resolved XML Schema view of a mapped type.
//
// A ComplexType is an ordered sequence of local Elements. Each Element refers
// to its value type either by a NamedType (a built-in datatype such as
// xs:decimal) or by an anonymous ComplexType nested inline and owned by that
// single element.
//
// The descriptors are plain data so that a separate writer can render literal
// schema syntax (<xs:complexType>, <xs:sequence>, <xs:element>) from them.
// The package also defines the errors reported while resolving a mapping.
package schema
