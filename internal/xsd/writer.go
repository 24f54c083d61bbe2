package xsd

import (
	"io"
	"strconv"

	"github.com/beevik/etree"

	"extension-binder/internal/plan"
	"extension-binder/schema"
)

const (
	prefix = schema.XSDPrefix + ":"

	// TargetPrefix is bound to the target namespace when one is set.
	TargetPrefix = "tns"
)

// Options controls document rendering.
type Options struct {
	// Indent is the number of spaces per level. Zero writes a single line.
	Indent int
	// TargetNamespace is set on the schema element when not empty, bound to
	// TargetPrefix so that global type references resolve in it.
	TargetNamespace string
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{Indent: 2}
}

// Build returns the schema document describing the given mappings.
func Build(opts Options, mappings ...*plan.ClassMapping) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement(prefix + "schema")
	root.CreateAttr("xmlns:"+schema.XSDPrefix, schema.XSDNamespace)
	root.CreateAttr("elementFormDefault", "unqualified")

	typePrefix := ""
	if opts.TargetNamespace != "" {
		root.CreateAttr("xmlns:"+TargetPrefix, opts.TargetNamespace)
		root.CreateAttr("targetNamespace", opts.TargetNamespace)
		typePrefix = TargetPrefix + ":"
	}

	for _, m := range mappings {
		el := root.CreateElement(prefix + "element")
		el.CreateAttr("name", m.Root())
		el.CreateAttr("type", typePrefix+m.Type.Name)
	}

	for _, m := range mappings {
		writeComplexType(root, m.Describe())
	}

	if opts.Indent > 0 {
		doc.Indent(opts.Indent)
	}

	return doc
}

// Write renders the schema document of the given mappings to w.
func Write(w io.Writer, opts Options, mappings ...*plan.ClassMapping) error {
	_, err := Build(opts, mappings...).WriteTo(w)
	return err
}

func writeComplexType(parent *etree.Element, ct *schema.ComplexType) {
	typ := parent.CreateElement(prefix + "complexType")
	if !ct.IsAnonymous() {
		typ.CreateAttr("name", ct.Name)
	}

	seq := typ.CreateElement(prefix + "sequence")

	for _, e := range ct.Elements {
		el := seq.CreateElement(prefix + "element")
		el.CreateAttr("name", e.Name)

		if e.Type.Named != nil {
			el.CreateAttr("type", e.Type.Named.String())
		}

		el.CreateAttr("minOccurs", strconv.Itoa(e.MinOccurs))

		if e.Nillable {
			el.CreateAttr("nillable", "true")
		}

		if e.Type.IsAnonymous() {
			writeComplexType(el, e.Type.Anonymous)
		}
	}
}
