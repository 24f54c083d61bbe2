package xmlbind

import (
	"strings"

	"github.com/beevik/etree"

	"extension-binder/binding"
	"extension-binder/schema"
)

// checkWrite validates a property value before its element is written.
// nil means the value is absent, binding.Null is an explicit null.
func checkWrite(typeName string, el *schema.Element, v any) error {
	switch {
	case binding.IsNull(v):
		if !el.Nillable {
			return &NonNillableNullError{Type: typeName, Element: el.Name}
		}

	case binding.IsNil(v):
		if el.Required() && !el.Nillable {
			return &MissingRequiredValueError{Type: typeName, Element: el.Name}
		}
	}

	return nil
}

// checkRead validates the document element found for el, nil if absent.
func checkRead(typeName string, el *schema.Element, child *etree.Element) error {
	if child == nil {
		if el.Required() {
			return &MissingRequiredElementError{Type: typeName, Element: el.Name}
		}

		return nil
	}

	if !isNilMarked(child) {
		return nil
	}

	if !el.Nillable {
		return &NonNillableNullError{Type: typeName, Element: el.Name}
	}

	if hasContent(child) {
		return &NilContentError{Type: typeName, Element: el.Name}
	}

	return nil
}

// isNilMarked reports an xsi:nil="true" attribute. The prefix is accepted
// as is when the document does not declare it.
func isNilMarked(e *etree.Element) bool {
	for i := range e.Attr {
		a := &e.Attr[i]
		if a.Key != "nil" {
			continue
		}

		if a.Space != schema.XSIPrefix && a.NamespaceURI() != schema.XSINamespace {
			continue
		}

		v := strings.TrimSpace(a.Value)

		return v == "true" || v == "1"
	}

	return false
}

func hasContent(e *etree.Element) bool {
	return len(e.ChildElements()) > 0 || strings.TrimSpace(e.Text()) != ""
}
