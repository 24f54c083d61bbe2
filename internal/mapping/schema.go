package mapping

import (
	"extension-binder/binding"
	"extension-binder/internal/common"
)

// CurrentVersion is the only supported extension file version.
const CurrentVersion = "1"

// File is the root structure of an extension file.
type File struct {
	// Version of the file format.
	Version string `yaml:"version"`
	// Types lists the configured struct types.
	Types []binding.TypeConfig `yaml:"types"`
}

// Config returns the extension configuration held by the file.
func (f *File) Config() *binding.Config {
	if f == nil {
		return nil
	}

	return &binding.Config{Types: f.Types}
}

// ElementName returns the element name a configured field maps to.
func ElementName(fc *binding.FieldConfig) string {
	if fc.Name != "" {
		return fc.Name
	}

	return common.LowerFirst(fc.Field)
}
