package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extension-binder/binding"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
types:
  - type: store.USPrice
    root: usPrice
    fields:
      - field: Price
        name: itemprice
        nillable: true
        required: true
      - field: Currency
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Types, 1)

	tc := f.Types[0]
	assert.Equal(t, "store.USPrice", tc.Type)
	assert.Equal(t, "usPrice", tc.Root)
	require.Len(t, tc.Fields, 2)

	assert.Equal(t, "Price", tc.Fields[0].Field)
	assert.Equal(t, binding.Extension{Name: "itemprice", Nillable: true, Required: true}, tc.Fields[0].Extension)

	assert.Equal(t, "Currency", tc.Fields[1].Field)
	assert.Equal(t, binding.Extension{}, tc.Fields[1].Extension)
	assert.Equal(t, "currency", ElementName(&tc.Fields[1]))
}

func TestParseDefaults(t *testing.T) {
	f, err := Parse([]byte("types: []\n"))
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, f.Version)

	f, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, f.Version)
	assert.Empty(t, f.Types)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("types: [\n"))
	require.Error(t, err)

	_, err = Parse([]byte("types:\n  - type: A\n    fields:\n      - field: X\n        optional: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "optional")
}

func TestConfig(t *testing.T) {
	f := &File{Types: []binding.TypeConfig{{Type: "store.Address"}}}

	cfg := f.Config()
	_, ok := cfg.Lookup(binding.TypeID{PkgPath: "extension-binder/store", Name: "Address"})
	assert.True(t, ok)

	var nilFile *File
	assert.Nil(t, nilFile.Config())
}

func TestWriteAndLoadFile(t *testing.T) {
	f := &File{
		Version: CurrentVersion,
		Types: []binding.TypeConfig{{
			Type: "store.Address",
			Root: "address",
			Fields: []binding.FieldConfig{
				{Field: "Zip", Extension: binding.Extension{Name: "zip", Required: true}},
				{Field: "Country", Extension: binding.Extension{Nillable: true}},
			},
		}},
	}

	path := filepath.Join(t.TempDir(), "ext.yaml")
	require.NoError(t, WriteFile(f, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "nillable: true")
	assert.NotContains(t, string(data), "required: false")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadStoreFixture(t *testing.T) {
	f, err := LoadFile("../../store/ext.yaml")
	require.NoError(t, err)

	assert.Len(t, f.Types, 4)

	diags := Validate(f)
	assert.True(t, diags.IsValid(), diags.Error())
}
