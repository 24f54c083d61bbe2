package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	storeConfig = "../../store/ext.yaml"
	storePkg    = "extension-binder/store"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "check", "-c", storeConfig)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (4 types)")
}

func TestCheckAgainstPackages(t *testing.T) {
	out, _, err := run(t, "check", "-c", storeConfig, "-p", storePkg)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestCheckInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ext.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: "1"
types:
  - type: store.Address
    fields:
      - field: Name
        name: street
      - field: Street
`), 0o644))

	out, _, err := run(t, "check", "-c", path)
	require.Error(t, err)
	assert.Contains(t, out, "error:")
	assert.Contains(t, out, `both map to element "street"`)
}

func TestXSD(t *testing.T) {
	out, _, err := run(t, "xsd", "-c", storeConfig, "-p", storePkg, "-t", "PurchaseOrder", "-t", "store.Item")
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(out))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "schema", root.Tag)

	elements := root.SelectElements("element")
	require.Len(t, elements, 2)
	assert.Equal(t, "purchaseOrder", elements[0].SelectAttrValue("name", ""))
	assert.Equal(t, "item", elements[1].SelectAttrValue("name", ""))

	billTo := root.FindElement("//element[@name='billTo']")
	require.NotNil(t, billTo)
	assert.Equal(t, "true", billTo.SelectAttrValue("nillable", ""))
	assert.Equal(t, "0", billTo.SelectAttrValue("minOccurs", ""))
}

func TestXSDNamespace(t *testing.T) {
	out, _, err := run(t, "xsd", "-c", storeConfig, "-p", storePkg, "-t", "Address", "--namespace", "urn:po")
	require.NoError(t, err)

	assert.Contains(t, out, `xmlns:tns="urn:po" targetNamespace="urn:po"`)
	assert.Contains(t, out, `<xs:element name="address" type="tns:Address"/>`)
}

func TestXSDToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.xsd")

	_, logs, err := run(t, "xsd", "-c", storeConfig, "-p", storePkg, "-t", "Address", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, logs, "writing schema")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<xs:complexType name="Address">`)
}

func TestXSDErrors(t *testing.T) {
	_, _, err := run(t, "xsd", "-c", storeConfig, "-p", storePkg)
	require.ErrorIs(t, err, errNoTypes)

	_, _, err = run(t, "xsd", "-c", storeConfig, "-p", storePkg, "-t", "Nope")
	require.ErrorContains(t, err, "type Nope not found")

	_, _, err = run(t, "xsd", "-c", "does-not-exist.yaml", "-p", storePkg, "-t", "Address")
	require.Error(t, err)
}

func TestGen(t *testing.T) {
	out, _, err := run(t, "gen", "-c", storeConfig, "-p", storePkg, "-t", "Item")
	require.NoError(t, err)

	assert.Contains(t, out, "package store")
	assert.Contains(t, out, "func ItemClass() *binding.Class")
	assert.Contains(t, out, "func USPriceClass() *binding.Class")
}

func TestGenToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen", "bindings.go")

	_, _, err := run(t, "gen", "-c", storeConfig, "-p", storePkg, "-t", "Address", "-o", path, "--package-name", "store")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "func AddressClass() *binding.Class")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "extension-binder dev")
}
