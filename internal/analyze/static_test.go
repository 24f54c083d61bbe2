package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extension-binder/binding"
	"extension-binder/primitive"
)

func TestStaticClass(t *testing.T) {
	graph := loadStore(t)

	cfg := &binding.Config{Types: []binding.TypeConfig{
		{
			Type: "store.PurchaseOrder",
			Root: "purchaseOrder",
			Fields: []binding.FieldConfig{
				{Field: "ShipTo", Extension: binding.Extension{Name: "shipTo", Required: true}},
				{Field: "Status"},
				{Field: "Cache"},
			},
		},
		{
			Type:   "store.Address",
			Fields: []binding.FieldConfig{{Field: "Zip", Extension: binding.Extension{Name: "zip"}}},
		},
	}}

	c, err := StaticClass(graph, storeID("PurchaseOrder"), cfg)
	require.NoError(t, err)

	assert.Equal(t, "purchaseOrder", c.RootName())
	assert.Nil(t, c.New)

	shipTo, ok := c.Field("ShipTo")
	require.True(t, ok)
	assert.True(t, shipTo.Mapped())
	assert.Nil(t, shipTo.Get)
	assert.Equal(t, binding.KindStruct, shipTo.Type.Kind)
	assert.Equal(t, storeID("Address"), shipTo.Type.ID)

	addr := shipTo.Type.Class()
	zip, ok := addr.Field("Zip")
	require.True(t, ok)
	assert.Equal(t, "zip", zip.Extension.Name)

	billTo, _ := c.Field("BillTo")
	assert.True(t, billTo.Type.Pointer)
	assert.Same(t, addr, billTo.Type.Class())
	assert.Nil(t, billTo.Extension)

	status, _ := c.Field("Status")
	assert.Equal(t, binding.KindPrimitive, status.Type.Kind)
	assert.Equal(t, primitive.KindString, status.Type.Primitive)
	assert.Equal(t, storeID("Status"), status.Type.ID)
	assert.Equal(t, "store.Status", status.Type.GoType)

	items, _ := c.Field("Items")
	assert.Equal(t, binding.KindUnsupported, items.Type.Kind)

	cache, _ := c.Field("Cache")
	assert.True(t, cache.Transient)
	assert.False(t, cache.Mapped())

	_, err = StaticClass(graph, storeID("Status"), cfg)
	require.Error(t, err)
}

// The static and reflective builders agree on everything but accessors.
func TestStaticClassMatchesIntrospection(t *testing.T) {
	graph := loadStore(t)

	cfg := &binding.Config{Types: []binding.TypeConfig{{
		Type: "store.USPrice",
		Fields: []binding.FieldConfig{
			{Field: "Price", Extension: binding.Extension{Name: "itemprice", Nillable: true, Required: true}},
			{Field: "Currency"},
		},
	}}}

	c, err := StaticClass(graph, storeID("USPrice"), cfg)
	require.NoError(t, err)

	props, diags := Introspect(c)
	assert.True(t, diags.IsValid())
	require.Len(t, props, 2)
	assert.Equal(t, "Price", props[0].SourceName)
	assert.True(t, props[0].ValueType.Pointer)
	assert.Equal(t, primitive.KindDecimal, props[0].ValueType.Primitive)
	assert.Equal(t, "*decimal.Decimal", props[0].ValueType.GoType)
}
