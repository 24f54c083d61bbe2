package xmlbind

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extension-binder/binding"
	"extension-binder/primitive"
	"extension-binder/store"
)

func TestMarshalElementNaming(t *testing.T) {
	price := decimal.RequireFromString("12.5")

	t.Run("default name", func(t *testing.T) {
		reg := NewRegistry(WithConfig(&binding.Config{Types: []binding.TypeConfig{{
			Type:   "store.USPrice",
			Root:   "usPrice",
			Fields: []binding.FieldConfig{{Field: "Price"}},
		}}}))

		root, err := reg.Marshal(&store.USPrice{Price: &price, Currency: "USD"})
		require.NoError(t, err)
		assert.Equal(t, `<usPrice><price>12.5</price></usPrice>`, write(t, root))
	})

	t.Run("explicit name", func(t *testing.T) {
		reg := storeRegistry(t)

		root, err := reg.Marshal(&store.USPrice{Price: &price, Currency: "USD"})
		require.NoError(t, err)
		assert.Equal(t, `<usPrice><itemprice>12.5</itemprice><currency>USD</currency></usPrice>`, write(t, root))
	})
}

func TestMarshalNillableRequired(t *testing.T) {
	reg := storeRegistry(t)

	m, err := reg.MappingFor(reflect.TypeFor[store.USPrice]())
	require.NoError(t, err)
	assert.Equal(t, 1, m.Type.Elements[0].MinOccurs)
	assert.True(t, m.Type.Elements[0].Nillable)

	root, err := Marshal(&store.USPrice{Currency: "USD"}, m)
	require.NoError(t, err)
	assert.Equal(t,
		`<usPrice xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><itemprice xsi:nil="true"/><currency>USD</currency></usPrice>`,
		write(t, root))
}

func TestMarshalMissingRequiredValue(t *testing.T) {
	reg := NewRegistry(WithConfig(&binding.Config{Types: []binding.TypeConfig{{
		Type:   "store.Item",
		Fields: []binding.FieldConfig{{Field: "Comment", Extension: binding.Extension{Required: true}}},
	}}}))

	root, err := reg.Marshal(&store.Item{})
	require.Nil(t, root)

	var missing *MissingRequiredValueError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "comment", missing.Element)
	assert.ErrorIs(t, err, ErrSchemaViolation)

	var merr *MarshalError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "item.comment", merr.Path)
	assert.Equal(t, "store.Item", merr.Type)
}

func TestMarshalOptionalNilOmitted(t *testing.T) {
	reg := storeRegistry(t)

	root, err := reg.Marshal(&store.Item{ProductName: "Lawnmower", Quantity: 1})
	require.NoError(t, err)

	s := write(t, root)
	assert.NotContains(t, s, "shipDate")
	assert.NotContains(t, s, "comment")
	assert.NotContains(t, s, "xmlns:xsi")
}

func TestMarshalNested(t *testing.T) {
	reg := storeRegistry(t)

	po := samplePurchaseOrder()
	po.ShipTo.Country = ptr("US")

	root, err := reg.Marshal(po)
	require.NoError(t, err)

	shipTo := root.SelectElement("shipTo")
	require.NotNil(t, shipTo)
	assert.Equal(t, "US", shipTo.SelectElement("country").Text())
}

func TestMarshalNestedErrorPath(t *testing.T) {
	reg := NewRegistry(WithConfig(&binding.Config{Types: []binding.TypeConfig{
		{Type: "store.PurchaseOrder", Root: "purchaseOrder", Fields: []binding.FieldConfig{{Field: "ShipTo", Extension: binding.Extension{Name: "shipTo"}}}},
		{Type: "store.Address", Fields: []binding.FieldConfig{{Field: "Country", Extension: binding.Extension{Required: true}}}},
	}}))

	_, err := reg.Marshal(samplePurchaseOrder())

	var merr *MarshalError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "purchaseOrder.shipTo.country", merr.Path)
	assert.Equal(t, "store.Address", merr.Type)
	assert.Equal(t, `marshal store.Address at purchaseOrder.shipTo.country: store.Address: required element "country" has no value`, err.Error())
}

type memo struct {
	Text *string
}

func memoClass(get binding.Getter, nillable bool) *binding.Class {
	return &binding.Class{
		ID:  binding.TypeID{PkgPath: "example.com/notes", Name: "Memo"},
		New: func() any { return &memo{} },
		Fields: []binding.Field{{
			Name: "Text",
			Type: binding.Type{
				ID:        binding.TypeID{Name: "string"},
				Kind:      binding.KindPrimitive,
				Primitive: primitive.KindString,
				Pointer:   true,
				GoType:    "*string",
			},
			Extension: &binding.Extension{Nillable: nillable},
			Get:       get,
			Set: func(obj any, value any) error {
				m := obj.(*memo)
				if value == nil {
					m.Text = nil
					return nil
				}
				s := value.(string)
				m.Text = &s
				return nil
			},
		}},
	}
}

func TestMarshalExplicitNull(t *testing.T) {
	nullGetter := func(any) (any, error) { return binding.Null, nil }

	t.Run("nillable", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Register(memoClass(nullGetter, true)))

		m, err := reg.Mapping(binding.TypeID{PkgPath: "example.com/notes", Name: "Memo"})
		require.NoError(t, err)

		root, err := Marshal(&memo{}, m)
		require.NoError(t, err)
		assert.Equal(t, `<memo xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><text xsi:nil="true"/></memo>`, write(t, root))
	})

	t.Run("not nillable", func(t *testing.T) {
		// a nillable element needs a pointer field; the explicit null is
		// checked against the element, whatever the field can hold
		c := memoClass(nullGetter, false)

		reg := NewRegistry()
		require.NoError(t, reg.Register(c))

		m, err := reg.Mapping(c.ID)
		require.NoError(t, err)

		_, err = Marshal(&memo{}, m)

		var null *NonNillableNullError
		require.ErrorAs(t, err, &null)
		assert.Equal(t, "text", null.Element)
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})
}

func TestMarshalAccessorFailure(t *testing.T) {
	boom := errors.New("boom")

	reg := NewRegistry()
	c := memoClass(func(any) (any, error) { return nil, boom }, true)
	require.NoError(t, reg.Register(c))

	m, err := reg.Mapping(c.ID)
	require.NoError(t, err)

	_, err = Marshal(&memo{}, m)

	var access *ReflectionAccessError
	require.ErrorAs(t, err, &access)
	assert.Equal(t, "Text", access.Property)
	assert.ErrorIs(t, err, boom)
}

func TestMarshalInstance(t *testing.T) {
	reg := storeRegistry(t)
	m, err := reg.MappingFor(reflect.TypeFor[store.USPrice]())
	require.NoError(t, err)

	_, err = Marshal(nil, m)
	require.ErrorIs(t, err, ErrNilInstance)

	_, err = Marshal((*store.USPrice)(nil), m)
	require.ErrorIs(t, err, ErrNilInstance)

	_, err = Marshal(&store.Address{}, m)
	require.ErrorIs(t, err, binding.ErrTypeMismatch)

	_, err = Marshal(&store.USPrice{}, nil)
	require.ErrorIs(t, err, ErrUnknownClass)

	// values are accepted and left untouched
	price := decimal.RequireFromString("1")
	v := store.USPrice{Price: &price}
	root, err := Marshal(v, m)
	require.NoError(t, err)
	assert.Equal(t, "1", root.SelectElement("itemprice").Text())
	assert.Empty(t, v.Currency)
}

func TestEncode(t *testing.T) {
	reg := storeRegistry(t)

	price := decimal.RequireFromString("148.95")
	data, err := reg.Encode(&store.USPrice{Price: &price, Currency: "USD"})
	require.NoError(t, err)

	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>
<usPrice>
  <itemprice>148.95</itemprice>
  <currency>USD</currency>
</usPrice>
`, string(data))
}
