package analyze

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extension-binder/primitive"
)

const storePkg = "extension-binder/store"

func storeID(name string) TypeID {
	return TypeID{PkgPath: storePkg, Name: name}
}

func loadStore(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages(storePkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func findField(t *testing.T, info *TypeInfo, name string) *FieldInfo {
	t.Helper()

	for i := range info.Fields {
		if info.Fields[i].Name == name {
			return &info.Fields[i]
		}
	}

	require.Failf(t, "field not found", "%s has no field %s", info.ID, name)

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadStore(t)

	assert.Contains(t, graph.Packages, storePkg)
	assert.Contains(t, graph.Types, storeID("PurchaseOrder"))
	assert.Contains(t, graph.Types, storeID("USPrice"))
	assert.Contains(t, graph.Packages[storePkg].Types, storeID("Address"))
}

func TestAnalyzer_PurchaseOrderFields(t *testing.T) {
	graph := loadStore(t)

	po, err := graph.Struct(storeID("PurchaseOrder"))
	require.NoError(t, err)

	names, err := graph.FieldNames(storeID("PurchaseOrder"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ShipTo", "BillTo", "Comment", "OrderDate", "Status", "Items",
		"Total", "Attachment", "Handling", "Cache", "internalRef",
	}, names)

	ref := findField(t, po, "internalRef")
	assert.False(t, ref.Exported)
	assert.True(t, ref.Transient())

	cache := findField(t, po, "Cache")
	assert.True(t, cache.XMLSkipped())
	assert.True(t, cache.Transient())
	assert.Equal(t, TypeKindMap, cache.Type.Kind)

	assert.False(t, findField(t, po, "ShipTo").Transient())
}

func TestAnalyzer_Primitives(t *testing.T) {
	graph := loadStore(t)
	po := graph.GetType(storeID("PurchaseOrder"))
	require.NotNil(t, po)

	cases := map[string]primitive.KindEnum{
		"OrderDate":  primitive.KindTime,
		"Status":     primitive.KindString,
		"Total":      primitive.KindDecimal,
		"Attachment": primitive.KindBytes,
		"Handling":   primitive.KindDuration,
	}

	for name, kind := range cases {
		assert.Equal(t, kind, findField(t, po, name).Type.Primitive, name)
	}

	items := findField(t, po, "Items")
	assert.Equal(t, TypeKindSlice, items.Type.Kind)
	assert.Equal(t, primitive.KindEnum(0), items.Type.Primitive)
	require.NotNil(t, items.Type.ElemType)
	assert.Equal(t, TypeKindStruct, items.Type.ElemType.Kind)
}

func TestIsByte(t *testing.T) {
	octet := types.NewNamed(types.NewTypeName(0, nil, "Octet", nil), types.Typ[types.Uint8], nil)
	alias := types.NewAlias(types.NewTypeName(0, nil, "B", nil), types.Universe.Lookup("byte").Type())

	assert.True(t, isByte(types.Typ[types.Uint8]))
	assert.True(t, isByte(types.Universe.Lookup("byte").Type()))
	assert.True(t, isByte(alias))
	assert.False(t, isByte(octet))
	assert.False(t, isByte(types.Typ[types.Int8]))
}

func TestAnalyzer_PointerField(t *testing.T) {
	graph := loadStore(t)
	price := graph.GetType(storeID("USPrice"))
	require.NotNil(t, price)

	amount := findField(t, price, "Price")
	assert.Equal(t, TypeKindPointer, amount.Type.Kind)
	require.NotNil(t, amount.Type.ElemType)
	assert.Equal(t, TypeKindExternal, amount.Type.ElemType.Kind)
	assert.Equal(t, primitive.KindDecimal, amount.Type.ElemType.Primitive)
}

func TestAnalyzer_NamedBasic(t *testing.T) {
	graph := loadStore(t)

	status := graph.GetType(storeID("Status"))
	require.NotNil(t, status)
	assert.Equal(t, TypeKindAlias, status.Kind)
	assert.Equal(t, primitive.KindString, status.Primitive)

	_, err := graph.Struct(storeID("Status"))
	require.Error(t, err)

	_, err = graph.Struct(storeID("Missing"))
	require.Error(t, err)
}

func TestAnalyzer_RecursiveType(t *testing.T) {
	graph := loadStore(t)

	category := graph.GetType(storeID("Category"))
	require.NotNil(t, category)

	parent := findField(t, category, "Parent")
	require.Equal(t, TypeKindPointer, parent.Type.Kind)
	assert.Same(t, category, parent.Type.ElemType)
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "map", TypeKindMap.String())
	assert.Equal(t, "func", TypeKindFunc.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestFieldInfo_Transient(t *testing.T) {
	basic := &TypeInfo{Kind: TypeKindBasic}
	fn := &TypeInfo{Kind: TypeKindFunc}

	assert.False(t, (&FieldInfo{Name: "A", Exported: true, Type: basic}).Transient())
	assert.True(t, (&FieldInfo{Name: "a", Type: basic}).Transient())
	assert.True(t, (&FieldInfo{Name: "A", Exported: true, Type: basic, Tag: `xml:"-"`}).Transient())
	assert.True(t, (&FieldInfo{Name: "A", Exported: true, Type: fn}).Transient())
	assert.False(t, (&FieldInfo{Name: "A", Exported: true, Type: basic, Tag: `xml:"a"`}).Transient())
}
