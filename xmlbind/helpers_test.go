package xmlbind

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"extension-binder/binding"
	"extension-binder/internal/mapping"
	"extension-binder/store"
)

func storeConfig(t *testing.T) *binding.Config {
	t.Helper()

	f, err := mapping.LoadFile("../store/ext.yaml")
	require.NoError(t, err)

	return f.Config()
}

func storeRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()

	return NewRegistry(append([]Option{WithConfig(storeConfig(t))}, opts...)...)
}

func ptr[T any](v T) *T {
	return &v
}

func samplePurchaseOrder() *store.PurchaseOrder {
	return &store.PurchaseOrder{
		ShipTo: store.Address{
			Name:   "Alice Smith",
			Street: "123 Maple Street",
			City:   "Mill Valley",
			Zip:    "90952",
		},
		Comment:    ptr("Hurry, my lawn is going wild"),
		OrderDate:  time.Date(1999, 10, 20, 0, 0, 0, 0, time.UTC),
		Status:     store.StatusOpen,
		Items:      []store.Item{{ProductName: "Lawnmower"}},
		Total:      decimal.RequireFromString("148.95"),
		Attachment: []byte("hi"),
		Handling:   90 * time.Minute,
	}
}

func parse(t *testing.T, xml string) *etree.Element {
	t.Helper()

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml))
	require.NotNil(t, doc.Root())

	return doc.Root()
}

func write(t *testing.T, el *etree.Element) string {
	t.Helper()

	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())

	s, err := doc.WriteToString()
	require.NoError(t, err)

	return s
}
