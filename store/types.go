package store

//go:generate go run extension-binder/cmd/extension-binder gen -c ext.yaml -p . -t Item -o item_binding.go

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// 1. USPrice is a monetary amount in US dollars.
// The amount is a pointer so that an unknown price can be sent as nil.
type USPrice struct {
	Price    *decimal.Decimal
	Currency string
}

// 2. Address is a postal address.
type Address struct {
	Name    string
	Street  string
	City    string
	Zip     string
	Country *string
}

// 3. Item is one line of a purchase order.
type Item struct {
	ProductName string
	Quantity    int
	Price       USPrice
	ShipDate    *civil.Date
	Comment     *string
}

// 4. PurchaseOrder is the document exchanged with suppliers.
type PurchaseOrder struct {
	ShipTo     Address
	BillTo     *Address
	Comment    *string
	OrderDate  time.Time
	Status     Status
	Items      []Item // not representable as a single element
	Total      decimal.Decimal
	Attachment []byte
	Handling   time.Duration
	Cache      map[string]string `xml:"-"`

	internalRef string
}

// 5. Status is a custom type for type-safe status handling.
type Status string

const (
	StatusOpen      Status = "open"
	StatusShipped   Status = "shipped"
	StatusCancelled Status = "cancelled"
)

// 6. Category is self-referencing and cannot be mapped through Parent.
type Category struct {
	Name   string
	Parent *Category
}

// Ref returns the internal reference of the order.
func (p *PurchaseOrder) Ref() string {
	return p.internalRef
}
