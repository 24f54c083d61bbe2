package primitive_test

import (
	"fmt"
	"reflect"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"extension-binder/primitive"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Empty struct{}
	type Octet uint8
	type Blob []byte

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(decimal.Decimal{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(civil.Date{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf([]byte(nil))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Blob(nil))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf([]Octet(nil))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt
	// KindString
	// KindInt
	// KindString
	// KindDuration
	// KindTime
	// KindDecimal
	// KindDate
	// KindBytes
	// KindBytes
	// KindEnum(0)
	// KindEnum(0)
}

func ExampleKindEnum_XSDType() {
	fmt.Println(primitive.KindDecimal.XSDType())
	fmt.Println(primitive.KindInt32.XSDType())
	fmt.Println(primitive.KindTime.XSDType())
	// Output:
	// decimal
	// int
	// dateTime
}
