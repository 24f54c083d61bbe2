package primitive

import (
	"math"
	"reflect"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
	KindDuration
	KindDecimal
	KindDate
	KindBytes

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Import paths of the non-builtin value types with a fixed schema mapping.
const (
	DecimalPkgPath = "github.com/shopspring/decimal"
	CivilPkgPath   = "cloud.google.com/go/civil"
)

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// IsTextual reports whether the lexical form keeps surrounding whitespace.
// Every other kind is whitespace-collapsed before parsing.
func (k KindEnum) IsTextual() bool {
	return k == KindString
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only number kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

var canonicalTypes = [...]reflect.Type{
	KindInt:      reflect.TypeOf(int(0)),
	KindInt8:     reflect.TypeOf(int8(0)),
	KindInt16:    reflect.TypeOf(int16(0)),
	KindInt32:    reflect.TypeOf(int32(0)),
	KindInt64:    reflect.TypeOf(int64(0)),
	KindUint:     reflect.TypeOf(uint(0)),
	KindUint8:    reflect.TypeOf(uint8(0)),
	KindUint16:   reflect.TypeOf(uint16(0)),
	KindUint32:   reflect.TypeOf(uint32(0)),
	KindUint64:   reflect.TypeOf(uint64(0)),
	KindFloat32:  reflect.TypeOf(float32(0)),
	KindFloat64:  reflect.TypeOf(float64(0)),
	KindBool:     reflect.TypeOf(false),
	KindString:   reflect.TypeOf(""),
	KindTime:     reflect.TypeOf(time.Time{}),
	KindDuration: reflect.TypeOf(time.Duration(0)),
	KindDecimal:  reflect.TypeOf(decimal.Decimal{}),
	KindDate:     reflect.TypeOf(civil.Date{}),
	KindBytes:    reflect.TypeOf([]byte(nil)),
}

// GoType returns the canonical Go type that values of this kind are exchanged as.
// A named type with an underlying basic type (an enum) converts to and from it.
func (k KindEnum) GoType() reflect.Type {
	if !k.IsValid() {
		return nil
	}

	return canonicalTypes[k]
}

// FromNamed classifies the named value types that have their own schema type
// regardless of their underlying representation.
func FromNamed(pkgPath, name string) KindEnum {
	switch pkgPath + "." + name {
	case "time.Time":
		return KindTime
	case "time.Duration":
		return KindDuration
	case DecimalPkgPath + ".Decimal":
		return KindDecimal
	case CivilPkgPath + ".Date":
		return KindDate
	}

	return 0
}

// FromBasicName classifies a predeclared Go type by its name, as reported by go/types.
func FromBasicName(name string) KindEnum {
	switch name {
	case "int":
		return KindInt
	case "int8":
		return KindInt8
	case "int16":
		return KindInt16
	case "int32", "rune":
		return KindInt32
	case "int64":
		return KindInt64
	case "uint":
		return KindUint
	case "uint8", "byte":
		return KindUint8
	case "uint16":
		return KindUint16
	case "uint32":
		return KindUint32
	case "uint64":
		return KindUint64
	case "float32":
		return KindFloat32
	case "float64":
		return KindFloat64
	case "bool":
		return KindBool
	case "string":
		return KindString
	}

	return 0
}

func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	// named value types with a dedicated schema type
	if rtype.Name() != "" {
		if kind := FromNamed(rtype.PkgPath(), rtype.Name()); kind != 0 {
			return kind
		}
	}

	// basic types and enums declared over them
	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	case reflect.Slice:
		// only slices of byte itself convert to []byte
		if rtype.Elem() == reflect.TypeFor[byte]() {
			return KindBytes
		}
		return 0
	}
}
