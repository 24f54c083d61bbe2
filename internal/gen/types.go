package gen

import (
	"github.com/dave/jennifer/jen"

	"extension-binder/binding"
	"extension-binder/primitive"
)

const (
	bindingPkg   = "extension-binder/binding"
	primitivePkg = "extension-binder/primitive"
)

// canonicalType returns the type values of kind k are exchanged as.
func canonicalType(k primitive.KindEnum) *jen.Statement {
	switch k {
	case primitive.KindTime:
		return jen.Qual("time", "Time")
	case primitive.KindDuration:
		return jen.Qual("time", "Duration")
	case primitive.KindDecimal:
		return jen.Qual(primitive.DecimalPkgPath, "Decimal")
	case primitive.KindDate:
		return jen.Qual(primitive.CivilPkgPath, "Date")
	case primitive.KindBytes:
		return jen.Index().Byte()
	default:
		return jen.Id(k.GoType().String())
	}
}

// isCanonical reports whether a primitive field type needs no conversion.
func isCanonical(t binding.Type) bool {
	if t.Primitive == primitive.KindBytes {
		return t.ID.PkgPath == ""
	}

	ct := t.Primitive.GoType()

	return ct.PkgPath() == t.ID.PkgPath && ct.Name() == t.ID.Name
}

// baseType returns the field type with its pointer stripped.
func baseType(id binding.TypeID) *jen.Statement {
	if id.PkgPath == "" {
		return jen.Id(id.Name)
	}

	return jen.Qual(id.PkgPath, id.Name)
}

// toCanonical converts expr from the field type to the exchange type.
func toCanonical(t binding.Type, expr jen.Code) jen.Code {
	if isCanonical(t) {
		return expr
	}

	return canonicalType(t.Primitive).Call(expr)
}

// fromCanonical converts expr from the exchange type to the field type.
func fromCanonical(t binding.Type, expr jen.Code) jen.Code {
	if isCanonical(t) {
		return expr
	}

	return baseType(t.ID).Call(expr)
}

func kindIdent(k binding.Kind) string {
	switch k {
	case binding.KindPrimitive:
		return "KindPrimitive"
	case binding.KindStruct:
		return "KindStruct"
	default:
		return "KindUnsupported"
	}
}

func typeIDLit(id binding.TypeID) *jen.Statement {
	return jen.Qual(bindingPkg, "TypeID").Values(jen.DictFunc(func(d jen.Dict) {
		if id.PkgPath != "" {
			d[jen.Id("PkgPath")] = jen.Lit(id.PkgPath)
		}

		d[jen.Id("Name")] = jen.Lit(id.Name)
	}))
}

func typeLit(t binding.Type) *jen.Statement {
	return jen.Qual(bindingPkg, "Type").Values(jen.DictFunc(func(d jen.Dict) {
		d[jen.Id("ID")] = typeIDLit(t.ID)
		d[jen.Id("Kind")] = jen.Qual(bindingPkg, kindIdent(t.Kind))

		if t.Kind == binding.KindPrimitive {
			d[jen.Id("Primitive")] = jen.Qual(primitivePkg, t.Primitive.String())
		}

		if t.Pointer {
			d[jen.Id("Pointer")] = jen.True()
		}

		if t.Kind == binding.KindStruct {
			d[jen.Id("Class")] = classRef(t.ID)
		}

		d[jen.Id("GoType")] = jen.Lit(t.GoType)
	}))
}

func extensionLit(ext *binding.Extension) *jen.Statement {
	return jen.Op("&").Qual(bindingPkg, "Extension").Values(jen.DictFunc(func(d jen.Dict) {
		if ext.Name != "" {
			d[jen.Id("Name")] = jen.Lit(ext.Name)
		}

		if ext.Nillable {
			d[jen.Id("Nillable")] = jen.True()
		}

		if ext.Required {
			d[jen.Id("Required")] = jen.True()
		}
	}))
}
