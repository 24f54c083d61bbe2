package gen

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dave/jennifer/jen"

	"extension-binder/binding"
	"extension-binder/internal/common"
)

var (
	ErrForeignType    = errors.New("type is declared outside the generated package")
	ErrUnnamedStruct  = errors.New("field has an unnamed struct type")
	ErrNoPackagePath  = errors.New("package path is required")
	ErrNothingToWrite = errors.New("no types to generate")
)

// GeneratedHeader starts every generated file.
const GeneratedHeader = "Code generated by extension-binder. DO NOT EDIT."

// Config holds configuration for code generation.
type Config struct {
	// PkgPath is the import path of the package the bindings are generated
	// into. Every generated type must be declared in it.
	PkgPath string
	// PkgName is the name of the generated package. Defaults to the last
	// element of PkgPath.
	PkgName string
	// Comments enables doc comments on generated functions.
	Comments bool
}

// Generator renders explicit bindings as Go source.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.PkgName == "" {
		config.PkgName = common.PkgAlias(config.PkgPath)
	}

	return &Generator{config: config}
}

// Generate renders the bindings of the given classes and of every struct type
// of the same package reachable through their fields. Classes are emitted in
// name order.
func (g *Generator) Generate(classes ...*binding.Class) ([]byte, error) {
	if g.config.PkgPath == "" {
		return nil, ErrNoPackagePath
	}

	ordered, err := g.collect(classes)
	if err != nil {
		return nil, err
	}

	if len(ordered) == 0 {
		return nil, ErrNothingToWrite
	}

	f := jen.NewFilePathName(g.config.PkgPath, g.config.PkgName)
	f.HeaderComment(GeneratedHeader)

	for _, c := range ordered {
		g.generateClass(f, c)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering bindings: %w", err)
	}

	return buf.Bytes(), nil
}

// collect walks the classes breadth first and returns the same-package ones.
func (g *Generator) collect(roots []*binding.Class) ([]*binding.Class, error) {
	seen := make(map[binding.TypeID]bool)
	queue := slices.Clone(roots)

	var out []*binding.Class

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		if seen[c.ID] {
			continue
		}

		if c.ID.PkgPath != g.config.PkgPath {
			return nil, fmt.Errorf("%w: %s", ErrForeignType, c.ID)
		}

		seen[c.ID] = true
		out = append(out, c)

		for i := range c.Fields {
			f := &c.Fields[i]
			if f.Transient || f.Type.Kind != binding.KindStruct {
				continue
			}

			if f.Type.ID.PkgPath == "" {
				return nil, fmt.Errorf("%w: %s.%s", ErrUnnamedStruct, c.ID.Short(), f.Name)
			}

			if f.Type.ID.PkgPath == g.config.PkgPath && f.Type.Class != nil {
				queue = append(queue, f.Type.Class())
			}
		}
	}

	slices.SortFunc(out, func(a, b *binding.Class) int {
		return strings.Compare(a.ID.Name, b.ID.Name)
	})

	return out, nil
}

// names of the declarations generated for one struct type.
type classNames struct {
	typ  string // Address
	fn   string // AddressClass
	v    string // addressClass
	once string // addressClassOnce
	of   string // addressOf
}

func namesOf(id binding.TypeID) classNames {
	fn := id.Name + "Class"
	v := common.LowerFirst(fn)

	return classNames{
		typ:  id.Name,
		fn:   fn,
		v:    v,
		once: v + "Once",
		of:   common.LowerFirst(id.Name) + "Of",
	}
}

func classRef(id binding.TypeID) *jen.Statement {
	return jen.Qual(id.PkgPath, namesOf(id).fn)
}

func (g *Generator) generateClass(f *jen.File, c *binding.Class) {
	n := namesOf(c.ID)

	f.Var().Defs(
		jen.Id(n.once).Qual("sync", "Once"),
		jen.Id(n.v).Op("*").Qual(bindingPkg, "Class"),
	)

	if g.config.Comments {
		f.Commentf("%s returns the binding of %s.", n.fn, n.typ)
	}

	f.Func().Id(n.fn).Params().Op("*").Qual(bindingPkg, "Class").Block(
		jen.Id(n.once).Dot("Do").Call(jen.Func().Params().Block(
			jen.Id(n.v).Op("=").Op("&").Qual(bindingPkg, "Class").Values(jen.DictFunc(func(d jen.Dict) {
				d[jen.Id("ID")] = typeIDLit(c.ID)

				if c.Root != "" {
					d[jen.Id("Root")] = jen.Lit(c.Root)
				}

				d[jen.Id("New")] = jen.Func().Params().Id("any").Block(
					jen.Return(jen.New(jen.Id(n.typ))),
				)
				d[jen.Id("Fields")] = jen.Index().Qual(bindingPkg, "Field").CustomFunc(jen.Options{
					Open:      "{",
					Close:     "}",
					Separator: ",",
					Multi:     true,
				}, func(grp *jen.Group) {
					for i := range c.Fields {
						grp.Add(g.generateField(n, &c.Fields[i]))
					}
				})
			})),
		)),
		jen.Return(jen.Id(n.v)),
	)

	g.generateOwnerCheck(f, n)
}

// generateOwnerCheck emits the helper shared by the accessors of one type.
func (g *Generator) generateOwnerCheck(f *jen.File, n classNames) {
	f.Func().Id(n.of).Params(jen.Id("obj").Id("any")).Params(jen.Op("*").Id(n.typ), jen.Error()).Block(
		jen.List(jen.Id("o"), jen.Id("ok")).Op(":=").Id("obj").Assert(jen.Op("*").Id(n.typ)),
		jen.If(jen.Op("!").Id("ok")).Block(
			jen.Return(jen.Nil(), mismatch("*"+n.typ, "obj")),
		),
		jen.If(jen.Id("o").Op("==").Nil()).Block(
			jen.Return(jen.Nil(), jen.Qual(bindingPkg, "ErrNilObject")),
		),
		jen.Return(jen.Id("o"), jen.Nil()),
	)
}

func mismatch(expected, value string) *jen.Statement {
	return jen.Qual("fmt", "Errorf").Call(
		jen.Lit("%w: expected "+expected+", got %T"),
		jen.Qual(bindingPkg, "ErrTypeMismatch"),
		jen.Id(value),
	)
}

// accessible reports whether the field gets generated accessors.
func accessible(f *binding.Field) bool {
	return !f.Transient && (f.Type.Kind == binding.KindPrimitive || f.Type.Kind == binding.KindStruct)
}

func (g *Generator) generateField(n classNames, f *binding.Field) jen.Code {
	return jen.Values(jen.DictFunc(func(d jen.Dict) {
		d[jen.Id("Name")] = jen.Lit(f.Name)
		d[jen.Id("Type")] = typeLit(f.Type)

		if f.Transient {
			d[jen.Id("Transient")] = jen.True()
		}

		if f.Extension != nil {
			d[jen.Id("Extension")] = extensionLit(f.Extension)
		}

		if accessible(f) {
			d[jen.Id("Get")] = g.getter(n, f)
			d[jen.Id("Set")] = g.setter(n, f)
		}
	}))
}

func (g *Generator) getter(n classNames, f *binding.Field) *jen.Statement {
	field := jen.Id("o").Dot(f.Name)

	return jen.Func().Params(jen.Id("obj").Id("any")).Params(jen.Id("any"), jen.Error()).BlockFunc(func(grp *jen.Group) {
		grp.List(jen.Id("o"), jen.Err()).Op(":=").Id(n.of).Call(jen.Id("obj"))
		grp.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Nil(), jen.Err()))

		if f.Type.Pointer {
			grp.If(field.Clone().Op("==").Nil()).Block(jen.Return(jen.Nil(), jen.Nil()))
		}

		switch {
		case f.Type.Kind == binding.KindStruct && f.Type.Pointer:
			grp.Return(field.Clone(), jen.Nil())
		case f.Type.Kind == binding.KindStruct:
			grp.Return(jen.Op("&").Add(field.Clone()), jen.Nil())
		case f.Type.Pointer:
			grp.Return(toCanonical(f.Type, jen.Op("*").Add(field.Clone())), jen.Nil())
		default:
			grp.Return(toCanonical(f.Type, field.Clone()), jen.Nil())
		}
	})
}

func (g *Generator) setter(n classNames, f *binding.Field) *jen.Statement {
	field := jen.Id("o").Dot(f.Name)

	return jen.Func().Params(jen.Id("obj").Id("any"), jen.Id("value").Id("any")).Error().BlockFunc(func(grp *jen.Group) {
		grp.List(jen.Id("o"), jen.Err()).Op(":=").Id(n.of).Call(jen.Id("obj"))
		grp.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err()))

		// nil resets the field to its zero value
		grp.If(jen.Id("value").Op("==").Nil()).Block(
			field.Clone().Op("=").Id(n.typ).Values().Dot(f.Name),
			jen.Return(jen.Nil()),
		)

		if f.Type.Kind == binding.KindStruct {
			expected := "*" + f.Type.ID.Short()
			grp.List(jen.Id("v"), jen.Id("ok")).Op(":=").Id("value").Assert(jen.Op("*").Add(baseType(f.Type.ID)))
			grp.If(jen.Op("!").Id("ok").Op("||").Id("v").Op("==").Nil()).Block(
				jen.Return(mismatch(expected, "value")),
			)

			if f.Type.Pointer {
				grp.Add(field.Clone().Op("=").Id("v"))
			} else {
				grp.Add(field.Clone().Op("=").Op("*").Id("v"))
			}

			grp.Return(jen.Nil())

			return
		}

		expected := f.Type.Primitive.GoType().String()
		grp.List(jen.Id("v"), jen.Id("ok")).Op(":=").Id("value").Assert(canonicalType(f.Type.Primitive))
		grp.If(jen.Op("!").Id("ok")).Block(jen.Return(mismatch(expected, "value")))

		if f.Type.Pointer {
			grp.Id("x").Op(":=").Add(fromCanonical(f.Type, jen.Id("v")))
			grp.Add(field.Clone().Op("=").Op("&").Id("x"))
		} else {
			grp.Add(field.Clone().Op("=").Add(fromCanonical(f.Type, jen.Id("v"))))
		}

		grp.Return(jen.Nil())
	})
}
