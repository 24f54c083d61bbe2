package binding

import (
	"fmt"
	"reflect"

	"extension-binder/primitive"
)

// Reflect builds the binding of struct type t, and of every struct type
// reachable through its fields, using cfg for the extension metadata.
// Pointer types are dereferenced.
func Reflect(t reflect.Type, cfg *Config) (*Class, error) {
	if t == nil {
		return nil, ErrNotStruct
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}

	r := &reflector{
		config:  cfg,
		classes: make(map[reflect.Type]*Class),
	}

	return r.class(t), nil
}

// ReflectOf is Reflect for the type parameter.
func ReflectOf[T any](cfg *Config) (*Class, error) {
	return Reflect(reflect.TypeFor[T](), cfg)
}

type reflector struct {
	config  *Config
	classes map[reflect.Type]*Class // handles recursive types
}

func (r *reflector) class(t reflect.Type) *Class {
	if cached, ok := r.classes[t]; ok {
		return cached
	}

	c := &Class{
		ID:  IDOf(t),
		New: func() any { return reflect.New(t).Interface() },
	}

	// Pre-cache to handle recursive types (we'll fill in fields)
	r.classes[t] = c

	tc, _ := r.config.Lookup(c.ID)
	if tc != nil {
		c.Root = tc.Root
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		ft := r.fieldType(sf.Type)

		f := Field{
			Name:      sf.Name,
			Type:      ft,
			Transient: isTransient(sf),
			Get:       reflectGetter(t, sf.Index, ft),
			Set:       reflectSetter(t, sf.Index, ft, sf.Type),
		}

		if ext, ok := tc.Extension(sf.Name); ok {
			f.Extension = ext
		}

		c.Fields = append(c.Fields, f)
	}

	return c
}

func (r *reflector) fieldType(ft reflect.Type) Type {
	typ := Type{GoType: ft.String()}

	base := ft
	if base.Kind() == reflect.Pointer {
		typ.Pointer = true
		base = base.Elem()
	}

	typ.ID = IDOf(base)

	if base.Kind() == reflect.Pointer {
		// double pointers are not supported
		return typ
	}

	if kind := primitive.FromReflectType(base); kind != 0 {
		typ.Kind = KindPrimitive
		typ.Primitive = kind

		return typ
	}

	if base.Kind() == reflect.Struct {
		nested := r.class(base)
		typ.Kind = KindStruct
		typ.Class = func() *Class { return nested }
	}

	return typ
}

func isTransient(sf reflect.StructField) bool {
	if !sf.IsExported() || sf.Tag.Get("xml") == "-" {
		return true
	}

	switch sf.Type.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// structValue returns the addressable struct behind obj, which must be a
// non-nil pointer to owner.
func structValue(owner reflect.Type, obj any) (reflect.Value, error) {
	rv := reflect.ValueOf(obj)
	if !rv.IsValid() {
		return reflect.Value{}, ErrNilObject
	}

	if rv.Kind() != reflect.Pointer || rv.Type().Elem() != owner {
		return reflect.Value{}, fmt.Errorf("%w: expected *%s, got %T", ErrTypeMismatch, owner, obj)
	}

	if rv.IsNil() {
		return reflect.Value{}, ErrNilObject
	}

	return rv.Elem(), nil
}

func reflectGetter(owner reflect.Type, index []int, typ Type) Getter {
	return func(obj any) (any, error) {
		sv, err := structValue(owner, obj)
		if err != nil {
			return nil, err
		}

		fv := sv.FieldByIndex(index)

		if typ.Pointer {
			if fv.IsNil() {
				return nil, nil
			}

			if typ.Kind == KindStruct {
				return fv.Interface(), nil
			}

			fv = fv.Elem()
		}

		switch typ.Kind {
		case KindPrimitive:
			return fv.Convert(typ.Primitive.GoType()).Interface(), nil
		case KindStruct:
			return fv.Addr().Interface(), nil
		default:
			return fv.Interface(), nil
		}
	}
}

func reflectSetter(owner reflect.Type, index []int, typ Type, ft reflect.Type) Setter {
	base := ft
	if typ.Pointer {
		base = ft.Elem()
	}

	return func(obj any, value any) error {
		sv, err := structValue(owner, obj)
		if err != nil {
			return err
		}

		fv := sv.FieldByIndex(index)

		if value == nil {
			fv.Set(reflect.Zero(ft))
			return nil
		}

		val := reflect.ValueOf(value)

		switch typ.Kind {
		case KindStruct:
			if val.Type() != reflect.PointerTo(base) || val.IsNil() {
				return fmt.Errorf("%w: expected *%s, got %T", ErrTypeMismatch, base, value)
			}

			if typ.Pointer {
				fv.Set(val)
			} else {
				fv.Set(val.Elem())
			}

			return nil

		case KindPrimitive:
			if val.Type() != typ.Primitive.GoType() {
				return fmt.Errorf("%w: expected %s, got %T", ErrTypeMismatch, typ.Primitive.GoType(), value)
			}

			conv := val.Convert(base)
			if typ.Pointer {
				p := reflect.New(base)
				p.Elem().Set(conv)
				fv.Set(p)
			} else {
				fv.Set(conv)
			}

			return nil

		default:
			if !val.Type().AssignableTo(ft) {
				return fmt.Errorf("%w: expected %s, got %T", ErrTypeMismatch, ft, value)
			}

			fv.Set(val)

			return nil
		}
	}
}
