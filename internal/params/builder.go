package params

import (
	"math"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Builder assembles a Params in order.
type Builder struct {
	values []cty.Value
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) PutInt(v int) *Builder {
	return b.PutValue(cty.NumberIntVal(int64(v)))
}

// PutFloat stores v as a number. NaN has no cty number form and is stored
// as an opaque value instead; Float still returns it.
func (b *Builder) PutFloat(v float64) *Builder {
	if math.IsNaN(v) {
		return b.PutObject(v)
	}
	return b.PutValue(cty.NumberFloatVal(v))
}

func (b *Builder) PutString(v string) *Builder {
	return b.PutValue(cty.StringVal(v))
}

func (b *Builder) PutBool(v bool) *Builder {
	return b.PutValue(cty.BoolVal(v))
}

// PutObject stores v as an opaque value. It is returned unchanged by
// Params.Object and ObjectAs.
func (b *Builder) PutObject(v any) *Builder {
	return b.PutValue(ObjectVal(v))
}

func (b *Builder) PutValue(v cty.Value) *Builder {
	b.values = append(b.values, v)
	return b
}

// Put stores v using ToValue.
func (b *Builder) Put(v any) *Builder {
	return b.PutValue(ToValue(v))
}

// Build returns the assembled Params. The builder may be reused afterwards;
// later puts do not affect containers already built.
func (b *Builder) Build() *Params {
	return FromValues(b.values...)
}

// ObjectVal wraps v in the opaque object capsule.
func ObjectVal(v any) cty.Value {
	return cty.CapsuleVal(ObjectType, &v)
}

// ToValue converts a Go value into a cty value. Booleans, numbers, strings
// and slices or string-keyed maps of those become native cty values; any
// other value, or one holding a NaN, is wrapped with ObjectVal.
func ToValue(v any) cty.Value {
	switch tv := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType)
	case cty.Value:
		return tv
	case *Params:
		return tv.Tuple()
	}

	if plain(reflect.TypeOf(v)) && !hasNaN(reflect.ValueOf(v)) {
		if ty, err := gocty.ImpliedType(v); err == nil {
			if val, err := gocty.ToCtyValue(v, ty); err == nil {
				return val
			}
		}
	}
	return ObjectVal(v)
}

func plain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Slice:
		return plain(t.Elem())
	case reflect.Map:
		return t.Key().Kind() == reflect.String && plain(t.Elem())
	default:
		return false
	}
}

func hasNaN(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			if hasNaN(rv.Index(i)) {
				return true
			}
		}
	case reflect.Map:
		for it := rv.MapRange(); it.Next(); {
			if hasNaN(it.Value()) {
				return true
			}
		}
	}
	return false
}
