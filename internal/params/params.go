// Package params implements the parameter container used to pass several
// arguments through a single-parameter function.
//
// A Params is an immutable, ordered list of values addressed by position.
// Values are stored as cty values so that numbers, strings, booleans and
// collections convert predictably; arbitrary Go values travel inside an
// opaque capsule. Every accessor checks the stored value and returns an
// error rather than panicking when it cannot produce the requested type.
package params

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ErrIndexOutOfRange is returned when a position has no value.
var ErrIndexOutOfRange = errors.New("parameter index out of range")

// ConversionError reports that the value at Index could not be converted to
// the requested Go type.
type ConversionError struct {
	Index int
	Want  string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("parameter %d: cannot convert to %s: %v", e.Index, e.Want, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ObjectType is the capsule type that carries opaque Go values.
var ObjectType = cty.Capsule("object", reflect.TypeOf((*any)(nil)).Elem())

var ctyValueType = reflect.TypeOf(cty.Value{})

// Params is an ordered, position-addressed bag of values. A nil *Params is
// a valid empty container.
type Params struct {
	values []cty.Value
}

// FromValues builds a container holding a copy of vals.
func FromValues(vals ...cty.Value) *Params {
	out := make([]cty.Value, len(vals))
	copy(out, vals)
	return &Params{values: out}
}

// Of builds a container from Go values, converting each with ToValue.
func Of(vals ...any) *Params {
	b := NewBuilder()
	for _, v := range vals {
		b.Put(v)
	}
	return b.Build()
}

// Len returns the number of values.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.values)
}

// Values returns a copy of the stored values.
func (p *Params) Values() []cty.Value {
	if p == nil {
		return nil
	}
	out := make([]cty.Value, len(p.values))
	copy(out, p.values)
	return out
}

// Tuple returns all values as a single cty tuple.
func (p *Params) Tuple() cty.Value {
	if p.Len() == 0 {
		return cty.EmptyTupleVal
	}
	return cty.TupleVal(p.Values())
}

// Value returns the raw value at position i.
func (p *Params) Value(i int) (cty.Value, error) {
	if i < 0 || i >= p.Len() {
		return cty.NilVal, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, i, p.Len())
	}
	return p.values[i], nil
}

// Int returns the value at position i as an int.
func (p *Params) Int(i int) (int, error) {
	var out int
	err := p.Decode(i, &out)
	return out, err
}

// IntOr returns the value at position i as an int, or def if there is no
// such position. A present value that does not convert is an error.
func (p *Params) IntOr(i, def int) (int, error) {
	if i >= p.Len() {
		return def, nil
	}
	return p.Int(i)
}

// Float returns the value at position i as a float64.
func (p *Params) Float(i int) (float64, error) {
	var out float64
	err := p.Decode(i, &out)
	return out, err
}

// String returns the value at position i as a string.
func (p *Params) String(i int) (string, error) {
	var out string
	err := p.Decode(i, &out)
	return out, err
}

// StringOr returns the value at position i as a string, or def if there is
// no such position. A present value that does not convert is an error.
func (p *Params) StringOr(i int, def string) (string, error) {
	if i >= p.Len() {
		return def, nil
	}
	return p.String(i)
}

// Bool returns the value at position i as a bool.
func (p *Params) Bool(i int) (bool, error) {
	var out bool
	err := p.Decode(i, &out)
	return out, err
}

// Object returns the value at position i as a plain Go value. Capsules give
// back the wrapped value; other values map to string, int, float64, bool,
// []any or map[string]any.
func (p *Params) Object(i int) (any, error) {
	v, err := p.Value(i)
	if err != nil {
		return nil, err
	}
	out, err := Native(v)
	if err != nil {
		return nil, &ConversionError{Index: i, Want: "object", Err: err}
	}
	return out, nil
}

// ObjectAs returns the value at position i as a T.
func ObjectAs[T any](p *Params, i int) (T, error) {
	var out T
	err := p.Decode(i, &out)
	return out, err
}

// Decode stores the value at position i into target, which must be a
// non-nil pointer. Values are converted to the target's implied cty type
// first, so "5" decodes into an int and 5 decodes into a string.
func (p *Params) Decode(i int, target any) error {
	v, err := p.Value(i)
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", target)
	}
	dst := rv.Elem()
	want := dst.Type()

	switch {
	case want == ctyValueType:
		dst.Set(reflect.ValueOf(v))
		return nil
	case want.Kind() == reflect.Interface || v.Type().IsCapsuleType():
		return assignNative(i, v, dst)
	}

	if ty, err := gocty.ImpliedType(reflect.Zero(want).Interface()); err == nil && !ty.Equals(cty.EmptyObject) {
		converted, err := convert.Convert(v, ty)
		if err != nil {
			return &ConversionError{Index: i, Want: want.String(), Err: err}
		}
		v = converted
	}
	if err := gocty.FromCtyValue(v, target); err != nil {
		return &ConversionError{Index: i, Want: want.String(), Err: err}
	}
	return nil
}

func assignNative(i int, v cty.Value, dst reflect.Value) error {
	want := dst.Type()
	obj, err := Native(v)
	if err != nil {
		return &ConversionError{Index: i, Want: want.String(), Err: err}
	}
	if obj == nil {
		if !isNilable(want) {
			return &ConversionError{Index: i, Want: want.String(), Err: errors.New("null value is not allowed")}
		}
		dst.Set(reflect.Zero(want))
		return nil
	}
	ov := reflect.ValueOf(obj)
	if !ov.Type().AssignableTo(want) {
		return &ConversionError{Index: i, Want: want.String(), Err: fmt.Errorf("value is a %s", ov.Type())}
	}
	dst.Set(ov)
	return nil
}

func isNilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// Native converts a cty value into a plain Go value. See Params.Object.
func Native(v cty.Value) (any, error) {
	v, _ = v.UnmarkDeep()
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, errors.New("value is not known")
	}

	ty := v.Type()
	switch {
	case ty.IsCapsuleType():
		if ty.Equals(ObjectType) {
			return *(v.EncapsulatedValue().(*any)), nil
		}
		return v.EncapsulatedValue(), nil
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.Number:
		return nativeNumber(v.AsBigFloat()), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			nv, err := Native(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, nv)
		}
		return out, nil
	case ty.IsMapType() || ty.IsObjectType():
		out := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			nv, err := Native(ev)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = nv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}

func nativeNumber(bf *big.Float) any {
	if bf.IsInt() {
		if n, acc := bf.Int64(); acc == big.Exact && int64(int(n)) == n {
			return int(n)
		}
	}
	f, _ := bf.Float64()
	return f
}
