package funcs

import (
	"fmt"
	"reflect"
)

// Shape identifies the call signature of a registered function.
type Shape int

const (
	// ShapeNoParamNoResult is a func().
	ShapeNoParamNoResult Shape = iota
	// ShapeWithParam is a func(P).
	ShapeWithParam
	// ShapeWithResult is a func() R.
	ShapeWithResult
	// ShapeWithParamAndResult is a func(P) R.
	ShapeWithParamAndResult
)

// Shapes lists every shape in declaration order.
var Shapes = []Shape{ShapeNoParamNoResult, ShapeWithParam, ShapeWithResult, ShapeWithParamAndResult}

// AnyShape marks a failed lookup that was not restricted to one shape. No
// function has it.
const AnyShape Shape = -1

func (s Shape) String() string {
	switch s {
	case ShapeNoParamNoResult:
		return "no_param_no_result"
	case ShapeWithParam:
		return "with_param"
	case ShapeWithResult:
		return "with_result"
	case ShapeWithParamAndResult:
		return "with_param_and_result"
	case AnyShape:
		return "any shape"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// TakesParam reports whether functions of this shape accept a parameter.
func (s Shape) TakesParam() bool {
	return s == ShapeWithParam || s == ShapeWithParamAndResult
}

// ReturnsResult reports whether functions of this shape produce a result.
func (s Shape) ReturnsResult() bool {
	return s == ShapeWithResult || s == ShapeWithParamAndResult
}

// Function is a named callable together with its shape. Use one of the
// NewFunc constructors to build it; the zero value is not callable.
type Function struct {
	Name  string
	Shape Shape

	// ParamType and ResultType are nil when the shape has no parameter or
	// no result respectively.
	ParamType  reflect.Type
	ResultType reflect.Type

	call func(param any) (any, error)
}

// NewFunc wraps a function that takes nothing and returns nothing.
func NewFunc(name string, fn func()) *Function {
	if fn == nil {
		return nil
	}
	return NewFuncErr(name, func() error {
		fn()
		return nil
	})
}

// NewFuncErr is like NewFunc for a function that can fail. Its error is
// returned by Invoke.
func NewFuncErr(name string, fn func() error) *Function {
	if fn == nil {
		return nil
	}
	return &Function{
		Name:  name,
		Shape: ShapeNoParamNoResult,
		call: func(any) (any, error) {
			return nil, fn()
		},
	}
}

// NewFuncWithParam wraps a function that takes a parameter of type P.
func NewFuncWithParam[P any](name string, fn func(P)) *Function {
	if fn == nil {
		return nil
	}
	return NewFuncWithParamErr(name, func(p P) error {
		fn(p)
		return nil
	})
}

// NewFuncWithParamErr is like NewFuncWithParam for a function that can fail.
func NewFuncWithParamErr[P any](name string, fn func(P) error) *Function {
	if fn == nil {
		return nil
	}
	return &Function{
		Name:      name,
		Shape:     ShapeWithParam,
		ParamType: reflect.TypeOf((*P)(nil)).Elem(),
		call: func(param any) (any, error) {
			p, err := assertParam[P](name, param)
			if err != nil {
				return nil, err
			}
			return nil, fn(p)
		},
	}
}

// NewFuncWithResult wraps a function that returns a value of type R.
func NewFuncWithResult[R any](name string, fn func() R) *Function {
	if fn == nil {
		return nil
	}
	return NewFuncWithResultErr(name, func() (R, error) {
		return fn(), nil
	})
}

// NewFuncWithResultErr is like NewFuncWithResult for a function that can
// fail. On error the result is discarded.
func NewFuncWithResultErr[R any](name string, fn func() (R, error)) *Function {
	if fn == nil {
		return nil
	}
	return &Function{
		Name:       name,
		Shape:      ShapeWithResult,
		ResultType: reflect.TypeOf((*R)(nil)).Elem(),
		call: func(any) (any, error) {
			res, err := fn()
			if err != nil {
				return nil, err
			}
			return res, nil
		},
	}
}

// NewFuncWithParamAndResult wraps a function from P to R.
func NewFuncWithParamAndResult[P, R any](name string, fn func(P) R) *Function {
	if fn == nil {
		return nil
	}
	return NewFuncWithParamAndResultErr(name, func(p P) (R, error) {
		return fn(p), nil
	})
}

// NewFuncWithParamAndResultErr is like NewFuncWithParamAndResult for a
// function that can fail. On error the result is discarded.
func NewFuncWithParamAndResultErr[P, R any](name string, fn func(P) (R, error)) *Function {
	if fn == nil {
		return nil
	}
	return &Function{
		Name:       name,
		Shape:      ShapeWithParamAndResult,
		ParamType:  reflect.TypeOf((*P)(nil)).Elem(),
		ResultType: reflect.TypeOf((*R)(nil)).Elem(),
		call: func(param any) (any, error) {
			p, err := assertParam[P](name, param)
			if err != nil {
				return nil, err
			}
			res, err := fn(p)
			if err != nil {
				return nil, err
			}
			return res, nil
		},
	}
}

// assertParam recovers a P from an erased parameter. A nil parameter yields
// the zero value of P.
func assertParam[P any](name string, param any) (P, error) {
	if param == nil {
		var zero P
		return zero, nil
	}
	p, ok := param.(P)
	if !ok {
		var zero P
		return zero, &TypeError{
			Func: name,
			Role: "parameter",
			Want: reflect.TypeOf((*P)(nil)).Elem(),
			Got:  reflect.TypeOf(param),
		}
	}
	return p, nil
}
