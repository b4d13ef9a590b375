package hclcall

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/vk/funcs/internal/ctxlog"
	"github.com/vk/funcs/internal/funcs"
	"github.com/vk/funcs/internal/params"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

var paramsType = reflect.TypeOf((*params.Params)(nil))

// ErrArgumentsNotAccepted is returned when a call passes arguments to a name
// that is only registered in parameterless shapes.
var ErrArgumentsNotAccepted = errors.New("function does not accept arguments")

// Functions exposes every name in the registry as a cty function. A call
// with arguments dispatches to the parameter-and-result entry, falling back
// to the parameter-only one; a call without arguments prefers the
// result-only entry, then the no-parameter entry, then the parameter shapes
// with an empty container. Entries without a result evaluate to null.
func Functions(ctx context.Context, r *funcs.Registry) map[string]function.Function {
	table := make(map[string]function.Function)
	for _, shape := range funcs.Shapes {
		for _, name := range r.Names(shape) {
			if _, ok := table[name]; ok {
				continue
			}
			table[name] = wrap(ctx, r, name)
		}
	}
	return table
}

func wrap(ctx context.Context, r *funcs.Registry, name string) function.Function {
	return function.New(&function.Spec{
		Description: fmt.Sprintf("Calls the registered function %q.", name),
		VarParam: &function.Parameter{
			Name:             "args",
			Type:             cty.DynamicPseudoType,
			AllowNull:        true,
			AllowDynamicType: true,
		},
		Type: function.StaticReturnType(cty.DynamicPseudoType),
		Impl: func(args []cty.Value, _ cty.Type) (ret cty.Value, err error) {
			// Panics become plain errors, without the stack trace cty adds.
			defer func() {
				if rec := recover(); rec != nil {
					ctxlog.FromContext(ctx).Error("Function panicked.", "function", name, "panic", rec)
					ret, err = cty.NilVal, fmt.Errorf("function %q panicked: %v", name, rec)
				}
			}()

			res, err := dispatch(ctx, r, name, args)
			if err != nil {
				return cty.NilVal, err
			}
			return params.ToValue(res), nil
		},
	})
}

func candidates(hasArgs bool) []funcs.Shape {
	if hasArgs {
		return []funcs.Shape{funcs.ShapeWithParamAndResult, funcs.ShapeWithParam}
	}
	return []funcs.Shape{
		funcs.ShapeWithResult,
		funcs.ShapeNoParamNoResult,
		funcs.ShapeWithParamAndResult,
		funcs.ShapeWithParam,
	}
}

func dispatch(ctx context.Context, r *funcs.Registry, name string, args []cty.Value) (any, error) {
	logger := ctxlog.FromContext(ctx)
	shapes := candidates(len(args) > 0)

	for _, shape := range shapes {
		fn, err := r.Lookup(name, shape)
		if err != nil {
			continue
		}
		logger.Debug("Dispatching call.", "function", name, "shape", shape, "args", len(args))

		param, err := argument(fn, params.FromValues(args...))
		if err != nil {
			return nil, err
		}

		switch shape {
		case funcs.ShapeNoParamNoResult:
			return nil, r.Invoke(name)
		case funcs.ShapeWithParam:
			return nil, r.InvokeWithParam(name, param)
		case funcs.ShapeWithResult:
			return r.InvokeWithResult(name)
		case funcs.ShapeWithParamAndResult:
			return r.InvokeWithParamAndResult(name, param)
		}
	}
	if len(args) > 0 {
		for _, shape := range funcs.Shapes {
			if r.Has(name, shape) {
				return nil, fmt.Errorf("%w: %q takes no arguments, got %d", ErrArgumentsNotAccepted, name, len(args))
			}
		}
	}
	return nil, &funcs.NotFoundError{Name: name, Shape: funcs.AnyShape}
}

// argument adapts call arguments to the registered parameter type. Functions
// taking *params.Params get the whole container; any other parameter type
// accepts exactly one argument, decoded into that type.
func argument(fn *funcs.Function, p *params.Params) (any, error) {
	switch {
	case fn.ParamType == nil:
		return nil, nil
	case fn.ParamType == paramsType:
		return p, nil
	case p.Len() == 0:
		return nil, nil
	case p.Len() > 1:
		return nil, fmt.Errorf("function %q takes a single %s argument, got %d", fn.Name, fn.ParamType, p.Len())
	}

	target := reflect.New(fn.ParamType)
	if err := p.Decode(0, target.Interface()); err != nil {
		return nil, fmt.Errorf("function %q: %w", fn.Name, err)
	}
	return target.Elem().Interface(), nil
}
