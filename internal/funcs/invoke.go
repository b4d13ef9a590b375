package funcs

import "reflect"

// Invoke calls the parameterless, resultless function registered as name.
func (r *Registry) Invoke(name string) error {
	_, err := r.invoke(name, ShapeNoParamNoResult, nil)
	return err
}

// InvokeWithParam calls the parameter-only function registered as name.
func (r *Registry) InvokeWithParam(name string, param any) error {
	_, err := r.invoke(name, ShapeWithParam, param)
	return err
}

// InvokeWithResult calls the result-only function registered as name and
// returns its result.
func (r *Registry) InvokeWithResult(name string) (any, error) {
	return r.invoke(name, ShapeWithResult, nil)
}

// InvokeWithParamAndResult calls the function registered as name with param
// and returns its result.
func (r *Registry) InvokeWithParamAndResult(name string, param any) (any, error) {
	return r.invoke(name, ShapeWithParamAndResult, param)
}

func (r *Registry) invoke(name string, shape Shape, param any) (any, error) {
	fn, err := r.Lookup(name, shape)
	if err != nil {
		r.logger.Debug("Function lookup failed.", "name", name, "shape", shape)
		return nil, err
	}
	r.logger.Debug("Invoking function.", "name", name, "shape", shape)
	return fn.call(param)
}

// Call invokes a result-only function and converts its result to R.
func Call[R any](r *Registry, name string) (R, error) {
	res, err := r.InvokeWithResult(name)
	if err != nil {
		var zero R
		return zero, err
	}
	return assertResult[R](name, res)
}

// CallWith invokes a parameter-and-result function and converts its result
// to R.
func CallWith[R any](r *Registry, name string, param any) (R, error) {
	res, err := r.InvokeWithParamAndResult(name, param)
	if err != nil {
		var zero R
		return zero, err
	}
	return assertResult[R](name, res)
}

func assertResult[R any](name string, res any) (R, error) {
	var zero R
	if res == nil {
		return zero, nil
	}
	out, ok := res.(R)
	if !ok {
		return zero, &TypeError{
			Func: name,
			Role: "result",
			Want: reflect.TypeOf((*R)(nil)).Elem(),
			Got:  reflect.TypeOf(res),
		}
	}
	return out, nil
}
