// Package env_vars exposes the process environment as functions.
package env_vars

import (
	"os"
	"strings"

	"github.com/vk/funcs/internal/funcs"
	"github.com/vk/funcs/internal/params"
)

// Module implements the funcs.Module interface for this package.
type Module struct{}

// All returns every environment variable as a map.
func All() map[string]string {
	envMap := make(map[string]string)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			envMap[pair[0]] = pair[1]
		}
	}
	return envMap
}

// Lookup returns the variable named by the first parameter. When it is unset
// the optional second parameter is returned, or nil if there is none. A
// missing or non-string name fails the call.
func Lookup(p *params.Params) (any, error) {
	name, err := p.String(0)
	if err != nil {
		return nil, err
	}
	if v, ok := os.LookupEnv(name); ok {
		return v, nil
	}
	if p.Len() > 1 {
		return p.Object(1)
	}
	return nil, nil
}

// Register adds the module's functions to r.
func (m *Module) Register(r *funcs.Registry) {
	r.Add(
		funcs.NewFuncWithResult("env_vars", All),
		funcs.NewFuncWithParamAndResultErr("env", Lookup),
	)
}
