// Package text provides string helpers.
package text

import (
	"fmt"
	"strings"

	"github.com/vk/funcs/internal/funcs"
	"github.com/vk/funcs/internal/params"
)

// Module implements the funcs.Module interface for this package.
type Module struct{}

// MaxRepeatLen bounds the length of a Repeat result in bytes.
const MaxRepeatLen = 1 << 20

// Concat joins every parameter, converted to a string, with no separator.
// Values with no string form, such as lists, fail the call.
func Concat(p *params.Params) (string, error) {
	var sb strings.Builder
	for i := 0; i < p.Len(); i++ {
		s, err := p.String(i)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// Repeat returns the first parameter repeated count times, where count is
// the second parameter (default 1). Negative counts yield "".
func Repeat(p *params.Params) (string, error) {
	s, err := p.String(0)
	if err != nil {
		return "", err
	}
	n, err := p.IntOr(1, 1)
	if err != nil {
		return "", err
	}
	if n <= 0 || s == "" {
		return "", nil
	}
	if n > MaxRepeatLen/len(s) {
		return "", fmt.Errorf("repeat: result of %d x %d bytes exceeds %d bytes", n, len(s), MaxRepeatLen)
	}
	return strings.Repeat(s, n), nil
}

// Split splits the first parameter around the second (default ",").
func Split(p *params.Params) ([]string, error) {
	s, err := p.String(0)
	if err != nil {
		return nil, err
	}
	sep, err := p.StringOr(1, ",")
	if err != nil {
		return nil, err
	}
	return strings.Split(s, sep), nil
}

// Length returns the number of bytes in s.
func Length(s string) int {
	return len(s)
}

// Register adds the module's functions to r.
func (m *Module) Register(r *funcs.Registry) {
	r.Add(
		funcs.NewFuncWithParamAndResult("upper", strings.ToUpper),
		funcs.NewFuncWithParamAndResult("lower", strings.ToLower),
		funcs.NewFuncWithParamAndResult("trim", strings.TrimSpace),
		funcs.NewFuncWithParamAndResult("length", Length),
		funcs.NewFuncWithParamAndResultErr("concat", Concat),
		funcs.NewFuncWithParamAndResultErr("repeat", Repeat),
		funcs.NewFuncWithParamAndResultErr("split", Split),
	)
}
