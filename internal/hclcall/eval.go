package hclcall

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/funcs/internal/ctxlog"
	"github.com/vk/funcs/internal/funcs"
	"github.com/zclconf/go-cty/cty"
)

const exprFilename = "<expr>"

// NewEvalContext returns an HCL evaluation context whose function table is
// backed by r.
func NewEvalContext(ctx context.Context, r *funcs.Registry) *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: Functions(ctx, r),
	}
}

// Parse parses src as a single HCL expression.
func Parse(src string) (hclsyntax.Expression, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), exprFilename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse expression %q: %w", src, diags)
	}
	return expr, nil
}

// Eval parses and evaluates src against r. Calls to names that r does not
// know are reported as funcs.ErrFunctionNotFound before anything runs.
func Eval(ctx context.Context, r *funcs.Registry, src string) (cty.Value, error) {
	logger := ctxlog.FromContext(ctx)

	expr, err := Parse(src)
	if err != nil {
		return cty.NilVal, err
	}

	evalCtx := NewEvalContext(ctx, r)
	for _, name := range CalledFunctions(expr) {
		if _, ok := evalCtx.Functions[name]; !ok {
			return cty.NilVal, fmt.Errorf("expression %q: %w", src, &funcs.NotFoundError{Name: name, Shape: funcs.AnyShape})
		}
	}

	logger.Debug("Evaluating expression.", "expr", src)
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to evaluate expression %q: %w", src, diags)
	}
	return val, nil
}

// CalledFunctions returns the sorted, unique names of all functions called
// anywhere in expr.
func CalledFunctions(expr hclsyntax.Expression) []string {
	seen := make(map[string]struct{})
	walkForFunctions(expr, seen)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func walkForFunctions(expr hclsyntax.Expression, functions map[string]struct{}) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		functions[e.Name] = struct{}{}
		for _, arg := range e.Args {
			walkForFunctions(arg, functions)
		}
	case *hclsyntax.BinaryOpExpr:
		walkForFunctions(e.LHS, functions)
		walkForFunctions(e.RHS, functions)
	case *hclsyntax.ConditionalExpr:
		walkForFunctions(e.Condition, functions)
		walkForFunctions(e.TrueResult, functions)
		walkForFunctions(e.FalseResult, functions)
	case *hclsyntax.UnaryOpExpr:
		walkForFunctions(e.Val, functions)
	case *hclsyntax.TemplateExpr:
		for _, part := range e.Parts {
			walkForFunctions(part, functions)
		}
	case *hclsyntax.TemplateWrapExpr:
		walkForFunctions(e.Wrapped, functions)
	case *hclsyntax.TupleConsExpr:
		for _, item := range e.Exprs {
			walkForFunctions(item, functions)
		}
	case *hclsyntax.ObjectConsExpr:
		for _, item := range e.Items {
			walkForFunctions(item.KeyExpr, functions)
			walkForFunctions(item.ValueExpr, functions)
		}
	case *hclsyntax.ObjectConsKeyExpr:
		walkForFunctions(e.Wrapped, functions)
	case *hclsyntax.ForExpr:
		walkForFunctions(e.CollExpr, functions)
		walkForFunctions(e.KeyExpr, functions)
		walkForFunctions(e.ValExpr, functions)
		walkForFunctions(e.CondExpr, functions)
	case *hclsyntax.IndexExpr:
		walkForFunctions(e.Collection, functions)
		walkForFunctions(e.Key, functions)
	case *hclsyntax.SplatExpr:
		walkForFunctions(e.Source, functions)
		walkForFunctions(e.Each, functions)
	case *hclsyntax.ParenthesesExpr:
		walkForFunctions(e.Expression, functions)
	}
}
