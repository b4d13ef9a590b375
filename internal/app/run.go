package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/funcs/internal/ctxlog"
	"github.com/vk/funcs/internal/funcs"
	"github.com/vk/funcs/internal/hclcall"
)

// Run lists the registered functions if requested, then evaluates every
// configured expression in order, writing "expr = result" lines. It stops at
// the first failing expression.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.List {
		a.listFunctions()
	}

	for i, expr := range a.config.Expressions {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.logger.Info("Evaluating expression.", "index", i, "expr", expr)
		val, err := hclcall.Eval(ctx, a.registry, expr)
		if err != nil {
			return fmt.Errorf("evaluation failed: %w", err)
		}
		fmt.Fprintf(a.outW, "%s = %s\n", expr, hclcall.Format(val))
	}

	a.logger.Debug("App.Run method finished.", "expressions", len(a.config.Expressions))
	return nil
}

func (a *App) listFunctions() {
	for _, shape := range funcs.Shapes {
		names := a.registry.Names(shape)
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(a.outW, "%s: %s\n", shape, strings.Join(names, ", "))
	}
}
