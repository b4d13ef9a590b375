package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/funcs/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// exprList collects repeated -e/-expr flags in order.
type exprList []string

func (l *exprList) String() string {
	return strings.Join(*l, "; ")
}

func (l *exprList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("funcs", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
funcs - Calls registered functions from HCL expressions.

Usage:
  funcs [options] [EXPR ...]

Arguments:
  EXPR
    An HCL expression such as 'upper("hi")' or 'concat(env("HOME"), "/x")'.
    Positional expressions are evaluated after any given with -e.

Options:
`)
		flagSet.PrintDefaults()
	}

	var exprs exprList
	flagSet.Var(&exprs, "expr", "Expression to evaluate. May be repeated.")
	flagSet.Var(&exprs, "e", "Expression to evaluate (shorthand).")
	listFlag := flagSet.Bool("list", false, "List the registered functions grouped by shape.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	exprs = append(exprs, flagSet.Args()...)
	if len(exprs) == 0 && !*listFlag {
		slog.Debug("Nothing to evaluate, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		Expressions: exprs,
		List:        *listFlag,
		LogFormat:   strings.ToLower(*logFormatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
