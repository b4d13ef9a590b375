// Package print provides functions that write their arguments to an output
// stream.
package print

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/funcs/internal/funcs"
	"github.com/vk/funcs/internal/params"
)

// Module implements the funcs.Module interface for this package.
type Module struct {
	// Out receives printed lines. Defaults to os.Stdout.
	Out io.Writer
}

func (m *Module) out() io.Writer {
	if m.Out == nil {
		return os.Stdout
	}
	return m.Out
}

// Print writes every parameter to the output, separated by spaces and
// followed by a newline. Values that cannot be read print as <invalid>.
func (m *Module) Print(p *params.Params) {
	slog.Debug("Printing values.", "count", p.Len())

	vals := make([]any, 0, p.Len())
	for i := 0; i < p.Len(); i++ {
		v, err := p.Object(i)
		if err != nil {
			slog.Warn("Skipping unreadable value.", "index", i, "error", err)
			v = "<invalid>"
		}
		if v == nil {
			v = "(null)"
		}
		vals = append(vals, v)
	}
	fmt.Fprintln(m.out(), vals...)
}

// Newline writes an empty line.
func (m *Module) Newline() {
	fmt.Fprintln(m.out())
}

// Register adds the module's functions to r.
func (m *Module) Register(r *funcs.Registry) {
	r.Add(
		funcs.NewFuncWithParam("print", m.Print),
		funcs.NewFunc("newline", m.Newline),
	)
}
