package testutil

import (
	"sync"

	"github.com/vk/funcs/internal/funcs"
	"github.com/vk/funcs/internal/params"
)

// RecorderModule registers one function of every shape and records the
// calls it receives.
type RecorderModule struct {
	mu    sync.Mutex
	calls []string
	args  []*params.Params
}

// Register adds "ping" (no parameter, no result), "record" (parameter
// only), "counter" (result only) and "echo" (parameter and result).
func (m *RecorderModule) Register(r *funcs.Registry) {
	r.Add(
		funcs.NewFunc("ping", func() { m.record("ping", nil) }),
		funcs.NewFuncWithParam("record", func(p *params.Params) { m.record("record", p) }),
		funcs.NewFuncWithResult("counter", func() int {
			m.record("counter", nil)
			return m.Calls()
		}),
		funcs.NewFuncWithParamAndResult("echo", func(p *params.Params) *params.Params {
			m.record("echo", p)
			return p
		}),
	)
}

func (m *RecorderModule) record(name string, p *params.Params) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
	m.args = append(m.args, p)
}

// Calls returns the number of recorded calls.
func (m *RecorderModule) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Names returns the recorded function names in call order.
func (m *RecorderModule) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Args returns the parameters of the i-th recorded call.
func (m *RecorderModule) Args(i int) *params.Params {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.args[i]
}
