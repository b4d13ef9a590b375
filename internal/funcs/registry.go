package funcs

import (
	"log/slog"
	"sort"
	"sync"
)

// Module is implemented by packages that contribute a set of functions.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered functions, one table per shape.
type Registry struct {
	mu     sync.RWMutex
	logger *slog.Logger

	noParamNoResult    map[string]*Function
	withParam          map[string]*Function
	withResult         map[string]*Function
	withParamAndResult map[string]*Function
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registry debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates and initializes an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		logger:             slog.Default(),
		noParamNoResult:    make(map[string]*Function),
		withParam:          make(map[string]*Function),
		withResult:         make(map[string]*Function),
		withParamAndResult: make(map[string]*Function),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) table(s Shape) map[string]*Function {
	switch s {
	case ShapeNoParamNoResult:
		return r.noParamNoResult
	case ShapeWithParam:
		return r.withParam
	case ShapeWithResult:
		return r.withResult
	case ShapeWithParamAndResult:
		return r.withParamAndResult
	default:
		return nil
	}
}

// Add registers functions under their names. Nil entries are skipped and an
// existing entry with the same name and shape is replaced.
func (r *Registry) Add(fns ...*Function) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, fn := range fns {
		if fn == nil || fn.call == nil {
			continue
		}
		t := r.table(fn.Shape)
		if t == nil {
			r.logger.Warn("Ignoring function with unknown shape.", "name", fn.Name, "shape", fn.Shape)
			continue
		}
		if _, exists := t[fn.Name]; exists {
			r.logger.Debug("Replacing registered function.", "name", fn.Name, "shape", fn.Shape)
		} else {
			r.logger.Debug("Registering function.", "name", fn.Name, "shape", fn.Shape)
		}
		t[fn.Name] = fn
	}
	return r
}

// Register lets each module add its functions to the registry.
func (r *Registry) Register(mods ...Module) *Registry {
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.Register(r)
	}
	return r
}

// Remove drops name from every table. It reports whether anything was removed.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := false
	for _, s := range Shapes {
		t := r.table(s)
		if _, ok := t[name]; ok {
			delete(t, name)
			removed = true
		}
	}
	if removed {
		r.logger.Debug("Removed function.", "name", name)
	}
	return removed
}

// Has reports whether name is registered with the given shape.
func (r *Registry) Has(name string, shape Shape) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.table(shape)[name]
	return ok
}

// Lookup returns the function registered under name with the given shape.
func (r *Registry) Lookup(name string, shape Shape) (*Function, error) {
	r.mu.RLock()
	fn, ok := r.table(shape)[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Name: name, Shape: shape}
	}
	return fn, nil
}

// Names returns the sorted names registered with the given shape.
func (r *Registry) Names(shape Shape) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t := r.table(shape)
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries across all tables.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, s := range Shapes {
		n += len(r.table(s))
	}
	return n
}
