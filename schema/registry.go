package schema

import (
	"github.com/erraggy/declspec/internal/maputil"
	"github.com/erraggy/declspec/oaserrors"
)

// Registry resolves string targets of Nested and Pluck fields to
// definitions. Registration is explicit; nothing registers itself.
type Registry struct {
	defs map[string]*Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds definitions under their declared names. Re-registering the
// same definition is a no-op; a different definition under a taken name is
// rejected with a ComponentError.
func (r *Registry) Register(defs ...*Definition) error {
	for _, d := range defs {
		if d == nil {
			continue
		}
		if d.Name() == "" {
			return &oaserrors.SchemaError{
				Op:      "Register",
				Message: "definition has no name",
			}
		}
		if existing, ok := r.defs[d.Name()]; ok {
			if existing == d {
				continue
			}
			return &oaserrors.ComponentError{
				Kind:    "schema",
				Name:    d.Name(),
				Message: "a different definition is already registered under this name",
			}
		}
		r.defs[d.Name()] = d
	}
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	return maputil.SortedKeys(r.defs)
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int { return len(r.defs) }
