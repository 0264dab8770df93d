package converter

import (
	"github.com/erraggy/declspec/internal/maputil"
	"github.com/erraggy/declspec/oas"
	"github.com/erraggy/declspec/schema"
)

// Resolver walks assembled operations and replaces every declarative schema
// value with its resolved form, expanding schema-valued parameters into
// per-field parameters along the way. All resolution goes through a single
// Converter, so component registration and identity tracking stay in one
// place.
type Resolver struct {
	conv *Converter
}

// NewResolver creates a Resolver that resolves through conv.
func NewResolver(conv *Converter) *Resolver {
	return &Resolver{conv: conv}
}

// ResolveOperations resolves the schema-bearing slots of every operation in
// the map: parameter lists, request bodies and callbacks on 3.x targets,
// and responses. Operations are visited in method order so component
// registration is deterministic.
func (r *Resolver) ResolveOperations(operations map[string]*oas.Operation) error {
	for _, method := range maputil.SortedKeys(operations) {
		op := operations[method]
		if op == nil {
			continue
		}
		if len(op.Parameters) > 0 {
			resolved, err := r.ResolveParameters(op.Parameters)
			if err != nil {
				return err
			}
			op.Parameters = resolved
		}
		if r.conv.version.AtLeast(3, 0) {
			if err := r.resolveCallbacks(op.Callbacks); err != nil {
				return err
			}
			if op.RequestBody != nil {
				if err := r.resolveContent(op.RequestBody.Content); err != nil {
					return err
				}
			}
		}
		for _, status := range maputil.SortedKeys(op.Responses) {
			if err := r.ResolveResponse(op.Responses[status]); err != nil {
				return err
			}
		}
	}
	return nil
}

// ResolveParameters resolves a parameter list. A parameter whose schema
// slot holds a declarative schema value and that names a location expands
// into the per-field parameters of that schema, carrying its name,
// required flag, and description into the expansion; every other parameter
// resolves in place.
func (r *Resolver) ResolveParameters(parameters []*oas.Parameter) ([]*oas.Parameter, error) {
	resolved := make([]*oas.Parameter, 0, len(parameters))
	for _, param := range parameters {
		if param == nil {
			continue
		}
		if isDeclarative(param.Schema) && param.In != "" {
			inst, err := r.conv.instanceOf(param.Schema)
			if err != nil {
				return nil, err
			}
			expanded, err := r.conv.Parameters(inst, param.In, paramOptionsFrom(param)...)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, expanded...)
			continue
		}
		if err := r.ResolveParameter(param); err != nil {
			return nil, err
		}
		resolved = append(resolved, param)
	}
	return resolved, nil
}

// ResolveParameter resolves the schema slots of a single parameter in
// place.
func (r *Resolver) ResolveParameter(param *oas.Parameter) error {
	if param == nil {
		return nil
	}
	resolved, err := r.conv.resolveValue(param.Schema)
	if err != nil {
		return err
	}
	param.Schema = resolved
	if r.conv.version.AtLeast(3, 0) {
		return r.resolveContent(param.Content)
	}
	return nil
}

// ResolveResponse resolves a response in place: the 2.0 schema slot, the
// 3.x content map, and every header.
func (r *Resolver) ResolveResponse(response *oas.Response) error {
	if response == nil {
		return nil
	}
	resolved, err := r.conv.resolveValue(response.Schema)
	if err != nil {
		return err
	}
	response.Schema = resolved
	if r.conv.version.AtLeast(3, 0) {
		if err := r.resolveContent(response.Content); err != nil {
			return err
		}
	}
	for _, name := range maputil.SortedKeys(response.Headers) {
		if err := r.ResolveHeader(response.Headers[name]); err != nil {
			return err
		}
	}
	return nil
}

// ResolveHeader resolves a header's schema slots in place.
func (r *Resolver) ResolveHeader(header *oas.Header) error {
	if header == nil {
		return nil
	}
	resolved, err := r.conv.resolveValue(header.Schema)
	if err != nil {
		return err
	}
	header.Schema = resolved
	if r.conv.version.AtLeast(3, 0) {
		return r.resolveContent(header.Content)
	}
	return nil
}

// ResolveSchemaValue resolves a single schema-bearing value, passing
// non-schema values through untouched.
func (r *Resolver) ResolveSchemaValue(v any) (any, error) {
	return r.conv.resolveValue(v)
}

func (r *Resolver) resolveContent(content map[string]*oas.MediaType) error {
	for _, contentType := range maputil.SortedKeys(content) {
		mt := content[contentType]
		if mt == nil {
			continue
		}
		resolved, err := r.conv.resolveValue(mt.Schema)
		if err != nil {
			return err
		}
		mt.Schema = resolved
	}
	return nil
}

func (r *Resolver) resolveCallbacks(callbacks map[string]*oas.Callback) error {
	for _, name := range maputil.SortedKeys(callbacks) {
		callback := callbacks[name]
		if callback == nil {
			continue
		}
		for _, expression := range maputil.SortedKeys(*callback) {
			item := (*callback)[expression]
			if item == nil {
				continue
			}
			if err := r.ResolveOperations(item.Operations()); err != nil {
				return err
			}
		}
	}
	return nil
}

// isDeclarative reports whether a schema slot holds a value that expands
// through the converter rather than resolving in place.
func isDeclarative(v any) bool {
	switch v.(type) {
	case *schema.Schema, *schema.Definition, string:
		return true
	}
	return false
}

// paramOptionsFrom carries a schema-valued parameter's own fields into its
// per-field expansion.
func paramOptionsFrom(param *oas.Parameter) []ParamOption {
	var opts []ParamOption
	if param.Name != "" {
		opts = append(opts, WithParamName(param.Name))
	}
	if param.Required {
		opts = append(opts, WithParamRequired(true))
	}
	if param.Description != "" {
		opts = append(opts, WithParamDescription(param.Description))
	}
	return opts
}
