package converter

import (
	"github.com/erraggy/declspec/builder"
	"github.com/erraggy/declspec/oas"
	"github.com/erraggy/declspec/oaserrors"
)

// Plugin wires the converter into a spec builder. Schema components
// registered with builder.WithSchemaValue convert through it, and the
// operations supplied to Path resolve their declarative schema values
// after composition.
//
// The plugin builds its Converter during Init, taking the target version
// from the builder, so one Plugin value serves exactly one Builder.
type Plugin struct {
	resolver SchemaNameResolver
	opts     []Option

	conv *Converter
	res  *Resolver
}

// NewPlugin creates a builder plugin. A nil resolver falls back to
// DefaultNameResolver, and the options configure the Converter built
// during Init.
//
//	spec, err := builder.New("Pet Store", "1.0.0", "3.0.3",
//		builder.WithPlugins(converter.NewPlugin(nil)))
func NewPlugin(resolver SchemaNameResolver, opts ...Option) *Plugin {
	return &Plugin{resolver: resolver, opts: opts}
}

// Init builds the plugin's Converter and Resolver against the owning builder.
func (p *Plugin) Init(b *builder.Builder) error {
	p.conv = New(b.Version(), p.resolver, b, p.opts...)
	p.res = NewResolver(p.conv)
	return nil
}

// Converter returns the converter built during Init, for direct Property
// or Parameters calls and for issue inspection. It is nil before Init.
func (p *Plugin) Converter() *Converter { return p.conv }

// SchemaHelper converts the schema value registered under name into the
// component body. The name is recorded for the value's identity before the
// body is built, so self-referencing schemas resolve to their own
// reference. A nil value leaves the component to other plugins.
func (p *Plugin) SchemaHelper(name string, _ *oas.Schema, v any) (*oas.Schema, error) {
	if v == nil {
		return nil, nil
	}
	if p.conv == nil {
		return nil, &oaserrors.ComponentError{
			Kind:    "schema",
			Name:    name,
			Message: "converter plugin used before Init",
		}
	}
	inst, err := p.conv.instanceOf(v)
	if err != nil {
		return nil, err
	}
	return p.conv.register(name, inst)
}

// ParameterHelper resolves the schema slots of a parameter component.
func (p *Plugin) ParameterHelper(param *oas.Parameter) error {
	if p.res == nil {
		return nil
	}
	return p.res.ResolveParameter(param)
}

// ResponseHelper resolves the schema slots of a response component.
func (p *Plugin) ResponseHelper(r *oas.Response) error {
	if p.res == nil {
		return nil
	}
	return p.res.ResolveResponse(r)
}

// HeaderHelper resolves the schema slots of a header component.
func (p *Plugin) HeaderHelper(h *oas.Header) error {
	if p.res == nil {
		return nil
	}
	return p.res.ResolveHeader(h)
}

// OperationsHelper resolves every schema-bearing slot of the operations
// supplied to Path.
func (p *Plugin) OperationsHelper(_ string, operations map[string]*oas.Operation) error {
	if p.res == nil {
		return nil
	}
	return p.res.ResolveOperations(operations)
}

var (
	_ builder.Plugin           = (*Plugin)(nil)
	_ builder.SchemaHelper     = (*Plugin)(nil)
	_ builder.ParameterHelper  = (*Plugin)(nil)
	_ builder.ResponseHelper   = (*Plugin)(nil)
	_ builder.HeaderHelper     = (*Plugin)(nil)
	_ builder.OperationsHelper = (*Plugin)(nil)
)
