package docparse

import (
	"github.com/erraggy/declspec/builder"
	"github.com/erraggy/declspec/oas"
)

// Plugin feeds doc comment operations into a spec builder. Routes bind path
// templates to documented functions; a Path call may then name the function
// instead of the template, and the function's doc comment operations merge
// into the assembled ones before validation.
//
// Register it ahead of a converter plugin so that schema values inside doc
// comment operations get resolved like any other.
type Plugin struct {
	pkg    *Package
	byPath map[string]string
	byFunc map[string]string
}

// NewPlugin returns a Plugin serving doc comments from pkg. A nil pkg makes
// the plugin inert, which keeps builder wiring valid in tools that only
// sometimes load source.
func NewPlugin(pkg *Package) *Plugin {
	return &Plugin{
		pkg:    pkg,
		byPath: make(map[string]string),
		byFunc: make(map[string]string),
	}
}

// Route binds a path template to a documented function and returns the
// plugin for chaining. Methods are named "Type.Method". Binding the same
// path again replaces the function; binding the same function to several
// paths merges its operations into each, with Path calls naming the
// function resolving to the most recent template.
func (p *Plugin) Route(path, funcName string) *Plugin {
	p.byPath[path] = funcName
	p.byFunc[funcName] = path
	return p
}

// Init implements builder.Plugin. The plugin needs nothing from the builder
// at registration time.
func (p *Plugin) Init(*builder.Builder) error { return nil }

// PathHelper translates a Path argument naming a routed function into that
// function's path template. Anything else passes through unchanged.
func (p *Plugin) PathHelper(path string, _ map[string]*oas.Operation, _ []*oas.Parameter) (string, error) {
	if template, ok := p.byFunc[path]; ok {
		return template, nil
	}
	return "", nil
}

// OperationsHelper merges the doc comment operations of the function routed
// at path. A doc comment operation replaces an assembled one for the same
// method; the comment is the authority for what a documented handler serves.
func (p *Plugin) OperationsHelper(path string, operations map[string]*oas.Operation) error {
	funcName, ok := p.byPath[path]
	if !ok || p.pkg == nil {
		return nil
	}
	docOps, err := p.pkg.Operations(funcName)
	if err != nil {
		return err
	}
	for method, op := range docOps {
		operations[method] = op
	}
	return nil
}

var (
	_ builder.Plugin           = (*Plugin)(nil)
	_ builder.PathHelper       = (*Plugin)(nil)
	_ builder.OperationsHelper = (*Plugin)(nil)
)
