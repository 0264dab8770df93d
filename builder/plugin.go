package builder

import "github.com/erraggy/declspec/oas"

// Plugin extends a Builder with custom resolution behavior.
//
// Init is called once from New, after options are applied, giving the plugin
// access to the builder's version and component registry. All other
// integration points are optional capability interfaces discovered by type
// assertion: a plugin implements only the capabilities it needs, and the
// builder invokes each capability at the matching point of the build.
type Plugin interface {
	Init(b *Builder) error
}

// SchemaHelper contributes the body of a schema component. It receives the
// component name, the object assembled so far, and the schema-bearing value
// passed via WithSchemaValue (nil when none was given). A non-nil result is
// merged over the assembled object.
type SchemaHelper interface {
	SchemaHelper(name string, s *oas.Schema, v any) (*oas.Schema, error)
}

// ParameterHelper post-processes a parameter component before registration,
// typically resolving schema-bearing values inside it.
type ParameterHelper interface {
	ParameterHelper(p *oas.Parameter) error
}

// ResponseHelper post-processes a response component before registration.
type ResponseHelper interface {
	ResponseHelper(r *oas.Response) error
}

// HeaderHelper post-processes a header component before registration.
type HeaderHelper interface {
	HeaderHelper(h *oas.Header) error
}

// PathHelper may supply or replace the path template for a Path call.
// Returning an empty string leaves the template unchanged; when several
// plugins answer, the last non-empty answer wins.
type PathHelper interface {
	PathHelper(path string, operations map[string]*oas.Operation, parameters []*oas.Parameter) (string, error)
}

// OperationsHelper post-processes the operations supplied to Path, after any
// PathHelper has fixed the path template and before the operations are
// validated and merged into the document.
type OperationsHelper interface {
	OperationsHelper(path string, operations map[string]*oas.Operation) error
}
