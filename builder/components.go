package builder

import (
	"strings"

	"github.com/erraggy/declspec/internal/schemautil"
	"github.com/erraggy/declspec/oas"
	"github.com/erraggy/declspec/oaserrors"
)

// Components stores the reusable objects registered on a Builder.
//
// Registration is version-agnostic: OAS 2.0 documents emit the subsections
// as top-level fields (definitions, parameters, responses,
// securityDefinitions) while OAS 3.x documents nest them under "components".
// Build places each subsection where the target version expects it.
//
// Every registration deep-copies its input, runs the matching plugin
// capabilities, and resolves component name references inside the copy, so
// callers may freely reuse or mutate their objects afterwards.
type Components struct {
	builder *Builder

	schemas         map[string]*oas.Schema
	responses       map[string]*oas.Response
	parameters      map[string]*oas.Parameter
	headers         map[string]*oas.Header
	examples        map[string]*oas.Example
	securitySchemes map[string]*oas.SecurityScheme

	// Lazy components are buffered at registration and promoted into the
	// document the first time something references them by name.
	schemasLazy    map[string]*oas.Schema
	responsesLazy  map[string]*oas.Response
	parametersLazy map[string]*oas.Parameter
	headersLazy    map[string]*oas.Header
	examplesLazy   map[string]*oas.Example
}

func newComponents(b *Builder) *Components {
	return &Components{
		builder:         b,
		schemas:         make(map[string]*oas.Schema),
		responses:       make(map[string]*oas.Response),
		parameters:      make(map[string]*oas.Parameter),
		headers:         make(map[string]*oas.Header),
		examples:        make(map[string]*oas.Example),
		securitySchemes: make(map[string]*oas.SecurityScheme),
		schemasLazy:     make(map[string]*oas.Schema),
		responsesLazy:   make(map[string]*oas.Response),
		parametersLazy:  make(map[string]*oas.Parameter),
		headersLazy:     make(map[string]*oas.Header),
		examplesLazy:    make(map[string]*oas.Example),
	}
}

func (c *Components) version() oas.Version { return c.builder.oasVersion }

// record notes a registration error so that Build reports it even when the
// caller dropped the return value.
func (c *Components) record(err error) error {
	c.builder.errors = append(c.builder.errors, err)
	return err
}

// ComponentOption configures a single component registration.
type ComponentOption func(*componentConfig)

type componentConfig struct {
	object *oas.Schema
	value  any
	lazy   bool
}

// WithSchemaObject seeds a schema registration with a concrete schema
// object. The object is deep-copied before plugins touch it.
func WithSchemaObject(obj *oas.Schema) ComponentOption {
	return func(cfg *componentConfig) { cfg.object = obj }
}

// WithSchemaValue attaches a schema-bearing value to a schema registration.
// The value is handed to every plugin SchemaHelper, which is how declarative
// schema definitions are translated into the component body.
func WithSchemaValue(v any) ComponentOption {
	return func(cfg *componentConfig) { cfg.value = v }
}

// WithLazy defers the registration: the component stays out of the document
// until it is referenced by name, and is dropped entirely when nothing
// references it.
func WithLazy() ComponentOption {
	return func(cfg *componentConfig) { cfg.lazy = true }
}

// Schema registers a schema component under name.
//
// The body is assembled from the WithSchemaObject seed (if any), the merged
// results of every plugin SchemaHelper, and a reference resolution pass that
// replaces component name strings in schema slots with $ref objects.
// Registering a name twice fails with oaserrors.ErrDuplicateComponent.
func (c *Components) Schema(name string, opts ...ComponentOption) error {
	var cfg componentConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if _, ok := c.schemas[name]; ok {
		return c.record(&oaserrors.ComponentError{
			Kind:    "schema",
			Name:    name,
			Message: "another schema with this name is already registered",
		})
	}

	obj := &oas.Schema{}
	if cfg.object != nil {
		obj = schemautil.CloneSchema(cfg.object)
	}
	for _, plugin := range c.builder.plugins {
		helper, ok := plugin.(SchemaHelper)
		if !ok {
			continue
		}
		ret, err := helper.SchemaHelper(name, obj, cfg.value)
		if err != nil {
			return c.record(err)
		}
		if ret != nil && ret != obj {
			schemautil.Merge(obj, ret)
		}
	}
	c.resolveRefsInSchema(obj)

	if cfg.lazy {
		c.schemasLazy[name] = obj
	} else {
		c.schemas[name] = obj
	}
	return nil
}

// HasSchema reports whether a schema component is registered under name.
// Lazy-buffered schemas do not count until they are promoted.
func (c *Components) HasSchema(name string) bool {
	_, ok := c.schemas[name]
	return ok
}

// Response registers a response component under name. A nil response
// registers an empty one.
func (c *Components) Response(name string, response *oas.Response, opts ...ComponentOption) error {
	var cfg componentConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if _, ok := c.responses[name]; ok {
		return c.record(&oaserrors.ComponentError{
			Kind:    "response",
			Name:    name,
			Message: "another response with this name is already registered",
		})
	}

	ret := schemautil.CloneResponse(response)
	if ret == nil {
		ret = &oas.Response{}
	}
	for _, plugin := range c.builder.plugins {
		helper, ok := plugin.(ResponseHelper)
		if !ok {
			continue
		}
		if err := helper.ResponseHelper(ret); err != nil {
			return c.record(err)
		}
	}
	c.resolveRefsInResponse(ret)

	if cfg.lazy {
		c.responsesLazy[name] = ret
	} else {
		c.responses[name] = ret
	}
	return nil
}

// Parameter registers a parameter component under name at the given
// location. The parameter's name defaults to the component name, and path
// parameters are forced to required, as OpenAPI requires.
func (c *Components) Parameter(name, location string, param *oas.Parameter, opts ...ComponentOption) error {
	var cfg componentConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if _, ok := c.parameters[name]; ok {
		return c.record(&oaserrors.ComponentError{
			Kind:    "parameter",
			Name:    name,
			Message: "another parameter with this name is already registered",
		})
	}

	ret := schemautil.CloneParameter(param)
	if ret == nil {
		ret = &oas.Parameter{}
	}
	if ret.Name == "" {
		ret.Name = name
	}
	ret.In = location
	if location == "path" {
		ret.Required = true
	}
	for _, plugin := range c.builder.plugins {
		helper, ok := plugin.(ParameterHelper)
		if !ok {
			continue
		}
		if err := helper.ParameterHelper(ret); err != nil {
			return c.record(err)
		}
	}
	c.resolveRefsInParameter(ret)

	if cfg.lazy {
		c.parametersLazy[name] = ret
	} else {
		c.parameters[name] = ret
	}
	return nil
}

// Header registers a header component under name. Header components only
// exist in OAS 3.x documents; registering one against an OAS 2.0 builder
// fails with oaserrors.ErrInvalidVersion.
func (c *Components) Header(name string, header *oas.Header, opts ...ComponentOption) error {
	var cfg componentConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if _, ok := c.version().SubsectionName(oas.KindHeader); !ok {
		return c.record(&oaserrors.VersionError{
			Value:   c.version().String(),
			Message: "header components require OpenAPI 3",
		})
	}
	if _, ok := c.headers[name]; ok {
		return c.record(&oaserrors.ComponentError{
			Kind:    "header",
			Name:    name,
			Message: "another header with this name is already registered",
		})
	}

	ret := schemautil.CloneHeader(header)
	if ret == nil {
		ret = &oas.Header{}
	}
	for _, plugin := range c.builder.plugins {
		helper, ok := plugin.(HeaderHelper)
		if !ok {
			continue
		}
		if err := helper.HeaderHelper(ret); err != nil {
			return c.record(err)
		}
	}
	c.resolveRefsInHeader(ret)

	if cfg.lazy {
		c.headersLazy[name] = ret
	} else {
		c.headers[name] = ret
	}
	return nil
}

// Example registers an example component under name. Example components
// only exist in OAS 3.x documents.
func (c *Components) Example(name string, example *oas.Example, opts ...ComponentOption) error {
	var cfg componentConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if _, ok := c.version().SubsectionName(oas.KindExample); !ok {
		return c.record(&oaserrors.VersionError{
			Value:   c.version().String(),
			Message: "example components require OpenAPI 3",
		})
	}
	if _, ok := c.examples[name]; ok {
		return c.record(&oaserrors.ComponentError{
			Kind:    "example",
			Name:    name,
			Message: "another example with this name is already registered",
		})
	}

	ret := schemautil.CloneExample(example)
	if ret == nil {
		ret = &oas.Example{}
	}
	if cfg.lazy {
		c.examplesLazy[name] = ret
	} else {
		c.examples[name] = ret
	}
	return nil
}

// SecurityScheme registers a security scheme component under name.
func (c *Components) SecurityScheme(name string, scheme *oas.SecurityScheme) error {
	if _, ok := c.securitySchemes[name]; ok {
		return c.record(&oaserrors.ComponentError{
			Kind:    "security_scheme",
			Name:    name,
			Message: "another security scheme with this name is already registered",
		})
	}
	ret := schemautil.CloneSecurityScheme(scheme)
	if ret == nil {
		ret = &oas.SecurityScheme{}
	}
	c.securitySchemes[name] = ret
	return nil
}

// GetRef returns v unchanged when it already holds a concrete object, or a
// typed reference object when v is a component name string. Referencing a
// name promotes the component if it was lazy-registered.
func (c *Components) GetRef(kind oas.ComponentKind, v any) any {
	name, ok := v.(string)
	if !ok {
		return v
	}
	c.promote(kind, name)
	ref := c.version().Ref(kind, name)
	switch kind {
	case oas.KindSchema:
		return &oas.Schema{Ref: ref}
	case oas.KindResponse:
		return &oas.Response{Ref: ref}
	case oas.KindParameter:
		return &oas.Parameter{Ref: ref}
	case oas.KindHeader:
		return &oas.Header{Ref: ref}
	case oas.KindExample:
		return &oas.Example{Ref: ref}
	}
	return map[string]any{"$ref": ref}
}

// promote moves a lazy-registered component into the document.
func (c *Components) promote(kind oas.ComponentKind, name string) {
	switch kind {
	case oas.KindSchema:
		if s, ok := c.schemasLazy[name]; ok {
			c.schemas[name] = s
			delete(c.schemasLazy, name)
		}
	case oas.KindResponse:
		if r, ok := c.responsesLazy[name]; ok {
			c.responses[name] = r
			delete(c.responsesLazy, name)
		}
	case oas.KindParameter:
		if p, ok := c.parametersLazy[name]; ok {
			c.parameters[name] = p
			delete(c.parametersLazy, name)
		}
	case oas.KindHeader:
		if h, ok := c.headersLazy[name]; ok {
			c.headers[name] = h
			delete(c.headersLazy, name)
		}
	case oas.KindExample:
		if e, ok := c.examplesLazy[name]; ok {
			c.examples[name] = e
			delete(c.examplesLazy, name)
		}
	}
}

// expandRef turns a bare component name into a full reference for this
// version, promoting the component if it was lazy-registered. Values that
// already look like references (anything containing a slash, such as
// "#/components/schemas/Pet" or a URL) pass through untouched.
func (c *Components) expandRef(kind oas.ComponentKind, ref string) string {
	if ref == "" || strings.Contains(ref, "/") {
		return ref
	}
	c.promote(kind, ref)
	return c.version().Ref(kind, ref)
}

// schemaSlot resolves a schema-bearing any slot: component name strings
// become $ref objects and concrete schemas are walked for nested names.
// Anything else passes through untouched.
func (c *Components) schemaSlot(v any) any {
	switch val := v.(type) {
	case string:
		c.promote(oas.KindSchema, val)
		return &oas.Schema{Ref: c.version().Ref(oas.KindSchema, val)}
	case *oas.Schema:
		c.resolveRefsInSchema(val)
		return val
	}
	return v
}

func (c *Components) resolveRefsInSchema(s *oas.Schema) {
	if s == nil {
		return
	}
	for key, value := range s.Properties {
		s.Properties[key] = c.schemaSlot(value)
	}
	if s.Items != nil {
		s.Items = c.schemaSlot(s.Items)
	}
	for i, v := range s.AllOf {
		s.AllOf[i] = c.schemaSlot(v)
	}
	for i, v := range s.AnyOf {
		s.AnyOf[i] = c.schemaSlot(v)
	}
	for i, v := range s.OneOf {
		s.OneOf[i] = c.schemaSlot(v)
	}
	if s.Not != nil {
		s.Not = c.schemaSlot(s.Not)
	}
	if s.AdditionalProperties != nil {
		s.AdditionalProperties = c.schemaSlot(s.AdditionalProperties)
	}
}

func (c *Components) resolveRefsInParameter(p *oas.Parameter) {
	if p == nil {
		return
	}
	p.Ref = c.expandRef(oas.KindParameter, p.Ref)
	p.Schema = c.schemaSlot(p.Schema)
	c.resolveExampleRefs(p.Examples)
}

func (c *Components) resolveRefsInHeader(h *oas.Header) {
	if h == nil {
		return
	}
	h.Ref = c.expandRef(oas.KindHeader, h.Ref)
	h.Schema = c.schemaSlot(h.Schema)
	c.resolveExampleRefs(h.Examples)
}

func (c *Components) resolveExampleRefs(examples map[string]*oas.Example) {
	for _, ex := range examples {
		if ex != nil {
			ex.Ref = c.expandRef(oas.KindExample, ex.Ref)
		}
	}
}

func (c *Components) resolveRefsInMediaType(mt *oas.MediaType) {
	if mt == nil {
		return
	}
	mt.Schema = c.schemaSlot(mt.Schema)
	c.resolveExampleRefs(mt.Examples)
}

func (c *Components) resolveRefsInRequestBody(rb *oas.RequestBody) {
	if rb == nil {
		return
	}
	for _, mt := range rb.Content {
		c.resolveRefsInMediaType(mt)
	}
}

func (c *Components) resolveRefsInResponse(r *oas.Response) {
	if r == nil {
		return
	}
	r.Ref = c.expandRef(oas.KindResponse, r.Ref)
	if c.version().Major < 3 {
		r.Schema = c.schemaSlot(r.Schema)
		return
	}
	for _, mt := range r.Content {
		c.resolveRefsInMediaType(mt)
	}
	for _, h := range r.Headers {
		c.resolveRefsInHeader(h)
	}
}

func (c *Components) resolveRefsInOperation(op *oas.Operation) {
	if op == nil {
		return
	}
	for _, p := range op.Parameters {
		c.resolveRefsInParameter(p)
	}
	c.resolveRefsInRequestBody(op.RequestBody)
	for _, r := range op.Responses {
		c.resolveRefsInResponse(r)
	}
}

// resolveRefsInPathItem resolves component name references everywhere a
// path item can carry them.
func (c *Components) resolveRefsInPathItem(item *oas.PathItem) {
	if item == nil {
		return
	}
	for _, p := range item.Parameters {
		c.resolveRefsInParameter(p)
	}
	for _, op := range item.Operations() {
		c.resolveRefsInOperation(op)
	}
}

// toObject assembles the OAS 3.x components object, or nil when nothing was
// registered. Lazy components that were never referenced stay out.
func (c *Components) toObject() *oas.ComponentsObject {
	obj := &oas.ComponentsObject{}
	if len(c.schemas) > 0 {
		obj.Schemas = c.schemas
	}
	if len(c.responses) > 0 {
		obj.Responses = c.responses
	}
	if len(c.parameters) > 0 {
		obj.Parameters = c.parameters
	}
	if len(c.headers) > 0 {
		obj.Headers = c.headers
	}
	if len(c.examples) > 0 {
		obj.Examples = c.examples
	}
	if len(c.securitySchemes) > 0 {
		obj.SecuritySchemes = c.securitySchemes
	}
	if obj.IsEmpty() {
		return nil
	}
	return obj
}
