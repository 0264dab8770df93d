// Package schemautil provides deep-copy and merge helpers for the oas
// document types. Component registration and path registration copy their
// inputs so later caller mutations never leak into the document.
//
// Declarative schema values (schema instances, definitions, registry names)
// found in any-typed slots pass through by reference: resolution treats them
// as immutable and keys registrations on their identity.
package schemautil

import (
	"slices"

	"github.com/erraggy/declspec/oas"
)

// clonePtr copies the value behind a pointer, preserving nil.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneStringMap copies a map of scalar strings, preserving nil.
func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CloneJSONValue deep-copies a decoded JSON value: maps and slices are
// copied recursively, scalars are returned as-is. Values of other types
// (typed structs, declarative schema values) pass through by reference.
func CloneJSONValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = CloneJSONValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CloneJSONValue(item)
		}
		return out
	default:
		return v
	}
}

// CloneExtensions copies a specification extension map, preserving nil.
func CloneExtensions(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = CloneJSONValue(v)
	}
	return out
}

// cloneAnySlice copies a slice of JSON values, preserving nil.
func cloneAnySlice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = CloneJSONValue(v)
	}
	return out
}

// CloneSchemaSlot copies a value held in a schema resolution slot (items,
// property values, additionalProperties, composition elements). Resolved
// *Schema values are deep-copied, raw JSON values are copied recursively,
// and anything else (booleans, declarative schema values) passes through.
func CloneSchemaSlot(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case *oas.Schema:
		return CloneSchema(val)
	case map[string]any, []any:
		return CloneJSONValue(val)
	default:
		return v
	}
}

// cloneSlotSlice copies a slice of schema slots, preserving nil.
func cloneSlotSlice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = CloneSchemaSlot(v)
	}
	return out
}

func cloneDiscriminator(d *oas.Discriminator) *oas.Discriminator {
	if d == nil {
		return nil
	}
	out := *d
	out.Mapping = cloneStringMap(d.Mapping)
	out.Extra = CloneExtensions(d.Extra)
	return &out
}

func cloneXML(x *oas.XML) *oas.XML {
	if x == nil {
		return nil
	}
	out := *x
	out.Extra = CloneExtensions(x.Extra)
	return &out
}

// CloneExternalDocs deep-copies an external documentation object.
func CloneExternalDocs(d *oas.ExternalDocs) *oas.ExternalDocs {
	if d == nil {
		return nil
	}
	out := *d
	out.Extra = CloneExtensions(d.Extra)
	return &out
}

// CloneSchema deep-copies a schema, including every resolution slot.
func CloneSchema(s *oas.Schema) *oas.Schema {
	if s == nil {
		return nil
	}
	out := *s

	out.Default = CloneJSONValue(s.Default)
	out.Example = CloneJSONValue(s.Example)
	out.Type = CloneJSONValue(s.Type)
	if lst, ok := s.Type.([]string); ok {
		out.Type = slices.Clone(lst)
	}
	out.Enum = cloneAnySlice(s.Enum)

	out.MultipleOf = clonePtr(s.MultipleOf)
	out.Maximum = clonePtr(s.Maximum)
	out.Minimum = clonePtr(s.Minimum)
	out.ExclusiveMaximum = CloneJSONValue(s.ExclusiveMaximum)
	out.ExclusiveMinimum = CloneJSONValue(s.ExclusiveMinimum)
	out.MaxLength = clonePtr(s.MaxLength)
	out.MinLength = clonePtr(s.MinLength)
	out.MaxItems = clonePtr(s.MaxItems)
	out.MinItems = clonePtr(s.MinItems)
	out.MaxProperties = clonePtr(s.MaxProperties)
	out.MinProperties = clonePtr(s.MinProperties)

	out.Items = CloneSchemaSlot(s.Items)
	if s.Properties != nil {
		out.Properties = make(map[string]any, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = CloneSchemaSlot(v)
		}
	}
	out.AdditionalProperties = CloneSchemaSlot(s.AdditionalProperties)
	out.Required = slices.Clone(s.Required)

	out.AllOf = cloneSlotSlice(s.AllOf)
	out.AnyOf = cloneSlotSlice(s.AnyOf)
	out.OneOf = cloneSlotSlice(s.OneOf)
	out.Not = CloneSchemaSlot(s.Not)

	out.Discriminator = cloneDiscriminator(s.Discriminator)
	out.XML = cloneXML(s.XML)
	out.ExternalDocs = CloneExternalDocs(s.ExternalDocs)
	out.Extra = CloneExtensions(s.Extra)
	return &out
}

// CloneItems deep-copies an OAS 2.0 items object.
func CloneItems(it *oas.Items) *oas.Items {
	if it == nil {
		return nil
	}
	out := *it
	out.Items = CloneItems(it.Items)
	out.Default = CloneJSONValue(it.Default)
	out.Maximum = clonePtr(it.Maximum)
	out.Minimum = clonePtr(it.Minimum)
	out.MaxLength = clonePtr(it.MaxLength)
	out.MinLength = clonePtr(it.MinLength)
	out.MaxItems = clonePtr(it.MaxItems)
	out.MinItems = clonePtr(it.MinItems)
	out.Enum = cloneAnySlice(it.Enum)
	out.MultipleOf = clonePtr(it.MultipleOf)
	out.Extra = CloneExtensions(it.Extra)
	return &out
}

// CloneExample deep-copies an example object.
func CloneExample(e *oas.Example) *oas.Example {
	if e == nil {
		return nil
	}
	out := *e
	out.Value = CloneJSONValue(e.Value)
	out.Extra = CloneExtensions(e.Extra)
	return &out
}

func cloneExamples(m map[string]*oas.Example) map[string]*oas.Example {
	if m == nil {
		return nil
	}
	out := make(map[string]*oas.Example, len(m))
	for k, v := range m {
		out[k] = CloneExample(v)
	}
	return out
}

// CloneEncoding deep-copies an encoding object.
func CloneEncoding(e *oas.Encoding) *oas.Encoding {
	if e == nil {
		return nil
	}
	out := *e
	out.Headers = cloneHeaders(e.Headers)
	out.Explode = clonePtr(e.Explode)
	out.Extra = CloneExtensions(e.Extra)
	return &out
}

// CloneMediaType deep-copies a media type object.
func CloneMediaType(mt *oas.MediaType) *oas.MediaType {
	if mt == nil {
		return nil
	}
	out := *mt
	out.Schema = CloneSchemaSlot(mt.Schema)
	out.Example = CloneJSONValue(mt.Example)
	out.Examples = cloneExamples(mt.Examples)
	if mt.Encoding != nil {
		out.Encoding = make(map[string]*oas.Encoding, len(mt.Encoding))
		for k, v := range mt.Encoding {
			out.Encoding[k] = CloneEncoding(v)
		}
	}
	out.Extra = CloneExtensions(mt.Extra)
	return &out
}

func cloneContent(m map[string]*oas.MediaType) map[string]*oas.MediaType {
	if m == nil {
		return nil
	}
	out := make(map[string]*oas.MediaType, len(m))
	for k, v := range m {
		out[k] = CloneMediaType(v)
	}
	return out
}

// CloneParameter deep-copies a parameter object.
func CloneParameter(p *oas.Parameter) *oas.Parameter {
	if p == nil {
		return nil
	}
	out := *p
	out.Schema = CloneSchemaSlot(p.Schema)
	out.Explode = clonePtr(p.Explode)
	out.Example = CloneJSONValue(p.Example)
	out.Examples = cloneExamples(p.Examples)
	out.Content = cloneContent(p.Content)
	out.Items = CloneItems(p.Items)
	out.Default = CloneJSONValue(p.Default)
	out.Maximum = clonePtr(p.Maximum)
	out.Minimum = clonePtr(p.Minimum)
	out.MaxLength = clonePtr(p.MaxLength)
	out.MinLength = clonePtr(p.MinLength)
	out.MaxItems = clonePtr(p.MaxItems)
	out.MinItems = clonePtr(p.MinItems)
	out.Enum = cloneAnySlice(p.Enum)
	out.MultipleOf = clonePtr(p.MultipleOf)
	out.Extra = CloneExtensions(p.Extra)
	return &out
}

// CloneParameters deep-copies a parameter list, preserving nil.
func CloneParameters(params []*oas.Parameter) []*oas.Parameter {
	if params == nil {
		return nil
	}
	out := make([]*oas.Parameter, len(params))
	for i, p := range params {
		out[i] = CloneParameter(p)
	}
	return out
}

// CloneHeader deep-copies a header object.
func CloneHeader(h *oas.Header) *oas.Header {
	if h == nil {
		return nil
	}
	out := *h
	out.Schema = CloneSchemaSlot(h.Schema)
	out.Explode = clonePtr(h.Explode)
	out.Example = CloneJSONValue(h.Example)
	out.Examples = cloneExamples(h.Examples)
	out.Content = cloneContent(h.Content)
	out.Items = CloneItems(h.Items)
	out.Default = CloneJSONValue(h.Default)
	out.Maximum = clonePtr(h.Maximum)
	out.Minimum = clonePtr(h.Minimum)
	out.MaxLength = clonePtr(h.MaxLength)
	out.MinLength = clonePtr(h.MinLength)
	out.MaxItems = clonePtr(h.MaxItems)
	out.MinItems = clonePtr(h.MinItems)
	out.Enum = cloneAnySlice(h.Enum)
	out.MultipleOf = clonePtr(h.MultipleOf)
	out.Extra = CloneExtensions(h.Extra)
	return &out
}

func cloneHeaders(m map[string]*oas.Header) map[string]*oas.Header {
	if m == nil {
		return nil
	}
	out := make(map[string]*oas.Header, len(m))
	for k, v := range m {
		out[k] = CloneHeader(v)
	}
	return out
}

// CloneRequestBody deep-copies a request body object.
func CloneRequestBody(rb *oas.RequestBody) *oas.RequestBody {
	if rb == nil {
		return nil
	}
	out := *rb
	out.Content = cloneContent(rb.Content)
	out.Extra = CloneExtensions(rb.Extra)
	return &out
}

// CloneLink deep-copies a link object.
func CloneLink(l *oas.Link) *oas.Link {
	if l == nil {
		return nil
	}
	out := *l
	if l.Parameters != nil {
		out.Parameters = make(map[string]any, len(l.Parameters))
		for k, v := range l.Parameters {
			out.Parameters[k] = CloneJSONValue(v)
		}
	}
	out.RequestBody = CloneJSONValue(l.RequestBody)
	out.Server = CloneServer(l.Server)
	out.Extra = CloneExtensions(l.Extra)
	return &out
}

// CloneResponse deep-copies a response object.
func CloneResponse(r *oas.Response) *oas.Response {
	if r == nil {
		return nil
	}
	out := *r
	out.Headers = cloneHeaders(r.Headers)
	out.Content = cloneContent(r.Content)
	if r.Links != nil {
		out.Links = make(map[string]*oas.Link, len(r.Links))
		for k, v := range r.Links {
			out.Links[k] = CloneLink(v)
		}
	}
	out.Schema = CloneSchemaSlot(r.Schema)
	if r.Examples != nil {
		out.Examples = make(map[string]any, len(r.Examples))
		for k, v := range r.Examples {
			out.Examples[k] = CloneJSONValue(v)
		}
	}
	out.Extra = CloneExtensions(r.Extra)
	return &out
}

// CloneResponses deep-copies a responses map, preserving nil.
func CloneResponses(rs oas.Responses) oas.Responses {
	if rs == nil {
		return nil
	}
	out := make(oas.Responses, len(rs))
	for k, v := range rs {
		out[k] = CloneResponse(v)
	}
	return out
}

// CloneServer deep-copies a server object.
func CloneServer(s *oas.Server) *oas.Server {
	if s == nil {
		return nil
	}
	out := *s
	if s.Variables != nil {
		out.Variables = make(map[string]oas.ServerVariable, len(s.Variables))
		for k, v := range s.Variables {
			v.Enum = slices.Clone(v.Enum)
			v.Extra = CloneExtensions(v.Extra)
			out.Variables[k] = v
		}
	}
	out.Extra = CloneExtensions(s.Extra)
	return &out
}

// CloneServers deep-copies a server list, preserving nil.
func CloneServers(s []*oas.Server) []*oas.Server {
	if s == nil {
		return nil
	}
	out := make([]*oas.Server, len(s))
	for i, v := range s {
		out[i] = CloneServer(v)
	}
	return out
}

// CloneSecurityRequirements deep-copies a security requirement list.
func CloneSecurityRequirements(reqs []oas.SecurityRequirement) []oas.SecurityRequirement {
	if reqs == nil {
		return nil
	}
	out := make([]oas.SecurityRequirement, len(reqs))
	for i, req := range reqs {
		c := make(oas.SecurityRequirement, len(req))
		for k, scopes := range req {
			c[k] = slices.Clone(scopes)
		}
		out[i] = c
	}
	return out
}

// CloneSecurityScheme deep-copies a security scheme object.
func CloneSecurityScheme(s *oas.SecurityScheme) *oas.SecurityScheme {
	if s == nil {
		return nil
	}
	out := *s
	if s.Flows != nil {
		flows := *s.Flows
		flows.Implicit = cloneOAuthFlow(s.Flows.Implicit)
		flows.Password = cloneOAuthFlow(s.Flows.Password)
		flows.ClientCredentials = cloneOAuthFlow(s.Flows.ClientCredentials)
		flows.AuthorizationCode = cloneOAuthFlow(s.Flows.AuthorizationCode)
		flows.Extra = CloneExtensions(s.Flows.Extra)
		out.Flows = &flows
	}
	out.Scopes = cloneStringMap(s.Scopes)
	out.Extra = CloneExtensions(s.Extra)
	return &out
}

func cloneOAuthFlow(f *oas.OAuthFlow) *oas.OAuthFlow {
	if f == nil {
		return nil
	}
	out := *f
	out.Scopes = cloneStringMap(f.Scopes)
	out.Extra = CloneExtensions(f.Extra)
	return &out
}

// CloneOperation deep-copies an operation object.
func CloneOperation(op *oas.Operation) *oas.Operation {
	if op == nil {
		return nil
	}
	out := *op
	out.Tags = slices.Clone(op.Tags)
	out.ExternalDocs = CloneExternalDocs(op.ExternalDocs)
	out.Parameters = CloneParameters(op.Parameters)
	out.RequestBody = CloneRequestBody(op.RequestBody)
	out.Responses = CloneResponses(op.Responses)
	if op.Callbacks != nil {
		out.Callbacks = make(map[string]*oas.Callback, len(op.Callbacks))
		for k, v := range op.Callbacks {
			out.Callbacks[k] = CloneCallback(v)
		}
	}
	out.Security = CloneSecurityRequirements(op.Security)
	out.Servers = CloneServers(op.Servers)
	out.Consumes = slices.Clone(op.Consumes)
	out.Produces = slices.Clone(op.Produces)
	out.Schemes = slices.Clone(op.Schemes)
	out.Extra = CloneExtensions(op.Extra)
	return &out
}

// ClonePathItem deep-copies a path item and every operation on it.
func ClonePathItem(p *oas.PathItem) *oas.PathItem {
	if p == nil {
		return nil
	}
	out := *p
	out.Get = CloneOperation(p.Get)
	out.Put = CloneOperation(p.Put)
	out.Post = CloneOperation(p.Post)
	out.Delete = CloneOperation(p.Delete)
	out.Options = CloneOperation(p.Options)
	out.Head = CloneOperation(p.Head)
	out.Patch = CloneOperation(p.Patch)
	out.Trace = CloneOperation(p.Trace)
	out.Servers = CloneServers(p.Servers)
	out.Parameters = CloneParameters(p.Parameters)
	out.Extra = CloneExtensions(p.Extra)
	return &out
}

// CloneCallback deep-copies a callback map, preserving nil.
func CloneCallback(cb *oas.Callback) *oas.Callback {
	if cb == nil {
		return nil
	}
	out := make(oas.Callback, len(*cb))
	for k, v := range *cb {
		out[k] = ClonePathItem(v)
	}
	return &out
}
