package oas

import (
	json "github.com/goccy/go-json"
)

// MarshalJSON implements custom JSON marshaling for PathItem.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (p *PathItem) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(p.Extra) == 0 {
		type Alias PathItem
		return json.Marshal((*Alias)(p))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 12+len(p.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if p.Ref != "" {
		m["$ref"] = p.Ref
	}
	if p.Summary != "" {
		m["summary"] = p.Summary
	}
	if p.Description != "" {
		m["description"] = p.Description
	}
	for method, op := range p.Operations() {
		m[method] = op
	}
	if len(p.Servers) > 0 {
		m["servers"] = p.Servers
	}
	if len(p.Parameters) > 0 {
		m["parameters"] = p.Parameters
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range p.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for Operation.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (o *Operation) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(o.Extra) == 0 {
		type Alias Operation
		return json.Marshal((*Alias)(o))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 12+len(o.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if len(o.Tags) > 0 {
		m["tags"] = o.Tags
	}
	if o.Summary != "" {
		m["summary"] = o.Summary
	}
	if o.Description != "" {
		m["description"] = o.Description
	}
	if o.ExternalDocs != nil {
		m["externalDocs"] = o.ExternalDocs
	}
	if o.OperationID != "" {
		m["operationId"] = o.OperationID
	}
	if len(o.Parameters) > 0 {
		m["parameters"] = o.Parameters
	}
	if o.RequestBody != nil {
		m["requestBody"] = o.RequestBody
	}
	if len(o.Responses) > 0 {
		m["responses"] = o.Responses
	}
	if len(o.Callbacks) > 0 {
		m["callbacks"] = o.Callbacks
	}
	if o.Deprecated {
		m["deprecated"] = o.Deprecated
	}
	if len(o.Security) > 0 {
		m["security"] = o.Security
	}
	if len(o.Servers) > 0 {
		m["servers"] = o.Servers
	}
	if len(o.Consumes) > 0 {
		m["consumes"] = o.Consumes
	}
	if len(o.Produces) > 0 {
		m["produces"] = o.Produces
	}
	if len(o.Schemes) > 0 {
		m["schemes"] = o.Schemes
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range o.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for Response.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (r *Response) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(r.Extra) == 0 {
		type Alias Response
		return json.Marshal((*Alias)(r))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 7+len(r.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if r.Ref != "" {
		m["$ref"] = r.Ref
	}
	if r.Description != "" {
		m["description"] = r.Description
	}
	if len(r.Headers) > 0 {
		m["headers"] = r.Headers
	}
	if len(r.Content) > 0 {
		m["content"] = r.Content
	}
	if len(r.Links) > 0 {
		m["links"] = r.Links
	}
	if r.Schema != nil {
		m["schema"] = r.Schema
	}
	if len(r.Examples) > 0 {
		m["examples"] = r.Examples
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range r.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for Link.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (l *Link) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(l.Extra) == 0 {
		type Alias Link
		return json.Marshal((*Alias)(l))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 7+len(l.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if l.Ref != "" {
		m["$ref"] = l.Ref
	}
	if l.OperationRef != "" {
		m["operationRef"] = l.OperationRef
	}
	if l.OperationID != "" {
		m["operationId"] = l.OperationID
	}
	if len(l.Parameters) > 0 {
		m["parameters"] = l.Parameters
	}
	if l.RequestBody != nil {
		m["requestBody"] = l.RequestBody
	}
	if l.Description != "" {
		m["description"] = l.Description
	}
	if l.Server != nil {
		m["server"] = l.Server
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range l.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for MediaType.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (mt *MediaType) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(mt.Extra) == 0 {
		type Alias MediaType
		return json.Marshal((*Alias)(mt))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 4+len(mt.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if mt.Schema != nil {
		m["schema"] = mt.Schema
	}
	if mt.Example != nil {
		m["example"] = mt.Example
	}
	if len(mt.Examples) > 0 {
		m["examples"] = mt.Examples
	}
	if len(mt.Encoding) > 0 {
		m["encoding"] = mt.Encoding
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range mt.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for Example.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (e *Example) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(e.Extra) == 0 {
		type Alias Example
		return json.Marshal((*Alias)(e))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 5+len(e.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if e.Ref != "" {
		m["$ref"] = e.Ref
	}
	if e.Summary != "" {
		m["summary"] = e.Summary
	}
	if e.Description != "" {
		m["description"] = e.Description
	}
	if e.Value != nil {
		m["value"] = e.Value
	}
	if e.ExternalValue != "" {
		m["externalValue"] = e.ExternalValue
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range e.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for Encoding.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (e *Encoding) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(e.Extra) == 0 {
		type Alias Encoding
		return json.Marshal((*Alias)(e))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 5+len(e.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if e.ContentType != "" {
		m["contentType"] = e.ContentType
	}
	if len(e.Headers) > 0 {
		m["headers"] = e.Headers
	}
	if e.Style != "" {
		m["style"] = e.Style
	}
	if e.Explode != nil {
		m["explode"] = e.Explode
	}
	if e.AllowReserved {
		m["allowReserved"] = e.AllowReserved
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range e.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}
