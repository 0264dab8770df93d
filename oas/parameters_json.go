package oas

import (
	json "github.com/goccy/go-json"
)

// MarshalJSON implements custom JSON marshaling for Parameter.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (p *Parameter) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(p.Extra) == 0 {
		type Alias Parameter
		return json.Marshal((*Alias)(p))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 12+len(p.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if p.Ref != "" {
		m["$ref"] = p.Ref
	}
	if p.Name != "" {
		m["name"] = p.Name
	}
	if p.In != "" {
		m["in"] = p.In
	}
	if p.Description != "" {
		m["description"] = p.Description
	}
	if p.Required {
		m["required"] = p.Required
	}
	if p.Deprecated {
		m["deprecated"] = p.Deprecated
	}
	if p.Schema != nil {
		m["schema"] = p.Schema
	}
	if p.Style != "" {
		m["style"] = p.Style
	}
	if p.Explode != nil {
		m["explode"] = p.Explode
	}
	if p.AllowReserved {
		m["allowReserved"] = p.AllowReserved
	}
	if p.Example != nil {
		m["example"] = p.Example
	}
	if len(p.Examples) > 0 {
		m["examples"] = p.Examples
	}
	if len(p.Content) > 0 {
		m["content"] = p.Content
	}
	if p.Type != "" {
		m["type"] = p.Type
	}
	if p.Format != "" {
		m["format"] = p.Format
	}
	if p.AllowEmptyValue {
		m["allowEmptyValue"] = p.AllowEmptyValue
	}
	if p.Items != nil {
		m["items"] = p.Items
	}
	if p.CollectionFormat != "" {
		m["collectionFormat"] = p.CollectionFormat
	}
	if p.Default != nil {
		m["default"] = p.Default
	}
	if p.Maximum != nil {
		m["maximum"] = p.Maximum
	}
	if p.ExclusiveMaximum {
		m["exclusiveMaximum"] = p.ExclusiveMaximum
	}
	if p.Minimum != nil {
		m["minimum"] = p.Minimum
	}
	if p.ExclusiveMinimum {
		m["exclusiveMinimum"] = p.ExclusiveMinimum
	}
	if p.MaxLength != nil {
		m["maxLength"] = p.MaxLength
	}
	if p.MinLength != nil {
		m["minLength"] = p.MinLength
	}
	if p.Pattern != "" {
		m["pattern"] = p.Pattern
	}
	if p.MaxItems != nil {
		m["maxItems"] = p.MaxItems
	}
	if p.MinItems != nil {
		m["minItems"] = p.MinItems
	}
	if p.UniqueItems {
		m["uniqueItems"] = p.UniqueItems
	}
	if len(p.Enum) > 0 {
		m["enum"] = p.Enum
	}
	if p.MultipleOf != nil {
		m["multipleOf"] = p.MultipleOf
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range p.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for Items.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (it *Items) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(it.Extra) == 0 {
		type Alias Items
		return json.Marshal((*Alias)(it))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 8+len(it.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	m["type"] = it.Type

	if it.Format != "" {
		m["format"] = it.Format
	}
	if it.Items != nil {
		m["items"] = it.Items
	}
	if it.CollectionFormat != "" {
		m["collectionFormat"] = it.CollectionFormat
	}
	if it.Default != nil {
		m["default"] = it.Default
	}
	if it.Maximum != nil {
		m["maximum"] = it.Maximum
	}
	if it.ExclusiveMaximum {
		m["exclusiveMaximum"] = it.ExclusiveMaximum
	}
	if it.Minimum != nil {
		m["minimum"] = it.Minimum
	}
	if it.ExclusiveMinimum {
		m["exclusiveMinimum"] = it.ExclusiveMinimum
	}
	if it.MaxLength != nil {
		m["maxLength"] = it.MaxLength
	}
	if it.MinLength != nil {
		m["minLength"] = it.MinLength
	}
	if it.Pattern != "" {
		m["pattern"] = it.Pattern
	}
	if it.MaxItems != nil {
		m["maxItems"] = it.MaxItems
	}
	if it.MinItems != nil {
		m["minItems"] = it.MinItems
	}
	if it.UniqueItems {
		m["uniqueItems"] = it.UniqueItems
	}
	if len(it.Enum) > 0 {
		m["enum"] = it.Enum
	}
	if it.MultipleOf != nil {
		m["multipleOf"] = it.MultipleOf
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range it.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for RequestBody.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (rb *RequestBody) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(rb.Extra) == 0 {
		type Alias RequestBody
		return json.Marshal((*Alias)(rb))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 4+len(rb.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if rb.Ref != "" {
		m["$ref"] = rb.Ref
	}
	if rb.Description != "" {
		m["description"] = rb.Description
	}
	if len(rb.Content) > 0 {
		m["content"] = rb.Content
	}
	if rb.Required {
		m["required"] = rb.Required
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range rb.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for Header.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (h *Header) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(h.Extra) == 0 {
		type Alias Header
		return json.Marshal((*Alias)(h))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 10+len(h.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if h.Ref != "" {
		m["$ref"] = h.Ref
	}
	if h.Description != "" {
		m["description"] = h.Description
	}
	if h.Required {
		m["required"] = h.Required
	}
	if h.Deprecated {
		m["deprecated"] = h.Deprecated
	}
	if h.Schema != nil {
		m["schema"] = h.Schema
	}
	if h.Style != "" {
		m["style"] = h.Style
	}
	if h.Explode != nil {
		m["explode"] = h.Explode
	}
	if h.Example != nil {
		m["example"] = h.Example
	}
	if len(h.Examples) > 0 {
		m["examples"] = h.Examples
	}
	if len(h.Content) > 0 {
		m["content"] = h.Content
	}
	if h.Type != "" {
		m["type"] = h.Type
	}
	if h.Format != "" {
		m["format"] = h.Format
	}
	if h.Items != nil {
		m["items"] = h.Items
	}
	if h.CollectionFormat != "" {
		m["collectionFormat"] = h.CollectionFormat
	}
	if h.Default != nil {
		m["default"] = h.Default
	}
	if h.Maximum != nil {
		m["maximum"] = h.Maximum
	}
	if h.ExclusiveMaximum {
		m["exclusiveMaximum"] = h.ExclusiveMaximum
	}
	if h.Minimum != nil {
		m["minimum"] = h.Minimum
	}
	if h.ExclusiveMinimum {
		m["exclusiveMinimum"] = h.ExclusiveMinimum
	}
	if h.MaxLength != nil {
		m["maxLength"] = h.MaxLength
	}
	if h.MinLength != nil {
		m["minLength"] = h.MinLength
	}
	if h.Pattern != "" {
		m["pattern"] = h.Pattern
	}
	if h.MaxItems != nil {
		m["maxItems"] = h.MaxItems
	}
	if h.MinItems != nil {
		m["minItems"] = h.MinItems
	}
	if h.UniqueItems {
		m["uniqueItems"] = h.UniqueItems
	}
	if len(h.Enum) > 0 {
		m["enum"] = h.Enum
	}
	if h.MultipleOf != nil {
		m["multipleOf"] = h.MultipleOf
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range h.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}
