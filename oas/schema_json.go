package oas

import (
	json "github.com/goccy/go-json"
)

// MarshalJSON implements custom JSON marshaling for Schema.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (s *Schema) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(s.Extra) == 0 {
		type Alias Schema
		return json.Marshal((*Alias)(s))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 16+len(s.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if s.Ref != "" {
		m["$ref"] = s.Ref
	}
	if s.Title != "" {
		m["title"] = s.Title
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if s.Default != nil {
		m["default"] = s.Default
	}
	if s.Type != nil {
		m["type"] = s.Type
	}
	if len(s.Enum) > 0 {
		m["enum"] = s.Enum
	}
	if s.MultipleOf != nil {
		m["multipleOf"] = s.MultipleOf
	}
	if s.Maximum != nil {
		m["maximum"] = s.Maximum
	}
	if s.ExclusiveMaximum != nil {
		m["exclusiveMaximum"] = s.ExclusiveMaximum
	}
	if s.Minimum != nil {
		m["minimum"] = s.Minimum
	}
	if s.ExclusiveMinimum != nil {
		m["exclusiveMinimum"] = s.ExclusiveMinimum
	}
	if s.MaxLength != nil {
		m["maxLength"] = s.MaxLength
	}
	if s.MinLength != nil {
		m["minLength"] = s.MinLength
	}
	if s.Pattern != "" {
		m["pattern"] = s.Pattern
	}
	if s.Items != nil {
		m["items"] = s.Items
	}
	if s.MaxItems != nil {
		m["maxItems"] = s.MaxItems
	}
	if s.MinItems != nil {
		m["minItems"] = s.MinItems
	}
	if s.UniqueItems {
		m["uniqueItems"] = s.UniqueItems
	}
	if len(s.Properties) > 0 {
		m["properties"] = s.Properties
	}
	if s.AdditionalProperties != nil {
		m["additionalProperties"] = s.AdditionalProperties
	}
	if len(s.Required) > 0 {
		m["required"] = s.Required
	}
	if s.MaxProperties != nil {
		m["maxProperties"] = s.MaxProperties
	}
	if s.MinProperties != nil {
		m["minProperties"] = s.MinProperties
	}
	if len(s.AllOf) > 0 {
		m["allOf"] = s.AllOf
	}
	if len(s.AnyOf) > 0 {
		m["anyOf"] = s.AnyOf
	}
	if len(s.OneOf) > 0 {
		m["oneOf"] = s.OneOf
	}
	if s.Not != nil {
		m["not"] = s.Not
	}
	if s.Nullable {
		m["nullable"] = s.Nullable
	}
	if s.Discriminator != nil {
		m["discriminator"] = s.Discriminator
	}
	if s.ReadOnly {
		m["readOnly"] = s.ReadOnly
	}
	if s.WriteOnly {
		m["writeOnly"] = s.WriteOnly
	}
	if s.XML != nil {
		m["xml"] = s.XML
	}
	if s.ExternalDocs != nil {
		m["externalDocs"] = s.ExternalDocs
	}
	if s.Example != nil {
		m["example"] = s.Example
	}
	if s.Deprecated {
		m["deprecated"] = s.Deprecated
	}
	if s.Format != "" {
		m["format"] = s.Format
	}
	if s.CollectionFormat != "" {
		m["collectionFormat"] = s.CollectionFormat
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range s.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for Discriminator.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (d *Discriminator) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(d.Extra) == 0 {
		type Alias Discriminator
		return json.Marshal((*Alias)(d))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 2+len(d.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	m["propertyName"] = d.PropertyName

	if len(d.Mapping) > 0 {
		m["mapping"] = d.Mapping
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range d.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for XML.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (x *XML) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(x.Extra) == 0 {
		type Alias XML
		return json.Marshal((*Alias)(x))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 5+len(x.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if x.Name != "" {
		m["name"] = x.Name
	}
	if x.Namespace != "" {
		m["namespace"] = x.Namespace
	}
	if x.Prefix != "" {
		m["prefix"] = x.Prefix
	}
	if x.Attribute {
		m["attribute"] = x.Attribute
	}
	if x.Wrapped {
		m["wrapped"] = x.Wrapped
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range x.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}
