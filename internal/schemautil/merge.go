package schemautil

import (
	"reflect"

	"github.com/erraggy/declspec/oas"
)

// Merge overlays every set field of src onto dst, mirroring how property
// dictionaries update one another during attribute conversion. A field
// counts as set when it differs from its zero value, so slices and maps
// replace wholesale while untouched fields of dst survive. Extensions are
// overlaid per key. Reference types are shared, not copied; clone src first
// when it must stay independent.
func Merge(dst, src *oas.Schema) {
	if dst == nil || src == nil {
		return
	}
	if src.Ref != "" {
		dst.Ref = src.Ref
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Description != "" {
		dst.Description = src.Description
	}
	if src.Default != nil {
		dst.Default = src.Default
	}
	if src.Type != nil {
		dst.Type = src.Type
	}
	if len(src.Enum) > 0 {
		dst.Enum = src.Enum
	}
	if src.MultipleOf != nil {
		dst.MultipleOf = src.MultipleOf
	}
	if src.Maximum != nil {
		dst.Maximum = src.Maximum
	}
	if src.ExclusiveMaximum != nil {
		dst.ExclusiveMaximum = src.ExclusiveMaximum
	}
	if src.Minimum != nil {
		dst.Minimum = src.Minimum
	}
	if src.ExclusiveMinimum != nil {
		dst.ExclusiveMinimum = src.ExclusiveMinimum
	}
	if src.MaxLength != nil {
		dst.MaxLength = src.MaxLength
	}
	if src.MinLength != nil {
		dst.MinLength = src.MinLength
	}
	if src.Pattern != "" {
		dst.Pattern = src.Pattern
	}
	if src.Items != nil {
		dst.Items = src.Items
	}
	if src.MaxItems != nil {
		dst.MaxItems = src.MaxItems
	}
	if src.MinItems != nil {
		dst.MinItems = src.MinItems
	}
	if src.UniqueItems {
		dst.UniqueItems = true
	}
	if len(src.Properties) > 0 {
		dst.Properties = src.Properties
	}
	if src.AdditionalProperties != nil {
		dst.AdditionalProperties = src.AdditionalProperties
	}
	if len(src.Required) > 0 {
		dst.Required = src.Required
	}
	if src.MaxProperties != nil {
		dst.MaxProperties = src.MaxProperties
	}
	if src.MinProperties != nil {
		dst.MinProperties = src.MinProperties
	}
	if len(src.AllOf) > 0 {
		dst.AllOf = src.AllOf
	}
	if len(src.AnyOf) > 0 {
		dst.AnyOf = src.AnyOf
	}
	if len(src.OneOf) > 0 {
		dst.OneOf = src.OneOf
	}
	if src.Not != nil {
		dst.Not = src.Not
	}
	if src.Nullable {
		dst.Nullable = true
	}
	if src.Discriminator != nil {
		dst.Discriminator = src.Discriminator
	}
	if src.ReadOnly {
		dst.ReadOnly = true
	}
	if src.WriteOnly {
		dst.WriteOnly = true
	}
	if src.XML != nil {
		dst.XML = src.XML
	}
	if src.ExternalDocs != nil {
		dst.ExternalDocs = src.ExternalDocs
	}
	if src.Example != nil {
		dst.Example = src.Example
	}
	if src.Deprecated {
		dst.Deprecated = true
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.CollectionFormat != "" {
		dst.CollectionFormat = src.CollectionFormat
	}
	for k, v := range src.Extra {
		dst.SetExtra(k, v)
	}
}

// IsEmpty reports whether the schema carries no information at all.
func IsEmpty(s *oas.Schema) bool {
	return s == nil || reflect.DeepEqual(*s, oas.Schema{})
}
