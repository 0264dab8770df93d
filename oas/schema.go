package oas

// Schema represents an OpenAPI Schema Object.
// Supports OAS 2.0 and OAS 3.x output from a single struct; version-specific
// keywords are simply left unset for the other version.
//
// The slots that participate in schema resolution (Items, Properties values,
// AdditionalProperties, AllOf/AnyOf/OneOf elements, Not) are typed any so a
// partially-built schema may hold declarative schema values until a resolver
// replaces them with *Schema or a Ref. Fully resolved schemas only contain
// *Schema in these slots.
type Schema struct {
	// Reference
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`

	// Type validation
	Type any   `yaml:"type,omitempty" json:"type,omitempty"` // string or []string (OAS 3.1+)
	Enum []any `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Numeric validation
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum any      `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"` // bool in OAS 2.0/3.0, number in 3.1+
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum any      `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"` // bool in OAS 2.0/3.0, number in 3.1+

	// String validation
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items       any  `yaml:"items,omitempty" json:"items,omitempty"` // *Schema once resolved
	MaxItems    *int `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems    *int `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems bool `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties           map[string]any `yaml:"properties,omitempty" json:"properties,omitempty"` // values are *Schema once resolved
	AdditionalProperties any            `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	Required             []string       `yaml:"required,omitempty" json:"required,omitempty"`
	MaxProperties        *int           `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties        *int           `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`

	// Schema composition
	AllOf []any `yaml:"allOf,omitempty" json:"allOf,omitempty"` // elements are *Schema once resolved
	AnyOf []any `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []any `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	Not   any   `yaml:"not,omitempty" json:"not,omitempty"`

	// OAS specific keywords
	Nullable      bool           `yaml:"nullable,omitempty" json:"nullable,omitempty"` // OAS 3.0 only (type list in 3.1+, x-nullable in 2.0)
	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	ReadOnly      bool           `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly     bool           `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"` // OAS 3.0+
	XML           *XML           `yaml:"xml,omitempty" json:"xml,omitempty"`
	ExternalDocs  *ExternalDocs  `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Example       any            `yaml:"example,omitempty" json:"example,omitempty"`
	Deprecated    bool           `yaml:"deprecated,omitempty" json:"deprecated,omitempty"` // OAS 3.0+

	// Format
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// OAS 2.0 specific
	CollectionFormat string `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// SetExtra records a specification extension, allocating the map on first use.
func (s *Schema) SetExtra(key string, value any) {
	if s.Extra == nil {
		s.Extra = make(map[string]any)
	}
	s.Extra[key] = value
}

// TypeList normalizes the Type slot to a list of type names.
// A scalar type yields a one-element list; nil yields an empty list.
func (s *Schema) TypeList() []string {
	return TypeList(s.Type)
}

// HasType reports whether the schema's type list contains name.
func (s *Schema) HasType(name string) bool {
	for _, t := range s.TypeList() {
		if t == name {
			return true
		}
	}
	return false
}

// TypeList normalizes a Schema.Type value (string, []string, or []any) to a
// list of type names.
func TypeList(t any) []string {
	switch v := t.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Discriminator represents a discriminator for polymorphism (OAS 3.0+).
type Discriminator struct {
	PropertyName string            `yaml:"propertyName" json:"propertyName"`
	Mapping      map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
	Extra        map[string]any    `yaml:",inline" json:"-"`
}

// XML represents metadata for XML encoding.
type XML struct {
	Name      string         `yaml:"name,omitempty" json:"name,omitempty"`
	Namespace string         `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Prefix    string         `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Attribute bool           `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Wrapped   bool           `yaml:"wrapped,omitempty" json:"wrapped,omitempty"`
	Extra     map[string]any `yaml:",inline" json:"-"`
}
