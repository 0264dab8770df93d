package converter

import (
	"fmt"

	"github.com/erraggy/declspec/oaserrors"
	"github.com/erraggy/declspec/schema"
)

// TypeFormat pairs the JSON Schema type and format a field kind maps to.
// Either half may be empty; container kinds map to an empty pair and let
// the structural attribute functions fill the property in.
type TypeFormat struct {
	Type   string
	Format string
}

// TypeMapping maps field kinds to their type and format.
type TypeMapping map[schema.Kind]TypeFormat

// DefaultTypeMapping returns a fresh copy of the built-in kind table. Each
// Converter owns its own copy so MapKind never leaks across converters.
func DefaultTypeMapping() TypeMapping {
	return TypeMapping{
		schema.KindRaw:      {},
		schema.KindString:   {Type: "string"},
		schema.KindInteger:  {Type: "integer"},
		schema.KindNumber:   {Type: "number"},
		schema.KindDecimal:  {Type: "number"},
		schema.KindBoolean:  {Type: "boolean"},
		schema.KindUUID:     {Type: "string", Format: "uuid"},
		schema.KindDateTime: {Type: "string", Format: "date-time"},
		schema.KindDate:     {Type: "string", Format: "date"},
		schema.KindTime:     {Type: "string"},
		schema.KindDuration: {Type: "integer"},
		schema.KindEmail:    {Type: "string", Format: "email"},
		schema.KindURL:      {Type: "string", Format: "url"},
		schema.KindList:     {Type: "array"},
		schema.KindMap:      {Type: "object"},
		schema.KindNested:   {},
		schema.KindPluck:    {},
		schema.KindEnum:     {},
	}
}

// MapKind registers or overrides the type and format for a field kind.
// Custom kinds declared with schema.Custom need a mapping here or an
// Inherits link to a mapped kind; otherwise conversion falls back to
// "string" with a warning.
func (c *Converter) MapKind(kind schema.Kind, typ, format string) {
	c.mapping[kind] = TypeFormat{Type: typ, Format: format}
}

// MapKindTo maps kind to the same type and format as target. It fails when
// target itself has no mapping.
func (c *Converter) MapKindTo(kind, target schema.Kind) error {
	tf, ok := c.mapping[target]
	if !ok {
		return &oaserrors.SchemaError{
			Value:   target,
			Op:      "MapKindTo",
			Message: fmt.Sprintf("kind %q has no type mapping to share", target),
		}
	}
	c.mapping[kind] = tf
	return nil
}

// lookupType resolves the type mapping for a field, following the Inherits
// link the way subclass resolution works for custom fields. The returned
// bool reports whether the kind or its ancestor was mapped.
func (c *Converter) lookupType(f *schema.Field) (TypeFormat, bool) {
	if tf, ok := c.mapping[f.Kind]; ok {
		return tf, true
	}
	if f.Inherits != "" {
		if tf, ok := c.mapping[f.Inherits]; ok {
			return tf, true
		}
	}
	return TypeFormat{}, false
}
