package schema

import (
	"github.com/erraggy/declspec/schema/validate"
)

// DateTime formats understood by the converter. Any other value passed to
// Field.Format is treated as a custom layout: the generated property keeps
// type string and takes its pattern from the "pattern" metadata key.
const (
	DateTimeISO         = "iso"
	DateTimeRFC         = "rfc"
	DateTimeTimestamp   = "timestamp"
	DateTimeTimestampMS = "timestamp_ms"
)

// Duration precision units. The generated property records the unit under
// the x-unit extension.
const (
	UnitDays         = "days"
	UnitHours        = "hours"
	UnitMinutes      = "minutes"
	UnitSeconds      = "seconds"
	UnitMilliseconds = "milliseconds"
	UnitMicroseconds = "microseconds"
	UnitWeeks        = "weeks"
)

// Field declares a single named member of a Definition. Construct one with
// the kind helpers (String, Int, NewList, NewNested, ...) and refine it with
// the chainable setters; every setter mutates the receiver and returns it.
//
// All state is exported so converters can read it directly. Fields are not
// safe for concurrent mutation.
type Field struct {
	// Kind selects the type mapping. Inherits names the kind a custom
	// field falls back to when Kind itself has no mapping.
	Kind     Kind
	Inherits Kind

	IsRequired bool
	// AllowNone marks the field nullable. Depending on the target version
	// this becomes x-nullable, nullable, or a "null" entry in the type list.
	AllowNone  bool
	IsDumpOnly bool
	IsLoadOnly bool

	// DataKey overrides the declared name in generated documents.
	DataKey string

	// HasDefault gates DefaultValue so that explicit zero values survive.
	// DefaultFn declares a dynamic default; it never appears in generated
	// documents.
	HasDefault   bool
	DefaultValue any
	DefaultFn    func() any

	// Rules hold declarative validation; the converter inspects them
	// through the capability interfaces in schema/validate.
	Rules []validate.Validator

	// Metadata carries free-form keys merged into the generated property.
	// Recognized OpenAPI keywords are applied directly, keys starting with
	// x_ or x- become extensions, anything else is silently ignored.
	Metadata map[string]any

	// Inner is the element field of List and Enum kinds. MapValue, when
	// set, types the values of a Map kind.
	Inner    *Field
	MapValue *Field

	// Target of a Nested or Pluck kind: a *Definition, a *Schema instance,
	// or a string resolved through the converter's registry. TargetField
	// names the plucked member.
	Target      any
	TargetField string

	// IsMany wraps the nested target in an array. Only meaningful on
	// Nested and Pluck kinds; lists already declare their own element.
	IsMany bool

	// EnumValues lists the admissible values of an Enum kind, in
	// declaration order, already in their serialized form.
	EnumValues []any

	// TimeFormat selects the DateTime representation. Precision is the
	// Duration unit.
	TimeFormat string
	Precision  string
}

// Raw declares a field with no type constraint.
func Raw() *Field { return &Field{Kind: KindRaw} }

// String declares a plain string field.
func String() *Field { return &Field{Kind: KindString} }

// Int declares an integer field.
func Int() *Field { return &Field{Kind: KindInteger} }

// Number declares a floating point field.
func Number() *Field { return &Field{Kind: KindNumber} }

// Decimal declares an arbitrary precision number field.
func Decimal() *Field { return &Field{Kind: KindDecimal} }

// Boolean declares a boolean field.
func Boolean() *Field { return &Field{Kind: KindBoolean} }

// UUID declares a string field with uuid format.
func UUID() *Field { return &Field{Kind: KindUUID} }

// DateTime declares a timestamp field. By default it converts to a string
// with date-time format; see Field.Format for the other representations.
func DateTime() *Field { return &Field{Kind: KindDateTime} }

// Date declares a calendar date field.
func Date() *Field { return &Field{Kind: KindDate} }

// Time declares a time of day field.
func Time() *Field { return &Field{Kind: KindTime} }

// Duration declares an integer duration counted in Precision units,
// seconds unless changed with Unit.
func Duration() *Field { return &Field{Kind: KindDuration, Precision: UnitSeconds} }

// Email declares a string field with email format.
func Email() *Field { return &Field{Kind: KindEmail} }

// URL declares a string field with url format.
func URL() *Field { return &Field{Kind: KindURL} }

// NewList declares an array field with the given element field.
func NewList(inner *Field) *Field {
	return &Field{Kind: KindList, Inner: inner}
}

// NewMap declares an object field with free-form keys. Type the values with
// Value.
func NewMap() *Field { return &Field{Kind: KindMap} }

// NewNested embeds another schema. The target may be a *Definition, a
// *Schema instance, or a registry name.
func NewNested(target any) *Field {
	return &Field{Kind: KindNested, Target: target}
}

// NewPluck embeds a single field of another schema. The target follows the
// NewNested forms; fieldName is the declared name of the plucked member.
func NewPluck(target any, fieldName string) *Field {
	return &Field{Kind: KindPluck, Target: target, TargetField: fieldName}
}

// NewEnum declares a field restricted to the given values, serialized by
// the inner field. A nil inner defaults to String.
func NewEnum(inner *Field, values ...any) *Field {
	if inner == nil {
		inner = String()
	}
	return &Field{Kind: KindEnum, Inner: inner, EnumValues: values}
}

// Custom declares a field of an application-defined kind. The converter
// resolves unmapped kinds through inherits before giving up.
func Custom(kind, inherits Kind) *Field {
	return &Field{Kind: kind, Inherits: inherits}
}

// Required marks the field required.
func (f *Field) Required() *Field {
	f.IsRequired = true
	return f
}

// Nullable allows null values.
func (f *Field) Nullable() *Field {
	f.AllowNone = true
	return f
}

// DumpOnly restricts the field to responses. Converted properties carry
// readOnly.
func (f *Field) DumpOnly() *Field {
	f.IsDumpOnly = true
	return f
}

// LoadOnly restricts the field to requests. Converted properties carry
// writeOnly on OpenAPI 3 and later.
func (f *Field) LoadOnly() *Field {
	f.IsLoadOnly = true
	return f
}

// Key sets the name the field appears under in documents.
func (f *Field) Key(dataKey string) *Field {
	f.DataKey = dataKey
	return f
}

// Default records the documented default value. An explicit nil is kept.
func (f *Field) Default(v any) *Field {
	f.HasDefault = true
	f.DefaultValue = v
	return f
}

// DefaultFunc records a dynamic default. Dynamic defaults are omitted from
// generated documents.
func (f *Field) DefaultFunc(fn func() any) *Field {
	f.DefaultFn = fn
	return f
}

// Validate appends validation rules.
func (f *Field) Validate(rules ...validate.Validator) *Field {
	f.Rules = append(f.Rules, rules...)
	return f
}

// Meta sets one metadata key.
func (f *Field) Meta(key string, value any) *Field {
	if f.Metadata == nil {
		f.Metadata = make(map[string]any)
	}
	f.Metadata[key] = value
	return f
}

// Doc sets the description metadata.
func (f *Field) Doc(description string) *Field {
	return f.Meta("description", description)
}

// Title sets the title metadata.
func (f *Field) Title(title string) *Field {
	return f.Meta("title", title)
}

// Example sets the example metadata.
func (f *Field) Example(v any) *Field {
	return f.Meta("example", v)
}

// Many wraps a Nested or Pluck target in an array.
func (f *Field) Many() *Field {
	f.IsMany = true
	return f
}

// Format selects the DateTime representation: DateTimeISO, DateTimeRFC,
// DateTimeTimestamp, DateTimeTimestampMS, or a custom layout.
func (f *Field) Format(format string) *Field {
	f.TimeFormat = format
	return f
}

// Unit sets the Duration precision.
func (f *Field) Unit(precision string) *Field {
	f.Precision = precision
	return f
}

// Value types the values of a Map field.
func (f *Field) Value(v *Field) *Field {
	f.MapValue = v
	return f
}

// Clone returns a copy with its own Rules, Metadata, and EnumValues.
// Inner, MapValue, and Target are shared with the original.
func (f *Field) Clone() *Field {
	if f == nil {
		return nil
	}
	c := *f
	if f.Rules != nil {
		c.Rules = make([]validate.Validator, len(f.Rules))
		copy(c.Rules, f.Rules)
	}
	if f.Metadata != nil {
		c.Metadata = make(map[string]any, len(f.Metadata))
		for k, v := range f.Metadata {
			c.Metadata[k] = v
		}
	}
	if f.EnumValues != nil {
		c.EnumValues = make([]any, len(f.EnumValues))
		copy(c.EnumValues, f.EnumValues)
	}
	return &c
}

// ObservedName returns the name the field appears under in generated
// documents: DataKey when set, otherwise the declared name.
func (f *Field) ObservedName(declared string) string {
	if f.DataKey != "" {
		return f.DataKey
	}
	return declared
}
