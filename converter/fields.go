package converter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/declspec/internal/maputil"
	"github.com/erraggy/declspec/internal/schemautil"
	"github.com/erraggy/declspec/oas"
	"github.com/erraggy/declspec/oaserrors"
	"github.com/erraggy/declspec/schema"
	"github.com/erraggy/declspec/schema/validate"
)

// rfc2822Pattern matches the RFC 2822 date representation emitted for
// DateTime fields in "rfc" format.
const rfc2822Pattern = `((Mon|Tue|Wed|Thu|Fri|Sat|Sun), ){0,1}\d{2} ` +
	`(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) \d{4} \d{2}:\d{2}:\d{2} ` +
	`(UT|GMT|EST|EDT|CST|CDT|MST|MDT|PST|PDT|(Z|A|M|N)|(\+|-)\d{4})`

// AttributeFunc inspects one aspect of a field and folds the matching
// keywords into the accumulating property. Built-ins run in a fixed order
// so later functions can key off what earlier ones set; functions added
// with AddAttributeFunc run after every built-in and may overwrite.
type AttributeFunc func(f *schema.Field, prop *oas.Schema) error

// Property converts a single field declaration to a Schema Object by
// running the attribute pipeline over an empty property. The field is
// never mutated; calling Property twice yields equal results.
func (c *Converter) Property(f *schema.Field) (*oas.Schema, error) {
	if f == nil {
		return nil, &oaserrors.SchemaError{Op: "Property", Message: "cannot convert a nil field"}
	}
	prop := &oas.Schema{}
	for _, fn := range c.attrFuncs {
		if err := fn(f, prop); err != nil {
			return nil, err
		}
	}
	return prop, nil
}

// AddAttributeFunc appends fn to the attribute pipeline for this converter.
func (c *Converter) AddAttributeFunc(fn AttributeFunc) {
	if fn != nil {
		c.attrFuncs = append(c.attrFuncs, fn)
	}
}

// typeAndFormat seeds the property from the kind table. An unmapped kind
// with no mapped ancestor degrades to a plain string with a warning.
func (c *Converter) typeAndFormat(f *schema.Field, prop *oas.Schema) error {
	tf, ok := c.lookupType(f)
	if !ok {
		c.record(SeverityWarning, "", "", f.Kind, fmt.Sprintf(
			"field kind %q has no type mapping and no mapped ancestor; emitting it as a string", f.Kind))
		tf = TypeFormat{Type: "string"}
	}
	if tf.Type != "" {
		prop.Type = tf.Type
	}
	if tf.Format != "" {
		prop.Format = tf.Format
	}
	return nil
}

// defaultValue emits the declared default. A documentation-only "default"
// metadata key wins over the declared value, and dynamic defaults never
// appear because their value is unknown until runtime.
func (c *Converter) defaultValue(f *schema.Field, prop *oas.Schema) error {
	if v, ok := f.Metadata["default"]; ok {
		prop.Default = v
		return nil
	}
	if f.HasDefault && f.DefaultFn == nil {
		prop.Default = f.DefaultValue
	}
	return nil
}

// choices folds Equal and OneOf rules into an enum. Equal values win over
// OneOf sets; multiple OneOf sets intersect preserving the first rule's
// order. A nullable field appends nil to an existing enum.
func (c *Converter) choices(f *schema.Field, prop *oas.Schema) error {
	var enum []any
	for _, rule := range f.Rules {
		if eq, ok := rule.(validate.EqualRule); ok {
			enum = append(enum, eq.EqualValue())
		}
	}
	if enum == nil {
		var sets [][]any
		for _, rule := range f.Rules {
			if ch, ok := rule.(validate.ChoiceRule); ok {
				sets = append(sets, ch.ChoiceValues())
			}
		}
		if len(sets) > 0 {
			enum = intersectChoices(sets)
		}
	}
	if enum != nil {
		if f.AllowNone && !slices.Contains(enum, nil) {
			enum = append(enum, nil)
		}
		prop.Enum = enum
	}
	return nil
}

// intersectChoices keeps the values present in every set, deduplicated, in
// the order the first set declares them.
func intersectChoices(sets [][]any) []any {
	out := []any{}
	for _, v := range sets[0] {
		if slices.Contains(out, v) {
			continue
		}
		keep := true
		for _, other := range sets[1:] {
			if !slices.Contains(other, v) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, v)
		}
	}
	return out
}

func (c *Converter) readOnly(f *schema.Field, prop *oas.Schema) error {
	if f.IsDumpOnly {
		prop.ReadOnly = true
	}
	return nil
}

// writeOnly has no 2.0 spelling, so load-only fields gain the keyword only
// on 3.x targets.
func (c *Converter) writeOnly(f *schema.Field, prop *oas.Schema) error {
	if f.IsLoadOnly && c.version.AtLeast(3, 0) {
		prop.WriteOnly = true
	}
	return nil
}

// nullable spells out AllowNone per target version: x-nullable for 2.0,
// the nullable keyword for 3.0, and a type list with "null" for 3.1.
func (c *Converter) nullable(f *schema.Field, prop *oas.Schema) error {
	if !f.AllowNone {
		return nil
	}
	switch {
	case c.version.Before(3, 0):
		prop.SetExtra("x-nullable", true)
	case c.version.Before(3, 1):
		prop.Nullable = true
	default:
		prop.Type = append(prop.TypeList(), "null")
	}
	return nil
}

// ranges folds numeric bound rules into minimum and maximum. Multiple rules
// narrow each other. When the accumulated type is not numeric the bounds
// land in x-minimum and x-maximum instead, since the standard keywords
// would not validate there.
func (c *Converter) ranges(f *schema.Field, prop *oas.Schema) error {
	var mins, maxes []float64
	for _, rule := range f.Rules {
		if _, isSize := rule.(validate.SizeRule); isSize {
			continue
		}
		nr, ok := rule.(validate.NumericRule)
		if !ok {
			continue
		}
		lo, hi := nr.NumericBounds()
		if lo != nil {
			mins = append(mins, *lo)
		}
		if hi != nil {
			maxes = append(maxes, *hi)
		}
	}
	if len(mins) == 0 && len(maxes) == 0 {
		return nil
	}

	numeric := prop.HasType("number") || prop.HasType("integer")
	if len(mins) > 0 {
		floor := slices.Max(mins)
		if numeric {
			prop.Minimum = &floor
		} else {
			prop.SetExtra("x-minimum", floor)
		}
	}
	if len(maxes) > 0 {
		ceil := slices.Min(maxes)
		if numeric {
			prop.Maximum = &ceil
		} else {
			prop.SetExtra("x-maximum", ceil)
		}
	}
	return nil
}

// lengths folds size bound rules into length or item-count keywords. The
// array spellings apply to list, nested, and pluck kinds. The first
// non-nil Equal bound pins both ends and wins outright.
func (c *Converter) lengths(f *schema.Field, prop *oas.Schema) error {
	isArray := f.Kind == schema.KindList || f.Kind == schema.KindNested || f.Kind == schema.KindPluck

	var mins, maxes []int
	for _, rule := range f.Rules {
		sr, ok := rule.(validate.SizeRule)
		if !ok {
			continue
		}
		lo, hi, equal := sr.SizeBounds()
		if equal != nil {
			if isArray {
				prop.MinItems = equal
				prop.MaxItems = equal
			} else {
				prop.MinLength = equal
				prop.MaxLength = equal
			}
			return nil
		}
		if lo != nil {
			mins = append(mins, *lo)
		}
		if hi != nil {
			maxes = append(maxes, *hi)
		}
	}
	if len(mins) > 0 {
		floor := slices.Max(mins)
		if isArray {
			prop.MinItems = &floor
		} else {
			prop.MinLength = &floor
		}
	}
	if len(maxes) > 0 {
		ceil := slices.Min(maxes)
		if isArray {
			prop.MaxItems = &ceil
		} else {
			prop.MaxLength = &ceil
		}
	}
	return nil
}

// pattern emits the first regexp rule. Further regexp rules cannot be
// expressed on a single property, so they only produce a warning.
func (c *Converter) pattern(f *schema.Field, prop *oas.Schema) error {
	seen := false
	for _, rule := range f.Rules {
		pr, ok := rule.(validate.PatternRule)
		if !ok {
			continue
		}
		if seen {
			c.record(SeverityWarning, "", "", f.Kind, fmt.Sprintf(
				"more than one pattern rule declared on a %s field; only the first appears in the document", f.Kind))
			break
		}
		prop.Pattern = pr.PatternValue()
		seen = true
	}
	return nil
}

// metadata folds free-form field metadata into the property. Keys starting
// with x_ dasherize to x- extensions, recognized schema keywords apply
// directly, and anything else is ignored.
func (c *Converter) metadata(f *schema.Field, prop *oas.Schema) error {
	for _, key := range maputil.SortedKeys(f.Metadata) {
		name := key
		if strings.HasPrefix(name, "x_") {
			name = strings.ReplaceAll(name, "_", "-")
		}
		oas.ApplyKeyword(prop, name, f.Metadata[key])
	}
	return nil
}

// enumVariants converts Enum kinds: the inner field sets the property shape
// and the declared values become the enum, with nil appended for nullable
// fields.
func (c *Converter) enumVariants(f *schema.Field, prop *oas.Schema) error {
	if f.Kind != schema.KindEnum {
		return nil
	}
	inner, err := c.Property(f.Inner)
	if err != nil {
		return err
	}
	schemautil.Merge(prop, inner)
	enum := slices.Clone(f.EnumValues)
	if enum == nil {
		enum = []any{}
	}
	if f.AllowNone && !slices.Contains(enum, nil) {
		enum = append(enum, nil)
	}
	prop.Enum = enum
	return nil
}

// nested resolves the target of a Nested kind to a reference or an inline
// object. When the property already carries accumulated keywords, a
// reference wraps in allOf so those keywords survive alongside it.
func (c *Converter) nested(f *schema.Field, prop *oas.Schema) error {
	if f.Kind != schema.KindNested {
		return nil
	}
	inst, err := c.instanceOf(f.Target)
	if err != nil {
		return err
	}
	resolved, err := c.resolveInstance(inst, f.IsMany || inst.Many())
	if err != nil {
		return err
	}
	if !schemautil.IsEmpty(prop) && resolved.Ref != "" {
		prop.AllOf = []any{resolved}
	} else {
		schemautil.Merge(prop, resolved)
	}
	return nil
}

// plucked trans-includes a single field out of the target schema, wrapped
// in an array when the target is declared many.
func (c *Converter) plucked(f *schema.Field, prop *oas.Schema) error {
	if f.Kind != schema.KindPluck {
		return nil
	}
	inst, err := c.instanceOf(f.Target)
	if err != nil {
		return err
	}
	target, ok := inst.Definition().Lookup(f.TargetField)
	if !ok {
		return &oaserrors.SchemaError{
			Value:   f.TargetField,
			Op:      "Property",
			Message: fmt.Sprintf("schema %s declares no field %q to pluck", inst.Name(), f.TargetField),
		}
	}
	plucked, err := c.Property(target)
	if err != nil {
		return err
	}
	if f.IsMany || inst.Many() {
		prop.Type = "array"
		prop.Items = plucked
		return nil
	}
	schemautil.Merge(prop, plucked)
	return nil
}

// listItems fills the items slot of a List kind from its element field.
func (c *Converter) listItems(f *schema.Field, prop *oas.Schema) error {
	if f.Kind != schema.KindList {
		return nil
	}
	if f.Inner == nil {
		return &oaserrors.SchemaError{Op: "Property", Message: "list field declares no element field"}
	}
	items, err := c.Property(f.Inner)
	if err != nil {
		return err
	}
	prop.Items = items
	return nil
}

// mapValues fills additionalProperties of a Map kind when a value field is
// declared. A map without one stays a free-form object.
func (c *Converter) mapValues(f *schema.Field, prop *oas.Schema) error {
	if f.Kind != schema.KindMap || f.MapValue == nil {
		return nil
	}
	value, err := c.Property(f.MapValue)
	if err != nil {
		return err
	}
	prop.AdditionalProperties = value
	return nil
}

// durationUnit records the counting unit of a Duration kind as x-unit.
func (c *Converter) durationUnit(f *schema.Field, prop *oas.Schema) error {
	if f.Kind == schema.KindDuration && f.Precision != "" {
		prop.SetExtra("x-unit", f.Precision)
	}
	return nil
}

// dateTimeVariants reshapes DateTime kinds whose representation is not the
// default ISO 8601: rfc swaps in an RFC 2822 pattern, the timestamp
// variants become numbers, and a custom format falls back to a pattern
// taken from metadata.
func (c *Converter) dateTimeVariants(f *schema.Field, prop *oas.Schema) error {
	if f.Kind != schema.KindDateTime {
		return nil
	}
	switch f.TimeFormat {
	case "", schema.DateTimeISO:
		// The kind table already emitted string/date-time.
	case schema.DateTimeRFC:
		prop.Type = "string"
		prop.Format = ""
		prop.Example = "Wed, 02 Oct 2002 13:00:00 GMT"
		prop.Pattern = rfc2822Pattern
	case schema.DateTimeTimestamp:
		zero := float64(0)
		prop.Type = "number"
		prop.Format = "float"
		prop.Example = "1676451245.596"
		prop.Minimum = &zero
	case schema.DateTimeTimestampMS:
		zero := float64(0)
		prop.Type = "number"
		prop.Format = "float"
		prop.Example = "1676451277514.654"
		prop.Minimum = &zero
	default:
		pat, _ := f.Metadata["pattern"].(string)
		prop.Type = "string"
		prop.Format = ""
		prop.Pattern = pat
	}
	return nil
}
