package schema

// Unknown declares how a schema treats undeclared keys. The zero value
// leaves the behavior unspecified, and the converter then emits no
// additionalProperties keyword at all.
type Unknown int

const (
	UnknownUnset Unknown = iota
	UnknownRaise
	UnknownExclude
	UnknownInclude
)

// Meta carries schema level options mirrored into the generated object.
type Meta struct {
	Title       string
	Description string
	Unknown     Unknown
}

// Definition is a named, ordered set of fields. Build one with New and the
// chainable Field setter; derive convertible instances with Instance.
type Definition struct {
	name   string
	order  []string
	fields map[string]*Field
	meta   Meta
}

// New starts a definition with the given name. The name is what registries
// and name resolvers see; it usually carries a Schema suffix that the
// default resolver strips.
func New(name string) *Definition {
	return &Definition{
		name:   name,
		fields: make(map[string]*Field),
	}
}

// Field declares or replaces a field. Declaration order is preserved and a
// re-declared name keeps its original position. Nil fields are ignored.
func (d *Definition) Field(name string, f *Field) *Definition {
	if f == nil {
		return d
	}
	if _, ok := d.fields[name]; !ok {
		d.order = append(d.order, name)
	}
	d.fields[name] = f
	return d
}

// Title sets the title mirrored onto the generated object schema.
func (d *Definition) Title(title string) *Definition {
	d.meta.Title = title
	return d
}

// Description sets the description mirrored onto the generated object
// schema.
func (d *Definition) Description(description string) *Definition {
	d.meta.Description = description
	return d
}

// Unknown declares the undeclared-key behavior. UnknownRaise and
// UnknownInclude surface as additionalProperties false and true; the
// exclude and unset values emit nothing.
func (d *Definition) Unknown(u Unknown) *Definition {
	d.meta.Unknown = u
	return d
}

// Name returns the declared name.
func (d *Definition) Name() string { return d.name }

// Meta returns the schema level options.
func (d *Definition) Meta() Meta { return d.meta }

// FieldNames returns the declared names in declaration order.
func (d *Definition) FieldNames() []string {
	names := make([]string, len(d.order))
	copy(names, d.order)
	return names
}

// Lookup returns the field declared under name.
func (d *Definition) Lookup(name string) (*Field, bool) {
	f, ok := d.fields[name]
	return f, ok
}

// Len returns the number of declared fields.
func (d *Definition) Len() int { return len(d.order) }

// Instance derives a convertible view of the definition with the given
// modifiers applied.
func (d *Definition) Instance(opts ...InstanceOption) *Schema {
	s := &Schema{def: d}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}
