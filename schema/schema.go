package schema

import "slices"

// Schema is an instance of a Definition: the definition plus presentation
// modifiers. Instances are what converters consume and what resolvers key
// registrations on.
type Schema struct {
	def *Definition

	many bool

	// only is nil when unset; a non-nil empty slice keeps no fields.
	only    []string
	exclude []string

	loadOnly []string
	dumpOnly []string

	partialAll    bool
	partialFields []string
}

// InstanceOption configures a Schema derived with Definition.Instance.
type InstanceOption func(*Schema)

// WithMany marks the instance as a collection. Converters wrap the
// reference in an array schema; the underlying component is unchanged.
func WithMany() InstanceOption {
	return func(s *Schema) { s.many = true }
}

// WithOnly keeps only the given declared fields, in the given order.
// Unknown names are ignored.
func WithOnly(names ...string) InstanceOption {
	return func(s *Schema) { s.only = append([]string{}, names...) }
}

// WithExclude drops the given declared fields.
func WithExclude(names ...string) InstanceOption {
	return func(s *Schema) { s.exclude = append(s.exclude, names...) }
}

// WithLoadOnly promotes the given declared fields to load-only for this
// instance.
func WithLoadOnly(names ...string) InstanceOption {
	return func(s *Schema) { s.loadOnly = append(s.loadOnly, names...) }
}

// WithDumpOnly promotes the given declared fields to dump-only for this
// instance.
func WithDumpOnly(names ...string) InstanceOption {
	return func(s *Schema) { s.dumpOnly = append(s.dumpOnly, names...) }
}

// WithPartial lifts the required flag from every field.
func WithPartial() InstanceOption {
	return func(s *Schema) { s.partialAll = true }
}

// WithPartialFields lifts the required flag from the given declared fields.
func WithPartialFields(names ...string) InstanceOption {
	return func(s *Schema) { s.partialFields = append([]string{}, names...) }
}

// Definition returns the underlying definition.
func (s *Schema) Definition() *Definition { return s.def }

// Name returns the definition's declared name.
func (s *Schema) Name() string { return s.def.Name() }

// Many reports whether the instance is a collection.
func (s *Schema) Many() bool { return s.many }

// Only returns the only modifier, nil when unset.
func (s *Schema) Only() []string { return s.only }

// Exclude returns the excluded declared names.
func (s *Schema) Exclude() []string { return s.exclude }

// LoadOnly returns the declared names promoted to load-only.
func (s *Schema) LoadOnly() []string { return s.loadOnly }

// DumpOnly returns the declared names promoted to dump-only.
func (s *Schema) DumpOnly() []string { return s.dumpOnly }

// PartialAll reports whether every required flag is lifted.
func (s *Schema) PartialAll() bool { return s.partialAll }

// PartialFields returns the declared names whose required flag is lifted.
func (s *Schema) PartialFields() []string { return s.partialFields }

// KeepsRequired reports whether a field declared required stays required
// under the instance's partial modifiers. The name is the declared name,
// not the data key.
func (s *Schema) KeepsRequired(declared string) bool {
	if s.partialAll {
		return false
	}
	return !slices.Contains(s.partialFields, declared)
}

// FieldEntry pairs a declared name with its effective field.
type FieldEntry struct {
	Name  string
	Field *Field
}

// Fields returns the instance's effective fields. The order is the
// declaration order, or the only order when an only modifier is set.
// Excluded names are dropped and promoted flags are applied to copies, so
// the definition's fields are never mutated.
func (s *Schema) Fields() []FieldEntry {
	names := s.def.FieldNames()
	if s.only != nil {
		kept := make([]string, 0, len(s.only))
		for _, name := range s.only {
			if _, ok := s.def.Lookup(name); ok {
				kept = append(kept, name)
			}
		}
		names = kept
	}

	entries := make([]FieldEntry, 0, len(names))
	for _, name := range names {
		if slices.Contains(s.exclude, name) {
			continue
		}
		f, ok := s.def.Lookup(name)
		if !ok {
			continue
		}
		if slices.Contains(s.loadOnly, name) && !f.IsLoadOnly {
			f = f.Clone()
			f.IsLoadOnly = true
		}
		if slices.Contains(s.dumpOnly, name) && !f.IsDumpOnly {
			f = f.Clone()
			f.IsDumpOnly = true
		}
		entries = append(entries, FieldEntry{Name: name, Field: f})
	}
	return entries
}

// FieldsForParams returns the effective fields for parameter generation,
// dropping dump-only fields when excludeDumpOnly is set.
func (s *Schema) FieldsForParams(excludeDumpOnly bool) []FieldEntry {
	entries := s.Fields()
	if !excludeDumpOnly {
		return entries
	}
	kept := entries[:0:0]
	for _, e := range entries {
		if e.Field.IsDumpOnly {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
