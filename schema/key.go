package schema

import (
	"slices"
	"strings"
)

// Key identifies a schema instance by its definition and the modifiers
// that change its converted shape. Instances with equal keys convert to
// the same component, so resolvers register them once and reuse the
// reference. Many is deliberately not part of the key: a collection wraps
// the reference in an array without changing the referenced schema.
type Key struct {
	def *Definition

	only     string
	exclude  string
	loadOnly string
	dumpOnly string
	partial  string
}

// KeyOf derives the registration key of an instance. Modifier name lists
// are sorted and deduplicated, so the declaration order of a modifier does
// not split registrations.
func KeyOf(s *Schema) Key {
	k := Key{
		def:      s.def,
		only:     encodeNames(s.only),
		exclude:  encodeNames(s.exclude),
		loadOnly: encodeNames(s.loadOnly),
		dumpOnly: encodeNames(s.dumpOnly),
	}
	switch {
	case s.partialAll:
		k.partial = "*"
	case s.partialFields != nil:
		k.partial = encodeNames(s.partialFields)
	}
	return k
}

// Definition returns the definition the key was derived from.
func (k Key) Definition() *Definition { return k.def }

// String renders the key for diagnostics.
func (k Key) String() string {
	if k.def == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(k.def.Name())
	var mods []string
	appendMod := func(label, v string) {
		if v != "" {
			mods = append(mods, label+"="+strings.TrimPrefix(v, "|"))
		}
	}
	appendMod("only", k.only)
	appendMod("exclude", k.exclude)
	appendMod("loadOnly", k.loadOnly)
	appendMod("dumpOnly", k.dumpOnly)
	if k.partial == "*" {
		mods = append(mods, "partial")
	} else {
		appendMod("partial", k.partial)
	}
	if len(mods) > 0 {
		b.WriteString("(")
		b.WriteString(strings.Join(mods, " "))
		b.WriteString(")")
	}
	return b.String()
}

// encodeNames collapses a modifier list into a comparable string. A nil
// list encodes empty; a non-nil list carries a presence marker so that an
// explicitly empty modifier stays distinct from an absent one.
func encodeNames(names []string) string {
	if names == nil {
		return ""
	}
	sorted := make([]string, len(names))
	copy(sorted, names)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return "|" + strings.Join(sorted, ",")
}
