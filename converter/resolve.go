package converter

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/erraggy/declspec/builder"
	"github.com/erraggy/declspec/internal/maputil"
	"github.com/erraggy/declspec/oas"
	"github.com/erraggy/declspec/oaserrors"
	"github.com/erraggy/declspec/schema"
)

// ResolveSchema resolves a schema-bearing value to a Schema Object that is
// either a reference to a registered component or an inline object.
//
// It accepts a *schema.Schema instance, a *schema.Definition (converted as
// an unmodified instance), a definition name string, or an *oas.Schema
// whose resolution slots may hold further schema values. A string that
// matches no registry entry is assumed to already be a component name and
// becomes a bare reference.
//
// The first resolution of a named instance registers the component with the
// spec builder; later resolutions of the same identity reuse the reference.
// Instances declared many resolve to an array wrapping of the result.
func (c *Converter) ResolveSchema(v any) (*oas.Schema, error) {
	switch val := v.(type) {
	case *schema.Schema:
		if val == nil {
			return nil, &oaserrors.SchemaError{Op: "ResolveSchema", Message: "nil schema instance"}
		}
		return c.resolveInstance(val, val.Many())
	case *schema.Definition:
		if val == nil {
			return nil, &oaserrors.SchemaError{Op: "ResolveSchema", Message: "nil schema definition"}
		}
		return c.resolveInstance(val.Instance(), false)
	case string:
		if c.registry != nil {
			if def, ok := c.registry.Lookup(val); ok {
				return c.resolveInstance(def.Instance(), false)
			}
		}
		return &oas.Schema{Ref: c.version.Ref(oas.KindSchema, val)}, nil
	case *oas.Schema:
		if val == nil {
			return nil, &oaserrors.SchemaError{Op: "ResolveSchema", Message: "nil schema object"}
		}
		if err := c.resolveSlots(val); err != nil {
			return nil, err
		}
		return val, nil
	case nil:
		return nil, &oaserrors.SchemaError{Op: "ResolveSchema", Message: "nil schema value"}
	default:
		return nil, &oaserrors.SchemaError{
			Value:   v,
			Op:      "ResolveSchema",
			Message: "want *schema.Schema, *schema.Definition, a definition name, or *oas.Schema",
		}
	}
}

// resolveInstance resolves an instance to a reference, registering the
// component on first sight, or to an inline object when the name resolver
// declines to name it.
func (c *Converter) resolveInstance(inst *schema.Schema, many bool) (*oas.Schema, error) {
	key := schema.KeyOf(inst)
	if name, ok := c.refs[key]; ok {
		return c.refSchema(name, many), nil
	}

	name := c.resolver(inst.Definition())
	if name == "" {
		return c.inlineInstance(key, inst, many)
	}
	if c.spec == nil {
		return nil, &oaserrors.SchemaError{
			Value:   inst.Name(),
			Op:      "ResolveSchema",
			Message: "converter has no spec builder; named schemas cannot be registered",
		}
	}
	name = c.uniqueSchemaName(name)
	body, err := c.register(name, inst)
	if err != nil {
		return nil, err
	}
	if err := c.spec.Components().Schema(name, builder.WithSchemaObject(body)); err != nil {
		return nil, err
	}
	return c.refSchema(name, many), nil
}

// register records the component name for the instance's identity and then
// builds the object body. The name goes into refs before the body is built
// so that a schema referring back to itself resolves to the reference
// instead of recursing.
func (c *Converter) register(name string, inst *schema.Schema) (*oas.Schema, error) {
	key := schema.KeyOf(inst)
	if prior, ok := c.refs[key]; ok {
		c.record(SeverityWarning, "", "", inst.Name(), fmt.Sprintf(
			"schema %s has already been added to the document as %q; adding it again may cause references to resolve to the wrong component",
			inst.Name(), prior))
	}
	c.refs[key] = name
	return c.objectBody(inst)
}

// inlineInstance emits the object body in place of a reference. The
// in-progress set turns a cycle of unnamed schemas into an error instead of
// unbounded recursion.
func (c *Converter) inlineInstance(key schema.Key, inst *schema.Schema, many bool) (*oas.Schema, error) {
	if c.inlining[key] {
		return nil, &oaserrors.ReferenceError{
			SchemaName: inst.Name(),
			IsCircular: true,
			Message:    "name resolver returned no name for a schema inside a reference cycle; the resolver must name every schema participating in a cycle",
		}
	}
	c.inlining[key] = true
	defer delete(c.inlining, key)

	body, err := c.objectBody(inst)
	if err != nil {
		return nil, err
	}
	if many {
		return &oas.Schema{Type: "array", Items: body}, nil
	}
	return body, nil
}

// refSchema builds a reference to a registered component, array-wrapped
// when the referent is declared many.
func (c *Converter) refSchema(name string, many bool) *oas.Schema {
	ref := &oas.Schema{Ref: c.version.Ref(oas.KindSchema, name)}
	if many {
		return &oas.Schema{Type: "array", Items: ref}
	}
	return ref
}

// uniqueSchemaName makes base unique among schema component names by
// appending a counter (Pet, Pet1, Pet2, ...). The first collision records a
// warning suggesting distinct names or a custom resolver.
func (c *Converter) uniqueSchemaName(base string) string {
	if !c.nameTaken(base) {
		return base
	}
	c.record(SeverityWarning, "", "", base, fmt.Sprintf(
		"multiple schemas resolved to the name %s; the name has been modified, either register each schema under a distinct name or provide a custom name resolver",
		base))
	for counter := 1; ; counter++ {
		candidate := base + strconv.Itoa(counter)
		if !c.nameTaken(candidate) {
			return candidate
		}
	}
}

// nameTaken reports whether a schema component name is in use. Names live
// in refs from the moment they are allocated, before the component body is
// registered, so a registration in progress still holds its name.
func (c *Converter) nameTaken(name string) bool {
	if c.spec != nil && c.spec.Components().HasSchema(name) {
		return true
	}
	for _, taken := range c.refs {
		if taken == name {
			return true
		}
	}
	return false
}

// SchemaObject converts an instance to an object schema: properties in
// declaration order keyed by observed name, a sorted required list honoring
// partial modifiers, schema level metadata, and the undeclared-key policy.
// An instance declared many wraps the object in an array.
//
// Nested and pluck targets inside the fields resolve through the converter
// and may register components as a side effect. The instance itself is not
// registered; that is ResolveSchema's job.
func (c *Converter) SchemaObject(s *schema.Schema) (*oas.Schema, error) {
	body, err := c.objectBody(s)
	if err != nil {
		return nil, err
	}
	if s.Many() {
		return &oas.Schema{Type: "array", Items: body}, nil
	}
	return body, nil
}

func (c *Converter) objectBody(s *schema.Schema) (*oas.Schema, error) {
	if s == nil {
		return nil, &oaserrors.SchemaError{Op: "SchemaObject", Message: "nil schema instance"}
	}
	if s.Definition().Len() == 0 {
		return nil, &oaserrors.SchemaError{
			Value:   s.Name(),
			Op:      "SchemaObject",
			Message: fmt.Sprintf("schema %s declares no fields", s.Name()),
		}
	}

	obj := &oas.Schema{
		Type:       "object",
		Properties: make(map[string]any, s.Definition().Len()),
	}
	var required []string
	for _, entry := range s.Fields() {
		prop, err := c.Property(entry.Field)
		if err != nil {
			return nil, err
		}
		observed := entry.Field.ObservedName(entry.Name)
		obj.Properties[observed] = prop
		if entry.Field.IsRequired && s.KeepsRequired(entry.Name) {
			required = append(required, observed)
		}
	}
	if len(required) > 0 {
		slices.Sort(required)
		obj.Required = required
	}

	meta := s.Definition().Meta()
	if meta.Title != "" {
		obj.Title = meta.Title
	}
	if meta.Description != "" {
		obj.Description = meta.Description
	}
	switch meta.Unknown {
	case schema.UnknownInclude:
		obj.AdditionalProperties = true
	case schema.UnknownRaise:
		obj.AdditionalProperties = false
	}
	return obj, nil
}

// resolveValue resolves any schema-bearing value found in a document slot.
// Typed schemas and raw maps resolve in place and recursively; declarative
// values go through ResolveSchema; everything else passes through.
func (c *Converter) resolveValue(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case *oas.Schema:
		if err := c.resolveSlots(val); err != nil {
			return nil, err
		}
		return val, nil
	case map[string]any:
		if err := c.resolveMapSlots(val); err != nil {
			return nil, err
		}
		return val, nil
	case *schema.Schema, *schema.Definition, string:
		return c.ResolveSchema(val)
	default:
		return v, nil
	}
}

// resolveSlots resolves every declarative value held in the schema's
// resolution slots, recursively.
func (c *Converter) resolveSlots(s *oas.Schema) error {
	var err error
	if s.Items != nil {
		if s.Items, err = c.resolveValue(s.Items); err != nil {
			return err
		}
	}
	for _, name := range maputil.SortedKeys(s.Properties) {
		resolved, rerr := c.resolveValue(s.Properties[name])
		if rerr != nil {
			return rerr
		}
		s.Properties[name] = resolved
	}
	if s.AdditionalProperties, err = c.resolveValue(s.AdditionalProperties); err != nil {
		return err
	}
	for _, list := range [][]any{s.AllOf, s.AnyOf, s.OneOf} {
		for i, item := range list {
			resolved, rerr := c.resolveValue(item)
			if rerr != nil {
				return rerr
			}
			list[i] = resolved
		}
	}
	if s.Not, err = c.resolveValue(s.Not); err != nil {
		return err
	}
	return nil
}

// resolveMapSlots walks a raw schema map the way hand-written schema maps
// nest: items under an array type, properties under an object type, the
// composition keywords, and not.
func (c *Converter) resolveMapSlots(m map[string]any) error {
	if m["type"] == "array" {
		if items, ok := m["items"]; ok {
			resolved, err := c.resolveValue(items)
			if err != nil {
				return err
			}
			m["items"] = resolved
		}
	}
	if m["type"] == "object" {
		if props, ok := m["properties"].(map[string]any); ok {
			for _, name := range maputil.SortedKeys(props) {
				resolved, err := c.resolveValue(props[name])
				if err != nil {
					return err
				}
				props[name] = resolved
			}
		}
	}
	for _, keyword := range []string{"oneOf", "anyOf", "allOf"} {
		list, ok := m[keyword].([]any)
		if !ok {
			continue
		}
		for i, item := range list {
			resolved, err := c.resolveValue(item)
			if err != nil {
				return err
			}
			list[i] = resolved
		}
	}
	if negated, ok := m["not"]; ok {
		resolved, err := c.resolveValue(negated)
		if err != nil {
			return err
		}
		m["not"] = resolved
	}
	return nil
}
