package converter

import (
	"github.com/erraggy/declspec/oas"
	"github.com/erraggy/declspec/oaserrors"
	"github.com/erraggy/declspec/schema"
)

// locationMap translates framework-style request locations to the parameter
// locations the document uses. Unknown locations pass through unchanged.
var locationMap = map[string]string{
	"match_info":  "path",
	"query":       "query",
	"querystring": "query",
	"json":        "body",
	"headers":     "header",
	"cookies":     "cookie",
	"form":        "formData",
	"files":       "formData",
}

func mapLocation(location string) string {
	if mapped, ok := locationMap[location]; ok {
		return mapped
	}
	return location
}

// ParamOption adjusts the single body parameter emitted by Parameters for
// 2.0 body locations. Options have no effect on per-field expansion.
type ParamOption func(*paramConfig)

type paramConfig struct {
	name        string
	required    bool
	description string
}

// WithParamName overrides the body parameter name. The default is "body".
func WithParamName(name string) ParamOption {
	return func(cfg *paramConfig) {
		if name != "" {
			cfg.name = name
		}
	}
}

// WithParamRequired marks the body parameter required.
func WithParamRequired(required bool) ParamOption {
	return func(cfg *paramConfig) { cfg.required = required }
}

// WithParamDescription sets the body parameter description.
func WithParamDescription(description string) ParamOption {
	return func(cfg *paramConfig) { cfg.description = description }
}

// Parameters projects a schema instance into Parameter Objects for the
// given location. Framework-style locations ("json", "querystring",
// "match_info", ...) translate to document locations first.
//
// A body location on a 2.0 target yields a single parameter whose schema is
// the resolved instance; the options name and describe it. Every other
// case expands per field, excluding dump-only fields, with the parameter
// name taken from the observed field name and required honoring partial
// modifiers. Fields may reroute themselves with a "location" metadata key;
// on 2.0 targets, fields routed to the body fold into one body parameter
// because the format allows only one per operation. An instance declared
// many cannot expand per field and fails with
// oaserrors.ErrAmbiguousParameter.
func (c *Converter) Parameters(s *schema.Schema, location string, opts ...ParamOption) ([]*oas.Parameter, error) {
	if s == nil {
		return nil, &oaserrors.SchemaError{Op: "Parameters", Message: "nil schema instance"}
	}
	cfg := paramConfig{name: "body"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	mapped := mapLocation(location)
	if mapped == "body" && c.version.Before(3, 0) {
		resolved, err := c.ResolveSchema(s)
		if err != nil {
			return nil, err
		}
		return []*oas.Parameter{{
			In:          "body",
			Name:        cfg.name,
			Required:    cfg.required,
			Description: cfg.description,
			Schema:      resolved,
		}}, nil
	}

	if s.Many() {
		return nil, &oaserrors.ParameterError{
			In:          mapped,
			IsAmbiguous: true,
			Message:     "a schema declared many only projects to a body parameter",
		}
	}

	var params []*oas.Parameter
	var bodyParam *oas.Parameter
	for _, entry := range s.FieldsForParams(true) {
		f := entry.Field
		fieldLocation := mapped
		if override, ok := f.Metadata["location"].(string); ok && override != "" {
			fieldLocation = mapLocation(override)
		}
		required := f.IsRequired && s.KeepsRequired(entry.Name)
		param, err := c.fieldParameter(f, f.ObservedName(entry.Name), fieldLocation, required)
		if err != nil {
			return nil, err
		}
		if c.version.Before(3, 0) && param.In == "body" {
			if bodyParam != nil {
				mergeBodyParameters(bodyParam, param)
				continue
			}
			bodyParam = param
		}
		params = append(params, param)
	}
	return params, nil
}

// fieldParameter projects one field into a Parameter Object at the given
// location. Body-routed fields wrap their property in a one-key object
// schema; the required flag then moves into the object's required list
// since a 2.0 body parameter is only as required as its caller says.
func (c *Converter) fieldParameter(f *schema.Field, name, location string, required bool) (*oas.Parameter, error) {
	prop, err := c.Property(f)
	if err != nil {
		return nil, err
	}
	param := &oas.Parameter{
		In:       location,
		Name:     name,
		Required: required,
	}

	if location == "body" {
		wrap := &oas.Schema{Properties: map[string]any{name: prop}}
		if required {
			param.Required = false
			wrap.Required = []string{name}
		}
		param.Name = "body"
		param.Schema = wrap
		return param, nil
	}

	if c.version.Before(3, 0) {
		if f.Kind == schema.KindList {
			param.CollectionFormat = "multi"
		}
		applyPropToParameter(param, prop)
		return param, nil
	}

	if f.Kind == schema.KindList {
		explode := true
		param.Explode = &explode
		param.Style = "form"
	}
	if prop.Description != "" {
		param.Description = prop.Description
		prop.Description = ""
	}
	param.Schema = prop
	return param, nil
}

// mergeBodyParameters folds src's one-key object schema into dst's,
// concatenating required lists. Only body parameters built by
// fieldParameter reach here, so both schemas are known shapes.
func mergeBodyParameters(dst, src *oas.Parameter) {
	dstSchema, ok := dst.Schema.(*oas.Schema)
	if !ok {
		return
	}
	srcSchema, ok := src.Schema.(*oas.Schema)
	if !ok {
		return
	}
	if dstSchema.Properties == nil {
		dstSchema.Properties = make(map[string]any, len(srcSchema.Properties))
	}
	for name, prop := range srcSchema.Properties {
		dstSchema.Properties[name] = prop
	}
	dstSchema.Required = append(dstSchema.Required, srcSchema.Required...)
}

// applyPropToParameter flattens a converted property onto a 2.0 parameter,
// which spells validation keywords inline instead of under a schema key.
// Keywords a 2.0 parameter cannot express are dropped.
func applyPropToParameter(param *oas.Parameter, prop *oas.Schema) {
	if types := prop.TypeList(); len(types) > 0 {
		param.Type = types[0]
	}
	param.Format = prop.Format
	if prop.Description != "" {
		param.Description = prop.Description
	}
	param.Default = prop.Default
	param.Example = prop.Example
	param.Maximum = prop.Maximum
	param.Minimum = prop.Minimum
	if b, ok := prop.ExclusiveMaximum.(bool); ok {
		param.ExclusiveMaximum = b
	}
	if b, ok := prop.ExclusiveMinimum.(bool); ok {
		param.ExclusiveMinimum = b
	}
	param.MaxLength = prop.MaxLength
	param.MinLength = prop.MinLength
	param.Pattern = prop.Pattern
	param.MaxItems = prop.MaxItems
	param.MinItems = prop.MinItems
	param.UniqueItems = prop.UniqueItems
	param.MultipleOf = prop.MultipleOf
	param.Enum = prop.Enum
	if prop.Items != nil {
		param.Items = schemaToItems(prop.Items)
	}
	for key, value := range prop.Extra {
		param.SetExtra(key, value)
	}
}

// schemaToItems converts an items slot to the dedicated 2.0 Items form. A
// reference survives as an inline $ref key since Items has no typed slot
// for one.
func schemaToItems(v any) *oas.Items {
	s, ok := v.(*oas.Schema)
	if !ok {
		return nil
	}
	if s.Ref != "" {
		return &oas.Items{Extra: map[string]any{"$ref": s.Ref}}
	}
	items := &oas.Items{
		Format:           s.Format,
		CollectionFormat: s.CollectionFormat,
		Default:          s.Default,
		Maximum:          s.Maximum,
		Minimum:          s.Minimum,
		MaxLength:        s.MaxLength,
		MinLength:        s.MinLength,
		Pattern:          s.Pattern,
		MaxItems:         s.MaxItems,
		MinItems:         s.MinItems,
		UniqueItems:      s.UniqueItems,
		Enum:             s.Enum,
		MultipleOf:       s.MultipleOf,
	}
	if types := s.TypeList(); len(types) > 0 {
		items.Type = types[0]
	}
	if b, ok := s.ExclusiveMaximum.(bool); ok {
		items.ExclusiveMaximum = b
	}
	if b, ok := s.ExclusiveMinimum.(bool); ok {
		items.ExclusiveMinimum = b
	}
	if s.Items != nil {
		items.Items = schemaToItems(s.Items)
	}
	if len(s.Extra) > 0 {
		items.Extra = make(map[string]any, len(s.Extra))
		for key, value := range s.Extra {
			items.Extra[key] = value
		}
	}
	return items
}
