package oas

import "strings"

// validKeywords is the set of schema keywords that may be set from field
// metadata. Anything outside this set must use an "x-" extension key.
var validKeywords = map[string]struct{}{
	"format":               {},
	"title":                {},
	"description":          {},
	"default":              {},
	"multipleOf":           {},
	"maximum":              {},
	"exclusiveMaximum":     {},
	"minimum":              {},
	"exclusiveMinimum":     {},
	"maxLength":            {},
	"minLength":            {},
	"pattern":              {},
	"maxItems":             {},
	"minItems":             {},
	"uniqueItems":          {},
	"maxProperties":        {},
	"minProperties":        {},
	"required":             {},
	"enum":                 {},
	"type":                 {},
	"items":                {},
	"allOf":                {},
	"oneOf":                {},
	"anyOf":                {},
	"not":                  {},
	"properties":           {},
	"additionalProperties": {},
	"readOnly":             {},
	"writeOnly":            {},
	"xml":                  {},
	"externalDocs":         {},
	"example":              {},
	"nullable":             {},
	"deprecated":           {},
}

// IsValidKeyword reports whether key is an allowed schema keyword or a
// specification extension ("x-" prefix).
func IsValidKeyword(key string) bool {
	if strings.HasPrefix(key, "x-") {
		return true
	}
	_, ok := validKeywords[key]
	return ok
}

// ApplyKeyword assigns a loosely typed keyword value onto the matching
// Schema field, coercing scalars where the slot demands it. Extension keys
// ("x-" prefix) land in Extra. Returns false when the key is neither a valid
// keyword nor an extension, in which case the schema is unchanged.
func ApplyKeyword(s *Schema, key string, value any) bool {
	if strings.HasPrefix(key, "x-") {
		s.SetExtra(key, value)
		return true
	}
	switch key {
	case "format":
		s.Format = coerceString(value)
	case "title":
		s.Title = coerceString(value)
	case "description":
		s.Description = coerceString(value)
	case "default":
		s.Default = value
	case "multipleOf":
		s.MultipleOf = coerceFloat64Ptr(value)
	case "maximum":
		s.Maximum = coerceFloat64Ptr(value)
	case "exclusiveMaximum":
		s.ExclusiveMaximum = value
	case "minimum":
		s.Minimum = coerceFloat64Ptr(value)
	case "exclusiveMinimum":
		s.ExclusiveMinimum = value
	case "maxLength":
		s.MaxLength = coerceIntPtr(value)
	case "minLength":
		s.MinLength = coerceIntPtr(value)
	case "pattern":
		s.Pattern = coerceString(value)
	case "maxItems":
		s.MaxItems = coerceIntPtr(value)
	case "minItems":
		s.MinItems = coerceIntPtr(value)
	case "uniqueItems":
		s.UniqueItems = coerceBool(value)
	case "maxProperties":
		s.MaxProperties = coerceIntPtr(value)
	case "minProperties":
		s.MinProperties = coerceIntPtr(value)
	case "required":
		s.Required = coerceStringSlice(value)
	case "enum":
		s.Enum = coerceAnySlice(value)
	case "type":
		s.Type = value
	case "items":
		s.Items = value
	case "allOf":
		s.AllOf = coerceAnySlice(value)
	case "oneOf":
		s.OneOf = coerceAnySlice(value)
	case "anyOf":
		s.AnyOf = coerceAnySlice(value)
	case "not":
		s.Not = value
	case "properties":
		if m, ok := value.(map[string]any); ok {
			s.Properties = m
		}
	case "additionalProperties":
		s.AdditionalProperties = value
	case "readOnly":
		s.ReadOnly = coerceBool(value)
	case "writeOnly":
		s.WriteOnly = coerceBool(value)
	case "xml":
		if x, ok := value.(*XML); ok {
			s.XML = x
		}
	case "externalDocs":
		if d, ok := value.(*ExternalDocs); ok {
			s.ExternalDocs = d
		}
	case "example":
		s.Example = value
	case "nullable":
		s.Nullable = coerceBool(value)
	case "deprecated":
		s.Deprecated = coerceBool(value)
	default:
		return false
	}
	return true
}

func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func coerceBool(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}

func coerceFloat64Ptr(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case *float64:
		return n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case uint64:
		f := float64(n)
		return &f
	}
	return nil
}

func coerceIntPtr(v any) *int {
	switch n := v.(type) {
	case int:
		return &n
	case *int:
		return n
	case int64:
		i := int(n)
		return &i
	case uint64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	}
	return nil
}

func coerceStringSlice(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func coerceAnySlice(v any) []any {
	switch list := v.(type) {
	case []any:
		return list
	case []string:
		out := make([]any, len(list))
		for i, s := range list {
			out[i] = s
		}
		return out
	}
	return nil
}
