package converter

import (
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/declspec/internal/naming"
	"github.com/erraggy/declspec/schema"
)

// NamingStrategy selects a built-in convention for deriving component
// names from definition names. Use ResolverForStrategy to turn one into a
// SchemaNameResolver.
type NamingStrategy int

const (
	// NamingDefault strips a trailing "Schema" suffix.
	// Example: PetSchema -> Pet
	NamingDefault NamingStrategy = iota

	// NamingDeclared keeps the declared definition name untouched.
	// Example: PetSchema -> PetSchema
	NamingDeclared

	// NamingPascalCase converts the trimmed name to PascalCase.
	// Example: pet_profile_schema -> PetProfile
	NamingPascalCase

	// NamingCamelCase converts the trimmed name to camelCase.
	// Example: PetProfileSchema -> petProfile
	NamingCamelCase

	// NamingSnakeCase converts the trimmed name to snake_case.
	// Example: PetProfileSchema -> pet_profile
	NamingSnakeCase

	// NamingKebabCase converts the trimmed name to kebab-case.
	// Example: PetProfileSchema -> pet-profile
	NamingKebabCase
)

// NameContext provides definition metadata for custom naming templates.
// All fields are populated before the template executes.
type NameContext struct {
	// Name is the declared definition name (e.g. "PetSchema").
	Name string

	// Trimmed is Name with a trailing "Schema" suffix stripped, or Name
	// itself when stripping would leave nothing (e.g. "Pet").
	Trimmed string

	// Fields is the number of declared fields.
	Fields int
}

// ResolverForStrategy returns a SchemaNameResolver applying a built-in
// naming strategy. Unknown strategies behave like NamingDefault.
func ResolverForStrategy(strategy NamingStrategy) SchemaNameResolver {
	return func(def *schema.Definition) string {
		trimmed := trimSchemaSuffix(def.Name())
		switch strategy {
		case NamingDeclared:
			return def.Name()
		case NamingPascalCase:
			return naming.ToPascalCase(trimmed)
		case NamingCamelCase:
			return naming.ToCamelCase(trimmed)
		case NamingSnakeCase:
			return naming.ToSnakeCase(trimmed)
		case NamingKebabCase:
			return naming.ToKebabCase(trimmed)
		default:
			return trimmed
		}
	}
}

// ResolverForTemplate builds a SchemaNameResolver from a text/template
// source executed against a NameContext. The template is validated against
// a sample context at build time; an execution failure at resolve time
// falls back to the default name.
//
//	resolver, err := converter.ResolverForTemplate("{{ .Trimmed | snake }}")
//
// Available functions: pascal, camel, snake, kebab, upper, lower, title,
// sanitize, trimPrefix, trimSuffix, replace, and join.
func ResolverForTemplate(tmpl string) (SchemaNameResolver, error) {
	t, err := parseNameTemplate(tmpl)
	if err != nil {
		return nil, err
	}
	return func(def *schema.Definition) string {
		ctx := NameContext{
			Name:    def.Name(),
			Trimmed: trimSchemaSuffix(def.Name()),
			Fields:  def.Len(),
		}
		var buf strings.Builder
		if err := t.Execute(&buf, ctx); err != nil {
			return DefaultNameResolver(def)
		}
		return sanitizeName(buf.String())
	}, nil
}

func trimSchemaSuffix(name string) string {
	if trimmed := strings.TrimSuffix(name, "Schema"); trimmed != "" {
		return trimmed
	}
	return name
}

// sanitizeName makes a generated name safe to use in a reference URI.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "#", "_")
	name = strings.ReplaceAll(name, " ", "_")
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.TrimSuffix(name, "_")
}

func nameTemplateFuncs() template.FuncMap {
	// strings.Title is deprecated; cases.Title handles word boundaries
	// correctly.
	titleCaser := cases.Title(language.English)

	return template.FuncMap{
		"pascal":     naming.ToPascalCase,
		"camel":      naming.ToCamelCase,
		"snake":      naming.ToSnakeCase,
		"kebab":      naming.ToKebabCase,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"title":      titleCaser.String,
		"sanitize":   sanitizeName,
		"trimPrefix": strings.TrimPrefix,
		"trimSuffix": strings.TrimSuffix,
		"replace":    strings.ReplaceAll,
		"join": func(sep string, parts ...string) string {
			return strings.Join(parts, sep)
		},
	}
}

// parseNameTemplate parses and validates a naming template by executing it
// with a sample context, so malformed templates fail at configuration time
// instead of during document generation.
func parseNameTemplate(tmpl string) (*template.Template, error) {
	t, err := template.New("schemaName").Funcs(nameTemplateFuncs()).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid schema name template: %w", err)
	}

	ctx := NameContext{
		Name:    "SampleSchema",
		Trimmed: "Sample",
		Fields:  1,
	}
	var buf strings.Builder
	if err := t.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("converter: schema name template execution failed: %w", err)
	}

	return t, nil
}
