package converter

import (
	"strings"

	"github.com/erraggy/declspec/builder"
	"github.com/erraggy/declspec/internal/issues"
	"github.com/erraggy/declspec/oas"
	"github.com/erraggy/declspec/oaserrors"
	"github.com/erraggy/declspec/schema"
)

// Severity indicates the severity level of a conversion issue
type Severity = issues.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = issues.SeverityInfo
	// SeverityWarning indicates lossy or surprising projections
	SeverityWarning = issues.SeverityWarning
	// SeverityCritical indicates input that had to be skipped or altered
	SeverityCritical = issues.SeverityCritical
)

// Issue represents a single conversion issue or limitation
type Issue = issues.Issue

// SchemaNameResolver proposes the component name for a schema definition.
// Returning "" means the definition has no name and must be emitted inline.
// The resolver is consulted once per distinct schema identity; the proposed
// name still passes through collision renaming before registration.
type SchemaNameResolver func(def *schema.Definition) string

// DefaultNameResolver strips a trailing "Schema" from the definition name,
// keeping the full name when stripping would leave nothing.
func DefaultNameResolver(def *schema.Definition) string {
	name := def.Name()
	if trimmed := strings.TrimSuffix(name, "Schema"); trimmed != "" {
		return trimmed
	}
	return name
}

// Converter translates schema definitions into OpenAPI Schema Objects for a
// single target version.
//
// A Converter owns all derived state of a conversion session: the identity
// to component-name registry, the in-progress set guarding inline cycles,
// and the recorded issues. Caller-supplied definitions, instances, and
// fields are never mutated. Converters are not safe for concurrent use;
// parallel document generation needs one Converter per goroutine.
type Converter struct {
	version  oas.Version
	resolver SchemaNameResolver
	spec     *builder.Builder
	registry *schema.Registry
	logger   oas.Logger

	mapping   TypeMapping
	attrFuncs []AttributeFunc

	// refs maps schema identity to the registered component name. It is the
	// only place derived naming state lives, which is what keeps repeated
	// resolution idempotent without touching caller objects.
	refs map[schema.Key]string

	// inlining tracks identities currently being emitted inline so that a
	// nameless cycle fails fast instead of recursing without end.
	inlining map[schema.Key]bool

	issues []Issue
}

// Option configures a Converter.
type Option func(*config)

type config struct {
	logger   oas.Logger
	registry *schema.Registry
}

// WithLogger routes issue records to the given logger as they are recorded.
// The default is the document builder's logger.
func WithLogger(logger oas.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithRegistry supplies the registry used to resolve string schema names.
// Without one, every string resolves to a bare component reference.
func WithRegistry(registry *schema.Registry) Option {
	return func(cfg *config) {
		cfg.registry = registry
	}
}

// New creates a Converter targeting the given OpenAPI version.
//
// A nil resolver falls back to DefaultNameResolver. The spec builder
// receives the components the converter registers while resolving named
// schemas; it may be nil for pure field conversion, in which case resolving
// a named schema fails.
func New(version oas.Version, resolver SchemaNameResolver, spec *builder.Builder, opts ...Option) *Converter {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if resolver == nil {
		resolver = DefaultNameResolver
	}
	logger := cfg.logger
	if logger == nil {
		if spec != nil {
			logger = spec.Logger()
		} else {
			logger = oas.NopLogger{}
		}
	}

	c := &Converter{
		version:  version,
		resolver: resolver,
		spec:     spec,
		registry: cfg.registry,
		logger:   logger,
		mapping:  DefaultTypeMapping(),
		refs:     make(map[schema.Key]string),
		inlining: make(map[schema.Key]bool),
	}
	c.attrFuncs = []AttributeFunc{
		// typeAndFormat runs first; later functions key off the
		// accumulated type.
		c.typeAndFormat,
		c.defaultValue,
		c.choices,
		c.readOnly,
		c.writeOnly,
		c.nullable,
		c.ranges,
		c.lengths,
		c.pattern,
		c.metadata,
		c.enumVariants,
		c.nested,
		c.plucked,
		c.listItems,
		c.mapValues,
		c.durationUnit,
		c.dateTimeVariants,
	}
	return c
}

// Version returns the target OpenAPI version.
func (c *Converter) Version() oas.Version { return c.version }

// Registry returns the registry used for string schema names, or nil.
func (c *Converter) Registry() *schema.Registry { return c.registry }

// Issues returns every issue recorded so far, in recording order.
func (c *Converter) Issues() []Issue { return c.issues }

// record appends an issue and mirrors it to the logger. Issues never alter
// the documents the converter produces.
func (c *Converter) record(severity Severity, path, field string, value any, message string) {
	c.issues = append(c.issues, Issue{
		Severity:  severity,
		Component: "converter",
		Path:      path,
		Field:     field,
		Value:     value,
		Message:   message,
	})
	attrs := make([]any, 0, 4)
	if path != "" {
		attrs = append(attrs, "path", path)
	}
	if field != "" {
		attrs = append(attrs, "field", field)
	}
	switch severity {
	case SeverityCritical:
		c.logger.Error(message, attrs...)
	case SeverityWarning:
		c.logger.Warn(message, attrs...)
	default:
		c.logger.Info(message, attrs...)
	}
}

// SchemaKey derives the identity key for a schema-bearing value. Identity
// follows the instance: two instances of one definition with the same
// modifiers share a key, while the many flag never splits identity. Passing
// a definition or anything else fails with oaserrors.ErrInvalidIdentity,
// since only instances carry modifier state.
func SchemaKey(v any) (schema.Key, error) {
	switch val := v.(type) {
	case *schema.Schema:
		if val == nil {
			return schema.Key{}, &oaserrors.IdentityError{Message: "nil schema instance"}
		}
		return schema.KeyOf(val), nil
	case *schema.Definition:
		return schema.Key{}, &oaserrors.IdentityError{
			Value:   v,
			Message: "definitions carry no modifier state; derive the key from an instance",
		}
	default:
		return schema.Key{}, &oaserrors.IdentityError{
			Value:   v,
			Message: "identity keys require a *schema.Schema instance",
		}
	}
}

// instanceOf normalizes a schema-bearing value to an instance. Definitions
// instantiate with no modifiers; strings resolve through the registry.
func (c *Converter) instanceOf(v any) (*schema.Schema, error) {
	switch val := v.(type) {
	case *schema.Schema:
		if val == nil {
			return nil, &oaserrors.SchemaError{Op: "instanceOf", Message: "nil schema instance"}
		}
		return val, nil
	case *schema.Definition:
		if val == nil {
			return nil, &oaserrors.SchemaError{Op: "instanceOf", Message: "nil schema definition"}
		}
		return val.Instance(), nil
	case string:
		if c.registry != nil {
			if def, ok := c.registry.Lookup(val); ok {
				return def.Instance(), nil
			}
		}
		return nil, &oaserrors.SchemaError{
			Value:   val,
			Op:      "instanceOf",
			Message: "name does not match any registered definition",
		}
	case nil:
		return nil, &oaserrors.SchemaError{Op: "instanceOf", Message: "nil schema value"}
	default:
		return nil, &oaserrors.SchemaError{
			Value:   v,
			Op:      "instanceOf",
			Message: "want *schema.Schema, *schema.Definition, or a definition name",
		}
	}
}
