package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/declspec/internal/maputil"
	"github.com/erraggy/declspec/internal/schemautil"
	"github.com/erraggy/declspec/oas"
	"github.com/erraggy/declspec/oaserrors"
)

// outputFileMode is the permission set applied to files created by WriteFile.
const outputFileMode = 0o600

// Builder is the main entry point for constructing OAS documents. It
// accumulates info metadata, reusable components, path operations, and tags,
// then Build assembles everything into an oas.Document for the requested
// version.
//
// Concurrency: Builder instances are not safe for concurrent use.
// Create separate Builder instances for concurrent operations.
type Builder struct {
	title      string
	version    string
	oasVersion oas.Version

	// Document sections
	info  *oas.Info
	tags  []*oas.Tag
	paths oas.Paths
	extra map[string]any

	plugins    []Plugin
	logger     oas.Logger
	components *Components

	// Accumulated errors, reported by Build
	errors []error
}

// New creates a Builder for an API titled title at the given API version,
// targeting the OAS version in openAPIVersion (for example "2.0" or
// "3.0.3"). Plugins registered through WithPlugins are initialized in order
// before New returns.
func New(title, version, openAPIVersion string, opts ...Option) (*Builder, error) {
	oasVersion, err := oas.ParseVersion(openAPIVersion)
	if err != nil {
		return nil, err
	}
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	b := &Builder{
		title:      title,
		version:    version,
		oasVersion: oasVersion,
		info:       cfg.info,
		extra:      cfg.extra,
		plugins:    cfg.plugins,
		logger:     cfg.logger,
		paths:      make(oas.Paths),
	}
	b.components = newComponents(b)
	for _, plugin := range b.plugins {
		if err := plugin.Init(b); err != nil {
			return nil, fmt.Errorf("initializing plugin: %w", err)
		}
	}
	return b, nil
}

// Version returns the OAS version this builder targets.
func (b *Builder) Version() oas.Version { return b.oasVersion }

// Logger returns the builder's logger. Plugins use it for diagnostics.
func (b *Builder) Logger() oas.Logger { return b.logger }

// Components returns the component registry for this builder.
func (b *Builder) Components() *Components { return b.components }

// Tag appends a tag to the document. Duplicate names are kept as given;
// use WithExtra("tags", ...) to replace the whole list at build time.
func (b *Builder) Tag(tag *oas.Tag) *Builder {
	if tag != nil {
		b.tags = append(b.tags, tag)
	}
	return b
}

// PathOption configures a single Path call.
type PathOption func(*pathConfig)

type pathConfig struct {
	operations  map[string]*oas.Operation
	summary     *string
	description *string
	parameters  []*oas.Parameter
	extra       map[string]any
}

// WithOperations supplies the operations to register, keyed by lowercase
// HTTP method. Keys starting with "x-" are carried as path item extensions.
func WithOperations(operations map[string]*oas.Operation) PathOption {
	return func(cfg *pathConfig) {
		if cfg.operations == nil {
			cfg.operations = make(map[string]*oas.Operation, len(operations))
		}
		for method, op := range operations {
			cfg.operations[method] = op
		}
	}
}

// WithOperation supplies a single operation under the given method.
func WithOperation(method string, op *oas.Operation) PathOption {
	return func(cfg *pathConfig) {
		if cfg.operations == nil {
			cfg.operations = make(map[string]*oas.Operation)
		}
		cfg.operations[method] = op
	}
}

// WithPathSummary sets the path item summary.
func WithPathSummary(summary string) PathOption {
	return func(cfg *pathConfig) { cfg.summary = &summary }
}

// WithPathDescription sets the path item description.
func WithPathDescription(description string) PathOption {
	return func(cfg *pathConfig) { cfg.description = &description }
}

// WithPathParameters sets parameters shared by every operation on the path.
// They replace any shared parameters registered by an earlier Path call for
// the same template.
func WithPathParameters(parameters ...*oas.Parameter) PathOption {
	return func(cfg *pathConfig) {
		cfg.parameters = append(cfg.parameters, parameters...)
	}
}

// WithPathExtra records a specification extension on the path item.
func WithPathExtra(key string, value any) PathOption {
	return func(cfg *pathConfig) {
		if cfg.extra == nil {
			cfg.extra = make(map[string]any)
		}
		cfg.extra[key] = value
	}
}

// Path registers operations under a path template. Operations and shared
// parameters are deep-copied before plugins touch them; PathHelper plugins
// may rewrite the template (the last non-empty result wins) and
// OperationsHelper plugins may add or modify operations. Calling Path again
// with the same template merges the new operations into the existing item.
//
// Errors are returned and also recorded on the builder, so they resurface
// from Build even when the caller ignores the return value.
func (b *Builder) Path(path string, opts ...PathOption) error {
	if err := b.path(path, opts...); err != nil {
		b.errors = append(b.errors, err)
		return err
	}
	return nil
}

func (b *Builder) path(path string, opts ...PathOption) error {
	var cfg pathConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// Plugins mutate both, so the caller's objects stay untouched.
	operations := make(map[string]*oas.Operation, len(cfg.operations))
	for method, op := range cfg.operations {
		operations[method] = schemautil.CloneOperation(op)
	}
	parameters := schemautil.CloneParameters(cfg.parameters)

	for _, plugin := range b.plugins {
		helper, ok := plugin.(PathHelper)
		if !ok {
			continue
		}
		ret, err := helper.PathHelper(path, operations, parameters)
		if err != nil {
			return err
		}
		if ret != "" {
			path = ret
		}
	}
	if path == "" {
		return &oaserrors.PathError{MissingPath: true}
	}

	for _, plugin := range b.plugins {
		helper, ok := plugin.(OperationsHelper)
		if !ok {
			continue
		}
		if err := helper.OperationsHelper(path, operations); err != nil {
			return err
		}
	}

	if err := b.cleanOperations(path, operations); err != nil {
		return err
	}

	item := b.getOrCreatePathItem(path)
	for _, method := range maputil.SortedKeys(operations) {
		if strings.HasPrefix(method, "x-") {
			item.SetExtra(method, operations[method])
			continue
		}
		item.SetOperation(method, operations[method])
	}
	if cfg.summary != nil {
		item.Summary = *cfg.summary
	}
	if cfg.description != nil {
		item.Description = *cfg.description
	}
	for _, key := range maputil.SortedKeys(cfg.extra) {
		item.SetExtra(key, cfg.extra[key])
	}
	if len(parameters) > 0 {
		if err := b.cleanParameters(path, parameters); err != nil {
			return err
		}
		item.Parameters = parameters
	}

	b.components.resolveRefsInPathItem(item)
	return nil
}

func (b *Builder) getOrCreatePathItem(path string) *oas.PathItem {
	if item, ok := b.paths[path]; ok {
		return item
	}
	item := &oas.PathItem{}
	b.paths[path] = item
	return item
}

// cleanOperations validates method keys and normalizes the operations in
// place. Keys must be valid HTTP methods for the target version or start
// with "x-". Parameters inside each operation get the same treatment as
// shared path parameters, and non-integer response codes other than
// "default" draw a warning on OAS 2.0 documents, which do not allow them.
func (b *Builder) cleanOperations(path string, operations map[string]*oas.Operation) error {
	valid := b.oasVersion.ValidMethods()
	var invalid []string
	for method := range operations {
		if slices.Contains(valid, method) || strings.HasPrefix(method, "x-") {
			continue
		}
		invalid = append(invalid, method)
	}
	if len(invalid) > 0 {
		slices.Sort(invalid)
		return &oaserrors.PathError{Path: path, InvalidMethods: invalid}
	}

	for _, method := range maputil.SortedKeys(operations) {
		op := operations[method]
		if op == nil {
			continue
		}
		if len(op.Parameters) > 0 {
			if err := b.cleanParameters(path, op.Parameters); err != nil {
				return err
			}
		}
		for code := range op.Responses {
			if _, err := strconv.Atoi(code); err == nil {
				continue
			}
			if b.oasVersion.Major < 3 && code != "default" {
				b.logger.Warn("non-integer response code not allowed in OpenAPI 2.0",
					"path", path, "method", method, "code", code)
			}
		}
	}
	return nil
}

// cleanParameters enforces the parameter rules shared by every OAS version:
// name and location are mandatory, a (name, location) pair may appear only
// once, and path parameters are always required. Reference parameters pass
// through untouched.
func (b *Builder) cleanParameters(path string, parameters []*oas.Parameter) error {
	type paramKey struct{ name, in string }
	seen := make(map[paramKey]bool, len(parameters))
	for _, p := range parameters {
		if p == nil || p.Ref != "" {
			continue
		}
		var missing []string
		if p.Name == "" {
			missing = append(missing, "name")
		}
		if p.In == "" {
			missing = append(missing, "in")
		}
		if len(missing) > 0 {
			return &oaserrors.ParameterError{
				Name:          p.Name,
				In:            p.In,
				MissingFields: missing,
				Message:       "declared at " + path,
			}
		}
		key := paramKey{name: p.Name, in: p.In}
		if seen[key] {
			return &oaserrors.ParameterError{
				Name:        p.Name,
				In:          p.In,
				IsDuplicate: true,
				Message:     "declared at " + path,
			}
		}
		seen[key] = true
		if p.In == "path" {
			p.Required = true
		}
	}
	return nil
}

// Build assembles the document. Errors recorded by earlier Path and
// component registrations, plus any conflicts from WithExtra keys, are
// reported together as a BuildErrors.
func (b *Builder) Build() (*oas.Document, error) {
	doc := &oas.Document{
		Info:    b.buildInfo(),
		Paths:   b.paths,
		Version: b.oasVersion,
	}
	if len(b.tags) > 0 {
		doc.Tags = b.tags
	}
	c := b.components
	if b.oasVersion.Major < 3 {
		doc.Swagger = b.oasVersion.String()
		if len(c.schemas) > 0 {
			doc.Definitions = c.schemas
		}
		if len(c.parameters) > 0 {
			doc.Parameters = c.parameters
		}
		if len(c.responses) > 0 {
			doc.Responses = c.responses
		}
		if len(c.securitySchemes) > 0 {
			doc.SecurityDefinitions = c.securitySchemes
		}
	} else {
		doc.OpenAPI = b.oasVersion.String()
		doc.Components = c.toObject()
	}

	errs := append([]error{}, b.errors...)
	errs = append(errs, b.applyExtras(doc)...)
	if len(errs) > 0 {
		return nil, BuildErrors(errs)
	}
	return doc, nil
}

// applyExtras overlays WithExtra values onto the assembled document.
// Known keys populate typed fields, section keys owned by the builder are
// rejected, and everything else is carried verbatim.
func (b *Builder) applyExtras(doc *oas.Document) []error {
	var errs []error
	for _, key := range maputil.SortedKeys(b.extra) {
		value := b.extra[key]
		ok := true
		switch key {
		case "host":
			doc.Host, ok = value.(string)
		case "basePath":
			doc.BasePath, ok = value.(string)
		case "schemes":
			doc.Schemes, ok = value.([]string)
		case "consumes":
			doc.Consumes, ok = value.([]string)
		case "produces":
			doc.Produces, ok = value.([]string)
		case "servers":
			doc.Servers, ok = value.([]*oas.Server)
		case "security":
			doc.Security, ok = value.([]oas.SecurityRequirement)
		case "externalDocs":
			doc.ExternalDocs, ok = value.(*oas.ExternalDocs)
		case "jsonSchemaDialect":
			doc.JSONSchemaDialect, ok = value.(string)
		case "webhooks":
			doc.Webhooks, ok = value.(map[string]*oas.PathItem)
		case "tags":
			doc.Tags, ok = value.([]*oas.Tag)
		case "info":
			var info *oas.Info
			if info, ok = value.(*oas.Info); ok {
				overlayInfo(doc.Info, info)
			}
		case "paths", "swagger", "openapi", "components",
			"definitions", "responses", "parameters", "securityDefinitions":
			errs = append(errs, fmt.Errorf("extra field %q conflicts with a builder-managed section", key))
			continue
		default:
			doc.SetExtra(key, value)
		}
		if !ok {
			errs = append(errs, fmt.Errorf("extra field %q has unsupported type %T", key, value))
		}
	}
	return errs
}

func (b *Builder) buildInfo() *oas.Info {
	info := &oas.Info{}
	if b.info != nil {
		*info = *b.info
	}
	info.Title = b.title
	info.Version = b.version
	return info
}

// overlayInfo copies non-zero fields of src over dst.
func overlayInfo(dst, src *oas.Info) {
	if src == nil {
		return
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Summary != "" {
		dst.Summary = src.Summary
	}
	if src.Description != "" {
		dst.Description = src.Description
	}
	if src.TermsOfService != "" {
		dst.TermsOfService = src.TermsOfService
	}
	if src.Contact != nil {
		dst.Contact = src.Contact
	}
	if src.License != nil {
		dst.License = src.License
	}
	if src.Version != "" {
		dst.Version = src.Version
	}
	for key, value := range src.Extra {
		dst.SetExtra(key, value)
	}
}

// MarshalYAML builds the document and returns it as YAML.
func (b *Builder) MarshalYAML() ([]byte, error) {
	doc, err := b.Build()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// MarshalJSON builds the document and returns it as indented JSON.
func (b *Builder) MarshalJSON() ([]byte, error) {
	doc, err := b.Build()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// WriteFile builds the document and writes it to path. The extension picks
// the format: ".json" writes JSON, anything else writes YAML.
func (b *Builder) WriteFile(path string) error {
	var (
		data []byte
		err  error
	)
	if filepath.Ext(path) == ".json" {
		data, err = b.MarshalJSON()
	} else {
		data, err = b.MarshalYAML()
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, outputFileMode)
}
