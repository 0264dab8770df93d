package builder

import (
	"github.com/erraggy/declspec/oas"
)

// Option configures a Builder instance.
// Options are applied when creating a new Builder with New().
type Option func(*builderConfig)

// builderConfig holds builder configuration applied via options.
type builderConfig struct {
	plugins []Plugin
	logger  oas.Logger
	info    *oas.Info
	extra   map[string]any
}

func defaultBuilderConfig() *builderConfig {
	return &builderConfig{
		logger: oas.NopLogger{},
		extra:  make(map[string]any),
	}
}

// WithPlugins registers plugins on the builder. Plugins are initialized in
// order during New and their helper capabilities run in the same order.
func WithPlugins(plugins ...Plugin) Option {
	return func(cfg *builderConfig) {
		cfg.plugins = append(cfg.plugins, plugins...)
	}
}

// WithLogger sets the logger used for build-time diagnostics. The default
// logger discards everything.
func WithLogger(logger oas.Logger) Option {
	return func(cfg *builderConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithInfo seeds the document info object. The title and version passed to
// New always win over the corresponding fields here.
func WithInfo(info *oas.Info) Option {
	return func(cfg *builderConfig) {
		cfg.info = info
	}
}

// WithExtra sets a top-level document field by its serialized name.
// Recognized keys (host, basePath, schemes, consumes, produces, servers,
// security, tags, externalDocs, info, jsonSchemaDialect, webhooks) populate
// the matching typed field at build time; anything else lands in the
// document verbatim. Section keys the builder owns (paths, components,
// definitions, and friends) are rejected at build time.
func WithExtra(key string, value any) Option {
	return func(cfg *builderConfig) {
		cfg.extra[key] = value
	}
}
