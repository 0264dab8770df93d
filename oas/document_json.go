package oas

import (
	json "github.com/goccy/go-json"
)

// MarshalJSON implements custom JSON marshaling for Document.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (d *Document) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(d.Extra) == 0 {
		type Alias Document
		return json.Marshal((*Alias)(d))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 16+len(d.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if d.Swagger != "" {
		m["swagger"] = d.Swagger
	}
	if d.OpenAPI != "" {
		m["openapi"] = d.OpenAPI
	}
	m["info"] = d.Info
	m["paths"] = d.Paths

	if d.Host != "" {
		m["host"] = d.Host
	}
	if d.BasePath != "" {
		m["basePath"] = d.BasePath
	}
	if len(d.Schemes) > 0 {
		m["schemes"] = d.Schemes
	}
	if len(d.Consumes) > 0 {
		m["consumes"] = d.Consumes
	}
	if len(d.Produces) > 0 {
		m["produces"] = d.Produces
	}
	if len(d.Definitions) > 0 {
		m["definitions"] = d.Definitions
	}
	if len(d.Parameters) > 0 {
		m["parameters"] = d.Parameters
	}
	if len(d.Responses) > 0 {
		m["responses"] = d.Responses
	}
	if len(d.SecurityDefinitions) > 0 {
		m["securityDefinitions"] = d.SecurityDefinitions
	}
	if len(d.Servers) > 0 {
		m["servers"] = d.Servers
	}
	if d.Components != nil {
		m["components"] = d.Components
	}
	if len(d.Webhooks) > 0 {
		m["webhooks"] = d.Webhooks
	}
	if d.JSONSchemaDialect != "" {
		m["jsonSchemaDialect"] = d.JSONSchemaDialect
	}
	if len(d.Security) > 0 {
		m["security"] = d.Security
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}
	if d.ExternalDocs != nil {
		m["externalDocs"] = d.ExternalDocs
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range d.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}

// MarshalJSON implements custom JSON marshaling for ComponentsObject.
// This is required to flatten Extra fields (specification extensions like x-*)
// into the top-level JSON object, as JSON struct tags don't support
// inline maps like yaml:",inline".
func (c *ComponentsObject) MarshalJSON() ([]byte, error) {
	// Fast path: no Extra fields, use standard marshaling
	if len(c.Extra) == 0 {
		type Alias ComponentsObject
		return json.Marshal((*Alias)(c))
	}

	// Build map directly to avoid double-marshal pattern
	m := make(map[string]any, 9+len(c.Extra))

	// Add known fields (omit zero values to match json:",omitempty" behavior)
	if len(c.Schemas) > 0 {
		m["schemas"] = c.Schemas
	}
	if len(c.Responses) > 0 {
		m["responses"] = c.Responses
	}
	if len(c.Parameters) > 0 {
		m["parameters"] = c.Parameters
	}
	if len(c.Examples) > 0 {
		m["examples"] = c.Examples
	}
	if len(c.RequestBodies) > 0 {
		m["requestBodies"] = c.RequestBodies
	}
	if len(c.Headers) > 0 {
		m["headers"] = c.Headers
	}
	if len(c.SecuritySchemes) > 0 {
		m["securitySchemes"] = c.SecuritySchemes
	}
	if len(c.Links) > 0 {
		m["links"] = c.Links
	}
	if len(c.Callbacks) > 0 {
		m["callbacks"] = c.Callbacks
	}

	// Add Extra fields (spec extensions must start with "x-")
	for k, v := range c.Extra {
		m[k] = v
	}

	return json.Marshal(m)
}
