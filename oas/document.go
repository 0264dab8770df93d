package oas

// Document is the root of a generated OpenAPI document. A single struct
// covers OAS 2.0 and OAS 3.x: the Version field decides which top-level
// fields are populated, and omitempty keeps the other version's fields out
// of the serialized output.
//
// OAS 2.0 documents set Swagger and register components under the root
// sections (Definitions, Parameters, Responses, SecurityDefinitions).
// OAS 3.x documents set OpenAPI and register components under Components.
type Document struct {
	Swagger string `yaml:"swagger,omitempty" json:"swagger,omitempty"` // OAS 2.0: "2.0"
	OpenAPI string `yaml:"openapi,omitempty" json:"openapi,omitempty"` // OAS 3.x: "3.0.x", "3.1.x"

	Info  *Info `yaml:"info" json:"info"`
	Paths Paths `yaml:"paths" json:"paths"`

	// OAS 2.0 specific
	Host                string                     `yaml:"host,omitempty" json:"host,omitempty"`         // OAS 2.0
	BasePath            string                     `yaml:"basePath,omitempty" json:"basePath,omitempty"` // OAS 2.0
	Schemes             []string                   `yaml:"schemes,omitempty" json:"schemes,omitempty"`   // OAS 2.0
	Consumes            []string                   `yaml:"consumes,omitempty" json:"consumes,omitempty"` // OAS 2.0
	Produces            []string                   `yaml:"produces,omitempty" json:"produces,omitempty"` // OAS 2.0
	Definitions         map[string]*Schema         `yaml:"definitions,omitempty" json:"definitions,omitempty"`
	Parameters          map[string]*Parameter      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Responses           map[string]*Response       `yaml:"responses,omitempty" json:"responses,omitempty"`
	SecurityDefinitions map[string]*SecurityScheme `yaml:"securityDefinitions,omitempty" json:"securityDefinitions,omitempty"`

	// OAS 3.x specific
	Servers           []*Server            `yaml:"servers,omitempty" json:"servers,omitempty"`
	Components        *ComponentsObject    `yaml:"components,omitempty" json:"components,omitempty"`
	Webhooks          map[string]*PathItem `yaml:"webhooks,omitempty" json:"webhooks,omitempty"`                   // OAS 3.1+
	JSONSchemaDialect string               `yaml:"jsonSchemaDialect,omitempty" json:"jsonSchemaDialect,omitempty"` // OAS 3.1+

	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Tags         []*Tag                `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`

	// Version records the target OAS version without being serialized;
	// Swagger or OpenAPI carry the version text in the output.
	Version Version `yaml:"-" json:"-"`

	// Extra captures specification extensions (fields starting with "x-")
	// and any additional top-level options
	Extra map[string]any `yaml:",inline" json:"-"`
}

// SetExtra records a top-level extension or option, allocating the map on
// first use.
func (d *Document) SetExtra(key string, value any) {
	if d.Extra == nil {
		d.Extra = make(map[string]any)
	}
	d.Extra[key] = value
}

// ComponentsObject holds reusable objects for different aspects of the OAS (OAS 3.0+)
type ComponentsObject struct {
	Schemas         map[string]*Schema         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       map[string]*Response       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      map[string]*Parameter      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Examples        map[string]*Example        `yaml:"examples,omitempty" json:"examples,omitempty"`
	RequestBodies   map[string]*RequestBody    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         map[string]*Header         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	Links           map[string]*Link           `yaml:"links,omitempty" json:"links,omitempty"`
	Callbacks       map[string]*Callback       `yaml:"callbacks,omitempty" json:"callbacks,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// IsEmpty reports whether no component has been registered in any subsection.
// An empty components object is omitted from OAS 3.x output.
func (c *ComponentsObject) IsEmpty() bool {
	if c == nil {
		return true
	}
	return len(c.Schemas) == 0 &&
		len(c.Responses) == 0 &&
		len(c.Parameters) == 0 &&
		len(c.Examples) == 0 &&
		len(c.RequestBodies) == 0 &&
		len(c.Headers) == 0 &&
		len(c.SecuritySchemes) == 0 &&
		len(c.Links) == 0 &&
		len(c.Callbacks) == 0 &&
		len(c.Extra) == 0
}
