// Package declspec generates OpenAPI Specification (OAS) documents from
// declarative schema definitions.
//
// declspec builds the document the way application code describes it: you
// declare schemas once, wire them into operations, parameters, and
// components, and the library converts them into version-correct OpenAPI
// objects with every reference resolved and every component named exactly
// once.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - schema: Declare schemas, fields, and validation rules
//   - builder: Assemble documents from info, paths, and components
//   - converter: Convert declared schemas into OpenAPI objects and resolve references
//   - docparse: Extract operations from handler doc comments
//
// Two supporting packages round out the API:
//
//   - oas: The typed OpenAPI document model shared by all packages
//   - oaserrors: The error types every package reports with
//
// All packages produce documents for OAS 2.0 (Swagger) and OAS 3.x:
//   - OAS 2.0 (Swagger): https://spec.openapis.org/oas/v2.0.html
//   - OAS 3.0.x: https://spec.openapis.org/oas/v3.0.0.html
//   - OAS 3.1.x: https://spec.openapis.org/oas/v3.1.0.html
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/declspec
//
// # Quick Start
//
// Declare a schema, assemble a document, and emit YAML:
//
//	pet := schema.New("PetSchema").
//		Field("id", schema.Int().DumpOnly()).
//		Field("name", schema.String().Required())
//
//	spec, err := builder.New("Pet Store", "1.0.0", "3.0.3",
//		builder.WithPlugins(converter.NewPlugin(nil)),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = spec.Path("/pets", builder.WithOperation("get", &oas.Operation{
//		Responses: oas.Responses{
//			"200": {
//				Description: "a page of pets",
//				Content: map[string]*oas.MediaType{
//					"application/json": {Schema: pet.Instance(schema.WithMany())},
//				},
//			},
//		},
//	}))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out, err := spec.MarshalYAML()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(string(out))
//
// The converter plugin registers "Pet" as a schema component the first time
// the instance appears and rewrites every later appearance into a $ref.
//
// # Schema Package
//
// The schema package declares the shape of application data. A Definition
// holds named fields in declaration order; fields carry kinds, modifiers,
// metadata, and validation rules.
//
// Key features:
//   - Field kinds covering primitives, formats, containers, and enums
//   - Modifiers: required, nullable, dump-only, load-only, data keys
//   - Validation rules that become JSON Schema keywords
//   - Nested and self-referencing definitions
//   - Instances with only/exclude/partial views of a definition
//   - A Registry for resolving definitions by name
//
// Example:
//
//	pet := schema.New("PetSchema").
//		Field("name", schema.String().Required().Validate(validate.Length{Max: validate.Int(64)})).
//		Field("status", schema.NewEnum(nil, "available", "pending", "sold")).
//		Field("tags", schema.NewList(schema.NewNested(tag)))
//
// See the schema package documentation for more details.
//
// # Builder Package
//
// The builder package assembles documents. It owns the info section, path
// items, components, and tags, validates operations and parameters as they
// arrive, and marshals the finished document to YAML or JSON.
//
// Key features:
//   - Version-aware assembly for OAS 2.0 and 3.x
//   - Component registration with duplicate detection
//   - Plugin capability interfaces for schema, parameter, response,
//     header, path, and operations processing
//   - Document extras with typed-field overlay
//   - YAML and JSON output
//
// Example:
//
//	spec, err := builder.New("Pet Store", "1.0.0", "3.0.3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = spec.Components().Schema("Pet", builder.WithSchemaObject(&oas.Schema{Type: "object"}))
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc, err := spec.Build()
//
// See the builder package documentation for more details.
//
// # Converter Package
//
// The converter package turns declared schemas into OpenAPI objects. It
// converts fields into properties with version-correct keywords, expands
// schemas into parameter lists, resolves schema-bearing values anywhere in
// an operation, and allocates unique component names.
//
// Key features:
//   - Field conversion honoring kinds, validators, and metadata
//   - Version differences handled per keyword (nullable, readOnly, formats)
//   - Query, header, cookie, and body parameter projection
//   - Reference resolution with self-reference and cycle handling
//   - Component naming strategies and templates
//   - Issue reporting for lossy conversions
//
// Example:
//
//	conv := converter.New(oas.MustParseVersion("3.0.3"), nil, nil)
//	prop, err := conv.Property(schema.String().Required().Doc("the pet's name"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(prop.Type) // string
//
// See the converter package documentation for more details.
//
// # Docparse Package
//
// The docparse package reads operations out of handler doc comments. A doc
// comment may end with a YAML block introduced by a "---" marker; the block
// declares the operations the handler serves. The loader collects doc
// comments from source through go/packages, and the plugin merges them into
// builder paths.
//
// Example:
//
//	pkg, err := docparse.Load("./internal/handlers")
//	if err != nil {
//		log.Fatal(err)
//	}
//	spec, err := builder.New("Pet Store", "1.0.0", "3.0.3",
//		builder.WithPlugins(docparse.NewPlugin(pkg).Route("/pets/{petId}", "GetPet")),
//	)
//
// See the docparse package documentation for more details.
//
// # Error Handling
//
// All packages follow consistent error handling patterns:
//
//   - Invalid input: Typed errors from oaserrors (SchemaError,
//     ParameterError, ComponentError, PathError, VersionError), matchable
//     with errors.As and the package's sentinel values via errors.Is
//   - Lossy conversions: Collected as issues on the converter (not
//     returned as errors), each carrying a component and message
//   - Build problems: Collected during assembly and reported together by
//     Build as a BuildErrors value
//
// Always check both the error return value and the converter's issue list
// when diagnosing unexpected output.
//
// # Version Compatibility
//
// This library is designed to be backward compatible within major versions.
// The public API follows semantic versioning:
//
//   - Major version changes may include breaking API changes
//   - Minor version changes add functionality in a backward-compatible manner
//   - Patch version changes include backward-compatible bug fixes
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/declspec
//   - OpenAPI Specification: https://spec.openapis.org
//   - JSON Schema Specification: https://json-schema.org
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/declspec
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in
// the repository for full details.
package declspec
