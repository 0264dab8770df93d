// Package builder provides programmatic construction of OpenAPI Specification documents.
//
// A Builder accumulates metadata, reusable components, paths, and tags, then
// assembles them into an oas.Document laid out for the requested OAS version:
// 2.0 documents carry top-level definitions, parameters, responses, and
// securityDefinitions sections while 3.x documents nest everything under
// components.
//
// # Quick Start
//
//	spec, err := builder.New("Pet API", "1.0.0", "3.0.3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	spec.Components().Schema("Pet", builder.WithSchemaObject(petSchema))
//	err = spec.Path("/pets/{petId}",
//		builder.WithOperation("get", &oas.Operation{
//			Responses: oas.Responses{"200": {Description: "A pet"}},
//		}),
//	)
//	doc, err := spec.Build()
//
// # References
//
// Component registrations and path operations may refer to other components
// by bare name. The builder rewrites those names into version-correct
// reference objects, so "Pet" becomes #/definitions/Pet on a 2.0 document
// and #/components/schemas/Pet on a 3.x document. Components registered
// with WithLazy stay out of the document until something references them.
//
// # Plugins
//
// Behavior is extended through plugins. A Plugin receives the Builder at
// construction time and opts into capabilities by implementing SchemaHelper,
// ParameterHelper, ResponseHelper, HeaderHelper, PathHelper, or
// OperationsHelper. Helpers run in registration order during the matching
// builder call.
package builder
