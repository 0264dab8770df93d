// Package converter translates declarative schema definitions into OpenAPI
// Schema and Parameter Objects.
//
// The converter is the core of declspec: it walks schema fields through an
// ordered pipeline of attribute functions, resolves nested schemas to
// component references or inline objects, allocates collision-free component
// names, and projects schemas into operation parameters. One Converter
// instance targets one OpenAPI version and owns one reference registry;
// separate instances share nothing.
//
// # Quick Start
//
// Most programs never construct a Converter directly. Register a Plugin on a
// builder and the schema values placed in components, operations, and
// parameters are resolved on the way in:
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
//	err = spec.Components().Schema("Pet", builder.WithSchemaValue(pet))
//
// Construct a Converter directly when converting fields or schemas outside a
// document build:
//
//	conv := converter.New(oas.MustParseVersion("3.0.3"), nil, spec)
//	prop, err := conv.Property(schema.String().Required().Doc("pet name"))
//
// # Name Resolution
//
// Nested schemas resolve to $ref objects when the SchemaNameResolver returns
// a component name, and to inline objects when it returns "". The default
// resolver strips a trailing "Schema" from the definition name. A resolver
// that returns "" for a schema participating in a reference cycle makes the
// cycle unbreakable; the converter fails fast with
// oaserrors.ErrCircularReference rather than recurse forever. Named cycles
// always resolve: the name is registered before the schema body is built, so
// the reference already exists when the cycle comes back around.
//
// # Conversion Issues
//
// Lossy projections, renamed components, and ignored input are recorded as
// issues rather than errors. The converter tracks three severity levels:
// Info (conversion choices), Warning (lossy or surprising projections), and
// Critical (input that had to be skipped). Issues are a side channel; the
// generated document is byte-identical whether or not anyone reads them.
//
//	for _, issue := range conv.Issues() {
//		fmt.Println(issue)
//	}
//
// # Related Packages
//
// Conversion integrates with the other declspec packages:
//   - [github.com/erraggy/declspec/schema] - Declare the definitions and fields the converter consumes
//   - [github.com/erraggy/declspec/builder] - Assemble converted schemas into complete documents
//   - [github.com/erraggy/declspec/docparse] - Extract operations from doc comments before resolution
package converter
