// Package docparse extracts OpenAPI operations from Go doc comments.
//
// A handler's doc comment may end with a YAML block introduced by a "---"
// marker line. The text above the marker stays ordinary documentation; the
// block below declares the operations the handler serves:
//
//	// GetPet fetches one pet by its identifier.
//	//
//	//	---
//	//	get:
//	//	  operationId: getPet
//	//	  responses:
//	//	    "200":
//	//	      description: a pet
//	func GetPet(w http.ResponseWriter, r *http.Request) { ... }
//
// OperationsFromDoc parses such a block from raw doc text. Load collects
// the doc comments of every function in a package through go/packages, so
// operations can be pulled straight from source:
//
//	pkg, err := docparse.Load("./internal/handlers")
//	if err != nil {
//		log.Fatal(err)
//	}
//	operations, err := pkg.Operations("GetPet")
//
// The Plugin ties both to a spec builder: routes bind path templates to
// documented functions, a Path call may name the function instead of the
// template, and the function's doc comment operations merge into the
// assembled ones:
//
//	spec, err := builder.New("Pet Store", "1.0.0", "3.0.3",
//		builder.WithPlugins(
//			docparse.NewPlugin(pkg).Route("/pets/{petId}", "GetPet"),
//			converter.NewPlugin(nil),
//		),
//	)
//	err = spec.Path("GetPet")
//
// Schema values inside doc comment operations are plain YAML maps; register
// the converter plugin after this one to resolve any component name strings
// they contain.
package docparse
