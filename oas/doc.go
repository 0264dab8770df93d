// Package oas defines the OpenAPI document object model shared by all
// declspec packages.
//
// Import path: github.com/erraggy/declspec/oas
//
// The model covers OAS 2.0 (Swagger) and OAS 3.x with a single set of types:
// version-specific fields are tagged omitempty and left unset by producers
// targeting the other version. Slots that may hold schema-bearing values
// before resolution (Schema.Items, Schema.Properties values, Parameter.Schema,
// MediaType.Schema, ...) are typed any; after conversion they hold *Schema.
//
// The package also provides the Version type used for version-conditional
// output decisions and the Logger interface used for structured logging
// across the module.
package oas
