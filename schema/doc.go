// Package schema declares API payload shapes for conversion into OpenAPI
// documents.
//
// A Definition is the declared, named shape (built with New and Field).
// A Schema is an instance of a definition with presentation modifiers
// applied: only, exclude, load-only and dump-only promotion, partial
// required-ness, and many. Instances are cheap views; building one never
// copies or mutates the definition's fields.
//
// Fields are declarative. They carry the kind, the flags, the validation
// rules (schema/validate), and free-form metadata that a converter turns
// into OpenAPI keywords. Nothing in this package serializes or validates
// data.
//
// Definitions, instances, and registries are not safe for concurrent
// mutation; share them only after construction is complete.
package schema
