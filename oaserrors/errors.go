// Package oaserrors provides structured error types for declspec.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - SchemaError: values that cannot be resolved to a schema definition or instance
//   - IdentityError: identity key derivation on values that carry no instance identity
//   - ReferenceError: unresolvable or circular schema references
//   - ParameterError: invalid, duplicate, or ambiguous parameter projections
//   - ComponentError: component registration failures
//   - VersionError: unsupported OpenAPI version strings
//   - PathError: invalid path templates or HTTP methods
//
// # Usage with errors.Is
//
//	ref, err := conv.ResolveSchema(node)
//	if err != nil {
//	    if errors.Is(err, oaserrors.ErrCircularReference) {
//	        // name resolver returned no name inside a reference cycle
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidSchema indicates a value that is not a schema definition,
	// schema instance, or registered definition name.
	ErrInvalidSchema = errors.New("invalid schema value")

	// ErrInvalidIdentity indicates an identity key was requested for a value
	// that carries no instance identity.
	ErrInvalidIdentity = errors.New("invalid schema identity")

	// ErrCircularReference indicates a schema reference cycle that cannot be
	// broken because no component name is available.
	ErrCircularReference = errors.New("circular schema reference")

	// ErrAmbiguousParameter indicates a many-item schema was projected into a
	// location that only supports single values.
	ErrAmbiguousParameter = errors.New("ambiguous parameter projection")

	// ErrDuplicateComponent indicates a component name was registered twice.
	ErrDuplicateComponent = errors.New("duplicate component")

	// ErrDuplicateParameter indicates two parameters share a name and location.
	ErrDuplicateParameter = errors.New("duplicate parameter")

	// ErrInvalidParameter indicates a parameter is missing required fields.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidVersion indicates an unsupported OpenAPI version string.
	ErrInvalidVersion = errors.New("invalid OpenAPI version")

	// ErrInvalidMethod indicates an HTTP method not allowed by the target
	// OpenAPI version.
	ErrInvalidMethod = errors.New("invalid HTTP method")

	// ErrMissingPath indicates no path template was supplied or derived.
	ErrMissingPath = errors.New("missing path template")
)

// SchemaError represents a value that could not be used as a schema.
// This includes wrong dynamic types passed to any-typed resolution entry
// points and names that resolve to nothing.
type SchemaError struct {
	// Value is the offending value (may be nil)
	Value any
	// Op is the operation that rejected the value (e.g. "ResolveSchema")
	Op string
	// Message describes why the value was rejected
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "invalid schema value"
	if e.Op != "" {
		msg += " in " + e.Op
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (got %T)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// IdentityError represents an identity key derivation failure.
// Identity keys require a schema instance; definitions and other values have
// no modifier state to key on.
type IdentityError struct {
	// Value is the value that carries no instance identity
	Value any
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *IdentityError) Error() string {
	msg := "invalid schema identity"
	if e.Value != nil {
		msg += fmt.Sprintf(" (got %T)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *IdentityError) Is(target error) bool {
	return target == ErrInvalidIdentity
}

// ReferenceError represents a failure to produce a schema reference.
type ReferenceError struct {
	// SchemaName is the definition name involved, if known
	SchemaName string
	// IsCircular is true if this error is due to a reference cycle
	IsCircular bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCircular {
		msg = "circular schema reference"
	}
	if e.SchemaName != "" {
		msg += ": " + e.SchemaName
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrCircularReference && e.IsCircular
}

// ParameterError represents an invalid, duplicate, or ambiguous parameter.
type ParameterError struct {
	// Name is the parameter name, if known
	Name string
	// In is the parameter location, if known
	In string
	// MissingFields lists required fields absent from the parameter
	MissingFields []string
	// IsDuplicate is true when the (name, in) pair is already taken
	IsDuplicate bool
	// IsAmbiguous is true when a many-item schema was projected outside a body
	IsAmbiguous bool
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ParameterError) Error() string {
	msg := "invalid parameter"
	switch {
	case e.IsDuplicate:
		msg = "duplicate parameter"
	case e.IsAmbiguous:
		msg = "ambiguous parameter projection"
	case len(e.MissingFields) > 0:
		msg += fmt.Sprintf(": missing %v", e.MissingFields)
	}
	if e.Name != "" {
		msg += ": " + e.Name
		if e.In != "" {
			msg += " in " + e.In
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
// Matches ErrInvalidParameter, and also ErrDuplicateParameter or
// ErrAmbiguousParameter when the corresponding flags are set.
func (e *ParameterError) Is(target error) bool {
	if target == ErrInvalidParameter {
		return true
	}
	if target == ErrDuplicateParameter && e.IsDuplicate {
		return true
	}
	if target == ErrAmbiguousParameter && e.IsAmbiguous {
		return true
	}
	return false
}

// ComponentError represents a component registration failure.
type ComponentError struct {
	// Kind is the component kind ("schema", "response", "parameter", ...)
	Kind string
	// Name is the component identifier
	Name string
	// Message provides additional context
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ComponentError) Error() string {
	msg := "duplicate component"
	if e.Kind != "" {
		msg += " " + e.Kind
	}
	if e.Name != "" {
		msg += " " + fmt.Sprintf("%q", e.Name)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ComponentError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ComponentError) Is(target error) bool {
	return target == ErrDuplicateComponent
}

// VersionError represents an unsupported OpenAPI version string.
type VersionError struct {
	// Value is the rejected version string
	Value string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *VersionError) Error() string {
	msg := "invalid OpenAPI version"
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *VersionError) Is(target error) bool {
	return target == ErrInvalidVersion
}

// PathError represents an invalid path registration.
type PathError struct {
	// Path is the path template, if known
	Path string
	// InvalidMethods lists HTTP methods rejected for the target version
	InvalidMethods []string
	// MissingPath is true when no path template was supplied or derived
	MissingPath bool
	// Message provides additional context
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *PathError) Error() string {
	msg := "invalid path"
	if e.MissingPath {
		msg = "missing path template"
	}
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if len(e.InvalidMethods) > 0 {
		msg += fmt.Sprintf(": invalid HTTP methods %v", e.InvalidMethods)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PathError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrMissingPath when no path was supplied and ErrInvalidMethod when
// methods were rejected.
func (e *PathError) Is(target error) bool {
	if target == ErrMissingPath && e.MissingPath {
		return true
	}
	if target == ErrInvalidMethod && len(e.InvalidMethods) > 0 {
		return true
	}
	return false
}
