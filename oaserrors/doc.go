// Package oaserrors provides structured error types for the declspec library.
//
// Import path: github.com/erraggy/declspec/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides seven core error types:
//
//   - [SchemaError]: values that cannot be resolved to a schema definition or instance
//   - [IdentityError]: identity key derivation on values without instance identity
//   - [ReferenceError]: unresolvable or circular schema references
//   - [ParameterError]: invalid, duplicate, or ambiguous parameter projections
//   - [ComponentError]: component registration failures
//   - [VersionError]: unsupported OpenAPI version strings
//   - [PathError]: invalid path templates or HTTP methods
//
// # Sentinel Errors
//
// Each failure condition has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidSchema]: Matches any [SchemaError]
//   - [ErrInvalidIdentity]: Matches any [IdentityError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrInvalidParameter]: Matches any [ParameterError]
//   - [ErrDuplicateParameter]: Matches [ParameterError] with IsDuplicate=true
//   - [ErrAmbiguousParameter]: Matches [ParameterError] with IsAmbiguous=true
//   - [ErrDuplicateComponent]: Matches any [ComponentError]
//   - [ErrInvalidVersion]: Matches any [VersionError]
//   - [ErrInvalidMethod]: Matches [PathError] with rejected methods
//   - [ErrMissingPath]: Matches [PathError] with MissingPath=true
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	ref, err := conv.ResolveSchema(value)
//	if errors.Is(err, oaserrors.ErrInvalidSchema) {
//	    // Handle bad input value
//	}
//
// Extract error details with errors.As():
//
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("failed on schema: %s\n", refErr.SchemaName)
//	    if refErr.IsCircular {
//	        // Name resolver must return a name for schemas in a cycle
//	    }
//	}
//
// # Error Chaining
//
// Error types with a Cause field support error chaining via Unwrap().
// This allows finding root causes through the standard error chain.
package oaserrors
