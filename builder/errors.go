package builder

import (
	"fmt"
	"strings"
)

// BuildErrors collects every error recorded while assembling a document.
//
// Path and component registration return their errors immediately, but the
// builder also records them so that Build fails even when a caller ignored
// the individual return values. Build returns the collection whenever at
// least one error was recorded.
type BuildErrors []error

// Error implements the error interface with a formatted multi-error message.
func (errs BuildErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		if errs[0] == nil {
			return ""
		}
		return errs[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "builder: %d error(s):\n", len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Unwrap returns the collected errors for Go 1.20+ error wrapping semantics,
// enabling errors.Is and errors.As to work across the whole collection.
func (errs BuildErrors) Unwrap() []error {
	out := make([]error, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		out = append(out, err)
	}
	return out
}
