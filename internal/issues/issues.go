// Package issues provides a unified issue type for problems recorded while
// converting schema definitions and assembling documents.
//
// Issues are a side channel: recording one never changes the document being
// produced. All severity levels are re-exported by each public package that
// uses them:
//   - SeverityInfo: informational messages about choices made
//   - SeverityWarning: lossy projections, renames, or recommendations
//   - SeverityCritical: input that had to be skipped or altered
package issues

import (
	"fmt"
	"strings"
)

// Severity indicates the severity level of an issue.
type Severity int

const (
	// SeverityInfo indicates informational messages about processing choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo Severity = iota

	// SeverityWarning indicates lossy projections, best-practice violations,
	// or recommendations that don't prevent processing but should be addressed.
	SeverityWarning

	// SeverityCritical indicates input that cannot be processed without loss.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Issue represents a single problem found during conversion or assembly.
type Issue struct {
	// Severity indicates the severity level of the issue
	Severity Severity
	// Component identifies the package that recorded the issue
	// (e.g. "converter", "builder", "docparse")
	Component string
	// Path locates the issue in the source model
	// (e.g. "Pet.fields.tags" or "paths./pets.get")
	Path string
	// Field is the specific field name that has the issue
	Field string
	// Value is the problematic value (optional)
	Value any
	// Message is a human-readable description of the issue
	Message string
	// Context provides additional information about the issue (optional)
	Context string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case SeverityCritical:
		symbol = "✗"
	case SeverityWarning:
		symbol = "⚠"
	case SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	where := i.Path
	if i.Field != "" {
		if where != "" {
			where += "." + i.Field
		} else {
			where = i.Field
		}
	}

	var result string
	if where != "" {
		result = fmt.Sprintf("%s %s: %s", symbol, where, i.Message)
	} else {
		result = fmt.Sprintf("%s %s", symbol, i.Message)
	}

	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}

	return result
}

// FormatPath formats a dotted path from segments, skipping empty ones.
func FormatPath(segments ...string) string {
	parts := segments[:0:0]
	for _, seg := range segments {
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, ".")
}

// Count returns how many issues in the slice have the given severity.
func Count(list []Issue, s Severity) int {
	n := 0
	for _, issue := range list {
		if issue.Severity == s {
			n++
		}
	}
	return n
}
