package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}

func TestIssueString(t *testing.T) {
	tests := []struct {
		name     string
		issue    Issue
		expected string
	}{
		{
			name: "warning with path and field",
			issue: Issue{
				Severity: SeverityWarning,
				Path:     "Pet.fields",
				Field:    "tags",
				Message:  "multiple regex validators, keeping the first",
			},
			expected: "⚠ Pet.fields.tags: multiple regex validators, keeping the first",
		},
		{
			name: "info without location",
			issue: Issue{
				Severity: SeverityInfo,
				Message:  "schema registered",
			},
			expected: "ℹ schema registered",
		},
		{
			name: "critical with context",
			issue: Issue{
				Severity: SeverityCritical,
				Path:     "paths./pets.get",
				Message:  "skipped",
				Context:  "unsupported location",
			},
			expected: "✗ paths./pets.get: skipped\n    Context: unsupported location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.issue.String())
		})
	}
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "", FormatPath())
	assert.Equal(t, "Pet", FormatPath("Pet"))
	assert.Equal(t, "Pet.fields.name", FormatPath("Pet", "fields", "name"))
	assert.Equal(t, "Pet.name", FormatPath("Pet", "", "name"))
}

func TestCount(t *testing.T) {
	list := []Issue{
		{Severity: SeverityInfo},
		{Severity: SeverityWarning},
		{Severity: SeverityWarning},
	}
	assert.Equal(t, 1, Count(list, SeverityInfo))
	assert.Equal(t, 2, Count(list, SeverityWarning))
	assert.Equal(t, 0, Count(list, SeverityCritical))
}
