package oas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidKeyword(t *testing.T) {
	assert.True(t, IsValidKeyword("description"))
	assert.True(t, IsValidKeyword("multipleOf"))
	assert.True(t, IsValidKeyword("additionalProperties"))
	assert.True(t, IsValidKeyword("x-internal-id"))
	assert.False(t, IsValidKeyword("password"))
	assert.False(t, IsValidKeyword("collectionFormat"))
	assert.False(t, IsValidKeyword(""))
}

func TestApplyKeyword(t *testing.T) {
	t.Run("string fields", func(t *testing.T) {
		var s Schema
		assert.True(t, ApplyKeyword(&s, "title", "Pet"))
		assert.True(t, ApplyKeyword(&s, "description", "a pet"))
		assert.True(t, ApplyKeyword(&s, "format", "int64"))
		assert.True(t, ApplyKeyword(&s, "pattern", `^\d+$`))
		assert.Equal(t, "Pet", s.Title)
		assert.Equal(t, "a pet", s.Description)
		assert.Equal(t, "int64", s.Format)
		assert.Equal(t, `^\d+$`, s.Pattern)
	})

	t.Run("numeric coercion", func(t *testing.T) {
		var s Schema
		assert.True(t, ApplyKeyword(&s, "maximum", 100))
		assert.True(t, ApplyKeyword(&s, "minimum", 1.5))
		assert.True(t, ApplyKeyword(&s, "multipleOf", int64(2)))
		assert.True(t, ApplyKeyword(&s, "maxLength", 32))
		assert.True(t, ApplyKeyword(&s, "minItems", float64(1)))
		require.NotNil(t, s.Maximum)
		require.NotNil(t, s.Minimum)
		require.NotNil(t, s.MultipleOf)
		require.NotNil(t, s.MaxLength)
		require.NotNil(t, s.MinItems)
		assert.Equal(t, float64(100), *s.Maximum)
		assert.Equal(t, 1.5, *s.Minimum)
		assert.Equal(t, float64(2), *s.MultipleOf)
		assert.Equal(t, 32, *s.MaxLength)
		assert.Equal(t, 1, *s.MinItems)
	})

	t.Run("bool and slices", func(t *testing.T) {
		var s Schema
		assert.True(t, ApplyKeyword(&s, "uniqueItems", true))
		assert.True(t, ApplyKeyword(&s, "readOnly", true))
		assert.True(t, ApplyKeyword(&s, "required", []string{"id", "name"}))
		assert.True(t, ApplyKeyword(&s, "enum", []any{"a", "b"}))
		assert.True(t, s.UniqueItems)
		assert.True(t, s.ReadOnly)
		assert.Equal(t, []string{"id", "name"}, s.Required)
		assert.Equal(t, []any{"a", "b"}, s.Enum)
	})

	t.Run("required from any slice", func(t *testing.T) {
		var s Schema
		assert.True(t, ApplyKeyword(&s, "required", []any{"id", "name"}))
		assert.Equal(t, []string{"id", "name"}, s.Required)
	})

	t.Run("default keeps falsy values", func(t *testing.T) {
		var s Schema
		assert.True(t, ApplyKeyword(&s, "default", false))
		assert.Equal(t, false, s.Default)
	})

	t.Run("extension keys land in Extra", func(t *testing.T) {
		var s Schema
		assert.True(t, ApplyKeyword(&s, "x-nullable", true))
		assert.True(t, ApplyKeyword(&s, "x-internal-id", 42))
		assert.Equal(t, true, s.Extra["x-nullable"])
		assert.Equal(t, 42, s.Extra["x-internal-id"])
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		var s Schema
		assert.False(t, ApplyKeyword(&s, "password", "hunter2"))
		assert.False(t, ApplyKeyword(&s, "load_only", true))
		assert.Empty(t, s.Extra)
	})

	t.Run("composition slots", func(t *testing.T) {
		var s Schema
		inner := &Schema{Type: "string"}
		assert.True(t, ApplyKeyword(&s, "allOf", []any{inner}))
		assert.True(t, ApplyKeyword(&s, "not", inner))
		assert.True(t, ApplyKeyword(&s, "items", inner))
		require.Len(t, s.AllOf, 1)
		assert.Same(t, inner, s.AllOf[0])
		assert.Same(t, inner, s.Not)
		assert.Same(t, inner, s.Items)
	})
}

func TestTypeList(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []string
	}{
		{name: "nil", input: nil, want: nil},
		{name: "scalar", input: "string", want: []string{"string"}},
		{name: "string slice", input: []string{"string", "null"}, want: []string{"string", "null"}},
		{name: "any slice", input: []any{"integer", "null"}, want: []string{"integer", "null"}},
		{name: "any slice with junk", input: []any{"integer", 5}, want: []string{"integer"}},
		{name: "unsupported", input: 12, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeList(tt.input))
		})
	}
}

func TestSchemaHasType(t *testing.T) {
	s := &Schema{Type: []string{"string", "null"}}
	assert.True(t, s.HasType("null"))
	assert.True(t, s.HasType("string"))
	assert.False(t, s.HasType("integer"))

	scalar := &Schema{Type: "integer"}
	assert.True(t, scalar.HasType("integer"))

	var untyped Schema
	assert.False(t, untyped.HasType("string"))
}
