package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionFieldOrder(t *testing.T) {
	d := New("PetSchema").
		Field("id", Int()).
		Field("name", String()).
		Field("tag", String())

	assert.Equal(t, []string{"id", "name", "tag"}, d.FieldNames())
	assert.Equal(t, 3, d.Len())

	// Re-declaring replaces the field but keeps its position.
	replacement := String().Required()
	d.Field("name", replacement)
	assert.Equal(t, []string{"id", "name", "tag"}, d.FieldNames())
	got, ok := d.Lookup("name")
	require.True(t, ok)
	assert.Same(t, replacement, got)
}

func TestDefinitionIgnoresNilField(t *testing.T) {
	d := New("PetSchema").Field("id", Int()).Field("ghost", nil)
	assert.Equal(t, []string{"id"}, d.FieldNames())
	_, ok := d.Lookup("ghost")
	assert.False(t, ok)
}

func TestDefinitionMeta(t *testing.T) {
	d := New("PetSchema").
		Title("Pet").
		Description("A pet for sale").
		Unknown(UnknownInclude)

	assert.Equal(t, "PetSchema", d.Name())
	assert.Equal(t, Meta{
		Title:       "Pet",
		Description: "A pet for sale",
		Unknown:     UnknownInclude,
	}, d.Meta())
}

func TestDefinitionInstanceDefaults(t *testing.T) {
	d := New("PetSchema").Field("id", Int())
	s := d.Instance()
	require.NotNil(t, s)
	assert.Same(t, d, s.Definition())
	assert.Equal(t, "PetSchema", s.Name())
	assert.False(t, s.Many())
	assert.Nil(t, s.Only())
	assert.True(t, s.KeepsRequired("id"))
}
