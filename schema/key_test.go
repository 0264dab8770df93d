package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyOfEquality(t *testing.T) {
	d := petDefinition()

	t.Run("modifier order does not split keys", func(t *testing.T) {
		a := KeyOf(d.Instance(WithExclude("tag", "password")))
		b := KeyOf(d.Instance(WithExclude("password", "tag")))
		assert.Equal(t, a, b)
	})

	t.Run("duplicate modifier names collapse", func(t *testing.T) {
		a := KeyOf(d.Instance(WithDumpOnly("id", "id")))
		b := KeyOf(d.Instance(WithDumpOnly("id")))
		assert.Equal(t, a, b)
	})

	t.Run("many is not part of the key", func(t *testing.T) {
		a := KeyOf(d.Instance(WithMany()))
		b := KeyOf(d.Instance())
		assert.Equal(t, a, b)
	})

	t.Run("different definitions never collide", func(t *testing.T) {
		other := New("PetSchema").Field("id", Int())
		assert.NotEqual(t, KeyOf(d.Instance()), KeyOf(other.Instance()))
	})

	t.Run("absent and empty only stay distinct", func(t *testing.T) {
		assert.NotEqual(t, KeyOf(d.Instance()), KeyOf(d.Instance(WithOnly())))
	})

	t.Run("partial forms stay distinct", func(t *testing.T) {
		all := KeyOf(d.Instance(WithPartial()))
		some := KeyOf(d.Instance(WithPartialFields("name")))
		none := KeyOf(d.Instance())
		assert.NotEqual(t, all, some)
		assert.NotEqual(t, all, none)
		assert.NotEqual(t, some, none)
	})
}

func TestKeyString(t *testing.T) {
	d := petDefinition()

	assert.Equal(t, "PetSchema", KeyOf(d.Instance()).String())
	assert.Equal(t, "PetSchema(partial)", KeyOf(d.Instance(WithPartial())).String())

	s := d.Instance(WithOnly("tag", "id"), WithPartialFields("name"))
	assert.Equal(t, "PetSchema(only=id,tag partial=name)", KeyOf(s).String())

	var zero Key
	assert.Equal(t, "<nil>", zero.String())
}
