package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/declspec/oas"
	"github.com/erraggy/declspec/oaserrors"
	"github.com/erraggy/declspec/schema"
	"github.com/erraggy/declspec/schema/validate"
)

func newTestConverter(t *testing.T, openAPIVersion string, opts ...Option) *Converter {
	t.Helper()
	return New(oas.MustParseVersion(openAPIVersion), nil, nil, opts...)
}

func mustProperty(t *testing.T, c *Converter, f *schema.Field) *oas.Schema {
	t.Helper()
	prop, err := c.Property(f)
	require.NoError(t, err)
	require.NotNil(t, prop)
	return prop
}

func TestPropertyTypeAndFormat(t *testing.T) {
	cases := []struct {
		name   string
		field  *schema.Field
		typ    any
		format string
	}{
		{name: "string", field: schema.String(), typ: "string"},
		{name: "integer", field: schema.Int(), typ: "integer"},
		{name: "number", field: schema.Number(), typ: "number"},
		{name: "decimal", field: schema.Decimal(), typ: "number"},
		{name: "boolean", field: schema.Boolean(), typ: "boolean"},
		{name: "uuid", field: schema.UUID(), typ: "string", format: "uuid"},
		{name: "datetime", field: schema.DateTime(), typ: "string", format: "date-time"},
		{name: "date", field: schema.Date(), typ: "string", format: "date"},
		{name: "time", field: schema.Time(), typ: "string"},
		{name: "duration", field: schema.Duration(), typ: "integer"},
		{name: "email", field: schema.Email(), typ: "string", format: "email"},
		{name: "url", field: schema.URL(), typ: "string", format: "url"},
		{name: "map", field: schema.NewMap(), typ: "object"},
		{name: "raw stays untyped", field: schema.Raw(), typ: nil},
	}
	c := newTestConverter(t, "3.0.3")
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prop := mustProperty(t, c, tc.field)
			assert.Equal(t, tc.typ, prop.Type)
			assert.Equal(t, tc.format, prop.Format)
		})
	}

	t.Run("nil field", func(t *testing.T) {
		_, err := c.Property(nil)
		assert.ErrorIs(t, err, oaserrors.ErrInvalidSchema)
	})
}

func TestPropertyCustomKinds(t *testing.T) {
	t.Run("inherits link resolves", func(t *testing.T) {
		c := newTestConverter(t, "3.0.3")
		prop := mustProperty(t, c, schema.Custom("money", schema.KindDecimal))
		assert.Equal(t, "number", prop.Type)
		assert.Empty(t, c.Issues())
	})

	t.Run("MapKind overrides", func(t *testing.T) {
		c := newTestConverter(t, "3.0.3")
		c.MapKind("money", "string", "decimal")
		prop := mustProperty(t, c, schema.Custom("money", schema.KindDecimal))
		assert.Equal(t, "string", prop.Type)
		assert.Equal(t, "decimal", prop.Format)
	})

	t.Run("MapKindTo shares a mapping", func(t *testing.T) {
		c := newTestConverter(t, "3.0.3")
		require.NoError(t, c.MapKindTo("money", schema.KindNumber))
		prop := mustProperty(t, c, &schema.Field{Kind: "money"})
		assert.Equal(t, "number", prop.Type)
	})

	t.Run("MapKindTo unmapped target", func(t *testing.T) {
		c := newTestConverter(t, "3.0.3")
		err := c.MapKindTo("money", "mystery")
		assert.ErrorIs(t, err, oaserrors.ErrInvalidSchema)
	})

	t.Run("unmapped kind degrades to string with warning", func(t *testing.T) {
		c := newTestConverter(t, "3.0.3")
		prop := mustProperty(t, c, &schema.Field{Kind: "mystery"})
		assert.Equal(t, "string", prop.Type)
		require.Len(t, c.Issues(), 1)
		assert.Equal(t, SeverityWarning, c.Issues()[0].Severity)
	})

	t.Run("mappings do not leak across converters", func(t *testing.T) {
		first := newTestConverter(t, "3.0.3")
		first.MapKind("money", "string", "decimal")
		second := newTestConverter(t, "3.0.3")
		prop := mustProperty(t, second, &schema.Field{Kind: "money"})
		assert.Equal(t, "string", prop.Type)
		assert.NotEmpty(t, second.Issues())
	})
}

func TestPropertyDefaults(t *testing.T) {
	c := newTestConverter(t, "3.0.3")

	t.Run("declared default", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Default("unnamed"))
		assert.Equal(t, "unnamed", prop.Default)
	})
	t.Run("explicit zero value survives", func(t *testing.T) {
		prop := mustProperty(t, c, schema.Int().Default(0))
		assert.Equal(t, 0, prop.Default)
	})
	t.Run("dynamic default never appears", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().DefaultFunc(func() any { return "generated" }))
		assert.Nil(t, prop.Default)
	})
	t.Run("doc-default metadata wins", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Default("real").Meta("default", "documented"))
		assert.Equal(t, "documented", prop.Default)
	})
}

func TestPropertyChoices(t *testing.T) {
	c := newTestConverter(t, "3.0.3")

	t.Run("one_of becomes enum", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Validate(validate.OneOf{Choices: []any{"red", "green", "blue"}}))
		assert.Equal(t, []any{"red", "green", "blue"}, prop.Enum)
	})
	t.Run("repeated one_of intersects preserving first order", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Validate(
			validate.OneOf{Choices: []any{"red", "green", "blue"}},
			validate.OneOf{Choices: []any{"blue", "red"}},
		))
		assert.Equal(t, []any{"red", "blue"}, prop.Enum)
	})
	t.Run("equal wins over one_of", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Validate(
			validate.OneOf{Choices: []any{"red", "green"}},
			validate.Equal{Value: "fixed"},
		))
		assert.Equal(t, []any{"fixed"}, prop.Enum)
	})
	t.Run("nullable appends nil", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Nullable().Validate(validate.OneOf{Choices: []any{"red"}}))
		assert.Equal(t, []any{"red", nil}, prop.Enum)
	})
	t.Run("nullable without choices emits no enum", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Nullable())
		assert.Nil(t, prop.Enum)
	})
}

func TestPropertyReadOnlyWriteOnly(t *testing.T) {
	t.Run("dump-only is readOnly", func(t *testing.T) {
		c := newTestConverter(t, "3.0.3")
		prop := mustProperty(t, c, schema.Int().DumpOnly())
		assert.True(t, prop.ReadOnly)
		assert.False(t, prop.WriteOnly)
	})
	t.Run("load-only is writeOnly on 3.x", func(t *testing.T) {
		c := newTestConverter(t, "3.0.3")
		prop := mustProperty(t, c, schema.String().LoadOnly())
		assert.True(t, prop.WriteOnly)
	})
	t.Run("load-only has no 2.0 spelling", func(t *testing.T) {
		c := newTestConverter(t, "2.0")
		prop := mustProperty(t, c, schema.String().LoadOnly())
		assert.False(t, prop.WriteOnly)
	})
}

func TestPropertyNullable(t *testing.T) {
	f := func() *schema.Field { return schema.String().Nullable() }

	t.Run("2.0 uses x-nullable", func(t *testing.T) {
		c := newTestConverter(t, "2.0")
		prop := mustProperty(t, c, f())
		assert.Equal(t, true, prop.Extra["x-nullable"])
		assert.False(t, prop.Nullable)
	})
	t.Run("3.0 uses nullable", func(t *testing.T) {
		c := newTestConverter(t, "3.0.3")
		prop := mustProperty(t, c, f())
		assert.True(t, prop.Nullable)
		assert.Equal(t, "string", prop.Type)
	})
	t.Run("3.1 uses a type list", func(t *testing.T) {
		c := newTestConverter(t, "3.1.0")
		prop := mustProperty(t, c, f())
		assert.Equal(t, []string{"string", "null"}, prop.Type)
		assert.False(t, prop.Nullable)
	})
	t.Run("3.1 untyped nullable", func(t *testing.T) {
		c := newTestConverter(t, "3.1.0")
		prop := mustProperty(t, c, schema.Raw().Nullable())
		assert.Equal(t, []string{"null"}, prop.Type)
	})
}

func TestPropertyRanges(t *testing.T) {
	c := newTestConverter(t, "3.0.3")

	t.Run("numeric bounds", func(t *testing.T) {
		prop := mustProperty(t, c, schema.Int().Validate(validate.Range{
			Min: validate.Float64(1), Max: validate.Float64(10),
		}))
		require.NotNil(t, prop.Minimum)
		require.NotNil(t, prop.Maximum)
		assert.Equal(t, float64(1), *prop.Minimum)
		assert.Equal(t, float64(10), *prop.Maximum)
	})
	t.Run("repeated ranges narrow", func(t *testing.T) {
		prop := mustProperty(t, c, schema.Int().Validate(
			validate.Range{Min: validate.Float64(1), Max: validate.Float64(100)},
			validate.Range{Min: validate.Float64(5), Max: validate.Float64(50)},
		))
		assert.Equal(t, float64(5), *prop.Minimum)
		assert.Equal(t, float64(50), *prop.Maximum)
	})
	t.Run("non-numeric type uses extensions", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Validate(validate.Range{
			Min: validate.Float64(1), Max: validate.Float64(10),
		}))
		assert.Nil(t, prop.Minimum)
		assert.Nil(t, prop.Maximum)
		assert.Equal(t, float64(1), prop.Extra["x-minimum"])
		assert.Equal(t, float64(10), prop.Extra["x-maximum"])
	})
	t.Run("open bounds stay open", func(t *testing.T) {
		prop := mustProperty(t, c, schema.Int().Validate(validate.Range{Min: validate.Float64(0)}))
		require.NotNil(t, prop.Minimum)
		assert.Nil(t, prop.Maximum)
	})
}

func TestPropertyLengths(t *testing.T) {
	c := newTestConverter(t, "3.0.3")

	t.Run("string lengths", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Validate(validate.Length{
			Min: validate.Int(1), Max: validate.Int(64),
		}))
		require.NotNil(t, prop.MinLength)
		require.NotNil(t, prop.MaxLength)
		assert.Equal(t, 1, *prop.MinLength)
		assert.Equal(t, 64, *prop.MaxLength)
		assert.Nil(t, prop.MinItems)
	})
	t.Run("list item counts", func(t *testing.T) {
		prop := mustProperty(t, c, schema.NewList(schema.String()).Validate(validate.Length{
			Min: validate.Int(1), Max: validate.Int(5),
		}))
		require.NotNil(t, prop.MinItems)
		require.NotNil(t, prop.MaxItems)
		assert.Equal(t, 1, *prop.MinItems)
		assert.Equal(t, 5, *prop.MaxItems)
		assert.Nil(t, prop.MinLength)
	})
	t.Run("equal pins both ends", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Validate(validate.Length{
			Equal: validate.Int(2), Min: validate.Int(1),
		}))
		assert.Equal(t, 2, *prop.MinLength)
		assert.Equal(t, 2, *prop.MaxLength)
	})
	t.Run("repeated lengths narrow", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Validate(
			validate.Length{Min: validate.Int(1), Max: validate.Int(100)},
			validate.Length{Min: validate.Int(5), Max: validate.Int(50)},
		))
		assert.Equal(t, 5, *prop.MinLength)
		assert.Equal(t, 50, *prop.MaxLength)
	})
}

func TestPropertyPattern(t *testing.T) {
	t.Run("first pattern wins", func(t *testing.T) {
		c := newTestConverter(t, "3.0.3")
		prop := mustProperty(t, c, schema.String().Validate(validate.Regexp{Pattern: `^[a-z]+$`}))
		assert.Equal(t, `^[a-z]+$`, prop.Pattern)
		assert.Empty(t, c.Issues())
	})
	t.Run("second pattern warns", func(t *testing.T) {
		c := newTestConverter(t, "3.0.3")
		prop := mustProperty(t, c, schema.String().Validate(
			validate.Regexp{Pattern: `^[a-z]+$`},
			validate.Regexp{Pattern: `^[0-9]+$`},
		))
		assert.Equal(t, `^[a-z]+$`, prop.Pattern)
		require.Len(t, c.Issues(), 1)
		assert.Equal(t, SeverityWarning, c.Issues()[0].Severity)
	})
}

func TestPropertyMetadata(t *testing.T) {
	c := newTestConverter(t, "3.0.3")

	t.Run("doc keywords apply", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Doc("display name").Title("Name").Example("Fido"))
		assert.Equal(t, "display name", prop.Description)
		assert.Equal(t, "Name", prop.Title)
		assert.Equal(t, "Fido", prop.Example)
	})
	t.Run("x_ keys dasherize fully", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Meta("x_internal_id", 42))
		assert.Equal(t, 42, prop.Extra["x-internal-id"])
	})
	t.Run("x- keys pass through", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Meta("x-owner", "pets-team"))
		assert.Equal(t, "pets-team", prop.Extra["x-owner"])
	})
	t.Run("unknown keys are ignored", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Meta("internal_note", "skip me"))
		assert.NotContains(t, prop.Extra, "internal_note")
		assert.NotContains(t, prop.Extra, "internal-note")
	})
	t.Run("location key never leaks into properties", func(t *testing.T) {
		prop := mustProperty(t, c, schema.String().Meta("location", "query"))
		assert.Nil(t, prop.Extra)
	})
}

func TestPropertyEnumKind(t *testing.T) {
	c := newTestConverter(t, "3.0.3")

	t.Run("inner field shapes the property", func(t *testing.T) {
		prop := mustProperty(t, c, schema.NewEnum(schema.Int(), 1, 2, 3))
		assert.Equal(t, "integer", prop.Type)
		assert.Equal(t, []any{1, 2, 3}, prop.Enum)
	})
	t.Run("defaults to string values", func(t *testing.T) {
		prop := mustProperty(t, c, schema.NewEnum(nil, "cat", "dog"))
		assert.Equal(t, "string", prop.Type)
		assert.Equal(t, []any{"cat", "dog"}, prop.Enum)
	})
	t.Run("nullable appends nil", func(t *testing.T) {
		prop := mustProperty(t, c, schema.NewEnum(schema.String(), "a").Nullable())
		assert.Equal(t, []any{"a", nil}, prop.Enum)
	})
}

func TestPropertyListAndMap(t *testing.T) {
	c := newTestConverter(t, "3.0.3")

	t.Run("list items", func(t *testing.T) {
		prop := mustProperty(t, c, schema.NewList(schema.UUID()))
		assert.Equal(t, "array", prop.Type)
		items, ok := prop.Items.(*oas.Schema)
		require.True(t, ok)
		assert.Equal(t, "string", items.Type)
		assert.Equal(t, "uuid", items.Format)
	})
	t.Run("list without element errors", func(t *testing.T) {
		_, err := c.Property(&schema.Field{Kind: schema.KindList})
		assert.ErrorIs(t, err, oaserrors.ErrInvalidSchema)
	})
	t.Run("typed map values", func(t *testing.T) {
		prop := mustProperty(t, c, schema.NewMap().Value(schema.Int()))
		assert.Equal(t, "object", prop.Type)
		value, ok := prop.AdditionalProperties.(*oas.Schema)
		require.True(t, ok)
		assert.Equal(t, "integer", value.Type)
	})
	t.Run("free-form map", func(t *testing.T) {
		prop := mustProperty(t, c, schema.NewMap())
		assert.Equal(t, "object", prop.Type)
		assert.Nil(t, prop.AdditionalProperties)
	})
}

func TestPropertyDuration(t *testing.T) {
	c := newTestConverter(t, "3.0.3")
	prop := mustProperty(t, c, schema.Duration().Unit(schema.UnitMilliseconds))
	assert.Equal(t, "integer", prop.Type)
	assert.Equal(t, schema.UnitMilliseconds, prop.Extra["x-unit"])
}

func TestPropertyDateTimeVariants(t *testing.T) {
	c := newTestConverter(t, "3.0.3")

	t.Run("iso keeps the mapped format", func(t *testing.T) {
		prop := mustProperty(t, c, schema.DateTime())
		assert.Equal(t, "string", prop.Type)
		assert.Equal(t, "date-time", prop.Format)
	})
	t.Run("rfc swaps in a pattern", func(t *testing.T) {
		prop := mustProperty(t, c, schema.DateTime().Format(schema.DateTimeRFC))
		assert.Equal(t, "string", prop.Type)
		assert.Empty(t, prop.Format)
		assert.Equal(t, "Wed, 02 Oct 2002 13:00:00 GMT", prop.Example)
		assert.Equal(t, rfc2822Pattern, prop.Pattern)
	})
	t.Run("timestamp becomes a number", func(t *testing.T) {
		prop := mustProperty(t, c, schema.DateTime().Format(schema.DateTimeTimestamp))
		assert.Equal(t, "number", prop.Type)
		assert.Equal(t, "float", prop.Format)
		assert.Equal(t, "1676451245.596", prop.Example)
		require.NotNil(t, prop.Minimum)
		assert.Equal(t, float64(0), *prop.Minimum)
	})
	t.Run("timestamp_ms example differs", func(t *testing.T) {
		prop := mustProperty(t, c, schema.DateTime().Format(schema.DateTimeTimestampMS))
		assert.Equal(t, "1676451277514.654", prop.Example)
	})
	t.Run("custom format falls back to a metadata pattern", func(t *testing.T) {
		prop := mustProperty(t, c, schema.DateTime().Format("2006-01-02 15:04").Meta("pattern", `\d{4}-\d{2}-\d{2} \d{2}:\d{2}`))
		assert.Equal(t, "string", prop.Type)
		assert.Empty(t, prop.Format)
		assert.Equal(t, `\d{4}-\d{2}-\d{2} \d{2}:\d{2}`, prop.Pattern)
	})
	t.Run("custom format without pattern clears it", func(t *testing.T) {
		prop := mustProperty(t, c, schema.DateTime().Format("2006-01-02 15:04"))
		assert.Empty(t, prop.Format)
		assert.Empty(t, prop.Pattern)
	})
	t.Run("date is not reshaped", func(t *testing.T) {
		prop := mustProperty(t, c, schema.Date())
		assert.Equal(t, "date", prop.Format)
	})
}

func TestAddAttributeFunc(t *testing.T) {
	c := newTestConverter(t, "3.0.3")
	c.AddAttributeFunc(func(f *schema.Field, prop *oas.Schema) error {
		if f.Kind == schema.KindString {
			prop.SetExtra("x-trimmed", true)
		}
		return nil
	})

	prop := mustProperty(t, c, schema.String())
	assert.Equal(t, true, prop.Extra["x-trimmed"])

	prop = mustProperty(t, c, schema.Int())
	assert.NotContains(t, prop.Extra, "x-trimmed")
}

func TestSchemaKey(t *testing.T) {
	def := schema.New("PetSchema").Field("name", schema.String())

	t.Run("instances of one definition share a key", func(t *testing.T) {
		first, err := SchemaKey(def.Instance())
		require.NoError(t, err)
		second, err := SchemaKey(def.Instance())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
	t.Run("many never splits identity", func(t *testing.T) {
		plain, err := SchemaKey(def.Instance())
		require.NoError(t, err)
		many, err := SchemaKey(def.Instance(schema.WithMany()))
		require.NoError(t, err)
		assert.Equal(t, plain, many)
	})
	t.Run("modifiers split identity", func(t *testing.T) {
		plain, err := SchemaKey(def.Instance())
		require.NoError(t, err)
		partial, err := SchemaKey(def.Instance(schema.WithPartial()))
		require.NoError(t, err)
		assert.NotEqual(t, plain, partial)
	})
	t.Run("definitions are rejected", func(t *testing.T) {
		_, err := SchemaKey(def)
		assert.ErrorIs(t, err, oaserrors.ErrInvalidIdentity)
	})
	t.Run("other values are rejected", func(t *testing.T) {
		_, err := SchemaKey("PetSchema")
		assert.ErrorIs(t, err, oaserrors.ErrInvalidIdentity)
	})
}

func TestDefaultNameResolver(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "strips suffix", in: "PetSchema", want: "Pet"},
		{name: "keeps unsuffixed names", in: "Pet", want: "Pet"},
		{name: "keeps a bare Schema", in: "Schema", want: "Schema"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def := schema.New(tc.in).Field("id", schema.Int())
			assert.Equal(t, tc.want, DefaultNameResolver(def))
		})
	}
}

func TestConverterIssues(t *testing.T) {
	c := newTestConverter(t, "3.0.3")
	mustProperty(t, c, &schema.Field{Kind: "mystery"})
	mustProperty(t, c, &schema.Field{Kind: "enigma"})

	issues := c.Issues()
	require.Len(t, issues, 2)
	for _, issue := range issues {
		assert.Equal(t, "converter", issue.Component)
		assert.Equal(t, SeverityWarning, issue.Severity)
	}
}
