package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/declspec/builder"
	"github.com/erraggy/declspec/oas"
	"github.com/erraggy/declspec/schema"
)

func newPluginSpec(t *testing.T, openAPIVersion string, plugin *Plugin) *builder.Builder {
	t.Helper()
	spec, err := builder.New("Pet API", "1.0.0", openAPIVersion, builder.WithPlugins(plugin))
	require.NoError(t, err)
	return spec
}

func TestPluginSchemaComponent(t *testing.T) {
	plugin := NewPlugin(nil)
	spec := newPluginSpec(t, "3.0.3", plugin)

	require.NoError(t, spec.Components().Schema("Pet", builder.WithSchemaValue(petDefinition().Instance())))

	doc, err := spec.Build()
	require.NoError(t, err)
	body := doc.Components.Schemas["Pet"]
	require.NotNil(t, body)
	assert.Equal(t, "object", body.Type)
	assert.Contains(t, body.Properties, "name")
	assert.Equal(t, []string{"name"}, body.Required)
	assert.Empty(t, plugin.Converter().Issues())
}

func TestPluginSchemaComponentFromRegistry(t *testing.T) {
	reg := schema.NewRegistry()
	require.NoError(t, reg.Register(petDefinition()))
	plugin := NewPlugin(nil, WithRegistry(reg))
	spec := newPluginSpec(t, "3.0.3", plugin)

	require.NoError(t, spec.Components().Schema("Pet", builder.WithSchemaValue("PetSchema")))
	assert.True(t, spec.Components().HasSchema("Pet"))
}

func TestPluginSelfReferencingComponent(t *testing.T) {
	def := schema.New("PetSchema").Field("name", schema.String())
	def.Field("mate", schema.NewNested(def))

	plugin := NewPlugin(nil)
	spec := newPluginSpec(t, "3.0.3", plugin)
	require.NoError(t, spec.Components().Schema("Pet", builder.WithSchemaValue(def.Instance())))

	doc, err := spec.Build()
	require.NoError(t, err)
	mate, ok := doc.Components.Schemas["Pet"].Properties["mate"].(*oas.Schema)
	require.True(t, ok)
	assert.Equal(t, "#/components/schemas/Pet", mate.Ref)
}

func TestPluginDoubleRegistrationWarns(t *testing.T) {
	def := petDefinition()
	plugin := NewPlugin(nil)
	spec := newPluginSpec(t, "3.0.3", plugin)

	require.NoError(t, spec.Components().Schema("Pet", builder.WithSchemaValue(def.Instance())))
	require.NoError(t, spec.Components().Schema("PetCopy", builder.WithSchemaValue(def.Instance())))

	assert.True(t, spec.Components().HasSchema("Pet"))
	assert.True(t, spec.Components().HasSchema("PetCopy"))

	issues := plugin.Converter().Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "already been added")
}

func TestPluginResolvesPathOperations(t *testing.T) {
	pet := petDefinition()
	filter := schema.New("FilterSchema").Field("status", schema.String())

	t.Run("3.0 operations", func(t *testing.T) {
		plugin := NewPlugin(nil)
		spec := newPluginSpec(t, "3.0.3", plugin)

		err := spec.Path("/pets", builder.WithOperation("get", &oas.Operation{
			Parameters: []*oas.Parameter{{In: "query", Schema: filter.Instance()}},
			Responses: oas.Responses{
				"200": {
					Description: "matching pets",
					Content: map[string]*oas.MediaType{
						"application/json": {Schema: pet.Instance(schema.WithMany())},
					},
				},
			},
		}))
		require.NoError(t, err)

		doc, err := spec.Build()
		require.NoError(t, err)
		get := doc.Paths["/pets"].Get
		require.NotNil(t, get)

		require.Len(t, get.Parameters, 1)
		assert.Equal(t, "status", get.Parameters[0].Name)
		assert.Equal(t, "query", get.Parameters[0].In)

		resolved, ok := get.Responses["200"].Content["application/json"].Schema.(*oas.Schema)
		require.True(t, ok)
		assert.Equal(t, "array", resolved.Type)
		items, ok := resolved.Items.(*oas.Schema)
		require.True(t, ok)
		assert.Equal(t, "#/components/schemas/Pet", items.Ref)
		assert.NotNil(t, doc.Components.Schemas["Pet"])
	})

	t.Run("2.0 operations", func(t *testing.T) {
		plugin := NewPlugin(nil)
		spec := newPluginSpec(t, "2.0", plugin)

		err := spec.Path("/pets", builder.WithOperation("post", &oas.Operation{
			Parameters: []*oas.Parameter{
				{In: "body", Name: "pet", Required: true, Schema: pet.Instance()},
			},
			Responses: oas.Responses{
				"201": {Description: "created", Schema: pet.Instance()},
			},
		}))
		require.NoError(t, err)

		doc, err := spec.Build()
		require.NoError(t, err)
		post := doc.Paths["/pets"].Post
		require.NotNil(t, post)

		require.Len(t, post.Parameters, 1)
		body := post.Parameters[0]
		assert.Equal(t, "pet", body.Name)
		assert.True(t, body.Required)
		resolved, ok := body.Schema.(*oas.Schema)
		require.True(t, ok)
		assert.Equal(t, "#/definitions/Pet", resolved.Ref)
		assert.NotNil(t, doc.Definitions["Pet"])
	})

	t.Run("callers keep their declarative operations", func(t *testing.T) {
		plugin := NewPlugin(nil)
		spec := newPluginSpec(t, "3.0.3", plugin)

		op := &oas.Operation{
			Responses: oas.Responses{
				"200": {
					Description: "matching pets",
					Content: map[string]*oas.MediaType{
						"application/json": {Schema: filter.Instance()},
					},
				},
			},
		}
		require.NoError(t, spec.Path("/filters", builder.WithOperation("get", op)))

		_, declarative := op.Responses["200"].Content["application/json"].Schema.(*schema.Schema)
		assert.True(t, declarative)
	})
}

func TestPluginComponentHelpers(t *testing.T) {
	pet := petDefinition()

	t.Run("response components resolve", func(t *testing.T) {
		plugin := NewPlugin(nil)
		spec := newPluginSpec(t, "2.0", plugin)

		require.NoError(t, spec.Components().Response("PetResponse", &oas.Response{
			Description: "a pet",
			Schema:      pet.Instance(),
		}))

		doc, err := spec.Build()
		require.NoError(t, err)
		resolved, ok := doc.Responses["PetResponse"].Schema.(*oas.Schema)
		require.True(t, ok)
		assert.Equal(t, "#/definitions/Pet", resolved.Ref)
	})

	t.Run("parameter components resolve", func(t *testing.T) {
		plugin := NewPlugin(nil)
		spec := newPluginSpec(t, "3.0.3", plugin)

		require.NoError(t, spec.Components().Parameter("PetBody", "query", &oas.Parameter{
			Schema: &oas.Schema{Type: "array", Items: pet.Instance()},
		}))

		doc, err := spec.Build()
		require.NoError(t, err)
		param := doc.Components.Parameters["PetBody"]
		require.NotNil(t, param)
		arr, ok := param.Schema.(*oas.Schema)
		require.True(t, ok)
		items, ok := arr.Items.(*oas.Schema)
		require.True(t, ok)
		assert.Equal(t, "#/components/schemas/Pet", items.Ref)
	})

	t.Run("header components resolve", func(t *testing.T) {
		plugin := NewPlugin(nil)
		spec := newPluginSpec(t, "3.0.3", plugin)

		require.NoError(t, spec.Components().Header("X-Pet", &oas.Header{
			Schema: pet.Instance(),
		}))

		doc, err := spec.Build()
		require.NoError(t, err)
		header := doc.Components.Headers["X-Pet"]
		require.NotNil(t, header)
		resolved, ok := header.Schema.(*oas.Schema)
		require.True(t, ok)
		assert.Equal(t, "#/components/schemas/Pet", resolved.Ref)
	})
}

func TestPluginBeforeInit(t *testing.T) {
	plugin := NewPlugin(nil)

	assert.Nil(t, plugin.Converter())
	assert.NoError(t, plugin.ParameterHelper(&oas.Parameter{}))
	assert.NoError(t, plugin.ResponseHelper(&oas.Response{}))
	assert.NoError(t, plugin.HeaderHelper(&oas.Header{}))
	assert.NoError(t, plugin.OperationsHelper("/pets", nil))

	_, err := plugin.SchemaHelper("Pet", nil, petDefinition().Instance())
	assert.Error(t, err)

	body, err := plugin.SchemaHelper("Pet", nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, body)
}
