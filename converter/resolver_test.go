package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/declspec/oas"
	"github.com/erraggy/declspec/oaserrors"
	"github.com/erraggy/declspec/schema"
)

func newTestResolver(t *testing.T, openAPIVersion string, opts ...Option) (*Resolver, *Converter) {
	t.Helper()
	c, _ := newSpecConverter(t, openAPIVersion, nil, opts...)
	return NewResolver(c), c
}

func TestResolveOperationsV2(t *testing.T) {
	r, c := newTestResolver(t, "2.0")
	pet := petDefinition()
	filter := schema.New("FilterSchema").
		Field("status", schema.String()).
		Field("limit", schema.Int())

	operations := map[string]*oas.Operation{
		"get": {
			Parameters: []*oas.Parameter{
				{In: "query", Schema: filter.Instance()},
			},
			Responses: oas.Responses{
				"200": {Description: "a pet", Schema: pet.Instance()},
				"404": {Description: "not found"},
			},
		},
		"post": {
			Parameters: []*oas.Parameter{
				{In: "body", Name: "pet", Required: true, Schema: pet.Instance()},
			},
			Responses: oas.Responses{
				"201": {Description: "created", Schema: pet.Instance()},
			},
		},
	}

	require.NoError(t, r.ResolveOperations(operations))

	get := operations["get"]
	require.Len(t, get.Parameters, 2)
	assert.Equal(t, "status", get.Parameters[0].Name)
	assert.Equal(t, "limit", get.Parameters[1].Name)

	respSchema, isSchema := get.Responses["200"].Schema.(*oas.Schema)
	require.True(t, isSchema)
	assert.Equal(t, "#/definitions/Pet", respSchema.Ref)
	assert.Nil(t, get.Responses["404"].Schema)

	post := operations["post"]
	require.Len(t, post.Parameters, 1)
	body := post.Parameters[0]
	assert.Equal(t, "body", body.In)
	assert.Equal(t, "pet", body.Name)
	assert.True(t, body.Required)
	resolved, isSchema := body.Schema.(*oas.Schema)
	require.True(t, isSchema)
	assert.Equal(t, "#/definitions/Pet", resolved.Ref)

	assert.Empty(t, c.Issues())
}

func TestResolveOperationsV3(t *testing.T) {
	r, _ := newTestResolver(t, "3.0.3")
	pet := petDefinition()

	operations := map[string]*oas.Operation{
		"post": {
			RequestBody: &oas.RequestBody{
				Content: map[string]*oas.MediaType{
					"application/json": {Schema: pet.Instance()},
				},
			},
			Responses: oas.Responses{
				"200": {
					Description: "a pet",
					Content: map[string]*oas.MediaType{
						"application/json": {Schema: pet.Instance(schema.WithMany())},
					},
					Headers: map[string]*oas.Header{
						"X-Request-Id": {Schema: &oas.Schema{Type: "string"}},
					},
				},
			},
			Callbacks: map[string]*oas.Callback{
				"onEvent": {
					"{$request.body#/callbackUrl}": &oas.PathItem{
						Post: &oas.Operation{
							RequestBody: &oas.RequestBody{
								Content: map[string]*oas.MediaType{
									"application/json": {Schema: pet.Instance()},
								},
							},
						},
					},
				},
			},
		},
	}

	require.NoError(t, r.ResolveOperations(operations))

	post := operations["post"]
	reqSchema, isSchema := post.RequestBody.Content["application/json"].Schema.(*oas.Schema)
	require.True(t, isSchema)
	assert.Equal(t, "#/components/schemas/Pet", reqSchema.Ref)

	listSchema, isSchema := post.Responses["200"].Content["application/json"].Schema.(*oas.Schema)
	require.True(t, isSchema)
	assert.Equal(t, "array", listSchema.Type)
	items, isSchema := listSchema.Items.(*oas.Schema)
	require.True(t, isSchema)
	assert.Equal(t, "#/components/schemas/Pet", items.Ref)

	callback := (*post.Callbacks["onEvent"])["{$request.body#/callbackUrl}"]
	cbSchema, isSchema := callback.Post.RequestBody.Content["application/json"].Schema.(*oas.Schema)
	require.True(t, isSchema)
	assert.Equal(t, "#/components/schemas/Pet", cbSchema.Ref)
}

func TestResolveParameters(t *testing.T) {
	t.Run("declarative schemas expand in place", func(t *testing.T) {
		r, _ := newTestResolver(t, "3.0.3")
		def := schema.New("FilterSchema").
			Field("status", schema.String().Required()).
			Field("limit", schema.Int())

		params, err := r.ResolveParameters([]*oas.Parameter{
			{In: "query", Schema: def.Instance()},
			{In: "header", Name: "X-Trace", Schema: &oas.Schema{Type: "string"}},
		})
		require.NoError(t, err)
		require.Len(t, params, 3)
		assert.Equal(t, "status", params[0].Name)
		assert.Equal(t, "limit", params[1].Name)
		assert.Equal(t, "X-Trace", params[2].Name)
	})

	t.Run("registered names expand through the registry", func(t *testing.T) {
		reg := schema.NewRegistry()
		require.NoError(t, reg.Register(schema.New("FilterSchema").Field("status", schema.String())))
		r, _ := newTestResolver(t, "3.0.3", WithRegistry(reg))

		params, err := r.ResolveParameters([]*oas.Parameter{
			{In: "query", Schema: "FilterSchema"},
		})
		require.NoError(t, err)
		require.Len(t, params, 1)
		assert.Equal(t, "status", params[0].Name)
	})

	t.Run("unregistered names fail", func(t *testing.T) {
		r, _ := newTestResolver(t, "3.0.3")
		_, err := r.ResolveParameters([]*oas.Parameter{
			{In: "query", Schema: "MysterySchema"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrInvalidSchema)
	})

	t.Run("body parameters keep their own fields", func(t *testing.T) {
		r, _ := newTestResolver(t, "2.0")
		params, err := r.ResolveParameters([]*oas.Parameter{
			{In: "body", Name: "pet", Required: true, Description: "a pet to add", Schema: petDefinition().Instance()},
		})
		require.NoError(t, err)
		require.Len(t, params, 1)
		assert.Equal(t, "pet", params[0].Name)
		assert.True(t, params[0].Required)
		assert.Equal(t, "a pet to add", params[0].Description)
	})

	t.Run("nil entries drop", func(t *testing.T) {
		r, _ := newTestResolver(t, "3.0.3")
		params, err := r.ResolveParameters([]*oas.Parameter{nil})
		require.NoError(t, err)
		assert.Empty(t, params)
	})
}

func TestResolveHeader(t *testing.T) {
	r, _ := newTestResolver(t, "2.0")
	header := &oas.Header{Schema: petDefinition().Instance()}
	require.NoError(t, r.ResolveHeader(header))
	resolved, ok := header.Schema.(*oas.Schema)
	require.True(t, ok)
	assert.Equal(t, "#/definitions/Pet", resolved.Ref)
}

func TestResolveSchemaValue(t *testing.T) {
	t.Run("raw maps resolve nested values", func(t *testing.T) {
		r, _ := newTestResolver(t, "3.0.3")
		value := map[string]any{
			"type":  "array",
			"items": petDefinition().Instance(),
		}
		resolved, err := r.ResolveSchemaValue(value)
		require.NoError(t, err)
		m, ok := resolved.(map[string]any)
		require.True(t, ok)
		items, ok := m["items"].(*oas.Schema)
		require.True(t, ok)
		assert.Equal(t, "#/components/schemas/Pet", items.Ref)
	})

	t.Run("object properties resolve", func(t *testing.T) {
		r, _ := newTestResolver(t, "3.0.3")
		value := map[string]any{
			"type": "object",
			"properties": map[string]any{
				"pet":   petDefinition().Instance(),
				"count": map[string]any{"type": "integer"},
			},
		}
		resolved, err := r.ResolveSchemaValue(value)
		require.NoError(t, err)
		props := resolved.(map[string]any)["properties"].(map[string]any)
		pet, ok := props["pet"].(*oas.Schema)
		require.True(t, ok)
		assert.Equal(t, "#/components/schemas/Pet", pet.Ref)
	})

	t.Run("composition keywords resolve", func(t *testing.T) {
		r, _ := newTestResolver(t, "3.0.3")
		value := map[string]any{
			"oneOf": []any{petDefinition().Instance(), map[string]any{"type": "string"}},
		}
		resolved, err := r.ResolveSchemaValue(value)
		require.NoError(t, err)
		oneOf := resolved.(map[string]any)["oneOf"].([]any)
		pet, ok := oneOf[0].(*oas.Schema)
		require.True(t, ok)
		assert.Equal(t, "#/components/schemas/Pet", pet.Ref)
	})

	t.Run("non-schema values pass through", func(t *testing.T) {
		r, _ := newTestResolver(t, "3.0.3")
		resolved, err := r.ResolveSchemaValue(42)
		require.NoError(t, err)
		assert.Equal(t, 42, resolved)

		resolved, err = r.ResolveSchemaValue(nil)
		require.NoError(t, err)
		assert.Nil(t, resolved)
	})
}
