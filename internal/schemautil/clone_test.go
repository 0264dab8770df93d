package schemautil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/declspec/oas"
)

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }

// declarative stands in for a schema instance held in a resolution slot.
type declarative struct{ name string }

func TestCloneSchemaIndependence(t *testing.T) {
	orig := &oas.Schema{
		Type:        "object",
		Description: "a pet",
		Required:    []string{"name"},
		Maximum:     float64Ptr(10),
		Properties: map[string]any{
			"name": &oas.Schema{Type: "string", MaxLength: intPtr(64)},
			"tags": &oas.Schema{Type: "array", Items: &oas.Schema{Type: "string"}},
		},
		Enum:  []any{"a", []any{"nested"}},
		AllOf: []any{&oas.Schema{Ref: "#/definitions/Base"}},
		Extra: map[string]any{"x-order": []any{1, 2}},
	}

	c := CloneSchema(orig)
	require.NotNil(t, c)
	assert.Equal(t, orig, c)

	c.Required[0] = "changed"
	c.Properties["name"].(*oas.Schema).MaxLength = intPtr(1)
	c.Properties["tags"].(*oas.Schema).Items.(*oas.Schema).Type = "integer"
	*c.Maximum = 99
	c.Enum[1].([]any)[0] = "mutated"
	c.AllOf[0].(*oas.Schema).Ref = "#/definitions/Other"
	c.Extra["x-order"].([]any)[0] = 9

	assert.Equal(t, []string{"name"}, orig.Required)
	assert.Equal(t, intPtr(64), orig.Properties["name"].(*oas.Schema).MaxLength)
	assert.Equal(t, "string", orig.Properties["tags"].(*oas.Schema).Items.(*oas.Schema).Type)
	assert.Equal(t, float64(10), *orig.Maximum)
	assert.Equal(t, []any{"nested"}, orig.Enum[1])
	assert.Equal(t, "#/definitions/Base", orig.AllOf[0].(*oas.Schema).Ref)
	assert.Equal(t, []any{1, 2}, orig.Extra["x-order"])

	assert.Nil(t, CloneSchema(nil))
}

func TestCloneSchemaSlotPassesDeclarativeValuesThrough(t *testing.T) {
	d := &declarative{name: "PetSchema"}
	assert.Same(t, d, CloneSchemaSlot(d))
	assert.Nil(t, CloneSchemaSlot(nil))
	assert.Equal(t, false, CloneSchemaSlot(false))

	s := &oas.Schema{Type: "string"}
	cloned := CloneSchemaSlot(s)
	require.IsType(t, &oas.Schema{}, cloned)
	assert.NotSame(t, s, cloned.(*oas.Schema))
}

func TestCloneOperationIndependence(t *testing.T) {
	orig := &oas.Operation{
		OperationID: "listPets",
		Tags:        []string{"pets"},
		Parameters: []*oas.Parameter{
			{Name: "limit", In: "query", Schema: &oas.Schema{Type: "integer"}},
		},
		Responses: oas.Responses{
			"200": {
				Description: "ok",
				Content: map[string]*oas.MediaType{
					"application/json": {Schema: &oas.Schema{Type: "array"}},
				},
			},
		},
		Security: []oas.SecurityRequirement{{"api_key": {"read:pets"}}},
		Extra:    map[string]any{"x-audit": true},
	}

	c := CloneOperation(orig)
	require.NotNil(t, c)
	assert.Equal(t, orig, c)

	c.Tags[0] = "changed"
	c.Parameters[0].Name = "offset"
	c.Parameters[0].Schema.(*oas.Schema).Type = "string"
	c.Responses["200"].Description = "changed"
	c.Responses["200"].Content["application/json"].Schema.(*oas.Schema).Type = "object"
	c.Security[0]["api_key"][0] = "write:pets"

	assert.Equal(t, "pets", orig.Tags[0])
	assert.Equal(t, "limit", orig.Parameters[0].Name)
	assert.Equal(t, "integer", orig.Parameters[0].Schema.(*oas.Schema).Type)
	assert.Equal(t, "ok", orig.Responses["200"].Description)
	assert.Equal(t, "array", orig.Responses["200"].Content["application/json"].Schema.(*oas.Schema).Type)
	assert.Equal(t, "read:pets", orig.Security[0]["api_key"][0])
}

func TestClonePathItemClonesEveryMethod(t *testing.T) {
	orig := &oas.PathItem{
		Get:        &oas.Operation{OperationID: "get"},
		Post:       &oas.Operation{OperationID: "post"},
		Parameters: []*oas.Parameter{{Name: "petId", In: "path", Required: true}},
	}
	c := ClonePathItem(orig)
	require.NotNil(t, c)
	assert.Equal(t, orig, c)
	assert.NotSame(t, orig.Get, c.Get)
	assert.NotSame(t, orig.Post, c.Post)
	assert.NotSame(t, orig.Parameters[0], c.Parameters[0])
	assert.Nil(t, c.Delete)
}

func TestCloneSecuritySchemeClonesFlows(t *testing.T) {
	orig := &oas.SecurityScheme{
		Type: "oauth2",
		Flows: &oas.OAuthFlows{
			Implicit: &oas.OAuthFlow{
				AuthorizationURL: "https://example.com/authorize",
				Scopes:           map[string]string{"read:pets": "read"},
			},
		},
	}
	c := CloneSecurityScheme(orig)
	require.NotNil(t, c)
	assert.Equal(t, orig, c)

	c.Flows.Implicit.Scopes["read:pets"] = "changed"
	assert.Equal(t, "read", orig.Flows.Implicit.Scopes["read:pets"])
}

func TestCloneHelpersPreserveNil(t *testing.T) {
	assert.Nil(t, CloneParameter(nil))
	assert.Nil(t, CloneParameters(nil))
	assert.Nil(t, CloneHeader(nil))
	assert.Nil(t, CloneExample(nil))
	assert.Nil(t, CloneMediaType(nil))
	assert.Nil(t, CloneRequestBody(nil))
	assert.Nil(t, CloneResponse(nil))
	assert.Nil(t, CloneResponses(nil))
	assert.Nil(t, CloneOperation(nil))
	assert.Nil(t, ClonePathItem(nil))
	assert.Nil(t, CloneCallback(nil))
	assert.Nil(t, CloneSecurityScheme(nil))
	assert.Nil(t, CloneServer(nil))
	assert.Nil(t, CloneExternalDocs(nil))
	assert.Nil(t, CloneItems(nil))
	assert.Nil(t, CloneExtensions(nil))
}
