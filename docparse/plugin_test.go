package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/declspec/builder"
	"github.com/erraggy/declspec/oas"
)

func docPackage() *Package {
	return &Package{
		name: "petsvc",
		path: "example.com/petsvc",
		docs: map[string]string{
			"ListPets": `ListPets returns every pet in the store.

    ---
    get:
      operationId: listPets
      responses:
        "200":
          description: a page of pets
    post:
      operationId: createPet
      responses:
        "201":
          description: created
`,
			"Broken": `Broken carries an unparseable block.

    ---
    get: [unclosed
`,
		},
	}
}

func newDocSpec(t *testing.T, plugin *Plugin) *builder.Builder {
	t.Helper()
	spec, err := builder.New("Pet API", "1.0.0", "3.0.3", builder.WithPlugins(plugin))
	require.NoError(t, err)
	return spec
}

func TestPluginResolvesFunctionPath(t *testing.T) {
	plugin := NewPlugin(docPackage()).Route("/pets", "ListPets")
	spec := newDocSpec(t, plugin)

	require.NoError(t, spec.Path("ListPets"))

	doc, err := spec.Build()
	require.NoError(t, err)
	item := doc.Paths["/pets"]
	require.NotNil(t, item)
	require.NotNil(t, item.Get)
	assert.Equal(t, "listPets", item.Get.OperationID)
	assert.Equal(t, "a page of pets", item.Get.Responses["200"].Description)
	require.NotNil(t, item.Post)
	assert.Equal(t, "createPet", item.Post.OperationID)
}

func TestPluginDocOperationsReplaceAssembled(t *testing.T) {
	plugin := NewPlugin(docPackage()).Route("/pets", "ListPets")
	spec := newDocSpec(t, plugin)

	assembled := &oas.Operation{
		OperationID: "assembledList",
		Responses:   oas.Responses{"200": {Description: "assembled"}},
	}
	remove := &oas.Operation{
		OperationID: "removePet",
		Responses:   oas.Responses{"204": {Description: "gone"}},
	}
	require.NoError(t, spec.Path("/pets",
		builder.WithOperation("get", assembled),
		builder.WithOperation("delete", remove),
	))

	doc, err := spec.Build()
	require.NoError(t, err)
	item := doc.Paths["/pets"]
	require.NotNil(t, item)
	assert.Equal(t, "listPets", item.Get.OperationID, "doc comment operation wins the method")
	assert.Equal(t, "createPet", item.Post.OperationID)
	assert.Equal(t, "removePet", item.Delete.OperationID, "methods outside the doc comment survive")
	assert.Equal(t, "assembledList", assembled.OperationID, "caller's operation stays untouched")
}

func TestPluginIgnoresUnroutedPaths(t *testing.T) {
	plugin := NewPlugin(docPackage()).Route("/pets", "ListPets")
	spec := newDocSpec(t, plugin)

	op := &oas.Operation{
		OperationID: "other",
		Responses:   oas.Responses{"200": {Description: "ok"}},
	}
	require.NoError(t, spec.Path("/other", builder.WithOperation("get", op)))

	doc, err := spec.Build()
	require.NoError(t, err)
	assert.Equal(t, "other", doc.Paths["/other"].Get.OperationID)
}

func TestPluginBrokenBlockFailsPath(t *testing.T) {
	plugin := NewPlugin(docPackage()).Route("/broken", "Broken")
	spec := newDocSpec(t, plugin)

	err := spec.Path("/broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid operations block")
}

func TestPluginWithoutPackage(t *testing.T) {
	plugin := NewPlugin(nil).Route("/pets", "ListPets")
	spec := newDocSpec(t, plugin)

	require.NoError(t, spec.Path("ListPets"))

	doc, err := spec.Build()
	require.NoError(t, err)
	item := doc.Paths["/pets"]
	require.NotNil(t, item, "routing still resolves the path template")
	assert.Nil(t, item.Get, "no package means no operations to merge")
}

func TestPluginHelpersDirect(t *testing.T) {
	plugin := NewPlugin(docPackage()).Route("/pets", "ListPets")

	path, err := plugin.PathHelper("ListPets", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "/pets", path)

	path, err = plugin.PathHelper("/already/a/path", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "", path)

	ops := map[string]*oas.Operation{}
	require.NoError(t, plugin.OperationsHelper("/pets", ops))
	assert.Len(t, ops, 2)

	ops = map[string]*oas.Operation{}
	require.NoError(t, plugin.OperationsHelper("/unrouted", ops))
	assert.Empty(t, ops)
}

func TestPluginRouteRebinding(t *testing.T) {
	plugin := NewPlugin(docPackage()).
		Route("/pets", "Broken").
		Route("/pets", "ListPets")

	ops := map[string]*oas.Operation{}
	require.NoError(t, plugin.OperationsHelper("/pets", ops))
	assert.Contains(t, ops, "get")
}
