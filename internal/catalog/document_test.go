package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxhost/catalogctl/api"
)

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument("components/a.json", []byte(`{
		"metadata": {"type": "react", "name": "A"},
		"ui": {"template": {"classes": ["rx-comp", "rx-a"]}},
		"integration": {"events": ["mount"]}
	}`))
	require.NoError(t, err)

	assert.False(t, doc.IsTopic())
	assert.True(t, doc.Has("metadata.type"))
	assert.False(t, doc.Has("metadata.icon"))

	typ, ok := doc.GetString("metadata.type")
	require.True(t, ok)
	assert.Equal(t, "react", typ)

	classes, ok := doc.Strings("ui.template.classes")
	require.True(t, ok)
	assert.Equal(t, []string{"rx-comp", "rx-a"}, classes)
}

func TestParseDocument_InvalidJSON(t *testing.T) {
	_, err := ParseDocument("components/broken.json", []byte(`{"metadata": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "components/broken.json")
}

func TestDocument_IsTopic(t *testing.T) {
	topics, err := ParseDocument("t.json", []byte(`{"topics": {"rx.bus": {}}}`))
	require.NoError(t, err)
	assert.True(t, topics.IsTopic())

	defs, err := ParseDocument("d.json", []byte(`{"definitions": {"event": {}}}`))
	require.NoError(t, err)
	assert.True(t, defs.IsTopic())

	comp, err := ParseDocument("c.json", []byte(`{"metadata": {}}`))
	require.NoError(t, err)
	assert.False(t, comp.IsTopic())

	// Arrays can never be topic documents.
	arr, err := ParseDocument("a.json", []byte(`[1, 2]`))
	require.NoError(t, err)
	assert.False(t, arr.IsTopic())
}

func TestDocument_Decode(t *testing.T) {
	doc, err := ParseDocument("c.json", []byte(`{
		"metadata": {"type": "react", "name": "A", "version": "2.1.0"},
		"ui": {"template": {"classes": ["rx-comp"]}},
		"integration": {"plugin": "rx-core", "events": ["mount"]}
	}`))
	require.NoError(t, err)

	var c api.Component
	require.NoError(t, doc.Decode(&c))
	assert.Equal(t, "react", c.Metadata.Type)
	assert.Equal(t, "A", c.Metadata.Name)
	assert.Equal(t, []string{"rx-comp"}, c.UI.Template.Classes)
	require.NotNil(t, c.Integration)
	assert.Equal(t, "rx-core", c.Integration.Plugin)
}

func TestDocument_GetString_WrongType(t *testing.T) {
	doc, err := ParseDocument("c.json", []byte(`{"metadata": {"type": 7}}`))
	require.NoError(t, err)

	_, ok := doc.GetString("metadata.type")
	assert.False(t, ok)

	_, ok = doc.Strings("metadata.type")
	assert.False(t, ok)
}
