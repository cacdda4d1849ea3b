package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "catalog.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "catalog", cfg.Root)
	assert.Equal(t, "index.json", cfg.Index)
	assert.False(t, cfg.StrictUndeclared)
	assert.Empty(t, cfg.RequiredFields)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
root  = "dist/catalog"
index = "manifest.json"

strict_undeclared = true
required_fields   = ["metadata", "metadata.name"]
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dist/catalog", cfg.Root)
	assert.Equal(t, "manifest.json", cfg.Index)
	assert.True(t, cfg.StrictUndeclared)
	assert.Equal(t, []string{"metadata", "metadata.name"}, cfg.RequiredFields)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`strict_undeclared = true`+"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "catalog", cfg.Root)
	assert.Equal(t, "index.json", cfg.Index)
	assert.True(t, cfg.StrictUndeclared)
}

func TestLoad_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`root = `), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog.hcl")
}
