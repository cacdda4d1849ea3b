package snapshot

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxhost/catalogctl/internal/catalog"
	"github.com/rxhost/catalogctl/internal/lint"
)

const validComponent = `{
	"metadata": {"type": "react", "name": "A"},
	"ui": {"template": {"tag": "div"}},
	"integration": {"plugin": "rx-core"}
}`

func newTestLoader(t *testing.T, files map[string]string) *catalog.Loader {
	t.Helper()
	fs := memfs.New()
	for name, data := range files {
		require.NoError(t, util.WriteFile(fs, name, []byte(data), 0o644))
	}
	return catalog.NewLoader(fs)
}

func TestPack(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"index.json":        `{"version": "1.4.2", "components": ["components/a.json", "components/t.json"]}`,
		"components/a.json": validComponent,
		"components/t.json": `{"topics": {"rx.bus": {}}}`,
	})

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	report, written, err := Pack(loader, lint.Options{}, dbPath)
	require.NoError(t, err)
	require.True(t, report.OK())
	assert.Equal(t, 2, written)

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var version string
	require.NoError(t, db.QueryRow("SELECT version FROM catalog_meta").Scan(&version))
	assert.Equal(t, "1.4.2", version)

	var kind, name, typ string
	require.NoError(t, db.QueryRow(
		"SELECT kind, name, type FROM components WHERE path = ?",
		"components/a.json").Scan(&kind, &name, &typ))
	assert.Equal(t, KindComponent, kind)
	assert.Equal(t, "A", name)
	assert.Equal(t, "react", typ)

	require.NoError(t, db.QueryRow(
		"SELECT kind FROM components WHERE path = ?",
		"components/t.json").Scan(&kind))
	assert.Equal(t, KindTopic, kind)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM components").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestPack_DocumentRoundTrip(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"index.json":        `{"version": "1.0.0", "components": ["components/a.json"]}`,
		"components/a.json": validComponent,
	})

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	_, _, err := Pack(loader, lint.Options{}, dbPath)
	require.NoError(t, err)

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var raw string
	require.NoError(t, db.QueryRow(
		"SELECT document FROM components WHERE path = ?",
		"components/a.json").Scan(&raw))

	doc, err := catalog.ParseDocument("components/a.json", []byte(raw))
	require.NoError(t, err)
	name, ok := doc.GetString("metadata.name")
	require.True(t, ok)
	assert.Equal(t, "A", name)
}

func TestPack_RefusesInvalidCatalog(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"index.json":        `{"version": "1.0.0", "components": ["components/a.json", "components/gone.json"]}`,
		"components/a.json": validComponent,
	})

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	report, written, err := Pack(loader, lint.Options{}, dbPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to pack")
	assert.Equal(t, 0, written)
	require.NotNil(t, report)
	assert.False(t, report.OK())
}
