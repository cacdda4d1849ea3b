package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffPaths(t *testing.T) {
	declared := []string{"a.json", "b.json", "c.json"}
	discovered := []string{"b.json", "c.json", "d.json", "e.json"}

	stale, undeclared := diffPaths(declared, discovered)

	assert.Equal(t, []string{"a.json"}, stale)
	assert.Equal(t, []string{"d.json", "e.json"}, undeclared)
}

func TestDiffPaths_Identical(t *testing.T) {
	paths := []string{"a.json", "b.json"}

	stale, undeclared := diffPaths(paths, paths)

	assert.Empty(t, stale)
	assert.Empty(t, undeclared)
}

func TestDiffPaths_Empty(t *testing.T) {
	stale, undeclared := diffPaths(nil, []string{"a.json"})
	assert.Empty(t, stale)
	assert.Equal(t, []string{"a.json"}, undeclared)

	stale, undeclared = diffPaths([]string{"a.json"}, nil)
	assert.Equal(t, []string{"a.json"}, stale)
	assert.Empty(t, undeclared)
}
