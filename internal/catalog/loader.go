package catalog

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/rxhost/catalogctl/api"
)

// IndexFile is the default catalog manifest name.
const IndexFile = "index.json"

// Loader discovers and parses catalog documents under a single root.
// The filesystem is abstracted so production walks the real catalog
// directory (osfs) while tests run against an in-memory tree (memfs).
type Loader struct {
	FS        billy.Filesystem
	IndexName string
}

// NewLoader returns a Loader rooted at the given filesystem.
func NewLoader(fs billy.Filesystem) *Loader {
	return &Loader{FS: fs, IndexName: IndexFile}
}

// LoadIndex reads and parses the catalog manifest.
func (l *Loader) LoadIndex() (*api.Index, error) {
	data, err := util.ReadFile(l.FS, l.IndexName)
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", l.IndexName, err)
	}
	return ParseIndex(data)
}

// Discover walks the catalog depth-first and returns the sorted
// catalog-relative paths of every .json file except the index itself.
func (l *Loader) Discover() ([]string, error) {
	var found []string
	err := util.Walk(l.FS, ".", func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}
		rel := path.Clean(filepath.ToSlash(p))
		if rel == l.IndexName {
			return nil
		}
		found = append(found, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk catalog: %w", err)
	}
	sort.Strings(found)
	return found, nil
}

// LoadDocument reads and parses one catalog-relative file.
func (l *Loader) LoadDocument(rel string) (*Document, error) {
	data, err := util.ReadFile(l.FS, rel)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}
	return ParseDocument(rel, data)
}

// Exists reports whether a catalog-relative path resolves to a file.
func (l *Loader) Exists(rel string) bool {
	info, err := l.FS.Stat(rel)
	return err == nil && !info.IsDir()
}
