package catalog

import (
	"fmt"

	"github.com/ohler55/ojg/oj"

	"github.com/rxhost/catalogctl/api"
)

// ParseIndex parses and shape-checks index.json. It fails when the document
// is not a JSON object, when version is missing or empty, or when
// components is absent or contains non-strings.
func ParseIndex(data []byte) (*api.Index, error) {
	root, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("index must be a JSON object, got %T", root)
	}

	version, ok := obj["version"].(string)
	if !ok || version == "" {
		return nil, fmt.Errorf("index is missing a version string")
	}

	raw, ok := obj["components"].([]any)
	if !ok {
		return nil, fmt.Errorf("index is missing a components array")
	}
	components := make([]string, 0, len(raw))
	for i, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("index components[%d] is %T, want string", i, item)
		}
		components = append(components, s)
	}

	return &api.Index{Version: version, Components: components}, nil
}
