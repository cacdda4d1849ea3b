package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Document is one parsed catalog JSON file.
type Document struct {
	// Path is the catalog-relative, slash-separated file path.
	Path string
	// Root is the parsed JSON tree (maps, slices, primitives).
	Root any
}

// ParseDocument parses raw JSON into a Document. The returned error carries
// the path so a broken file is never silently skipped.
func ParseDocument(path string, data []byte) (*Document, error) {
	root, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse json %s: %w", path, err)
	}
	return &Document{Path: path, Root: root}, nil
}

// IsTopic reports whether the document is a topic/definition document.
// Those share the catalog directory with components but describe messaging
// topics, recognized solely by a top-level "topics" or "definitions" key.
func (d *Document) IsTopic() bool {
	obj, ok := d.Root.(map[string]any)
	if !ok {
		return false
	}
	if _, ok := obj["topics"]; ok {
		return true
	}
	_, ok = obj["definitions"]
	return ok
}

// Decode re-encodes the parsed tree and unmarshals it into a typed view
// (e.g. api.Component). Validation never uses this: struct decoding cannot
// tell an absent field from a zero value.
func (d *Document) Decode(v any) error {
	if err := json.Unmarshal([]byte(oj.JSON(d.Root)), v); err != nil {
		return fmt.Errorf("decode %s: %w", d.Path, err)
	}
	return nil
}

// Get resolves a JSONPath selector against the document and returns the
// first match, or false when the selector matches nothing.
func (d *Document) Get(selector string) (any, bool) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, false
	}
	results := x.Get(d.Root)
	if len(results) == 0 {
		return nil, false
	}
	return results[0], true
}

// Has reports whether the selector resolves to at least one value.
func (d *Document) Has(selector string) bool {
	_, ok := d.Get(selector)
	return ok
}

// GetString returns the selector's first match when it is a string.
func (d *Document) GetString(selector string) (string, bool) {
	v, ok := d.Get(selector)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Strings returns the selector's first match coerced to a string slice.
// Non-string elements are dropped.
func (d *Document) Strings(selector string) ([]string, bool) {
	v, ok := d.Get(selector)
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}
