// Package conformance runs the fixed release checks against the React
// wrapper component. Unlike the lint package, which checks shape only,
// these checks pin exact published values: the icon glyph, the plugin and
// sequence identifiers, the root classes, and the lifecycle events a host
// relies on. A catalog release must pass all of them.
package conformance

import (
	"fmt"

	"github.com/rxhost/catalogctl/api"
	"github.com/rxhost/catalogctl/internal/catalog"
)

// FixturePath is the catalog-relative path of the component under test.
const FixturePath = "components/react/rx-react.json"

// Published values the host contract depends on.
const (
	wantType     = "react"
	wantName     = "React Component Wrapper"
	wantIconType = "emoji"
	wantIcon     = "⚛️"
	wantStrategy = "react"
	wantPlugin   = "rx-react-bridge"
	wantSequence = "rx.mount.react"
)

// Fixture bundles the documents the suite asserts against.
type Fixture struct {
	Component *catalog.Document
	Index     *api.Index
}

// LoadFixture reads the index and the React wrapper document.
func LoadFixture(l *catalog.Loader) (*Fixture, error) {
	idx, err := l.LoadIndex()
	if err != nil {
		return nil, err
	}
	doc, err := l.LoadDocument(FixturePath)
	if err != nil {
		return nil, err
	}
	return &Fixture{Component: doc, Index: idx}, nil
}

// Check is one named conformance check.
type Check struct {
	Name string
	Fn   func(f *Fixture) error
}

// Result pairs a check name with its outcome. Err is nil on pass.
type Result struct {
	Name string
	Err  error
}

// Suite returns the checks in reporting order.
func Suite() []Check {
	return []Check{
		{"metadata identity", checkMetadata},
		{"icon glyph", checkIcon},
		{"template classes", checkClasses},
		{"render strategy", checkStrategy},
		{"plugin identifier", checkPlugin},
		{"sequence identifier", checkSequence},
		{"lifecycle events", checkEvents},
		{"index exposure", checkIndex},
	}
}

// Run executes every check independently: one failure never stops the rest.
func Run(f *Fixture) []Result {
	checks := Suite()
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		results = append(results, Result{Name: c.Name, Err: c.Fn(f)})
	}
	return results
}

// Passed counts the results with no error.
func Passed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

func checkMetadata(f *Fixture) error {
	if err := expectString(f.Component, "metadata.type", wantType); err != nil {
		return err
	}
	return expectString(f.Component, "metadata.name", wantName)
}

func checkIcon(f *Fixture) error {
	if err := expectString(f.Component, "ui.icon.type", wantIconType); err != nil {
		return err
	}
	return expectString(f.Component, "ui.icon.value", wantIcon)
}

func checkClasses(f *Fixture) error {
	return expectMembers(f.Component, "ui.template.classes", "rx-comp", "rx-react")
}

func checkStrategy(f *Fixture) error {
	return expectString(f.Component, "ui.template.render.strategy", wantStrategy)
}

func checkPlugin(f *Fixture) error {
	return expectString(f.Component, "integration.plugin", wantPlugin)
}

func checkSequence(f *Fixture) error {
	return expectString(f.Component, "integration.sequence", wantSequence)
}

func checkEvents(f *Fixture) error {
	return expectMembers(f.Component, "integration.events", "mount", "unmount", "error")
}

func checkIndex(f *Fixture) error {
	if f.Index.Version == "" {
		return fmt.Errorf("index version is empty")
	}
	if !f.Index.Declares(FixturePath) {
		return fmt.Errorf("index does not declare %s", FixturePath)
	}
	return nil
}

func expectString(doc *catalog.Document, selector, want string) error {
	got, ok := doc.GetString(selector)
	if !ok {
		return fmt.Errorf("%s is missing or not a string", selector)
	}
	if got != want {
		return fmt.Errorf("%s = %q, want %q", selector, got, want)
	}
	return nil
}

func expectMembers(doc *catalog.Document, selector string, members ...string) error {
	got, ok := doc.Strings(selector)
	if !ok {
		return fmt.Errorf("%s is missing or not an array", selector)
	}
	present := make(map[string]bool, len(got))
	for _, s := range got {
		present[s] = true
	}
	for _, m := range members {
		if !present[m] {
			return fmt.Errorf("%s does not contain %q", selector, m)
		}
	}
	return nil
}
