package api

// Index is the catalog manifest fetched by hosts before anything else.
// It enumerates the component documents a host should load, as paths
// relative to the catalog root.
type Index struct {
	// Version of the published catalog.
	Version string `json:"version"`
	// Components lists catalog-relative paths of component documents.
	Components []string `json:"components"`
}

// Declares reports whether the index lists the given catalog-relative path.
func (i *Index) Declares(path string) bool {
	for _, c := range i.Components {
		if c == path {
			return true
		}
	}
	return false
}

// Metadata identifies a component to the host.
type Metadata struct {
	// Type of the component (e.g. "react", "element").
	Type string `json:"type"`
	// Name is the human-readable component name.
	Name string `json:"name"`
	// Version of the individual component, independent of the catalog version.
	Version string `json:"version,omitempty"`
	// Description is optional prose for catalog browsers.
	Description string `json:"description,omitempty"`
}

// Icon describes the glyph shown next to the component in host UIs.
type Icon struct {
	// Type of glyph source ("emoji", "url").
	Type string `json:"type"`
	// Value is the glyph itself or a URL, depending on Type.
	Value string `json:"value"`
}

// Render controls how the host materializes the template.
type Render struct {
	// Strategy names the rendering pipeline ("react", "dom").
	Strategy string `json:"strategy"`
}

// Template is the host-side mounting skeleton for a component.
type Template struct {
	// Tag is the root element tag name.
	Tag string `json:"tag,omitempty"`
	// Classes applied to the root element.
	Classes []string `json:"classes,omitempty"`
	// Render selects the rendering strategy.
	Render *Render `json:"render,omitempty"`
}

// UI groups the presentation contract of a component.
type UI struct {
	Icon     *Icon     `json:"icon,omitempty"`
	Template *Template `json:"template"`
}

// Integration is the host-integration contract: which plugin owns the
// component, which mount sequence it participates in, and which lifecycle
// events it emits.
type Integration struct {
	// Plugin is the identifier of the owning host plugin.
	Plugin string `json:"plugin,omitempty"`
	// Sequence is the mount-sequence identifier.
	Sequence string `json:"sequence,omitempty"`
	// Events lists lifecycle event names the component emits.
	Events []string `json:"events,omitempty"`
}

// Component is the typed view of a component document. Validation works on
// the raw parsed tree instead (presence checks must tell "absent" apart
// from "zero value"); this shape exists for reporting and snapshotting.
type Component struct {
	Metadata    Metadata     `json:"metadata"`
	UI          UI           `json:"ui"`
	Integration *Integration `json:"integration,omitempty"`
}
