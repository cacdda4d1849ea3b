// Package lint implements the catalog consistency validator: it compares
// the index's declared component list against the files actually present
// under the catalog root, and shape-checks every non-topic document.
package lint

import (
	"fmt"

	"github.com/rxhost/catalogctl/internal/catalog"
)

// Severity classifies a finding. Warnings do not fail validation.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warn"
}

// Finding is one validation diagnostic, tied to a catalog file when the
// problem is file-specific.
type Finding struct {
	Severity Severity
	Path     string
	Message  string
}

func (f Finding) String() string {
	if f.Path == "" {
		return fmt.Sprintf("%s: %s", f.Severity, f.Message)
	}
	return fmt.Sprintf("%s %s: %s", f.Severity, f.Path, f.Message)
}

// DefaultRequiredFields are the selectors every non-topic component must
// resolve. Absence of any one is an error.
var DefaultRequiredFields = []string{
	"metadata",
	"metadata.type",
	"metadata.name",
	"ui",
	"ui.template",
	"integration",
}

// Options tunes a validation run.
type Options struct {
	// StrictUndeclared promotes undeclared-but-present files from warning
	// to error.
	StrictUndeclared bool
	// RequiredFields overrides DefaultRequiredFields when non-empty.
	RequiredFields []string
}

// Report is the outcome of one validation run.
type Report struct {
	Findings []Finding
	// Validated counts non-topic components that passed every check.
	Validated int
	// Topics counts topic/definition documents skipped by shape checks.
	Topics int
}

// OK reports whether the run produced no errors. Warnings are tolerated.
func (r *Report) OK() bool {
	return len(r.Errors()) == 0
}

// Errors returns the error-severity findings.
func (r *Report) Errors() []Finding {
	return r.filter(Error)
}

// Warnings returns the warning-severity findings.
func (r *Report) Warnings() []Finding {
	return r.filter(Warning)
}

func (r *Report) filter(sev Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

func (r *Report) add(sev Severity, path, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Severity: sev,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Linter runs the catalog validator over one Loader.
type Linter struct {
	loader *catalog.Loader
	opts   Options
}

// New returns a Linter. Zero Options give the default behavior: undeclared
// files warn, and DefaultRequiredFields apply.
func New(loader *catalog.Loader, opts Options) *Linter {
	if len(opts.RequiredFields) == 0 {
		opts.RequiredFields = DefaultRequiredFields
	}
	return &Linter{loader: loader, opts: opts}
}

// Run validates the catalog. It returns an error only when the index itself
// cannot be loaded or the walk fails; every other problem becomes a finding
// so one broken file does not hide the rest.
func (l *Linter) Run() (*Report, error) {
	idx, err := l.loader.LoadIndex()
	if err != nil {
		return nil, err
	}

	discovered, err := l.loader.Discover()
	if err != nil {
		return nil, err
	}

	report := &Report{}

	stale, undeclared := diffPaths(idx.Components, discovered)
	for _, p := range stale {
		report.add(Error, p, "declared in index but missing on disk")
	}
	undeclaredSev := Warning
	if l.opts.StrictUndeclared {
		undeclaredSev = Error
	}
	for _, p := range undeclared {
		report.add(undeclaredSev, p, "present on disk but not declared in index")
	}

	for _, p := range discovered {
		doc, err := l.loader.LoadDocument(p)
		if err != nil {
			report.add(Error, p, "%v", err)
			continue
		}
		if doc.IsTopic() {
			report.Topics++
			continue
		}
		missing := 0
		for _, field := range l.opts.RequiredFields {
			if !doc.Has(field) {
				report.add(Error, p, "missing required field %q", field)
				missing++
			}
		}
		if missing == 0 {
			report.Validated++
		}
	}

	return report, nil
}
