// Package snapshot packs a validated catalog into a single SQLite file for
// the host packaging pipeline. The snapshot is a read-only artifact: one
// row per document with the raw JSON preserved, plus the catalog version.
package snapshot

import (
	"database/sql"
	"fmt"

	"github.com/ohler55/ojg/oj"
	_ "modernc.org/sqlite"

	"github.com/rxhost/catalogctl/internal/catalog"
	"github.com/rxhost/catalogctl/internal/lint"
)

// Document kinds stored in the components table.
const (
	KindComponent = "component"
	KindTopic     = "topic"
)

// Writer streams catalog documents into a SQLite snapshot.
type Writer struct {
	db   *sql.DB
	tx   *sql.Tx
	stmt *sql.Stmt
}

// NewWriter opens (or creates) the snapshot database and initializes the
// schema inside a single transaction committed by Close.
func NewWriter(dbPath string) (*Writer, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Bulk-insert tuning; the snapshot is rebuilt from scratch every run.
	if _, err := db.Exec("PRAGMA synchronous = OFF"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode = MEMORY"); err != nil {
		_ = db.Close()
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS catalog_meta (
		version TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS components (
		path TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		name TEXT,
		type TEXT,
		document JSON NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_components_type ON components(type);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO components (path, kind, name, type, document)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		_ = db.Close()
		return nil, err
	}

	return &Writer{db: db, tx: tx, stmt: stmt}, nil
}

// WriteMeta records the catalog version.
func (w *Writer) WriteMeta(version string) error {
	_, err := w.tx.Exec("INSERT INTO catalog_meta (version) VALUES (?)", version)
	return err
}

// WriteDocument stores one parsed document. Name and type come from the
// component metadata and stay NULL for topic documents.
func (w *Writer) WriteDocument(d *catalog.Document) error {
	kind := KindComponent
	var name, typ any
	if d.IsTopic() {
		kind = KindTopic
	} else {
		if s, ok := d.GetString("metadata.name"); ok {
			name = s
		}
		if s, ok := d.GetString("metadata.type"); ok {
			typ = s
		}
	}
	_, err := w.stmt.Exec(d.Path, kind, name, typ, oj.JSON(d.Root))
	if err != nil {
		return fmt.Errorf("insert %s: %w", d.Path, err)
	}
	return nil
}

// Close commits the transaction and closes the database.
func (w *Writer) Close() error {
	if err := w.stmt.Close(); err != nil {
		_ = w.tx.Rollback()
		_ = w.db.Close()
		return err
	}
	if err := w.tx.Commit(); err != nil {
		_ = w.db.Close()
		return err
	}
	return w.db.Close()
}

// Pack validates the catalog and, when clean, writes every document to
// dbPath. The lint report is returned either way so callers can surface
// warnings; packing is refused while the report carries errors.
func Pack(loader *catalog.Loader, opts lint.Options, dbPath string) (*lint.Report, int, error) {
	report, err := lint.New(loader, opts).Run()
	if err != nil {
		return nil, 0, err
	}
	if !report.OK() {
		return report, 0, fmt.Errorf("catalog has %d validation error(s); refusing to pack", len(report.Errors()))
	}

	idx, err := loader.LoadIndex()
	if err != nil {
		return report, 0, err
	}
	discovered, err := loader.Discover()
	if err != nil {
		return report, 0, err
	}

	w, err := NewWriter(dbPath)
	if err != nil {
		return report, 0, err
	}

	written := 0
	for _, p := range discovered {
		doc, err := loader.LoadDocument(p)
		if err != nil {
			_ = w.Close()
			return report, written, err
		}
		if err := w.WriteDocument(doc); err != nil {
			_ = w.Close()
			return report, written, err
		}
		written++
	}
	if err := w.WriteMeta(idx.Version); err != nil {
		_ = w.Close()
		return report, written, err
	}

	return report, written, w.Close()
}
