// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog indexes a parsed product plan in SQLite so roadmap
// sections, problems and features can be searched and exported.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/product-plan/pkg/types"
)

const dbFile = "catalog.db"

// EntryKind classifies a catalog entry.
type EntryKind string

const (
	KindDescription EntryKind = "description"
	KindProblem     EntryKind = "problem"
	KindFeature     EntryKind = "feature"
	KindSection     EntryKind = "section"
)

// Store manages the catalog SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// NewStore opens or creates dir/catalog.db and its schema.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "catalog"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, dir: dir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS product (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS entries (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			ref TEXT NOT NULL,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			position INTEGER NOT NULL,
			sort_key INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_kind ON entries(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_ref ON entries(ref)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='entries_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}
	if ftsExists > 0 {
		return nil
	}

	ftsStatements := []string{
		`CREATE VIRTUAL TABLE entries_fts USING fts5(title, body, content=entries, content_rowid=rowid)`,
		`CREATE TRIGGER entries_ai AFTER INSERT ON entries BEGIN
			INSERT INTO entries_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
		END`,
		`CREATE TRIGGER entries_ad AFTER DELETE ON entries BEGIN
			INSERT INTO entries_fts(entries_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
		END`,
		`CREATE TRIGGER entries_au AFTER UPDATE ON entries BEGIN
			INSERT INTO entries_fts(entries_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
			INSERT INTO entries_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
		END`,
	}
	for _, stmt := range ftsStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating FTS infrastructure: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from one ingestion.
type IngestSummary struct {
	Sections int
	Problems int
	Features int
}

// Total returns the number of entries written.
func (s IngestSummary) Total() int {
	return s.Sections + s.Problems + s.Features
}

// Ingest replaces the catalog contents with data in a single transaction.
// A nil overview or roadmap contributes no entries.
func (s *Store) Ingest(ctx context.Context, data types.ProductData, w io.Writer) (IngestSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return IngestSummary{}, fmt.Errorf("clearing entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM product`); err != nil {
		return IngestSummary{}, fmt.Errorf("clearing product: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (kind, ref, title, body, position, sort_key) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	insert := func(kind EntryKind, ref, title, body string, position, sortKey int) error {
		if _, err := stmt.ExecContext(ctx, string(kind), ref, title, body, position, sortKey); err != nil {
			return fmt.Errorf("inserting %s %q: %w", kind, title, err)
		}
		return nil
	}

	var summary IngestSummary

	if ov := data.Overview; ov != nil {
		if _, err := tx.ExecContext(ctx, `INSERT INTO product (id, name) VALUES (1, ?)`, ov.Name); err != nil {
			return IngestSummary{}, fmt.Errorf("inserting product: %w", err)
		}
		if ov.Description != "" {
			if err := insert(KindDescription, "description", ov.Name, ov.Description, 0, 0); err != nil {
				return IngestSummary{}, err
			}
		}
		for i, p := range ov.Problems {
			if err := insert(KindProblem, fmt.Sprintf("problem-%d", i+1), p.Title, p.Solution, i, i); err != nil {
				return IngestSummary{}, err
			}
			summary.Problems++
		}
		for i, f := range ov.Features {
			if err := insert(KindFeature, fmt.Sprintf("feature-%d", i+1), f, "", i, i); err != nil {
				return IngestSummary{}, err
			}
			summary.Features++
		}
	}

	if rm := data.Roadmap; rm != nil {
		for i, sec := range rm.Sections {
			if err := insert(KindSection, sec.ID, sec.Title, sec.Description, i, sec.Order); err != nil {
				return IngestSummary{}, err
			}
			summary.Sections++
		}
	}

	if err := tx.Commit(); err != nil {
		return IngestSummary{}, fmt.Errorf("committing: %w", err)
	}

	fmt.Fprintf(w, "sections: %d, problems: %d, features: %d\n",
		summary.Sections, summary.Problems, summary.Features)
	return summary, nil
}

// ProductName returns the name stored by the last ingestion, or "".
func (s *Store) ProductName(ctx context.Context) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM product WHERE id = 1`).Scan(&name)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading product name: %w", err)
	}
	return name, nil
}
