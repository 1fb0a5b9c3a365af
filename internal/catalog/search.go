// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"strings"
)

// QueryOptions holds parameters for catalog searches.
type QueryOptions struct {
	// Query is an FTS5 full-text search string.
	Query string

	// Kind restricts results to one entry kind.
	Kind EntryKind

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Kind == ""
}

// Entry is one catalog row.
type Entry struct {
	Kind  EntryKind `json:"kind" yaml:"kind"`
	Ref   string    `json:"ref" yaml:"ref"`
	Title string    `json:"title" yaml:"title"`
	Body  string    `json:"body,omitempty" yaml:"body,omitempty"`

	// Position is the entry's index within its kind.
	Position int `json:"position" yaml:"position"`

	// Order is the declared roadmap order for sections, else Position.
	Order int `json:"order" yaml:"order"`
}

// kindRank orders kinds for structured queries: the overview first, then
// the roadmap.
const kindRank = `CASE e.kind
	WHEN 'description' THEN 0
	WHEN 'problem' THEN 1
	WHEN 'feature' THEN 2
	WHEN 'section' THEN 3
	ELSE 4 END`

// Search queries the catalog. Full-text queries are ranked by relevance;
// structured queries return entries in document order grouped by kind.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]Entry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT e.kind, e.ref, e.title, e.body, e.position, e.sort_key
			FROM entries_fts
			JOIN entries e ON e.rowid = entries_fts.rowid
			WHERE entries_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT e.kind, e.ref, e.title, e.body, e.position, e.sort_key
			FROM entries e
			WHERE 1=1`)
	}

	if opts.Kind != "" {
		qb.WriteString(` AND e.kind = ?`)
		args = append(args, string(opts.Kind))
	}

	if useFTS {
		qb.WriteString(` ORDER BY entries_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY ` + kindRank + `, e.position`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e    Entry
			kind string
		)
		if err := rows.Scan(&kind, &e.Ref, &e.Title, &e.Body, &e.Position, &e.Order); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		e.Kind = EntryKind(kind)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
