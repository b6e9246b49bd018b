// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the menu catalog in a local SQLite database
// and answers category-filtered reads over it.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/menu-browser/pkg/types"
)

// StoreError wraps any schema, read, or write failure against the
// local store. Callers must treat it as fatal for the triggering
// operation; it is never retried here.
type StoreError struct {
	// Op names the failing operation ("schema", "load", "upsert", "query").
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store manages the menu catalog SQLite database. A Store holds a
// single connection; reads and the one bulk write path interleave at
// call granularity only.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the catalog database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_journal_mode=WAL&_busy_timeout=5000"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, &StoreError{Op: "open", Err: err}
	}

	// SQLite allows one writer; a single connection also keeps the
	// in-memory variant from seeing a fresh empty database per conn.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the menuitems table if it is absent. It is
// idempotent and safe to call any number of times.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS menuitems (
			id INTEGER PRIMARY KEY NOT NULL,
			title TEXT NOT NULL,
			price TEXT NOT NULL,
			category TEXT NOT NULL
		)`)
	if err != nil {
		return &StoreError{Op: "schema", Err: err}
	}
	return nil
}

// LoadAll returns every stored item in storage order. An empty store
// yields an empty slice, not an error.
func (s *Store) LoadAll(ctx context.Context) ([]types.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, price, category FROM menuitems ORDER BY id`)
	if err != nil {
		return nil, &StoreError{Op: "load", Err: err}
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, &StoreError{Op: "load", Err: err}
	}
	return items, nil
}

// UpsertAll writes the batch as one transaction: rows sharing an id
// are replaced, the rest are inserted. Either the whole batch is
// visible afterwards or none of it. An empty batch is a no-op.
func (s *Store) UpsertAll(ctx context.Context, items []types.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &StoreError{Op: "upsert", Err: fmt.Errorf("beginning transaction: %w", err)}
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO menuitems (id, title, price, category) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return &StoreError{Op: "upsert", Err: fmt.Errorf("preparing insert: %w", err)}
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx, item.ID, item.Title, item.Price, item.Category); err != nil {
			return &StoreError{Op: "upsert", Err: fmt.Errorf("inserting item %d: %w", item.ID, err)}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StoreError{Op: "upsert", Err: fmt.Errorf("committing batch: %w", err)}
	}
	return nil
}

// Query returns items whose category is in categories, in storage
// order. A nil or empty set applies no predicate and matches every
// item. Text matching is not done here: title search is
// case-insensitive substring matching, which belongs to the query
// engine, not SQL.
func (s *Store) Query(ctx context.Context, categories []string) ([]types.MenuItem, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT id, title, price, category FROM menuitems`)

	var args []any
	if len(categories) > 0 {
		qb.WriteString(` WHERE category IN (?` + strings.Repeat(", ?", len(categories)-1) + `)`)
		for _, c := range categories {
			args = append(args, c)
		}
	}
	qb.WriteString(` ORDER BY id`)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, &StoreError{Op: "query", Err: err}
	}
	return items, nil
}

func scanItems(rows *sql.Rows) ([]types.MenuItem, error) {
	items := []types.MenuItem{}
	for rows.Next() {
		var item types.MenuItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Price, &item.Category); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
