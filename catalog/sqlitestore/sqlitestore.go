// Package sqlitestore provides SQLite-based persistence for function
// declarations.
package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/halcyonlabs/gemschema/catalog"
	"github.com/halcyonlabs/gemschema/internal/logging"
	"github.com/halcyonlabs/gemschema/tool"
)

// SQLiteStore implements catalog.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

var _ catalog.Store = (*SQLiteStore)(nil)

// New creates a new SQLite-based store at the given path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables if they don't exist.
func (s *SQLiteStore) initSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS declarations (
    name       TEXT PRIMARY KEY,
    definition TEXT NOT NULL,
    updated_at DATETIME NOT NULL
);
`
	_, err := s.db.Exec(schema)
	return err
}

// Put implements catalog.Store.
func (s *SQLiteStore) Put(decl tool.FunctionDeclaration) error {
	if decl.Name == "" {
		return fmt.Errorf("declaration missing name")
	}

	definition, err := json.Marshal(decl)
	if err != nil {
		return fmt.Errorf("encode declaration: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO declarations (name, definition, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET definition = excluded.definition, updated_at = excluded.updated_at`,
		decl.Name, string(definition), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert declaration: %w", err)
	}

	logging.Logger().Debug("stored declaration", "name", decl.Name)
	return nil
}

// Get implements catalog.Store.
func (s *SQLiteStore) Get(name string) (json.RawMessage, error) {
	var definition string
	err := s.db.QueryRow(
		`SELECT definition FROM declarations WHERE name = ?`, name,
	).Scan(&definition)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("get %q: %w", name, catalog.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query declaration: %w", err)
	}
	return json.RawMessage(definition), nil
}

// List implements catalog.Store.
func (s *SQLiteStore) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM declarations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate names: %w", err)
	}
	return names, nil
}

// Delete implements catalog.Store.
func (s *SQLiteStore) Delete(name string) error {
	result, err := s.db.Exec(`DELETE FROM declarations WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete declaration: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete %q: %w", name, catalog.ErrNotFound)
	}
	return nil
}

// Close implements catalog.Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
