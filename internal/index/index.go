// Package index maintains an ephemeral SQLite full-text index over the
// trove. The trove file stays the source of truth; the index lives under
// the cache directory, is rebuilt whenever the trove file's hash differs
// from the one recorded at the last rebuild, and can always be deleted
// safely.
package index

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hoard-cli/hoard/internal/trove"
	_ "modernc.org/sqlite"
)

// DefaultSearchLimit caps search results when the caller passes no limit.
const DefaultSearchLimit = 50

// DB wraps the SQLite index connection.
type DB struct {
	db *sql.DB
}

// Open opens or creates the index database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating index schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the index connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS commands (
			name TEXT PRIMARY KEY,
			command TEXT NOT NULL,
			description TEXT,
			tags_json TEXT NOT NULL,
			position INTEGER NOT NULL
		);

		CREATE VIRTUAL TABLE IF NOT EXISTS commands_fts USING fts5(
			name,
			command,
			description,
			tags_text
		);

		CREATE TABLE IF NOT EXISTS index_meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	_, err := db.Exec(schema)
	return err
}

// TroveHash computes the SHA-256 hash of the trove file. A missing file
// hashes as empty content, so a fresh index over no trove is in sync.
func TroveHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			h := sha256.Sum256([]byte{})
			return hex.EncodeToString(h[:]), nil
		}
		return "", fmt.Errorf("opening trove file: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("reading trove file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// StoredHash returns the trove hash recorded at the last rebuild, or
// empty if the index has never been built.
func (d *DB) StoredHash() (string, error) {
	var hash string
	err := d.db.QueryRow(`SELECT value FROM index_meta WHERE key = 'trove_hash'`).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading stored hash: %w", err)
	}
	return hash, nil
}

// Stale reports whether the index needs a rebuild against the trove file.
func (d *DB) Stale(trovePath string) (bool, error) {
	current, err := TroveHash(trovePath)
	if err != nil {
		return true, err
	}
	stored, err := d.StoredHash()
	if err != nil {
		return true, err
	}
	return current != stored, nil
}

// Rebuild clears the index and repopulates it from the trove, recording
// the trove file's hash. Returns the number of entries indexed.
func (d *DB) Rebuild(t *trove.Trove, trovePath string) (int, error) {
	hash, err := TroveHash(trovePath)
	if err != nil {
		return 0, err
	}

	if _, err := d.db.Exec(`DELETE FROM commands`); err != nil {
		return 0, fmt.Errorf("clearing commands table: %w", err)
	}
	if _, err := d.db.Exec(`DELETE FROM commands_fts`); err != nil {
		return 0, fmt.Errorf("clearing FTS table: %w", err)
	}

	records := t.Records("")
	for i, r := range records {
		tagsJSON, err := json.Marshal(r.Tags)
		if err != nil {
			return 0, fmt.Errorf("encoding tags for %q: %w", r.Name, err)
		}

		_, err = d.db.Exec(
			`INSERT INTO commands (name, command, description, tags_json, position) VALUES (?, ?, ?, ?, ?)`,
			r.Name, r.Command, r.Description, string(tagsJSON), i,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting %q: %w", r.Name, err)
		}

		_, err = d.db.Exec(
			`INSERT INTO commands_fts (name, command, description, tags_text) VALUES (?, ?, ?, ?)`,
			r.Name, r.Command, r.Description, strings.Join(r.Tags, " "),
		)
		if err != nil {
			return 0, fmt.Errorf("indexing %q: %w", r.Name, err)
		}
	}

	_, err = d.db.Exec(
		`INSERT INTO index_meta (key, value) VALUES ('trove_hash', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		hash,
	)
	if err != nil {
		return 0, fmt.Errorf("recording trove hash: %w", err)
	}

	return len(records), nil
}

// Search runs a full-text query over names, commands, descriptions, and
// tags. Results come back in trove insertion order.
func (d *DB) Search(query string, limit int) ([]trove.Record, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	ftsQuery := prepareFTSQuery(query)
	if ftsQuery == "" {
		return []trove.Record{}, nil
	}

	rows, err := d.db.Query(`
		SELECT name, command, description, tags_json
		FROM commands
		WHERE name IN (SELECT name FROM commands_fts WHERE commands_fts MATCH ?)
		ORDER BY position
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	var records []trove.Record
	for rows.Next() {
		var r trove.Record
		var tagsJSON string
		if err := rows.Scan(&r.Name, &r.Command, &r.Description, &tagsJSON); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		if err := json.Unmarshal([]byte(tagsJSON), &r.Tags); err != nil {
			return nil, fmt.Errorf("decoding tags for %q: %w", r.Name, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if records == nil {
		records = []trove.Record{}
	}
	return records, nil
}

// prepareFTSQuery quotes queries containing FTS5 operator characters so
// user input is matched literally.
func prepareFTSQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	if strings.ContainsAny(query, "\"*+-:(){}[]^~") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
