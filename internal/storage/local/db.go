package local

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// FileName is the sqlite file created inside the data directory.
const FileName = "kanban.db"

var ErrNotFound = errors.New("local: key not found")

// DB is a key/value byte store backed by sqlite.
type DB struct {
	*sql.DB
}

// Open creates dataDir if needed, opens the database inside it and applies the schema.
func Open(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("local.Open: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dataDir, FileName)+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("local.Open: %w", err)
	}
	// sqlite serialises writers anyway
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("local.Open: schema: %w", err)
	}

	return &DB{db}, nil
}

// Get returns the bytes stored under key, or ErrNotFound.
func (db *DB) Get(key string) ([]byte, error) {
	var value []byte
	err := db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return value, err
}

// Set writes value under key, replacing what was there.
func (db *DB) Set(key string, value []byte) error {
	_, err := db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}
