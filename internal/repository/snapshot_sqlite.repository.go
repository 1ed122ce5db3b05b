package repository

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

type sqliteSnapshotRepositoryHandler struct {
	db *sql.DB
}

// NewSqliteSnapshotRepository opens (or creates) a local sqlite database with
// a single key/value snapshot table. This is the default store: one small
// file next to the binary, no external service needed.
func NewSqliteSnapshotRepository(dbPath string) (SnapshotRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS snapshot (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}

	return sqliteSnapshotRepositoryHandler{db: db}, nil
}

func (h sqliteSnapshotRepositoryHandler) Load(key string) ([]byte, error) {
	var blob []byte
	err := h.db.QueryRow("SELECT value FROM snapshot WHERE key = ?", key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	return blob, nil
}

func (h sqliteSnapshotRepositoryHandler) Save(key string, blob []byte) error {
	_, err := h.db.Exec(`INSERT INTO snapshot (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, blob)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}
