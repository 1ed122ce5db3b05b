package repository

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

type postgresSnapshotRepositoryHandler struct {
	db *sql.DB
}

// NewPostgresSnapshotRepository connects to Postgres and ensures the snapshot
// table exists. Useful when the tracker runs somewhere without a writable
// disk and a managed database is already around.
func NewPostgresSnapshotRepository(dsn string) (SnapshotRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS snapshot (
		key TEXT PRIMARY KEY,
		value BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}

	return postgresSnapshotRepositoryHandler{db: db}, nil
}

func (h postgresSnapshotRepositoryHandler) Load(key string) ([]byte, error) {
	var blob []byte
	err := h.db.QueryRow("SELECT value FROM snapshot WHERE key = $1", key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	return blob, nil
}

func (h postgresSnapshotRepositoryHandler) Save(key string, blob []byte) error {
	_, err := h.db.Exec(`INSERT INTO snapshot (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, blob)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}
