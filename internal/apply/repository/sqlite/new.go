package sqlite

import (
	"database/sql"
	"fmt"

	"legal-practice-assistant/internal/apply/repository"
	"legal-practice-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for practice records.
func New(db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("apply/repository/sqlite: db is required")
	}
	r := &implRepository{db: db, l: l}
	if err := r.migrate(); err != nil {
		return nil, fmt.Errorf("apply/repository/sqlite: migrate: %w", err)
	}
	return r, nil
}

// migrate creates the schema. Fields are stored as a JSON column: the record
// shapes come from the parser and vary per entity kind.
func (r *implRepository) migrate() error {
	const schema = `
		CREATE TABLE IF NOT EXISTS records (
			id         TEXT PRIMARY KEY,
			kind       TEXT NOT NULL,
			title      TEXT NOT NULL DEFAULT '',
			fields     TEXT NOT NULL DEFAULT '{}',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_records_kind ON records(kind, created_at DESC);

		CREATE TABLE IF NOT EXISTS audit_log (
			id          TEXT PRIMARY KEY,
			actor_id    TEXT NOT NULL,
			action_type TEXT NOT NULL,
			entity      TEXT NOT NULL,
			entity_id   TEXT NOT NULL,
			summary     TEXT NOT NULL,
			created_at  TIMESTAMP NOT NULL
		);`

	_, err := r.db.Exec(schema)
	return err
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("apply/repository/sqlite.%s", method)
}
