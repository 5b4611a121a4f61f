package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"legal-practice-assistant/internal/apply/repository"
	"legal-practice-assistant/internal/model"
)

// CreateRecord inserts a new practice record.
func (r *implRepository) CreateRecord(ctx context.Context, rec model.Record) error {
	fields, err := json.Marshal(rec.Fields)
	if err != nil {
		r.l.Errorf(ctx, "%s: marshal fields: %v", r.dsn("CreateRecord"), err)
		return repository.ErrFailedToInsert
	}

	const query = `
		INSERT INTO records (id, kind, title, fields, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Kind, rec.Title, string(fields), rec.CreatedAt, rec.UpdatedAt,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRecord"), err)
		return repository.ErrFailedToInsert
	}
	return nil
}

// GetRecord retrieves a single record by ID.
func (r *implRepository) GetRecord(ctx context.Context, id string) (model.Record, error) {
	const query = `
		SELECT id, kind, title, fields, created_at, updated_at
		FROM records WHERE id = ?`

	rec, err := r.scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Record{}, repository.ErrRecordNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRecord"), err)
		return model.Record{}, repository.ErrFailedToGet
	}
	return rec, nil
}

// ListRecordsByKind returns all records of one kind, most recent first.
func (r *implRepository) ListRecordsByKind(ctx context.Context, kind string) ([]model.Record, error) {
	const query = `
		SELECT id, kind, title, fields, created_at, updated_at
		FROM records WHERE kind = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, kind)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecordsByKind"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListRecordsByKind"), err)
			return nil, repository.ErrFailedToList
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListRecordsByKind"), err)
		return nil, repository.ErrFailedToList
	}
	return records, nil
}

// UpdateRecordFields merges fields into the stored record and bumps
// updated_at. Title tracks the title field when it changes.
func (r *implRepository) UpdateRecordFields(ctx context.Context, id string, fields map[string]any) (model.Record, error) {
	rec, err := r.GetRecord(ctx, id)
	if err != nil {
		return model.Record{}, err
	}

	if rec.Fields == nil {
		rec.Fields = map[string]any{}
	}
	for k, v := range fields {
		rec.Fields[k] = v
	}
	if title, ok := rec.Fields["title"].(string); ok {
		rec.Title = title
	}

	merged, err := json.Marshal(rec.Fields)
	if err != nil {
		r.l.Errorf(ctx, "%s: marshal fields: %v", r.dsn("UpdateRecordFields"), err)
		return model.Record{}, repository.ErrFailedToUpdate
	}

	const query = `
		UPDATE records SET title = ?, fields = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, rec.Title, string(merged), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRecordFields"), err)
		return model.Record{}, repository.ErrFailedToUpdate
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanRecord(row rowScanner) (model.Record, error) {
	var rec model.Record
	var fields string
	if err := row.Scan(&rec.ID, &rec.Kind, &rec.Title, &fields, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return model.Record{}, err
	}
	if err := json.Unmarshal([]byte(fields), &rec.Fields); err != nil {
		return model.Record{}, err
	}
	return rec, nil
}
