package sqlite

import (
	"context"

	"legal-practice-assistant/internal/apply/repository"
	"legal-practice-assistant/internal/model"
)

// AppendAudit writes one immutable audit row.
func (r *implRepository) AppendAudit(ctx context.Context, rec model.AuditRecord) error {
	const query = `
		INSERT INTO audit_log (id, actor_id, action_type, entity, entity_id, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.ActorID, rec.ActionType, rec.Entity, rec.EntityID, rec.Summary, rec.CreatedAt,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AppendAudit"), err)
		return repository.ErrFailedToInsert
	}
	return nil
}

// ListAudit returns the newest audit rows, most recent first.
func (r *implRepository) ListAudit(ctx context.Context, limit int) ([]model.AuditRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
		SELECT id, actor_id, action_type, entity, entity_id, summary, created_at
		FROM audit_log ORDER BY created_at DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAudit"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var records []model.AuditRecord
	for rows.Next() {
		var rec model.AuditRecord
		if err := rows.Scan(&rec.ID, &rec.ActorID, &rec.ActionType, &rec.Entity, &rec.EntityID, &rec.Summary, &rec.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListAudit"), err)
			return nil, repository.ErrFailedToList
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListAudit"), err)
		return nil, repository.ErrFailedToList
	}
	return records, nil
}
