package repository

import (
	"context"

	"legal-practice-assistant/internal/model"
)

// Repository is the data store for practice records and the audit trail.
type Repository interface {
	RecordRepository
	AuditRepository
}

// RecordRepository defines all data access methods for practice records.
type RecordRepository interface {
	CreateRecord(ctx context.Context, rec model.Record) error
	GetRecord(ctx context.Context, id string) (model.Record, error)
	// ListRecordsByKind returns records of one kind, most recent first.
	ListRecordsByKind(ctx context.Context, kind string) ([]model.Record, error)
	// UpdateRecordFields merges the given fields into the stored record.
	UpdateRecordFields(ctx context.Context, id string, fields map[string]any) (model.Record, error)
}

// AuditRepository appends to the immutable audit trail.
type AuditRepository interface {
	AppendAudit(ctx context.Context, rec model.AuditRecord) error
	ListAudit(ctx context.Context, limit int) ([]model.AuditRecord, error)
}
