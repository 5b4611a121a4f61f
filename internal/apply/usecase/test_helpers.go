package usecase

import (
	"context"

	"legal-practice-assistant/internal/apply/repository"
	"legal-practice-assistant/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository for testing: in-memory maps, list order is insertion
// reversed to mimic the most-recent-first contract.
type mockRepository struct {
	records []model.Record
	audits  []model.AuditRecord
}

func (m *mockRepository) CreateRecord(ctx context.Context, rec model.Record) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *mockRepository) GetRecord(ctx context.Context, id string) (model.Record, error) {
	for _, rec := range m.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return model.Record{}, repository.ErrRecordNotFound
}

func (m *mockRepository) ListRecordsByKind(ctx context.Context, kind string) ([]model.Record, error) {
	var out []model.Record
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].Kind == kind {
			out = append(out, m.records[i])
		}
	}
	return out, nil
}

func (m *mockRepository) UpdateRecordFields(ctx context.Context, id string, fields map[string]any) (model.Record, error) {
	for i, rec := range m.records {
		if rec.ID == id {
			if rec.Fields == nil {
				rec.Fields = map[string]any{}
			}
			for k, v := range fields {
				rec.Fields[k] = v
			}
			if title, ok := rec.Fields["title"].(string); ok {
				rec.Title = title
			}
			m.records[i] = rec
			return rec, nil
		}
	}
	return model.Record{}, repository.ErrRecordNotFound
}

func (m *mockRepository) AppendAudit(ctx context.Context, rec model.AuditRecord) error {
	m.audits = append(m.audits, rec)
	return nil
}

func (m *mockRepository) ListAudit(ctx context.Context, limit int) ([]model.AuditRecord, error) {
	return m.audits, nil
}
