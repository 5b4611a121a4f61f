package model

import "time"

// Record is a stored practice entity (case, contact, task, event, invoice,
// time entry, case comment, runsheet entry). Entity-specific fields live in
// the Fields map; Title is duplicated out of Fields for search.
type Record struct {
	ID        string
	Kind      string // assistant.EntityKind value
	Title     string
	Fields    map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuditRecord is written once per executed action, after human confirmation.
type AuditRecord struct {
	ID         string
	ActorID    string
	ActionType string // create or update
	Entity     string
	EntityID   string
	Summary    string
	CreatedAt  time.Time
}
