package assistant

// ActionType is the kind of mutation a proposed action performs.
type ActionType string

const (
	ActionCreate ActionType = "create"
	ActionUpdate ActionType = "update"
)

// EntityKind identifies which practice entity an action targets.
type EntityKind string

const (
	EntityTimeEntry   EntityKind = "time_entry"
	EntityCase        EntityKind = "case"
	EntityContact     EntityKind = "contact"
	EntityTask        EntityKind = "task"
	EntityEvent       EntityKind = "event"
	EntityInvoice     EntityKind = "invoice"
	EntityCaseComment EntityKind = "case_comment"
	EntityRunsheet    EntityKind = "runsheet"
)

// Subtask is one canned checklist item attached to a task action.
type Subtask struct {
	Title         string `json:"title"`
	DueOffsetDays int    `json:"due_offset_days"`
}

// ProposedAction is a structured, not-yet-executed create/update instruction.
// Nothing is persisted until a human confirms it.
//
// EntityID and SearchBy are mutually exclusive: EntityID is set when the
// target is already known from context (the current case), SearchBy when the
// target must be resolved later by fuzzy name/title search.
type ProposedAction struct {
	Type     ActionType     `json:"type"`
	Entity   EntityKind     `json:"entity"`
	EntityID string         `json:"entity_id,omitempty"`
	SearchBy string         `json:"search_by,omitempty"`
	Fields   map[string]any `json:"fields"`
	Subtasks []Subtask      `json:"subtasks,omitempty"`
	Summary  string         `json:"summary"`
}

// ParseResult is the parser's verdict on one utterance. Exactly one of
// a non-empty Actions list, IsHelpQuery, IsStatusQuery, or none of the
// three (fallback) holds.
type ParseResult struct {
	Actions       []ProposedAction
	IsHelpQuery   bool
	IsStatusQuery bool
}

// ProcessMessageInput is the input for the assistant message pipeline.
type ProcessMessageInput struct {
	Message string
}

// ProcessMessageOutput carries the proposed actions plus the rendered
// confirmation text shown to the user.
type ProcessMessageOutput struct {
	Actions       []ProposedAction
	Reply         string
	IsHelpQuery   bool
	IsStatusQuery bool
}
