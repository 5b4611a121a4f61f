package model

// Scope carries the per-request caller context. CaseID is the currently
// open case, if any; the assistant core reads it but never mutates it.
type Scope struct {
	UserID string
	CaseID string
}

// HasCase reports whether a case is linked to the current request.
func (s Scope) HasCase() bool {
	return s.CaseID != ""
}
